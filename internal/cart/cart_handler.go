package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HamzaQasim7/inshacollections/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Detail(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Detail(ctx.Request.Context()))
}

func (h *Handler) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid cart item payload", err.Error())
		return
	}

	summary, err := h.service.AddItem(ctx.Request.Context(), req)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, summary)
}

func (h *Handler) UpdateQuantity(ctx *gin.Context) {
	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid quantity payload", err.Error())
		return
	}

	summary, err := h.service.UpdateQuantity(ctx.Request.Context(), req)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, summary)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	var req ItemKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid item key payload", err.Error())
		return
	}

	summary, err := h.service.RemoveItem(ctx.Request.Context(), req)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, summary)
}

func (h *Handler) Clear(ctx *gin.Context) {
	summary, err := h.service.Clear(ctx.Request.Context())
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, summary)
}

func (h *Handler) Toggle(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Toggle(ctx.Request.Context()))
}

func (h *Handler) SetOpen(ctx *gin.Context) {
	var req SetOpenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid payload", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, h.service.SetOpen(ctx.Request.Context(), req.IsOpen))
}
