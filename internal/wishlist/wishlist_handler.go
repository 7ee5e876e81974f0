package wishlist

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

func (h *Handler) List(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Items(ctx.Request.Context()))
}

func (h *Handler) AddItem(ctx *gin.Context) {
	var req ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid wishlist payload", err.Error())
		return
	}

	items, err := h.service.AddItem(ctx.Request.Context(), req.ProductID)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, items)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	items := h.service.RemoveItem(ctx.Request.Context(), ctx.Param("productId"))
	response.Success(ctx, http.StatusOK, items)
}

func (h *Handler) Toggle(ctx *gin.Context) {
	var req ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid wishlist payload", err.Error())
		return
	}

	res, err := h.service.Toggle(ctx.Request.Context(), req.ProductID)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}

func (h *Handler) Contains(ctx *gin.Context) {
	productID := ctx.Param("productId")
	response.Success(ctx, http.StatusOK, ContainsResponse{
		ProductID:  productID,
		InWishlist: h.service.Contains(ctx.Request.Context(), productID),
	})
}

func (h *Handler) Clear(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Clear(ctx.Request.Context()))
}
