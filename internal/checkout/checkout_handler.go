package checkout

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

func (h *Handler) ShippingOptions(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.ShippingOptions(ctx.Request.Context()))
}

func (h *Handler) Quote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid quote payload", err.Error())
		return
	}

	summary, err := h.service.Quote(ctx.Request.Context(), req)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, summary)
}

func (h *Handler) PlaceOrder(ctx *gin.Context) {
	var req PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid order payload", err.Error())
		return
	}

	order, err := h.service.PlaceOrder(ctx.Request.Context(), req)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, order)
}
