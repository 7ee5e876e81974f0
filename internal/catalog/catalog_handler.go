package catalog

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

func (h *Handler) ListProducts(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Products(ctx.Request.Context()))
}

func (h *Handler) ProductDetail(ctx *gin.Context) {
	product, err := h.service.ProductBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, product)
}

func (h *Handler) ListCollections(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Collections(ctx.Request.Context()))
}

func (h *Handler) ListCategories(ctx *gin.Context) {
	response.Success(ctx, http.StatusOK, h.service.Categories(ctx.Request.Context()))
}

func (h *Handler) Browse(ctx *gin.Context) {
	var req BrowseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid browse request", err.Error())
		return
	}

	res, err := h.service.Browse(ctx.Request.Context(), ctx.Param("slug"), req)
	if err != nil {
		response.AppError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res)
}
