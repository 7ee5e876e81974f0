package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/:slug", handler.ProductDetail)
	}

	r.GET("/collections", handler.ListCollections)
	r.GET("/categories", handler.ListCategories)
	r.POST("/collections/:slug/products", handler.Browse)
}
