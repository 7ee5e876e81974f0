package wishlist

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wl := r.Group("/wishlist")
	{
		wl.GET("", handler.List)
		wl.DELETE("", handler.Clear)
		wl.POST("/items", handler.AddItem)
		wl.DELETE("/items/:productId", handler.RemoveItem)
		wl.POST("/toggle", handler.Toggle)
		wl.GET("/contains/:productId", handler.Contains)
	}
}
