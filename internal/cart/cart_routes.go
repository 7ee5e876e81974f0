package cart

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		carts.GET("", handler.Detail)
		carts.DELETE("", handler.Clear)
		carts.POST("/toggle", handler.Toggle)
		carts.PUT("/open", handler.SetOpen)

		items := carts.Group("/items")
		{
			items.POST("", handler.AddItem)
			items.PATCH("", handler.UpdateQuantity)
			items.DELETE("", handler.RemoveItem)
		}
	}
}
