package checkout

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	{
		co.GET("/shipping-options", handler.ShippingOptions)
		co.POST("/quote", handler.Quote)
		co.POST("/orders", handler.PlaceOrder)
	}
}
