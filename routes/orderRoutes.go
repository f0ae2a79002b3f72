package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/controllers"
	"github.com/nearbasket/nearbasket-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.POST("/place", controllers.PlaceOrder)
		orders.GET("/my", controllers.GetMyOrders)
		orders.GET("", middlewares.RequireAdmin(), controllers.GetOrders)
		orders.PUT("/:id/status", middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
	}
}
