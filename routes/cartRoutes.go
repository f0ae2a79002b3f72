package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/controllers"
	"github.com/nearbasket/nearbasket-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/api/cart", middlewares.RequireAuth())
	{
		cart.POST("/add", controllers.AddToCart)
		cart.GET("", controllers.GetCart)
		cart.PUT("/update/:itemId", controllers.UpdateCartItem)
		cart.DELETE("/remove/:itemId", controllers.RemoveCartItem)
		cart.PUT("/toggle/:itemId", controllers.ToggleCartItem)
		cart.PUT("/select-all", controllers.SelectAllCartItems)
	}
}
