package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/controllers"
	"github.com/nearbasket/nearbasket-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	catalog := server.Group("/api/catalog/:catalog")
	{
		catalog.GET("", controllers.ListProducts)
		catalog.GET("/category/:type", controllers.ListProductsByCategory)
		catalog.POST("/add", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProduct)
		catalog.GET("/:id", controllers.GetProduct)
		catalog.PUT("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UpdateProduct)
		catalog.DELETE("/:id", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.DeleteProduct)
	}

	server.POST("/api/products/images", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.UploadProductImages)
}
