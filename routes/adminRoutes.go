package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/controllers"
	"github.com/nearbasket/nearbasket-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/api/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/dashboard", controllers.GetDashboardStats)
		admin.PUT("/category/:catalog/enable-disable", controllers.ToggleCatalog)
	}
}
