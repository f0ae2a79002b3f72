package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/controllers"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}
}
