package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nearbasket/nearbasket-api/controllers"
	"github.com/nearbasket/nearbasket-api/middlewares"
)

func UserRoutes(server *gin.Engine) {
	users := server.Group("/api/users", middlewares.RequireAuth())
	{
		users.GET("/me", controllers.GetProfile)
		users.PUT("/update", controllers.UpdateProfile)
		users.PUT("/change-password", controllers.ChangePassword)
		users.POST("/address", controllers.AddAddress)
		users.GET("/address", controllers.GetAddresses)
		users.PUT("/address/default/:id", controllers.SetDefaultAddress)
		users.PUT("/address/:id", controllers.UpdateAddress)
		users.DELETE("/address/:id", controllers.DeleteAddress)
	}
}
