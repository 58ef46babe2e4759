package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runUserRouter(secureGroup *echo.Group, ctrl *controllers.UserController) {
	userGroup := secureGroup.Group("/users")
	{
		userGroup.GET("", ctrl.List)
		userGroup.GET("/technicians", ctrl.Technicians)
	}
}
