package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTeamRouter(secureGroup *echo.Group, ctrl *controllers.TeamController) {
	teamGroup := secureGroup.Group("/teams")
	{
		teamGroup.GET("", ctrl.List)
		teamGroup.POST("", ctrl.Create)
		teamGroup.GET("/:id", ctrl.GetByID)
		teamGroup.PUT("/:id", ctrl.Update)
		teamGroup.DELETE("/:id", ctrl.Delete)
	}
}
