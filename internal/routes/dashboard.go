package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runDashboardRouter(secureGroup *echo.Group, ctrl *controllers.DashboardController) {
	dashboardGroup := secureGroup.Group("/dashboard")
	{
		dashboardGroup.GET("", ctrl.Summary)
		dashboardGroup.GET("/kanban", ctrl.Kanban)
		dashboardGroup.GET("/calendar", ctrl.Calendar)
	}
}
