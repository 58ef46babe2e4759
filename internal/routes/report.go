package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController) {
	reportGroup := secureGroup.Group("/reports")
	{
		reportGroup.GET("/monthly", ctrl.Monthly)
	}
}
