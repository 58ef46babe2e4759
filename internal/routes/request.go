package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(secureGroup *echo.Group, ctrl *controllers.RequestController) {
	requestGroup := secureGroup.Group("/requests")
	{
		requestGroup.GET("", ctrl.List)
		requestGroup.POST("", ctrl.Create)
		requestGroup.GET("/:id", ctrl.GetByID)
		requestGroup.PUT("/:id", ctrl.Update)
		requestGroup.DELETE("/:id", ctrl.Delete)
		requestGroup.POST("/:id/assign", ctrl.Assign)
		requestGroup.POST("/:id/status", ctrl.UpdateStatus)
	}
}
