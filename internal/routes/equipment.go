package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runEquipmentRouter(secureGroup *echo.Group, ctrl *controllers.EquipmentController) {
	equipmentGroup := secureGroup.Group("/equipment")
	{
		equipmentGroup.GET("", ctrl.List)
		equipmentGroup.POST("", ctrl.Create)
		equipmentGroup.GET("/departments", ctrl.Departments)
		equipmentGroup.GET("/:id", ctrl.GetByID)
		equipmentGroup.PUT("/:id", ctrl.Update)
		equipmentGroup.DELETE("/:id", ctrl.Delete)
	}
}
