package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func (c *EquipmentController) Create(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.CreateEquipmentDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.Create(ctx.Request().Context(), actor, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, equipment, "equipment created", http.StatusCreated)
}

func (c *EquipmentController) Update(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.UpdateEquipmentDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.Update(ctx.Request().Context(), actor, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, equipment, "equipment updated", http.StatusOK)
}

func (c *EquipmentController) Delete(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.equipmentService.Delete(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "equipment deleted", http.StatusOK)
}

func (c *EquipmentController) GetByID(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	equipment, err := c.equipmentService.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, equipment, "", http.StatusOK)
}

func (c *EquipmentController) List(ctx echo.Context) error {
	filter := dto.EquipmentFilter{
		Department: ctx.QueryParam("department"),
		Employee:   ctx.QueryParam("employee"),
		Status:     ctx.QueryParam("status"),
		Search:     ctx.QueryParam("search"),
	}

	equipment, err := c.equipmentService.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, equipment, "", http.StatusOK)
}

func (c *EquipmentController) Departments(ctx echo.Context) error {
	departments, err := c.equipmentService.Departments(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, departments, "", http.StatusOK)
}
