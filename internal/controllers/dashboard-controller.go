package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (c *DashboardController) Summary(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	summary, err := c.dashboardService.Summary(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, summary, "", http.StatusOK)
}

func (c *DashboardController) Kanban(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	board, err := c.dashboardService.Kanban(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, board, "", http.StatusOK)
}

func (c *DashboardController) Calendar(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	events, err := c.dashboardService.Calendar(ctx.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, events, "", http.StatusOK)
}
