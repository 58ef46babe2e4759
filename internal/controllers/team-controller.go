package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: teamService, logger: logger}
}

func pathID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid id %q", ctx.Param("id"))
	}
	return id, nil
}

func (c *TeamController) Create(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.CreateTeamDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	team, err := c.teamService.Create(ctx.Request().Context(), actor, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, team, "team created", http.StatusCreated)
}

func (c *TeamController) Update(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.UpdateTeamDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	team, err := c.teamService.Update(ctx.Request().Context(), actor, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, team, "team updated", http.StatusOK)
}

func (c *TeamController) Delete(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.teamService.Delete(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "team deleted", http.StatusOK)
}

func (c *TeamController) GetByID(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	team, err := c.teamService.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, team, "", http.StatusOK)
}

func (c *TeamController) List(ctx echo.Context) error {
	teams, err := c.teamService.List(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, teams, "", http.StatusOK)
}
