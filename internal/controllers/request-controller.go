package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func (c *RequestController) Create(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.CreateRequestDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.requestService.Create(ctx.Request().Context(), actor, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, request, "request created", http.StatusCreated)
}

func (c *RequestController) Update(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.UpdateRequestDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.requestService.Update(ctx.Request().Context(), actor, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, request, "request updated", http.StatusOK)
}

func (c *RequestController) Delete(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.requestService.Delete(ctx.Request().Context(), actor, id); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "request deleted", http.StatusOK)
}

func (c *RequestController) GetByID(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.requestService.GetByID(ctx.Request().Context(), actor, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, request, "", http.StatusOK)
}

func (c *RequestController) List(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	filter := dto.RequestFilter{
		Status: ctx.QueryParam("status"),
		Type:   ctx.QueryParam("type"),
		Search: ctx.QueryParam("search"),
	}
	if raw := ctx.QueryParam("team_id"); raw != "" {
		teamID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewValidationError("invalid team_id %q", raw))
		}
		filter.TeamID = teamID
	}

	requests, err := c.requestService.List(ctx.Request().Context(), actor, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, requests, "", http.StatusOK)
}

func (c *RequestController) Assign(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	id, err := pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.AssignRequestDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	request, err := c.requestService.Assign(ctx.Request().Context(), actor, id, body.TechnicianID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, request, "request assigned", http.StatusOK)
}

// UpdateStatus is the machine-callable endpoint behind the kanban drag-and-
// drop. Its response shape is fixed: {"success": bool, "message": string},
// 403 on a denied caller, 500 on anything unexpected.
func (c *RequestController) UpdateStatus(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusForbidden, dto.StatusUpdateResultDTO{Success: false, Message: err.Error()})
	}
	id, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.StatusUpdateResultDTO{Success: false, Message: err.Error()})
	}

	var body dto.UpdateRequestStatusDTO
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.StatusUpdateResultDTO{Success: false, Message: "invalid request body"})
	}
	if err := ctx.Validate(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.StatusUpdateResultDTO{Success: false, Message: err.Error()})
	}

	if _, err := c.requestService.UpdateStatus(ctx.Request().Context(), actor, id, body.Status); err != nil {
		var httpErr *apperrors.HttpError
		if errors.As(err, &httpErr) {
			code := httpErr.Code
			if apperrors.IsAuthorization(err) {
				code = http.StatusForbidden
			}
			return ctx.JSON(code, dto.StatusUpdateResultDTO{Success: false, Message: httpErr.Message})
		}
		c.logger.Error("status update failed", zap.Uint64("requestId", id), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, dto.StatusUpdateResultDTO{Success: false, Message: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, dto.StatusUpdateResultDTO{Success: true, Message: "status updated"})
}
