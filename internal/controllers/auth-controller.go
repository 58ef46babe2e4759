package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Signup(ctx echo.Context) error {
	var body dto.SignupDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.Signup(ctx.Request().Context(), body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, tokens, "account created", http.StatusCreated)
}

func (c *AuthController) Login(ctx echo.Context) error {
	var body dto.LoginDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.Login(ctx.Request().Context(), body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, tokens, "logged in", http.StatusOK)
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	var body dto.RefreshTokenDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	tokens, err := c.authService.RefreshTokens(ctx.Request().Context(), body.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, tokens, "tokens refreshed", http.StatusOK)
}

func (c *AuthController) ForgotPassword(ctx echo.Context) error {
	var body dto.ForgotPasswordDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	token, err := c.authService.ForgotPassword(ctx.Request().Context(), body.Email)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, token, "reset token issued", http.StatusOK)
}

func (c *AuthController) ResetPassword(ctx echo.Context) error {
	var body dto.ResetPasswordDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	if err := c.authService.ResetPassword(ctx.Request().Context(), body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, nil, "password updated", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	actor, err := utils.GetActorFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	user, err := c.authService.Me(ctx.Request().Context(), actor.ID)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	user.PasswordHash = ""
	return utils.SuccessResponse(ctx, user, "", http.StatusOK)
}
