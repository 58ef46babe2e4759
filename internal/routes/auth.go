package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
	"gearguard/pkg/middleware"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", ctrl.Signup)
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/refresh_token", ctrl.Refresh)
		authGroup.POST("/forgot_password", ctrl.ForgotPassword)
		authGroup.POST("/reset_password", ctrl.ResetPassword)
		authGroup.GET("/me", ctrl.Me, authMW.Auth)
	}
}
