package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter wires repositories, services and controllers and mounts every
// route group under /api. Auth endpoints are open; everything else sits
// behind the JWT middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	teamRepo := repositories.NewTeamRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	membershipService := services.NewMembershipService(userRepo, cacheRepo, cfg.Auth.MembershipCacheTTL, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, cfg.Auth.ResetTokenTTL, logger)
	userService := services.NewUserService(userRepo, logger)
	teamService := services.NewTeamService(teamRepo, requestRepo, membershipService, txManager, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, teamRepo, logger)
	requestService := services.NewRequestService(requestRepo, equipmentRepo, userRepo, membershipService, txManager, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, requestRepo, membershipService, logger)
	reportService := services.NewReportService(reportRepo, logger)

	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	requestController := controllers.NewRequestController(requestService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	reportController := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authController, authMW)
	runUserRouter(secureGroup, userController)
	runTeamRouter(secureGroup, teamController)
	runEquipmentRouter(secureGroup, equipmentController)
	runRequestRouter(secureGroup, requestController)
	runDashboardRouter(secureGroup, dashboardController)
	runReportRouter(secureGroup, reportController)
}
