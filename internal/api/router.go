package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/trashgo/delivery-api/docs"
	"github.com/trashgo/delivery-api/internal/api/handler"
	"github.com/trashgo/delivery-api/internal/api/middleware"
	"github.com/trashgo/delivery-api/internal/core/service"
	"github.com/trashgo/delivery-api/internal/infrastructure/config"
	mongodb "github.com/trashgo/delivery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/trashgo/delivery-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("delivery"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokenService, throttle, log)
	userService := service.NewUserService(userRepo, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	orderHandler := handler.NewOrderHandler(orderService)
	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes (public) ---
	e.POST("/auth/", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	// --- Order routes ---
	orders := e.Group("/orders", authMiddleware)
	orders.POST("/", orderHandler.Create)
	orders.GET("/", orderHandler.List)
	orders.GET("/my", orderHandler.ListMine)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.PATCH("/:id/assign", orderHandler.Assign)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
