package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lifeline-salud/backend/internal/client"
	"github.com/lifeline-salud/backend/internal/config"
	"github.com/lifeline-salud/backend/internal/db"
	"github.com/lifeline-salud/backend/internal/handler"
	"github.com/lifeline-salud/backend/internal/service"
	"go.uber.org/zap"
)

// @title Lifeline backend API
// @version 1.0
// @description CRUD backend for accounts, subscriptions and inventories.
// @BasePath /
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	store, err := db.NewPostgres(context.Background(), cfg.Postgres)
	if err != nil {
		logger.Fatal("postgres init failed", zap.Error(err))
	}
	defer store.Close()

	authService, err := service.NewAuthService(store, logger, cfg.Auth)
	if err != nil {
		logger.Fatal("auth init failed", zap.Error(err))
	}
	inventoryService := service.NewInventoryService(store)
	subscriptionService := service.NewSubscriptionService(store)
	adminService := service.NewAdminService(store, logger)
	mailer := client.NewResendClient(cfg.Email.APIKey, cfg.Email.From)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestLogger(logger))
	router.Use(handler.CORSMiddleware([]string{cfg.FrontendURL}, true))

	registerRoutes(router, authService, inventoryService, subscriptionService, adminService, mailer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", zap.Error(err))
	}
}

func registerRoutes(
	router *gin.Engine,
	authService *service.AuthService,
	inventoryService *service.InventoryService,
	subscriptionService *service.SubscriptionService,
	adminService *service.AdminService,
	mailer handler.EmailSender,
) {
	authHandler := handler.NewAuthHandler(authService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	adminHandler := handler.NewAdminHandler(adminService)
	emailHandler := handler.NewEmailHandler(mailer)

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	// Legacy alias kept for the deployed frontend.
	router.POST("/autorizar", authHandler.Login)

	protected := router.Group("/", handler.SessionGuard(authService))
	protected.GET("/user-data", authHandler.UserData)
	protected.POST("/logout", authHandler.Logout)

	router.POST("/inventory", inventoryHandler.CreateInventory)
	router.GET("/inventories", inventoryHandler.GetInventories)
	router.GET("/inventory/:inventoryId", inventoryHandler.GetInventoryDetails)
	router.POST("/inventory/:inventoryId/response", inventoryHandler.CreateInventoryResponse)
	// The deployed frontend sends the response id in this segment; the
	// router needs one wildcard name per position.
	router.GET("/inventory/:inventoryId/responses", inventoryHandler.GetInventoryResponses)
	router.GET("/inventory-responses", inventoryHandler.GetAllInventoryResponses)

	router.POST("/type", subscriptionHandler.CreateType)
	router.POST("/subscription", subscriptionHandler.CreateSubscription)

	router.POST("/send-contact", emailHandler.SendContact)

	router.POST("/admin/delete-all-content", adminHandler.DeleteAllContent)
	router.POST("/admin/drop-all-tables", adminHandler.DropAllTables)
	router.POST("/admin/drop-all-procedures", adminHandler.DropAllProcedures)
}
