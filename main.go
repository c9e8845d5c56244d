// File: tably/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tably/config"
	"tably/cron"
	"tably/database"
	menuRepoPkg "tably/database/repository/menu"
	orderRepoPkg "tably/database/repository/order"
	podRepoPkg "tably/database/repository/pod"
	tenantRepoPkg "tably/database/repository/tenant"
	"tably/handlers"
	"tably/middleware"
	"tably/routes"
	"tably/services/loyalty"
	"tably/services/menubuilder"
	"tably/services/order"
	"tably/services/pod"
	"tably/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	menuRepo := menuRepoPkg.NewMongoMenuRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	podRepo := podRepoPkg.NewMongoPodRepo()
	tenantRepo := tenantRepoPkg.NewMongoTenantRepo()

	// services.
	sessionService := &menubuilder.DefaultSessionService{
		MenuRepo: menuRepo,
		TTL:      time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	podService := &pod.DefaultPodService{
		Repo:  podRepo,
		Tasks: cron.NewTaskClient(),
	}

	loyaltyService := &loyalty.DefaultLoyaltyService{}

	orderService := &order.DefaultOrderService{
		Repo:     orderRepo,
		MenuRepo: menuRepo,
		Sessions: sessionService,
		Pods:     podService,
		Loyalty:  loyaltyService,
	}

	// Background worker watching for pods stuck in cleaning.
	cron.InitPodWorker(podRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Menu:    handlers.NewMenuHandler(menuRepo),
		Builder: handlers.NewBuilderHandler(sessionService, orderService),
		Order:   handlers.NewOrderHandler(orderService),
		Pod:     handlers.NewPodHandler(podService),
		Loyalty: handlers.NewLoyaltyHandler(loyaltyService),
		Admin:   handlers.NewAdminHandler(tenantRepo, menuRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, middleware.TenantMiddleware(tenantRepo))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
