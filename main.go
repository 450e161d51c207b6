// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostelhub/config"
	"hostelhub/database"
	foodmenuRepo "hostelhub/database/repository/foodmenu"
	menuitemRepo "hostelhub/database/repository/menuitem"
	"hostelhub/handlers"
	"hostelhub/middleware"
	"hostelhub/routes"
	"hostelhub/services/foodmenu"
	"hostelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize signed URL resolver: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	itemRepo := menuitemRepo.NewMongoMenuItemRepo()
	menuRepo := foodmenuRepo.NewMongoFoodMenuRepo(itemRepo)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := menuRepo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Warnf("main: failed to ensure food menu indexes: %v", err)
		}
		cancel()
	}

	// services.
	menuService := &foodmenu.DefaultFoodMenuService{Repo: menuRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		FoodMenu: handlers.NewFoodMenuHandler(menuService, storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
