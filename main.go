package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"taskprinter/app/config"
	"taskprinter/app/controllers"
	"taskprinter/app/middleware"
	"taskprinter/app/routes"
	"taskprinter/app/services"
	"taskprinter/app/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Initialize the service layer
	printService := services.NewPrintService(cfg.Printer, logger)

	// Open the printer now so bad configuration or a missing device is
	// fatal before the server accepts traffic.
	if err := printService.EnsureReady(); err != nil {
		logger.Fatal("printer not ready", zap.Error(err))
	}

	// Initialize the controller layer
	printController := controllers.NewPrintController(printService, web.Templates(), logger)

	// Setup HTTP server
	router := mux.NewRouter()
	router.Use(middleware.Logging(logger))
	routes.RegisterRoutes(router, printController)

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
