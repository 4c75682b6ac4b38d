package main

import (
	"context"
	"fmt"
	"log"

	"github.com/novainvoice/invoice-dashboard-service/internal/config"
	"github.com/novainvoice/invoice-dashboard-service/internal/handler"
	"github.com/novainvoice/invoice-dashboard-service/internal/openrouter"
	"github.com/novainvoice/invoice-dashboard-service/internal/repository"
	"github.com/novainvoice/invoice-dashboard-service/internal/server"
	"github.com/novainvoice/invoice-dashboard-service/internal/service"
)

// @title Invoice Dashboard Service API
// @version 1.0
// @description Backend for the invoicing dashboard: invoice CRUD and search, derived revenue statistics, AI receipt extraction and financial insights.
// @BasePath /
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize OpenRouter client backing both AI adapters
	aiClient := openrouter.NewClient(&openrouter.Config{
		APIKey:  cfg.OpenRouterAPIKey,
		ModelID: cfg.OpenRouterModelID,
		Timeout: cfg.OpenRouterTimeout,
	})

	// Initialize the in-memory invoice collection
	log.Println("Initializing invoice repository...")
	repo := repository.NewMemoryRepository()
	if cfg.DemoData {
		if err := repository.SeedDemoData(context.Background(), repo); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Loaded demo invoices")
	}

	// Create services
	invoiceService := service.NewInvoiceService(repo)
	dashboardService := service.NewDashboardService(repo)
	extractionService := service.NewExtractionService(aiClient)
	insightService := service.NewInsightService(aiClient, repo)

	// Create handlers and configure the server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg,
		handler.NewInvoiceHandler(invoiceService),
		handler.NewDashboardHandler(dashboardService),
		handler.NewExtractionHandler(extractionService),
		handler.NewInsightHandler(insightService),
	)

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server shutdown complete")
}
