package main

import (
	"log"

	"parts-admin/internal/core/auth"
	"parts-admin/internal/core/busy"
	"parts-admin/internal/core/cache"
	"parts-admin/internal/core/config"
	"parts-admin/internal/core/logger"
	"parts-admin/internal/core/server"
	"parts-admin/internal/core/storeapi"
	catalogadapter "parts-admin/internal/features/catalog/adapters"
	cataloghandler "parts-admin/internal/features/catalog/handler"
	catalogservice "parts-admin/internal/features/catalog/service"
	dashboardhandler "parts-admin/internal/features/dashboard/handler"
	dashboardservice "parts-admin/internal/features/dashboard/service"
	orderadapter "parts-admin/internal/features/orders/adapters"
	orderhandler "parts-admin/internal/features/orders/handler"
	orderservice "parts-admin/internal/features/orders/service"
	supportadapter "parts-admin/internal/features/support/adapters"
	supporthandler "parts-admin/internal/features/support/handler"
	supportservice "parts-admin/internal/features/support/service"
	uploadadapter "parts-admin/internal/features/uploads/adapters"
	uploadhandler "parts-admin/internal/features/uploads/handler"
	uploadservice "parts-admin/internal/features/uploads/service"

	"go.uber.org/zap"
)

// @title Parts Admin API
// @version 1.0
// @description Admin gateway for the PC parts storefront: order lifecycle, returns, support inbox, catalog and uploads.
// @contact.name API Support
// @contact.email support@pc-parts-shop.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Credential cache and token store
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	tokenStore := auth.NewTokenStore(redisCache)

	// Shared backend client; every proxied call carries the cached token
	client := storeapi.New(cfg.StoreAPI, tokenStore)

	// Orders
	ordersAdapter := orderadapter.NewStoreAPIAdapter(client)
	ordersService := orderservice.NewOrderService(ordersAdapter, busy.NewTracker())
	ordersHandler := orderhandler.NewOrderHandler(ordersService)

	// Support inbox
	ticketsAdapter := supportadapter.NewStoreAPIAdapter(client)
	ticketsService := supportservice.NewTicketService(ticketsAdapter, busy.NewTracker())
	ticketsHandler := supporthandler.NewTicketHandler(ticketsService)

	// Catalog
	catalogAdapter := catalogadapter.NewStoreAPIAdapter(client)
	catalogService := catalogservice.NewCatalogService(catalogAdapter)
	catalogHandler := cataloghandler.NewCatalogHandler(catalogService)

	// Uploads
	uploadsAdapter := uploadadapter.NewStoreAPIAdapter(client)
	uploadsService := uploadservice.NewUploadService(uploadsAdapter)
	uploadsHandler := uploadhandler.NewUploadHandler(uploadsService)

	// Dashboard counters aggregate the other features' providers
	dashboardService := dashboardservice.NewDashboardService(ordersAdapter, catalogAdapter, ticketsAdapter)
	dashboardHandler := dashboardhandler.NewDashboardHandler(dashboardService)

	sessionHandler := auth.NewSessionHandler(tokenStore)

	srv := server.New(cfg)

	// Session routes stay outside the guard so a token can be stored first
	srv.App.Put("/admin/session", sessionHandler.Set)
	srv.App.Delete("/admin/session", sessionHandler.Clear)

	admin := srv.App.Group("/admin", auth.RequireToken(tokenStore))

	admin.Get("/dashboard", dashboardHandler.Summary)

	admin.Get("/orders", ordersHandler.List)
	admin.Patch("/orders/:id/status", ordersHandler.ChangeStatus)
	admin.Post("/orders/:id/refund", ordersHandler.Refund)
	admin.Post("/orders/:id/rr/decide", ordersHandler.DecideRR)
	admin.Post("/orders/:id/rr/complete", ordersHandler.CompleteRR)

	admin.Get("/tickets", ticketsHandler.List)
	admin.Patch("/tickets/:id/status", ticketsHandler.ChangeStatus)
	admin.Post("/tickets/:id/reply", ticketsHandler.Reply)

	admin.Get("/categories", catalogHandler.ListCategories)
	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Put("/categories/:id", catalogHandler.UpdateCategory)
	admin.Delete("/categories/:id", catalogHandler.DeleteCategory)

	admin.Get("/products", catalogHandler.ListProducts)
	admin.Post("/products", catalogHandler.CreateProduct)
	admin.Put("/products/:id", catalogHandler.UpdateProduct)
	admin.Delete("/products/:id", catalogHandler.DeleteProduct)
	admin.Delete("/products/:id/image", catalogHandler.DeleteProductImage)

	admin.Post("/uploads/image", uploadsHandler.UploadImage)
	admin.Post("/uploads/images", uploadsHandler.UploadImages)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
