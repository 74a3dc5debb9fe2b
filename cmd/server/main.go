package main

import (
	"context"
	"net/http"
	"os"

	"theatertickets/config"
	_ "theatertickets/docs"
	"theatertickets/internal/adapters/email"
	httpdelivery "theatertickets/internal/delivery/http"
	"theatertickets/internal/delivery/http/controllers"
	"theatertickets/internal/delivery/http/middleware"
	"theatertickets/internal/repository/sqlite"
	"theatertickets/internal/services"
)

// @title Theater Tickets API
// @version 1.0
// @description Ticket sales for theater shows: admin catalog and customer storefront.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("opening database", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Error("migrating schema", "err", err)
		os.Exit(1)
	}

	showRepo := sqlite.NewShowRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)

	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		logger.Error("creating mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	catalogService := services.NewCatalogService(showRepo, customerRepo)
	storefrontService := services.NewStorefrontService(showRepo, customerRepo, orderRepo, emailService)

	catalogController := controllers.NewCatalogController(logger, catalogService)
	storefrontController := controllers.NewStorefrontController(logger, storefrontService)

	router := httpdelivery.NewRouter(catalogController, storefrontController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, router))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
