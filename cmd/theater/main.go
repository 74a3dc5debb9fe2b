package main

import (
	"context"
	"fmt"
	"os"

	"theatertickets/config"
	"theatertickets/internal/adapters/email"
	"theatertickets/internal/delivery/console"
	"theatertickets/internal/repository/sqlite"
	"theatertickets/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.Migrate(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, "migrating schema:", err)
		os.Exit(1)
	}

	showRepo := sqlite.NewShowRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)

	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating mailer:", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	catalogService := services.NewCatalogService(showRepo, customerRepo)
	storefrontService := services.NewStorefrontService(showRepo, customerRepo, orderRepo, emailService)

	console.Run(ctx, os.Stdin, os.Stdout, catalogService, storefrontService)
}
