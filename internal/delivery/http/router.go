package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"theatertickets/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(catalogController *controllers.CatalogController, storefrontController *controllers.StorefrontController) *http.ServeMux {
	mux := http.NewServeMux()

	// Admin catalog
	mux.HandleFunc("GET /admin/shows", catalogController.ListCurrentShows)
	mux.HandleFunc("POST /admin/shows", catalogController.AddShow)
	mux.HandleFunc("DELETE /admin/shows/{showID}", catalogController.DeleteShow)
	mux.HandleFunc("GET /admin/customers", catalogController.ListCustomers)
	mux.HandleFunc("GET /admin/shows/{showID}/customers", catalogController.ListCustomersForShow)
	mux.HandleFunc("GET /admin/shows/{showID}/absent-customers", catalogController.ListCustomersNotForShow)
	mux.HandleFunc("GET /admin/reports/tickets", catalogController.RankShowsByTickets)
	mux.HandleFunc("GET /admin/reports/revenue", catalogController.RankShowsByRevenue)

	// Storefront
	mux.HandleFunc("GET /shows", storefrontController.ListShows)
	mux.HandleFunc("GET /shows/{showID}", storefrontController.GetShow)
	mux.HandleFunc("POST /shows/{showID}/orders", storefrontController.PurchaseTicket)
	mux.HandleFunc("DELETE /orders/{orderID}", storefrontController.CancelOrder)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
