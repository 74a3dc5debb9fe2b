package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"theatertickets/internal/delivery/http/helpers"
	"theatertickets/internal/domain"
)

// CatalogController exposes the admin operations: show management and sales reports.
type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// parsePathID reads an integer path value. On failure it writes a 400 error
// and returns false.
func parsePathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// ListShowsSuccessResponse is the success response envelope for GET /admin/shows (200).
type ListShowsSuccessResponse struct {
	Data  []*domain.Show    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListCurrentShows godoc
// @Summary List current shows
// @Description Returns shows that still have free slots and whose date is today or later.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.ListShowsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/shows [get]
func (c *CatalogController) ListCurrentShows(w http.ResponseWriter, r *http.Request) {
	shows, err := c.Service.ListCurrentShows(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shows)
}

// AddShowRequest is the request body for POST /admin/shows.
type AddShowRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Date     string  `json:"date"`
	Capacity int     `json:"capacity"`
}

// Validate implements helpers.Validator.
func (a AddShowRequest) Validate() []string {
	var errs []string
	if a.Name == "" {
		errs = append(errs, "name is required")
	}
	if a.Price < 0 {
		errs = append(errs, "price must not be negative")
	}
	if a.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	if _, err := time.Parse(domain.DateLayout, a.Date); err != nil {
		errs = append(errs, "date must be formatted as "+domain.DateLayout)
	}
	return errs
}

// AddShowSuccessResponse is the success response envelope for POST /admin/shows (201).
type AddShowSuccessResponse struct {
	Data  *domain.Show      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AddShow godoc
// @Summary Add a show
// @Description Creates a show with the given name, price, date, and seat capacity.
// @Tags admin
// @Accept json
// @Produce json
// @Param show body AddShowRequest true "Show data"
// @Success 201 {object} controllers.AddShowSuccessResponse "data contains the created show"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/shows [post]
func (c *CatalogController) AddShow(w http.ResponseWriter, r *http.Request) {
	var req AddShowRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	show, err := c.Service.AddShow(r.Context(), req.Name, req.Price, req.Date, req.Capacity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, show)
}

// DeleteShow godoc
// @Summary Delete a show
// @Description Deletes the show with the given ID. Existing orders are left untouched.
// @Tags admin
// @Produce json
// @Param showID path int true "Show ID"
// @Success 204 "Show deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/shows/{showID} [delete]
func (c *CatalogController) DeleteShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := parsePathID(w, r, "showID")
	if !ok {
		return
	}
	if err := c.Service.DeleteShow(r.Context(), showID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "show not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCustomersSuccessResponse is the success response envelope for the customer listings (200).
type ListCustomersSuccessResponse struct {
	Data  []*domain.Customer `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListCustomers godoc
// @Summary List all customers
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.ListCustomersSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/customers [get]
func (c *CatalogController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.Service.ListCustomers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, customers)
}

// ListCustomersForShow godoc
// @Summary List customers registered for a show
// @Description Returns customers holding at least one order for the show; a customer appears once per order.
// @Tags admin
// @Produce json
// @Param showID path int true "Show ID"
// @Success 200 {object} controllers.ListCustomersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/shows/{showID}/customers [get]
func (c *CatalogController) ListCustomersForShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := parsePathID(w, r, "showID")
	if !ok {
		return
	}
	customers, err := c.Service.ListCustomersForShow(r.Context(), showID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, customers)
}

// ListCustomersNotForShow godoc
// @Summary List customers not registered for a show
// @Description Returns customers holding no order for the show, including customers with orders for other shows.
// @Tags admin
// @Produce json
// @Param showID path int true "Show ID"
// @Success 200 {object} controllers.ListCustomersSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/shows/{showID}/absent-customers [get]
func (c *CatalogController) ListCustomersNotForShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := parsePathID(w, r, "showID")
	if !ok {
		return
	}
	customers, err := c.Service.ListCustomersNotForShow(r.Context(), showID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, customers)
}

// TicketsReportSuccessResponse is the success response envelope for GET /admin/reports/tickets (200).
type TicketsReportSuccessResponse struct {
	Data  []*domain.ShowSales `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// RankShowsByTickets godoc
// @Summary Rank shows by tickets sold
// @Description Returns every show ordered by ticket count descending; shows without sales appear with count 0.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.TicketsReportSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/reports/tickets [get]
func (c *CatalogController) RankShowsByTickets(w http.ResponseWriter, r *http.Request) {
	ranking, err := c.Service.RankShowsByTickets(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ranking)
}

// RevenueReportSuccessResponse is the success response envelope for GET /admin/reports/revenue (200).
type RevenueReportSuccessResponse struct {
	Data  []*domain.ShowRevenue `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// RankShowsByRevenue godoc
// @Summary Rank shows by revenue
// @Description Returns shows with at least one sale ordered by summed order prices descending.
// @Tags admin
// @Produce json
// @Success 200 {object} controllers.RevenueReportSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/reports/revenue [get]
func (c *CatalogController) RankShowsByRevenue(w http.ResponseWriter, r *http.Request) {
	ranking, err := c.Service.RankShowsByRevenue(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ranking)
}
