package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"theatertickets/internal/delivery/http/helpers"
	"theatertickets/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// StorefrontController exposes the customer-facing operations: browsing,
// ticket purchase, and cancellation.
type StorefrontController struct {
	Logger  *slog.Logger
	Service domain.StorefrontService
}

func NewStorefrontController(logger *slog.Logger, svc domain.StorefrontService) *StorefrontController {
	return &StorefrontController{
		Logger:  logger,
		Service: svc,
	}
}

// ListShows godoc
// @Summary List shows with free seats
// @Tags storefront
// @Produce json
// @Success 200 {object} controllers.ListShowsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows [get]
func (c *StorefrontController) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := c.Service.ListAvailableShows(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shows)
}

// GetShowSuccessResponse is the success response envelope for GET /shows/{showID} (200).
type GetShowSuccessResponse struct {
	Data  *domain.Show      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetShow godoc
// @Summary Get a show
// @Tags storefront
// @Produce json
// @Param showID path int true "Show ID"
// @Success 200 {object} controllers.GetShowSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows/{showID} [get]
func (c *StorefrontController) GetShow(w http.ResponseWriter, r *http.Request) {
	showID, ok := parsePathID(w, r, "showID")
	if !ok {
		return
	}
	show, err := c.Service.GetShow(r.Context(), showID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "show not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, show)
}

// PurchaseRequest is the request body for POST /shows/{showID}/orders.
type PurchaseRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate implements helpers.Validator.
func (p PurchaseRequest) Validate() []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "name is required")
	}
	if p.Age <= 0 {
		errs = append(errs, "age must be positive")
	}
	if !emailRegex.MatchString(p.Email) {
		errs = append(errs, "email is invalid")
	}
	return errs
}

// PurchaseSuccessResponse is the success response envelope for POST /shows/{showID}/orders (201).
type PurchaseSuccessResponse struct {
	Data  *domain.Order     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PurchaseTicket godoc
// @Summary Buy a ticket
// @Description Registers the customer if needed and books one seat for the show.
// @Tags storefront
// @Accept json
// @Produce json
// @Param showID path int true "Show ID"
// @Param registration body PurchaseRequest true "Customer data"
// @Success 201 {object} controllers.PurchaseSuccessResponse "data contains the created order"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (show is sold out)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shows/{showID}/orders [post]
func (c *StorefrontController) PurchaseTicket(w http.ResponseWriter, r *http.Request) {
	showID, ok := parsePathID(w, r, "showID")
	if !ok {
		return
	}
	var req PurchaseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg := domain.Registration{
		Name:  req.Name,
		Age:   req.Age,
		Email: req.Email,
		Phone: req.Phone,
	}
	order, err := c.Service.Purchase(r.Context(), showID, reg)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "show not found")
		case errors.Is(err, domain.ErrSoldOut):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "no seats available for this show")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, order)
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Deletes the order and returns its seat to the show when the show still exists.
// @Tags storefront
// @Produce json
// @Param orderID path int true "Order ID"
// @Success 204 "Order canceled"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orders/{orderID} [delete]
func (c *StorefrontController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parsePathID(w, r, "orderID")
	if !ok {
		return
	}
	if err := c.Service.Cancel(r.Context(), orderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "order not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
