package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"theatertickets/internal/delivery/http/helpers"
	"theatertickets/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorefrontService implements domain.StorefrontService for handler tests.
type fakeStorefrontService struct {
	listAvailableErr    error
	listAvailableResult []*domain.Show
	getShowErr          error
	getShowResult       *domain.Show
	purchaseErr         error
	cancelErr           error
	lastGetShowID       int64
	lastPurchaseShowID  int64
	lastPurchaseReg     domain.Registration
	lastCanceledOrderID int64
}

func (f *fakeStorefrontService) ListAvailableShows(ctx context.Context) ([]*domain.Show, error) {
	if f.listAvailableErr != nil {
		return nil, f.listAvailableErr
	}
	if f.listAvailableResult != nil {
		return f.listAvailableResult, nil
	}
	return []*domain.Show{}, nil
}

func (f *fakeStorefrontService) GetShow(ctx context.Context, showID int64) (*domain.Show, error) {
	f.lastGetShowID = showID
	if f.getShowErr != nil {
		return nil, f.getShowErr
	}
	if f.getShowResult != nil {
		return f.getShowResult, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStorefrontService) Purchase(ctx context.Context, showID int64, reg domain.Registration) (*domain.Order, error) {
	f.lastPurchaseShowID = showID
	f.lastPurchaseReg = reg
	if f.purchaseErr != nil {
		return nil, f.purchaseErr
	}
	return &domain.Order{ID: 42, CustomerID: 7, ShowID: showID, ShowName: "Hamlet", ShowPrice: 50}, nil
}

func (f *fakeStorefrontService) Cancel(ctx context.Context, orderID int64) error {
	f.lastCanceledOrderID = orderID
	return f.cancelErr
}

func TestStorefrontController_ListShows(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		result     []*domain.Show
		wantStatus int
		wantCount  int
	}{
		{
			name: "success",
			result: []*domain.Show{
				{ID: 1, Name: "Hamlet", Price: 50, Date: "2026-11-01", FreeSlots: 3},
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:       "no shows",
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name:       "service error",
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeStorefrontService{listAvailableErr: tt.fakeErr, listAvailableResult: tt.result}
			ctrl := NewStorefrontController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/shows", nil)
			rr := httptest.NewRecorder()

			ctrl.ListShows(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var shows []domain.Show
				require.NoError(t, json.Unmarshal(dataBytes, &shows))
				assert.Len(t, shows, tt.wantCount)
			} else {
				require.NotNil(t, envelope.Error)
			}
		})
	}
}

func TestStorefrontController_GetShow(t *testing.T) {
	tests := []struct {
		name       string
		showID     string
		fakeErr    error
		result     *domain.Show
		wantStatus int
	}{
		{
			name:       "success",
			showID:     "1",
			result:     &domain.Show{ID: 1, Name: "Hamlet", Price: 50, Date: "2026-11-01", FreeSlots: 3},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			showID:     "99",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			showID:     "abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeStorefrontService{getShowErr: tt.fakeErr, getShowResult: tt.result}
			ctrl := NewStorefrontController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/shows/"+tt.showID, nil)
			req.SetPathValue("showID", tt.showID)
			rr := httptest.NewRecorder()

			ctrl.GetShow(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var show domain.Show
				require.NoError(t, json.Unmarshal(dataBytes, &show))
				assert.Equal(t, "Hamlet", show.Name)
			} else {
				require.NotNil(t, envelope.Error)
			}
		})
	}
}

func TestStorefrontController_PurchaseTicket(t *testing.T) {
	validBody := `{"name":"John Doe","age":30,"email":"john@example.com","phone":"555-0100"}`

	tests := []struct {
		name           string
		showID         string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkOrder     func(t *testing.T, order domain.Order)
	}{
		{
			name:       "success",
			showID:     "1",
			body:       validBody,
			wantStatus: http.StatusCreated,
			checkOrder: func(t *testing.T, order domain.Order) {
				assert.Equal(t, int64(42), order.ID)
				assert.Equal(t, int64(1), order.ShowID)
				assert.Equal(t, "Hamlet", order.ShowName)
			},
		},
		{
			name:           "show not found",
			showID:         "99",
			body:           validBody,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "show not found",
		},
		{
			name:           "sold out",
			showID:         "1",
			body:           validBody,
			fakeErr:        domain.ErrSoldOut,
			wantStatus:     http.StatusConflict,
			wantBodySubstr: "no seats available",
		},
		{
			name:           "invalid age",
			showID:         "1",
			body:           `{"name":"John Doe","age":0,"email":"john@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "age must be positive",
		},
		{
			name:           "invalid email",
			showID:         "1",
			body:           `{"name":"John Doe","age":30,"email":"not-an-email"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is invalid",
		},
		{
			name:           "invalid show id",
			showID:         "abc",
			body:           validBody,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid showID",
		},
		{
			name:           "service error",
			showID:         "1",
			body:           validBody,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeStorefrontService{purchaseErr: tt.fakeErr}
			ctrl := NewStorefrontController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/shows/"+tt.showID+"/orders", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("showID", tt.showID)
			rr := httptest.NewRecorder()

			ctrl.PurchaseTicket(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var order domain.Order
				require.NoError(t, json.Unmarshal(dataBytes, &order))
				tt.checkOrder(t, order)
				assert.Equal(t, "John Doe", fake.lastPurchaseReg.Name)
				assert.Equal(t, "john@example.com", fake.lastPurchaseReg.Email)
			} else {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestStorefrontController_CancelOrder(t *testing.T) {
	tests := []struct {
		name       string
		orderID    string
		fakeErr    error
		wantStatus int
	}{
		{
			name:       "success",
			orderID:    "42",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "order not found",
			orderID:    "999",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			orderID:    "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service error",
			orderID:    "42",
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeStorefrontService{cancelErr: tt.fakeErr}
			ctrl := NewStorefrontController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "/orders/"+tt.orderID, nil)
			req.SetPathValue("orderID", tt.orderID)
			rr := httptest.NewRecorder()

			ctrl.CancelOrder(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, int64(42), fake.lastCanceledOrderID)
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
