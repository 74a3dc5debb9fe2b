package services

import (
	"context"
	"errors"
	"testing"

	"theatertickets/internal/domain"

	"github.com/stretchr/testify/require"
)

type mockOrderRepository struct {
	orders      map[int64]*domain.Order
	purchaseErr error
	cancelErr   error

	lastPurchase   *domain.Order
	lastCanceledID int64
}

func (m *mockOrderRepository) Purchase(ctx context.Context, order *domain.Order) error {
	if m.purchaseErr != nil {
		return m.purchaseErr
	}
	order.ID = 42
	m.lastPurchase = order
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (m *mockOrderRepository) Cancel(ctx context.Context, orderID int64) error {
	m.lastCanceledID = orderID
	return m.cancelErr
}

type mockEmailService struct {
	sendErr  error
	sent     int
	lastData *domain.OrderConfirmationEmailData
}

func (m *mockEmailService) SendOrderConfirmation(ctx context.Context, data *domain.OrderConfirmationEmailData) error {
	m.sent++
	m.lastData = data
	return m.sendErr
}

func validReg() domain.Registration {
	return domain.Registration{Name: "John Doe", Age: 30, Email: "john@example.com", Phone: "1234567890"}
}

func TestStorefrontService_Purchase(t *testing.T) {
	ctx := context.Background()
	hamlet := &domain.Show{ID: 1, Name: "Hamlet", Price: 100.0, Date: "2024-11-01", FreeSlots: 5}

	t.Run("new customer", func(t *testing.T) {
		showRepo := &mockShowRepository{shows: map[int64]*domain.Show{1: hamlet}}
		customerRepo := &mockCustomerRepository{insertAssignedID: 7}
		orderRepo := &mockOrderRepository{}
		emails := &mockEmailService{}
		svc := NewStorefrontService(showRepo, customerRepo, orderRepo, emails)

		order, err := svc.Purchase(ctx, 1, validReg())
		require.NoError(t, err)
		require.Equal(t, int64(42), order.ID)
		require.Equal(t, int64(7), order.CustomerID)
		require.Equal(t, int64(1), order.ShowID)
		require.Equal(t, "Hamlet", order.ShowName)
		require.Equal(t, 100.0, order.ShowPrice)

		require.NotNil(t, customerRepo.lastCreateIfAbsent)
		require.Equal(t, "john@example.com", customerRepo.lastCreateIfAbsent.Email)

		require.Equal(t, 1, emails.sent)
		require.Equal(t, "john@example.com", emails.lastData.Email)
		require.Equal(t, int64(42), emails.lastData.OrderID)
		require.Equal(t, "Hamlet", emails.lastData.ShowName)
	})

	t.Run("existing customer reused by email", func(t *testing.T) {
		showRepo := &mockShowRepository{shows: map[int64]*domain.Show{1: hamlet}}
		customerRepo := &mockCustomerRepository{
			// Insert is ignored (ID stays 0); lookup resolves the known row.
			insertAssignedID: 0,
			customersByEmail: map[string]*domain.Customer{
				"john@example.com": {ID: 9, Name: "John Doe", Age: 30, Email: "john@example.com"},
			},
		}
		orderRepo := &mockOrderRepository{}
		svc := NewStorefrontService(showRepo, customerRepo, orderRepo, &mockEmailService{})

		order, err := svc.Purchase(ctx, 1, validReg())
		require.NoError(t, err)
		require.Equal(t, int64(9), order.CustomerID)
	})

	t.Run("show not found", func(t *testing.T) {
		svc := NewStorefrontService(
			&mockShowRepository{shows: map[int64]*domain.Show{}},
			&mockCustomerRepository{},
			&mockOrderRepository{},
			&mockEmailService{},
		)

		_, err := svc.Purchase(ctx, 999, validReg())
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("sold out", func(t *testing.T) {
		emails := &mockEmailService{}
		svc := NewStorefrontService(
			&mockShowRepository{shows: map[int64]*domain.Show{1: hamlet}},
			&mockCustomerRepository{insertAssignedID: 7},
			&mockOrderRepository{purchaseErr: domain.ErrSoldOut},
			emails,
		)

		_, err := svc.Purchase(ctx, 1, validReg())
		require.True(t, errors.Is(err, domain.ErrSoldOut))
		require.Zero(t, emails.sent, "no confirmation for a failed purchase")
	})

	t.Run("email failure does not fail the purchase", func(t *testing.T) {
		svc := NewStorefrontService(
			&mockShowRepository{shows: map[int64]*domain.Show{1: hamlet}},
			&mockCustomerRepository{insertAssignedID: 7},
			&mockOrderRepository{},
			&mockEmailService{sendErr: errors.New("smtp down")},
		)

		order, err := svc.Purchase(ctx, 1, validReg())
		require.NoError(t, err)
		require.Equal(t, int64(42), order.ID)
	})

	t.Run("invalid registration", func(t *testing.T) {
		tests := []struct {
			name string
			reg  domain.Registration
		}{
			{name: "empty name", reg: domain.Registration{Name: "  ", Age: 30, Email: "john@example.com"}},
			{name: "zero age", reg: domain.Registration{Name: "John Doe", Age: 0, Email: "john@example.com"}},
			{name: "negative age", reg: domain.Registration{Name: "John Doe", Age: -3, Email: "john@example.com"}},
			{name: "missing email", reg: domain.Registration{Name: "John Doe", Age: 30, Email: ""}},
			{name: "email without at sign", reg: domain.Registration{Name: "John Doe", Age: 30, Email: "john.example.com"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				customerRepo := &mockCustomerRepository{}
				svc := NewStorefrontService(
					&mockShowRepository{shows: map[int64]*domain.Show{1: hamlet}},
					customerRepo,
					&mockOrderRepository{},
					&mockEmailService{},
				)

				_, err := svc.Purchase(ctx, 1, tt.reg)
				require.True(t, errors.Is(err, domain.ErrInvalidInput))
				require.Nil(t, customerRepo.lastCreateIfAbsent, "invalid input must not reach the repository")
			})
		}
	})
}

func TestStorefrontService_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		cancelErr error
		wantErr   error
	}{
		{name: "success"},
		{name: "order not found", cancelErr: domain.ErrNotFound, wantErr: domain.ErrNotFound},
		{name: "repo error", cancelErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := &mockOrderRepository{cancelErr: tt.cancelErr}
			svc := NewStorefrontService(&mockShowRepository{}, &mockCustomerRepository{}, orderRepo, &mockEmailService{})

			err := svc.Cancel(ctx, 42)
			require.Equal(t, int64(42), orderRepo.lastCanceledID)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, domain.ErrNotFound) {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStorefrontService_ListAvailableShows(t *testing.T) {
	ctx := context.Background()
	shows := []*domain.Show{
		{ID: 1, Name: "Hamlet", Price: 100.0, Date: "2024-11-01", FreeSlots: 5},
	}
	svc := NewStorefrontService(&mockShowRepository{available: shows}, &mockCustomerRepository{}, &mockOrderRepository{}, &mockEmailService{})

	got, err := svc.ListAvailableShows(ctx)
	require.NoError(t, err)
	require.Equal(t, shows, got)
}

func TestStorefrontService_GetShow(t *testing.T) {
	ctx := context.Background()
	hamlet := &domain.Show{ID: 1, Name: "Hamlet"}
	svc := NewStorefrontService(&mockShowRepository{shows: map[int64]*domain.Show{1: hamlet}}, &mockCustomerRepository{}, &mockOrderRepository{}, &mockEmailService{})

	got, err := svc.GetShow(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, hamlet, got)

	_, err = svc.GetShow(ctx, 999)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
