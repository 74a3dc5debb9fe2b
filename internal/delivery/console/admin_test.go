package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"theatertickets/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogService implements domain.CatalogService for console tests.
type fakeCatalogService struct {
	currentShows      []*domain.Show
	currentErr        error
	addShowErr        error
	deleteShowErr     error
	customers         []*domain.Customer
	customersForShow  []*domain.Customer
	customersNotFor   []*domain.Customer
	byTickets         []*domain.ShowSales
	byRevenue         []*domain.ShowRevenue
	lastAddName       string
	lastAddPrice      float64
	lastAddDate       string
	lastAddCapacity   int
	lastDeletedShowID int64
}

func (f *fakeCatalogService) ListCurrentShows(ctx context.Context) ([]*domain.Show, error) {
	return f.currentShows, f.currentErr
}

func (f *fakeCatalogService) AddShow(ctx context.Context, name string, price float64, date string, capacity int) (*domain.Show, error) {
	f.lastAddName = name
	f.lastAddPrice = price
	f.lastAddDate = date
	f.lastAddCapacity = capacity
	if f.addShowErr != nil {
		return nil, f.addShowErr
	}
	return &domain.Show{ID: 1, Name: name, Price: price, Date: date, FreeSlots: capacity}, nil
}

func (f *fakeCatalogService) DeleteShow(ctx context.Context, showID int64) error {
	f.lastDeletedShowID = showID
	return f.deleteShowErr
}

func (f *fakeCatalogService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeCatalogService) ListCustomersForShow(ctx context.Context, showID int64) ([]*domain.Customer, error) {
	return f.customersForShow, nil
}

func (f *fakeCatalogService) ListCustomersNotForShow(ctx context.Context, showID int64) ([]*domain.Customer, error) {
	return f.customersNotFor, nil
}

func (f *fakeCatalogService) RankShowsByTickets(ctx context.Context) ([]*domain.ShowSales, error) {
	return f.byTickets, nil
}

func (f *fakeCatalogService) RankShowsByRevenue(ctx context.Context) ([]*domain.ShowRevenue, error) {
	return f.byRevenue, nil
}

// runAdmin feeds the given input lines to a fresh admin console and returns
// everything it printed.
func runAdmin(t *testing.T, svc *fakeCatalogService, input string) string {
	t.Helper()
	var out bytes.Buffer
	NewAdminConsole(strings.NewReader(input), &out, svc).Run(context.Background())
	return out.String()
}

func TestAdminConsole_ListCurrentShows(t *testing.T) {
	t.Run("no shows", func(t *testing.T) {
		out := runAdmin(t, &fakeCatalogService{}, "1\n0\n")
		assert.Contains(t, out, "No shows available.")
	})

	t.Run("prints show lines", func(t *testing.T) {
		svc := &fakeCatalogService{currentShows: []*domain.Show{
			{ID: 1, Name: "Hamlet", Price: 50, Date: "2026-11-01", FreeSlots: 5},
		}}
		out := runAdmin(t, svc, "1\n0\n")
		assert.Contains(t, out, "ID: 1, Name: Hamlet, Price: 50.00, Date: 2026-11-01, Free slots: 5")
	})
}

func TestAdminConsole_AddShow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCatalogService{}
		out := runAdmin(t, svc, "2\nHamlet\n50\n2026-11-01\n100\n0\n")
		assert.Contains(t, out, "Show 'Hamlet' added.")
		assert.Equal(t, "Hamlet", svc.lastAddName)
		assert.Equal(t, 50.0, svc.lastAddPrice)
		assert.Equal(t, "2026-11-01", svc.lastAddDate)
		assert.Equal(t, 100, svc.lastAddCapacity)
	})

	t.Run("non numeric price", func(t *testing.T) {
		out := runAdmin(t, &fakeCatalogService{}, "2\nHamlet\ncheap\n0\n")
		assert.Contains(t, out, "Invalid input.")
	})

	t.Run("service rejects input", func(t *testing.T) {
		svc := &fakeCatalogService{addShowErr: domain.ErrInvalidInput}
		out := runAdmin(t, svc, "2\nHamlet\n50\nnot-a-date\n100\n0\n")
		assert.Contains(t, out, "Invalid input.")
		assert.NotContains(t, out, "added.")
	})
}

func TestAdminConsole_DeleteShow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCatalogService{}
		out := runAdmin(t, svc, "3\n7\n0\n")
		assert.Contains(t, out, "Show with ID 7 deleted.")
		assert.Equal(t, int64(7), svc.lastDeletedShowID)
	})

	t.Run("unknown show still reports deleted", func(t *testing.T) {
		svc := &fakeCatalogService{deleteShowErr: domain.ErrNotFound}
		out := runAdmin(t, svc, "3\n99\n0\n")
		assert.Contains(t, out, "Show with ID 99 deleted.")
	})

	t.Run("store fault", func(t *testing.T) {
		svc := &fakeCatalogService{deleteShowErr: errors.New("db error")}
		out := runAdmin(t, svc, "3\n7\n0\n")
		assert.Contains(t, out, "Error deleting show: db error")
		assert.NotContains(t, out, "deleted.")
	})
}

func TestAdminConsole_CustomerListings(t *testing.T) {
	johnDoe := &domain.Customer{ID: 1, Name: "John Doe", Age: 30, Email: "john@example.com", Phone: "1234567890"}
	janeDoe := &domain.Customer{ID: 2, Name: "Jane Doe", Age: 25, Email: "jane@example.com", Phone: "0987654321"}

	t.Run("all customers", func(t *testing.T) {
		out := runAdmin(t, &fakeCatalogService{customers: []*domain.Customer{johnDoe}}, "4\n0\n")
		assert.Contains(t, out, "John Doe")
	})

	t.Run("no customers", func(t *testing.T) {
		out := runAdmin(t, &fakeCatalogService{}, "4\n0\n")
		assert.Contains(t, out, "No customers found.")
	})

	t.Run("for a show", func(t *testing.T) {
		out := runAdmin(t, &fakeCatalogService{customersForShow: []*domain.Customer{johnDoe}}, "5\n1\n0\n")
		assert.Contains(t, out, "John Doe")
	})

	t.Run("not for a show", func(t *testing.T) {
		out := runAdmin(t, &fakeCatalogService{customersNotFor: []*domain.Customer{janeDoe}}, "6\n1\n0\n")
		assert.Contains(t, out, "Jane Doe")
		assert.NotContains(t, out, "John Doe")
	})
}

func TestAdminConsole_Reports(t *testing.T) {
	svc := &fakeCatalogService{
		byTickets: []*domain.ShowSales{
			{Name: "Hamlet", TicketsSold: 5},
			{Name: "Macbeth", TicketsSold: 0},
		},
		byRevenue: []*domain.ShowRevenue{
			{Name: "Hamlet", Revenue: 250},
		},
	}

	out := runAdmin(t, svc, "7\n8\n0\n")
	require.Contains(t, out, "Hamlet: 5 tickets sold")
	require.Contains(t, out, "Macbeth: 0 tickets sold")
	assert.Contains(t, out, "Hamlet: 250.00 revenue")
}

func TestAdminConsole_UnknownChoice(t *testing.T) {
	out := runAdmin(t, &fakeCatalogService{}, "9\n0\n")
	assert.Contains(t, out, "Invalid input.")
}
