package domain

import "context"

// DateLayout is the calendar date format stored for shows. Dates are kept as
// text so they compare in ISO order inside SQL.
const DateLayout = "2006-01-02"

// Show represents a scheduled theater performance with price, date, and
// remaining capacity.
// swagger:model Show
type Show struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
	FreeSlots int     `json:"free_slots"`
}

// NewShow returns a new Show with the given fields. ID is set by the repository on create.
func NewShow(name string, price float64, date string, freeSlots int) *Show {
	return &Show{
		Name:      name,
		Price:     price,
		Date:      date,
		FreeSlots: freeSlots,
	}
}

// ShowSales is one row of the tickets-sold ranking. Shows with no sales are
// included with TicketsSold 0.
type ShowSales struct {
	Name        string `json:"name"`
	TicketsSold int    `json:"tickets_sold"`
}

// ShowRevenue is one row of the revenue ranking. Revenue sums the price
// snapshot recorded on each order; shows with no sales are excluded.
type ShowRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// ShowRepository defines the interface for show storage
type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetByID(ctx context.Context, id int64) (*Show, error)
	// ListCurrent returns shows with free slots whose date is on or after from.
	ListCurrent(ctx context.Context, from string) ([]*Show, error)
	// ListAvailable returns shows with free slots regardless of date.
	ListAvailable(ctx context.Context) ([]*Show, error)
	Delete(ctx context.Context, id int64) error
	RankByTickets(ctx context.Context) ([]*ShowSales, error)
	RankByRevenue(ctx context.Context) ([]*ShowRevenue, error)
}

// CatalogService defines the admin-facing operations over shows, customers,
// and sales reports.
type CatalogService interface {
	ListCurrentShows(ctx context.Context) ([]*Show, error)
	AddShow(ctx context.Context, name string, price float64, date string, capacity int) (*Show, error)
	DeleteShow(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context) ([]*Customer, error)
	ListCustomersForShow(ctx context.Context, showID int64) ([]*Customer, error)
	ListCustomersNotForShow(ctx context.Context, showID int64) ([]*Customer, error)
	RankShowsByTickets(ctx context.Context) ([]*ShowSales, error)
	RankShowsByRevenue(ctx context.Context) ([]*ShowRevenue, error)
}
