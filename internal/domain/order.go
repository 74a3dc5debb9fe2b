package domain

import "context"

// Order is one purchased ticket linking a customer to a show. ShowName and
// ShowPrice snapshot the show at purchase time and are not kept in sync with
// later show edits. Buying N tickets means N orders; there is no quantity.
// swagger:model Order
type Order struct {
	ID         int64   `json:"order_id"`
	CustomerID int64   `json:"customer_id"`
	ShowID     int64   `json:"event_id"`
	ShowName   string  `json:"event_name"`
	ShowPrice  float64 `json:"event_price"`
}

// NewOrder returns a new Order for the given customer and show snapshot.
// ID is set by the repository on create.
func NewOrder(customerID, showID int64, showName string, showPrice float64) *Order {
	return &Order{
		CustomerID: customerID,
		ShowID:     showID,
		ShowName:   showName,
		ShowPrice:  showPrice,
	}
}

// OrderRepository defines the interface for order storage
type OrderRepository interface {
	// Purchase runs the conditional slot decrement and the order insert in one
	// transaction. A decrement that matches no row is the definitive sold-out
	// signal and returns ErrSoldOut.
	Purchase(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, orderID int64) (*Order, error)
	// Cancel deletes the order and restores one free slot on the referenced
	// show in one transaction. The slot update is a silent no-op when the show
	// has been deleted in the meantime. Returns ErrNotFound for unknown orders.
	Cancel(ctx context.Context, orderID int64) error
}

// Registration carries the customer details collected during a purchase.
type Registration struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// StorefrontService defines the customer-facing operations: browsing shows,
// buying tickets, and canceling orders.
type StorefrontService interface {
	ListAvailableShows(ctx context.Context) ([]*Show, error)
	GetShow(ctx context.Context, id int64) (*Show, error)
	// Purchase registers the customer (reusing an existing row by email) and
	// creates one order, decrementing the show's free slots. Returns
	// ErrNotFound for unknown shows, ErrSoldOut when no slots remain, and
	// ErrInvalidInput for bad registration details.
	Purchase(ctx context.Context, showID int64, reg Registration) (*Order, error)
	Cancel(ctx context.Context, orderID int64) error
}
