package domain

import "context"

// Customer represents a ticket buyer. Email is the deduplication key: a second
// purchase with a known email reuses the existing row.
// swagger:model Customer
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewCustomer returns a new Customer with the given fields. ID is set by the repository on create.
func NewCustomer(name string, age int, email, phone string) *Customer {
	return &Customer{
		Name:  name,
		Age:   age,
		Email: email,
		Phone: phone,
	}
}

// CustomerRepository defines the interface for customer storage
type CustomerRepository interface {
	// CreateIfAbsent inserts the customer unless a row with the same email
	// already exists. The existing row's fields are not re-validated.
	CreateIfAbsent(ctx context.Context, customer *Customer) error
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	// ListByShow returns customers holding at least one order for the show.
	// A customer with N orders appears N times.
	ListByShow(ctx context.Context, showID int64) ([]*Customer, error)
	// ListNotByShow returns customers holding no order for the show.
	ListNotByShow(ctx context.Context, showID int64) ([]*Customer, error)
}
