package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"theatertickets/internal/domain"
)

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) domain.CustomerRepository {
	return &customerRepository{
		DB: db,
	}
}

func (r *customerRepository) CreateIfAbsent(ctx context.Context, c *domain.Customer) error {
	// The email column carries a UNIQUE constraint, so OR IGNORE skips the
	// insert for a known email without touching the existing row's fields.
	query := `
		INSERT OR IGNORE INTO customers (name, age, email, phone)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Age, c.Email, c.Phone)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Existing customer; the caller resolves the ID via GetByEmail.
		return nil
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `
		SELECT id, name, age, email, phone
		FROM customers
		WHERE email = ?
	`
	c := &domain.Customer{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Name, &c.Age, &c.Email, &c.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	query := `
		SELECT id, name, age, email, phone
		FROM customers
	`
	return r.list(ctx, query)
}

func (r *customerRepository) ListByShow(ctx context.Context, showID int64) ([]*domain.Customer, error) {
	// Inner join on orders; a customer with several orders for the show
	// appears once per order.
	query := `
		SELECT customers.id, customers.name, customers.age, customers.email, customers.phone
		FROM customers
		JOIN orders ON customers.id = orders.customer_id
		WHERE orders.event_id = ?
	`
	return r.list(ctx, query, showID)
}

func (r *customerRepository) ListNotByShow(ctx context.Context, showID int64) ([]*domain.Customer, error) {
	// Anti-join: a plain left join with a post-join filter would drop
	// customers holding orders for other shows.
	query := `
		SELECT customers.id, customers.name, customers.age, customers.email, customers.phone
		FROM customers
		WHERE NOT EXISTS (
			SELECT 1 FROM orders
			WHERE orders.customer_id = customers.id AND orders.event_id = ?
		)
	`
	return r.list(ctx, query, showID)
}

func (r *customerRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		c := &domain.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
