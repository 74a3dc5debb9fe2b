package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"theatertickets/internal/domain"
)

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) domain.OrderRepository {
	return &orderRepository{
		DB: db,
	}
}

// Purchase decrements the show's free slots and inserts the order as one
// transaction. The decrement is conditional on free_slots > 0; zero rows
// affected means the show is sold out and nothing is written.
func (r *orderRepository) Purchase(ctx context.Context, o *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE events SET free_slots = free_slots - 1 WHERE id = ? AND free_slots > 0`,
		o.ShowID,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if rows == 0 {
		tx.Rollback()
		return domain.ErrSoldOut
	}

	result, err = tx.ExecContext(ctx,
		`INSERT INTO orders (customer_id, event_id, event_name, event_price) VALUES (?, ?, ?, ?)`,
		o.CustomerID, o.ShowID, o.ShowName, o.ShowPrice,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}
	o.ID = id

	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
		SELECT order_id, customer_id, event_id, event_name, event_price
		FROM orders
		WHERE order_id = ?
	`
	o := &domain.Order{}
	err := r.DB.QueryRowContext(ctx, query, orderID).Scan(&o.ID, &o.CustomerID, &o.ShowID, &o.ShowName, &o.ShowPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Cancel removes the order and restores one free slot on its show as one
// transaction. The slot update matches no row when the show was deleted after
// the purchase; that no-op is accepted.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var showID int64
	err = tx.QueryRowContext(ctx, `SELECT event_id FROM orders WHERE order_id = ?`, orderID).Scan(&showID)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = ?`, orderID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE events SET free_slots = free_slots + 1 WHERE id = ?`, showID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
