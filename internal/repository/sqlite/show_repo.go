package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"theatertickets/internal/domain"
)

type showRepository struct {
	DB *sql.DB
}

func NewShowRepository(db *sql.DB) domain.ShowRepository {
	return &showRepository{
		DB: db,
	}
}

func (r *showRepository) Create(ctx context.Context, s *domain.Show) error {
	query := `
		INSERT INTO events (name, price, date, free_slots)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, s.Name, s.Price, s.Date, s.FreeSlots)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *showRepository) GetByID(ctx context.Context, id int64) (*domain.Show, error) {
	query := `
		SELECT id, name, price, date, free_slots
		FROM events
		WHERE id = ?
	`
	s := &domain.Show{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Price, &s.Date, &s.FreeSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *showRepository) ListCurrent(ctx context.Context, from string) ([]*domain.Show, error) {
	query := `
		SELECT id, name, price, date, free_slots
		FROM events
		WHERE free_slots > 0 AND date >= ?
	`
	return r.list(ctx, query, from)
}

func (r *showRepository) ListAvailable(ctx context.Context) ([]*domain.Show, error) {
	query := `
		SELECT id, name, price, date, free_slots
		FROM events
		WHERE free_slots > 0
	`
	return r.list(ctx, query)
}

func (r *showRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Show, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	shows := make([]*domain.Show, 0)
	for rows.Next() {
		s := &domain.Show{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Date, &s.FreeSlots); err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}

func (r *showRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *showRepository) RankByTickets(ctx context.Context) ([]*domain.ShowSales, error) {
	query := `
		SELECT events.name, COUNT(orders.order_id) AS tickets_sold
		FROM events
		LEFT JOIN orders ON events.id = orders.event_id
		GROUP BY events.id
		ORDER BY tickets_sold DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ranking := make([]*domain.ShowSales, 0)
	for rows.Next() {
		row := &domain.ShowSales{}
		if err := rows.Scan(&row.Name, &row.TicketsSold); err != nil {
			return nil, err
		}
		ranking = append(ranking, row)
	}
	return ranking, rows.Err()
}

func (r *showRepository) RankByRevenue(ctx context.Context) ([]*domain.ShowRevenue, error) {
	// Sums the per-order price snapshot, so revenue stays correct even after a
	// show's price is edited. Shows without sales are excluded by the join.
	query := `
		SELECT events.name, SUM(orders.event_price) AS revenue
		FROM events
		JOIN orders ON events.id = orders.event_id
		GROUP BY events.id
		ORDER BY revenue DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ranking := make([]*domain.ShowRevenue, 0)
	for rows.Next() {
		row := &domain.ShowRevenue{}
		if err := rows.Scan(&row.Name, &row.Revenue); err != nil {
			return nil, err
		}
		ranking = append(ranking, row)
	}
	return ranking, rows.Err()
}
