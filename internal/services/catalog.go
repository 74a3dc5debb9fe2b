package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"theatertickets/internal/domain"
)

type catalogService struct {
	showRepo     domain.ShowRepository
	customerRepo domain.CustomerRepository
}

// NewCatalogService creates a CatalogService with the given repositories.
func NewCatalogService(showRepo domain.ShowRepository, customerRepo domain.CustomerRepository) domain.CatalogService {
	return &catalogService{
		showRepo:     showRepo,
		customerRepo: customerRepo,
	}
}

func (s *catalogService) ListCurrentShows(ctx context.Context) ([]*domain.Show, error) {
	today := time.Now().Format(domain.DateLayout)
	shows, err := s.showRepo.ListCurrent(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list current shows: %w", err)
	}
	return shows, nil
}

func (s *catalogService) AddShow(ctx context.Context, name string, price float64, date string, capacity int) (*domain.Show, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as %s", domain.ErrInvalidInput, domain.DateLayout)
	}

	show := domain.NewShow(name, price, date, capacity)
	if err := s.showRepo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}
	return show, nil
}

func (s *catalogService) DeleteShow(ctx context.Context, id int64) error {
	if err := s.showRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete show: %w", err)
	}
	return nil
}

func (s *catalogService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *catalogService) ListCustomersForShow(ctx context.Context, showID int64) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.ListByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("list customers for show: %w", err)
	}
	return customers, nil
}

func (s *catalogService) ListCustomersNotForShow(ctx context.Context, showID int64) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.ListNotByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("list customers not for show: %w", err)
	}
	return customers, nil
}

func (s *catalogService) RankShowsByTickets(ctx context.Context) ([]*domain.ShowSales, error) {
	ranking, err := s.showRepo.RankByTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank shows by tickets: %w", err)
	}
	return ranking, nil
}

func (s *catalogService) RankShowsByRevenue(ctx context.Context) ([]*domain.ShowRevenue, error) {
	ranking, err := s.showRepo.RankByRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank shows by revenue: %w", err)
	}
	return ranking, nil
}
