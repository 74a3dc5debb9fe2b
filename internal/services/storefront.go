package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"theatertickets/internal/domain"
)

type storefrontService struct {
	showRepo     domain.ShowRepository
	customerRepo domain.CustomerRepository
	orderRepo    domain.OrderRepository
	emailService domain.EmailService
}

// NewStorefrontService creates a StorefrontService with the given repositories.
// The email service sends purchase confirmations; pass one backed by the noop
// mailer to disable outgoing mail.
func NewStorefrontService(
	showRepo domain.ShowRepository,
	customerRepo domain.CustomerRepository,
	orderRepo domain.OrderRepository,
	emailService domain.EmailService,
) domain.StorefrontService {
	return &storefrontService{
		showRepo:     showRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		emailService: emailService,
	}
}

func (s *storefrontService) ListAvailableShows(ctx context.Context) ([]*domain.Show, error) {
	shows, err := s.showRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available shows: %w", err)
	}
	return shows, nil
}

func (s *storefrontService) GetShow(ctx context.Context, id int64) (*domain.Show, error) {
	show, err := s.showRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get show: %w", err)
	}
	return show, nil
}

func (s *storefrontService) Purchase(ctx context.Context, showID int64, reg domain.Registration) (*domain.Order, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	show, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get show: %w", err)
	}

	// Register the customer, reusing an existing row with the same email.
	customer := domain.NewCustomer(strings.TrimSpace(reg.Name), reg.Age, strings.TrimSpace(reg.Email), strings.TrimSpace(reg.Phone))
	if err := s.customerRepo.CreateIfAbsent(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	if customer.ID == 0 {
		existing, err := s.customerRepo.GetByEmail(ctx, customer.Email)
		if err != nil {
			return nil, fmt.Errorf("get customer by email: %w", err)
		}
		customer = existing
	}

	// The conditional decrement inside Purchase is the authoritative
	// availability check; a failed decrement means sold out.
	order := domain.NewOrder(customer.ID, show.ID, show.Name, show.Price)
	if err := s.orderRepo.Purchase(ctx, order); err != nil {
		if errors.Is(err, domain.ErrSoldOut) {
			return nil, domain.ErrSoldOut
		}
		return nil, fmt.Errorf("purchase ticket: %w", err)
	}

	// Best effort: a mail failure never fails the purchase.
	confirmation := &domain.OrderConfirmationEmailData{
		Email:        customer.Email,
		CustomerName: customer.Name,
		OrderID:      order.ID,
		ShowName:     show.Name,
		ShowDate:     show.Date,
		ShowPrice:    show.Price,
	}
	if err := s.emailService.SendOrderConfirmation(ctx, confirmation); err != nil {
		log.Printf("[STOREFRONT] Order confirmation email failed for order %d: %v", order.ID, err)
	}

	return order, nil
}

func (s *storefrontService) Cancel(ctx context.Context, orderID int64) error {
	if err := s.orderRepo.Cancel(ctx, orderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("cancel order: %w", err)
	}
	return nil
}

func validateRegistration(reg domain.Registration) error {
	if strings.TrimSpace(reg.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if reg.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", domain.ErrInvalidInput)
	}
	email := strings.TrimSpace(reg.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}
	return nil
}
