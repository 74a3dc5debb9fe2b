package console

import (
	"context"
	"errors"
	"io"
	"strconv"

	"theatertickets/internal/domain"
)

const storefrontMenu = `
Ticket office:
 1. Browse shows and buy a ticket
 2. Cancel an order
 0. Back
`

// StorefrontConsole drives the customer menu: the single-pass browse-and-buy
// flow and order cancellation.
type StorefrontConsole struct {
	p       *prompter
	service domain.StorefrontService
}

func NewStorefrontConsole(in io.Reader, out io.Writer, svc domain.StorefrontService) *StorefrontConsole {
	return &StorefrontConsole{
		p:       newPrompter(in, out),
		service: svc,
	}
}

// Run loops over the storefront menu until the user exits or input ends.
func (s *StorefrontConsole) Run(ctx context.Context) {
	for {
		s.p.printf("%s", storefrontMenu)
		choice, ok := s.p.readLine("Choose an option: ")
		if !ok || choice == "0" {
			return
		}
		switch choice {
		case "1":
			s.browseAndBuy(ctx)
		case "2":
			s.cancelOrder(ctx)
		default:
			s.p.println("Invalid input.")
		}
	}
}

// browseAndBuy lists the shows with free seats, then walks the customer
// through picking one and registering for it.
func (s *StorefrontConsole) browseAndBuy(ctx context.Context) {
	shows, err := s.service.ListAvailableShows(ctx)
	if err != nil {
		s.p.printf("Error listing shows: %v\n", err)
		return
	}
	if len(shows) == 0 {
		s.p.println("No shows available.")
		return
	}
	s.p.println("Available shows:")
	s.p.printShows(shows)

	showID, ok, err := s.p.readInt("Enter the ID of the show you want a ticket for: ")
	if !ok {
		return
	}
	if err != nil {
		s.p.println("Invalid input.")
		return
	}

	show, err := s.service.GetShow(ctx, showID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.p.println("Show not found.")
			return
		}
		s.p.printf("An error occurred during registration: %v\n", err)
		return
	}
	if show.FreeSlots <= 0 {
		s.p.println("No seats available for this show.")
		return
	}

	reg, ok := s.readRegistration()
	if !ok {
		return
	}

	if _, err := s.service.Purchase(ctx, showID, reg); err != nil {
		switch {
		case errors.Is(err, domain.ErrSoldOut):
			s.p.println("No seats available for this show.")
		case errors.Is(err, domain.ErrInvalidInput):
			s.p.println("Invalid input.")
		default:
			s.p.printf("An error occurred during registration: %v\n", err)
		}
		return
	}
	s.p.println("Registration complete, ticket purchased!")
}

// readRegistration collects the customer's details. A non-numeric or
// non-positive age aborts the flow with a status line.
func (s *StorefrontConsole) readRegistration() (domain.Registration, bool) {
	var reg domain.Registration
	name, ok := s.p.readLine("Your name: ")
	if !ok {
		return reg, false
	}
	rawAge, ok := s.p.readLine("Your age: ")
	if !ok {
		return reg, false
	}
	age, err := strconv.Atoi(rawAge)
	if err != nil || age <= 0 {
		s.p.println("Invalid age.")
		return reg, false
	}
	email, ok := s.p.readLine("Your email: ")
	if !ok {
		return reg, false
	}
	phone, ok := s.p.readLine("Your phone: ")
	if !ok {
		return reg, false
	}
	reg = domain.Registration{Name: name, Age: age, Email: email, Phone: phone}
	return reg, true
}

func (s *StorefrontConsole) cancelOrder(ctx context.Context) {
	orderID, ok, err := s.p.readInt("Order ID to cancel: ")
	if !ok {
		return
	}
	if err != nil {
		s.p.println("Invalid input.")
		return
	}
	if err := s.service.Cancel(ctx, orderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.p.println("Order not found.")
			return
		}
		s.p.printf("Error canceling order: %v\n", err)
		return
	}
	s.p.println("Order canceled.")
}
