package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/domain"
)

// DeskService fronts the domain for the console: it runs the operations,
// turns domain errors into the messages the guest sees, and records
// structured logs and metrics along the way.
type DeskService struct {
	hotel *domain.Hotel
	guest *domain.Customer
	log   zerolog.Logger
}

func NewDeskService(h *domain.Hotel, guest *domain.Customer, l zerolog.Logger) *DeskService {
	return &DeskService{hotel: h, guest: guest, log: l}
}

func (s *DeskService) Guest() *domain.Customer { return s.guest }

// AvailableRooms renders the free part of the catalog.
func (s *DeskService) AvailableRooms() string {
	free := s.hotel.ListAvailable()
	if len(free) == 0 {
		return "\nNo rooms available right now.\n"
	}
	var b strings.Builder
	b.WriteString("\nAvailable rooms:\n")
	for _, r := range free {
		fmt.Fprintf(&b, "  %s\n", r.Describe())
	}
	return b.String()
}

// Book attempts the booking transaction and reports the outcome.
func (s *DeskService) Book(ctx context.Context, roomNumber, nights int) string {
	res, err := s.hotel.BookFor(ctx, s.guest, roomNumber, nights)
	if err != nil {
		outcome, msg := bookFailure(err)
		observability.ObserveBooking("book", outcome)
		s.log.Info().
			Int("room", roomNumber).
			Int("nights", nights).
			Str("outcome", outcome).
			Msg("booking_rejected")
		return msg
	}
	observability.ObserveBooking("book", "ok")
	observability.ObserveRevenue("book", res.Total)
	s.log.Info().
		Int("room", roomNumber).
		Int("nights", nights).
		Float64("total", res.Total).
		Str("ref", res.Ref).
		Msg("booking_ok")
	return fmt.Sprintf("Booking confirmed! Total: %.2f₾ | Loyalty points: %d | Ref: %s",
		res.Total, res.Points, res.Ref)
}

// Cancel attempts the cancellation and reports the outcome.
func (s *DeskService) Cancel(ctx context.Context, roomNumber int) string {
	res, err := s.hotel.CancelFor(ctx, s.guest, roomNumber)
	if err != nil {
		outcome, msg := cancelFailure(err)
		observability.ObserveBooking("cancel", outcome)
		s.log.Info().
			Int("room", roomNumber).
			Str("outcome", outcome).
			Msg("cancel_rejected")
		return msg
	}
	observability.ObserveBooking("cancel", "ok")
	observability.ObserveRevenue("cancel", res.Refund)
	s.log.Info().
		Int("room", roomNumber).
		Float64("refund", res.Refund).
		Msg("cancel_ok")
	return fmt.Sprintf("Booking cancelled. Refunded: %.2f₾ | Loyalty points: %d",
		res.Refund, res.Points)
}

// UpdateProfile applies the requested field updates and confirms.
func (s *DeskService) UpdateProfile(name domain.Update[string], budget domain.Update[float64]) string {
	s.hotel.UpdateCustomer(s.guest, name, budget)
	s.log.Info().Str("guest", s.guest.Name).Msg("profile_updated")
	return "Profile updated."
}

func (s *DeskService) Summary() string { return s.guest.Summary() }

// AuditTail returns up to limit of the most recent audit lines, oldest first.
func (s *DeskService) AuditTail(limit int) []string {
	lines := s.hotel.Log()
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines
}

func bookFailure(err error) (outcome, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidNights):
		return "invalid_nights", "The number of nights must be at least 1."
	case errors.Is(err, domain.ErrRoomNotFound):
		return "not_found", "No such room was found."
	case errors.Is(err, domain.ErrRoomUnavailable):
		return "unavailable", "That room is already booked."
	case errors.Is(err, domain.ErrInsufficientBudget):
		return "insufficient_budget", "Your budget is not sufficient for this room."
	default:
		return "error", "Booking failed: " + err.Error()
	}
}

func cancelFailure(err error) (outcome, msg string) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return "not_found", "No such room was found."
	case errors.Is(err, domain.ErrNotBooked):
		return "not_booked", "That room is not booked under your name."
	default:
		return "error", "Cancellation failed: " + err.Error()
	}
}
