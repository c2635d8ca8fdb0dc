package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Hotel owns the room catalog and the audit trail. Booking and cancellation
// are all-or-nothing at the granularity of a single call: any failure leaves
// every entity exactly as it was.
type Hotel struct {
	Name string

	rooms []*Room
	log   []string // in-memory mirror of everything sent to the sink
	sink  AuditSink
}

func NewHotel(name string, sink AuditSink) *Hotel {
	return &Hotel{Name: name, sink: sink}
}

// AddRoom appends to the catalog, rejecting duplicate room numbers.
func (h *Hotel) AddRoom(r *Room) error {
	if h.findRoom(r.Number) != nil {
		return fmt.Errorf("add room #%d: %w", r.Number, ErrDuplicateRoom)
	}
	h.rooms = append(h.rooms, r)
	return nil
}

// ListAvailable returns the available rooms in catalog order. Pure query.
func (h *Hotel) ListAvailable() []*Room {
	var free []*Room
	for _, r := range h.rooms {
		if r.Available {
			free = append(free, r)
		}
	}
	return free
}

// FindRoom returns the first catalog room with the given number, or nil.
func (h *Hotel) FindRoom(number int) *Room { return h.findRoom(number) }

func (h *Hotel) findRoom(number int) *Room {
	for _, r := range h.rooms {
		if r.Number == number {
			return r
		}
	}
	return nil
}

// Log returns a copy of the in-memory audit mirror, newest last.
func (h *Hotel) Log() []string {
	out := make([]string, len(h.log))
	copy(out, h.log)
	return out
}

// BookingResult reports a committed booking back to the boundary.
type BookingResult struct {
	Ref    string
	Total  float64
	Points int // customer's points after accrual
}

// CancelResult reports a committed cancellation.
type CancelResult struct {
	Refund float64
	Points int
}

// BookFor runs the central transaction: locate the room, check availability,
// price the stay, charge the customer, then commit room + customer + audit
// together. Rejections happen before any state change.
func (h *Hotel) BookFor(ctx context.Context, c *Customer, roomNumber, nights int) (BookingResult, error) {
	if nights <= 0 {
		return BookingResult{}, ErrInvalidNights
	}
	room := h.findRoom(roomNumber)
	if room == nil {
		return BookingResult{}, ErrRoomNotFound
	}
	if !room.Available {
		return BookingResult{}, ErrRoomUnavailable
	}

	total := room.PriceFor(nights)
	if !c.AttemptPayment(total) {
		return BookingResult{}, ErrInsufficientBudget
	}

	room.Book()
	rec := BookingRecord{
		Ref:        uuid.NewString(),
		RoomNumber: room.Number,
		Category:   room.Category,
		Price:      total,
	}
	c.RecordBooking(rec)
	h.audit(ctx, fmt.Sprintf("%s booked #%d (%s) – %s₾",
		c.Name, room.Number, room.Category, formatMoney(total)))

	return BookingResult{Ref: rec.Ref, Total: total, Points: c.Points}, nil
}

// CancelFor refunds the price originally charged, drops the customer's
// record, and releases the room.
func (h *Hotel) CancelFor(ctx context.Context, c *Customer, roomNumber int) (CancelResult, error) {
	room := h.findRoom(roomNumber)
	if room == nil {
		return CancelResult{}, ErrRoomNotFound
	}
	rec, ok := c.BookingFor(roomNumber)
	if !ok {
		return CancelResult{}, ErrNotBooked
	}

	c.Refund(rec.Price)
	c.DiscardBooking(roomNumber)
	room.Release()
	h.audit(ctx, fmt.Sprintf("%s cancelled #%d (%s) – refunded %s₾",
		c.Name, room.Number, room.Category, formatMoney(rec.Price)))

	return CancelResult{Refund: rec.Price, Points: c.Points}, nil
}

// UpdateCustomer delegates to the customer's update operation.
func (h *Hotel) UpdateCustomer(c *Customer, name Update[string], budget Update[float64]) {
	c.UpdateInfo(name, budget)
}

// audit mirrors the line in memory and forwards it to the sink. The booking
// is already committed at this point, so sink failure must not unwind it;
// the sink reports its own errors.
func (h *Hotel) audit(ctx context.Context, line string) {
	h.log = append(h.log, line)
	if h.sink != nil {
		_ = h.sink.Append(ctx, line)
	}
}
