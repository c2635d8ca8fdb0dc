package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// BookingRecord is a customer's view of one active booking. It snapshots the
// room's number and category rather than holding a reference into the
// catalog, so catalog mutation can never alias into customer state.
type BookingRecord struct {
	Ref        string // confirmation code, assigned by Hotel.BookFor
	RoomNumber int
	Category   string
	Price      float64 // total charged for the stay
}

// Customer is the guest for this session. Budget and points move only
// through AttemptPayment/Refund, except for the explicit administrative
// override in UpdateInfo.
type Customer struct {
	Name    string
	Budget  float64
	Points  int
	Loyalty bool // when false, payments and refunds leave Points untouched

	bookings map[int]BookingRecord
}

func NewCustomer(name string, budget float64) *Customer {
	return &Customer{
		Name:     name,
		Budget:   budget,
		Loyalty:  true,
		bookings: make(map[int]BookingRecord),
	}
}

// AttemptPayment is the sole gate for whether a booking proceeds. On success
// it debits the budget and accrues floor(total*0.10) points; on failure it
// changes nothing.
func (c *Customer) AttemptPayment(total float64) bool {
	if c.Budget < total {
		return false
	}
	c.Budget -= total
	if c.Loyalty {
		c.Points += pointsFor(total)
	}
	return true
}

// Refund credits the budget and reverses the points accrued for the amount.
// Points may go negative; there is no floor at zero.
func (c *Customer) Refund(amount float64) {
	c.Budget += amount
	if c.Loyalty {
		c.Points -= pointsFor(amount)
	}
}

// RecordBooking inserts or overwrites the record for its room number. The
// re-booking guard lives in Hotel, not here.
func (c *Customer) RecordBooking(rec BookingRecord) {
	c.bookings[rec.RoomNumber] = rec
}

// DiscardBooking removes the record if present; absent is a no-op.
func (c *Customer) DiscardBooking(roomNumber int) {
	delete(c.bookings, roomNumber)
}

func (c *Customer) BookingFor(roomNumber int) (BookingRecord, bool) {
	rec, ok := c.bookings[roomNumber]
	return rec, ok
}

func (c *Customer) HasBookings() bool { return len(c.bookings) > 0 }

// Bookings returns the active records sorted by room number, for
// deterministic rendering.
func (c *Customer) Bookings() []BookingRecord {
	out := make([]BookingRecord, 0, len(c.bookings))
	for _, rec := range c.bookings {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out
}

// UpdateInfo replaces name and/or budget where an Update is set. Writing the
// budget directly bypasses the payment gate; it is an administrative
// override, not a transaction.
func (c *Customer) UpdateInfo(name Update[string], budget Update[float64]) {
	if v, ok := name.Get(); ok {
		c.Name = v
	}
	if v, ok := budget.Get(); ok {
		c.Budget = v
	}
}

// Summary renders the multi-line report shown by the console's
// "my bookings" menu entry.
func (c *Customer) Summary() string {
	if !c.HasBookings() {
		return fmt.Sprintf("%s has no bookings yet.\n", c.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nActive bookings for %s:\n", c.Name)
	for _, rec := range c.Bookings() {
		fmt.Fprintf(&b, " - #%d (%s) – %s₾ [%s]\n",
			rec.RoomNumber, rec.Category, formatMoney(rec.Price), rec.Ref)
	}
	fmt.Fprintf(&b, "Remaining budget: %s₾\n", formatMoney(c.Budget))
	fmt.Fprintf(&b, "Loyalty points: %d\n", c.Points)
	return b.String()
}

func pointsFor(amount float64) int {
	return int(math.Floor(amount * 0.10))
}
