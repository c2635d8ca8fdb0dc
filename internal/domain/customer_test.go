package domain_test

import (
	"strings"
	"testing"

	"hotel_desk/internal/domain"
)

func TestAttemptPayment(t *testing.T) {
	c := domain.NewCustomer("Giorgi", 500)

	if !c.AttemptPayment(200) {
		t.Fatal("payment within budget should succeed")
	}
	if c.Budget != 300 {
		t.Fatalf("budget = %v, want 300", c.Budget)
	}
	if c.Points != 20 {
		t.Fatalf("points = %d, want 20", c.Points)
	}

	// over-budget payment changes nothing
	if c.AttemptPayment(301) {
		t.Fatal("payment over budget should fail")
	}
	if c.Budget != 300 || c.Points != 20 {
		t.Fatalf("failed payment mutated state: budget=%v points=%d", c.Budget, c.Points)
	}

	// exact budget is allowed
	if !c.AttemptPayment(300) {
		t.Fatal("payment equal to budget should succeed")
	}
	if c.Budget != 0 {
		t.Fatalf("budget = %v, want 0", c.Budget)
	}
}

func TestRefund_PointsMayGoNegative(t *testing.T) {
	c := domain.NewCustomer("Giorgi", 0)
	c.Refund(200)
	if c.Budget != 200 {
		t.Fatalf("budget = %v, want 200", c.Budget)
	}
	if c.Points != -20 {
		t.Fatalf("points = %d, want -20 (no floor at zero)", c.Points)
	}
}

func TestLoyaltyDisabled(t *testing.T) {
	c := domain.NewCustomer("Giorgi", 500)
	c.Loyalty = false
	c.AttemptPayment(200)
	c.Refund(200)
	if c.Points != 0 {
		t.Fatalf("points = %d, want 0 with loyalty disabled", c.Points)
	}
	if c.Budget != 500 {
		t.Fatalf("budget = %v, want 500 after pay+refund", c.Budget)
	}
}

func TestBookingRecords(t *testing.T) {
	c := domain.NewCustomer("Giorgi", 500)
	c.RecordBooking(domain.BookingRecord{Ref: "a", RoomNumber: 10, Category: "Double", Price: 160})
	c.RecordBooking(domain.BookingRecord{Ref: "b", RoomNumber: 5, Category: "Single", Price: 80})

	rec, ok := c.BookingFor(10)
	if !ok || rec.Price != 160 {
		t.Fatalf("BookingFor(10) = %+v, %v", rec, ok)
	}

	// overwrite discards the earlier price record
	c.RecordBooking(domain.BookingRecord{Ref: "c", RoomNumber: 10, Category: "Double", Price: 320})
	rec, _ = c.BookingFor(10)
	if rec.Price != 320 || rec.Ref != "c" {
		t.Fatalf("overwrite not applied: %+v", rec)
	}

	// sorted by room number
	got := c.Bookings()
	if len(got) != 2 || got[0].RoomNumber != 5 || got[1].RoomNumber != 10 {
		t.Fatalf("Bookings() order wrong: %+v", got)
	}

	// discard of an absent record is a no-op
	c.DiscardBooking(99)
	c.DiscardBooking(5)
	if _, ok := c.BookingFor(5); ok {
		t.Fatal("record for #5 should be gone")
	}
}

func TestUpdateInfo(t *testing.T) {
	c := domain.NewCustomer("Giorgi", 500)

	c.UpdateInfo(domain.Set("Nika"), domain.Keep[float64]())
	if c.Name != "Nika" || c.Budget != 500 {
		t.Fatalf("name-only update wrong: %q %v", c.Name, c.Budget)
	}

	c.UpdateInfo(domain.Keep[string](), domain.Set(800.0))
	if c.Name != "Nika" || c.Budget != 800 {
		t.Fatalf("budget-only update wrong: %q %v", c.Name, c.Budget)
	}

	c.UpdateInfo(domain.Keep[string](), domain.Keep[float64]())
	if c.Name != "Nika" || c.Budget != 800 {
		t.Fatalf("no-op update mutated state: %q %v", c.Name, c.Budget)
	}
}

func TestSummary(t *testing.T) {
	c := domain.NewCustomer("Giorgi", 500)
	if got := c.Summary(); !strings.Contains(got, "no bookings yet") {
		t.Fatalf("empty summary = %q", got)
	}

	c.RecordBooking(domain.BookingRecord{Ref: "r1", RoomNumber: 10, Category: "Double", Price: 160})
	got := c.Summary()
	for _, want := range []string{"#10", "Double", "160₾", "500₾", "Loyalty points: 0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
}
