package domain

import (
	"fmt"
	"math"
)

// Room is a bookable unit. Number is immutable after creation; Available is
// the single source of truth for bookability.
type Room struct {
	Number    int
	Category  string // e.g. "Single", "Double", "Family"
	Nightly   float64
	MaxGuests int
	Available bool
}

func NewRoom(number int, category string, nightly float64, maxGuests int) *Room {
	return &Room{
		Number:    number,
		Category:  category,
		Nightly:   nightly,
		MaxGuests: maxGuests,
		Available: true,
	}
}

// Book marks the room occupied. No precondition check here; the availability
// guard lives in Hotel.BookFor. Idempotent.
func (r *Room) Book() { r.Available = false }

// Release marks the room available again. Idempotent.
func (r *Room) Release() { r.Available = true }

// PriceFor returns nightly * nights rounded to two decimals, half away
// from zero. Nights validation is the caller's job.
func (r *Room) PriceFor(nights int) float64 {
	return round2(r.Nightly * float64(nights))
}

// Describe renders the catalog one-liner for the console.
func (r *Room) Describe() string {
	status := "available"
	if !r.Available {
		status = "occupied"
	}
	return fmt.Sprintf("#%d | %s | %s₾/night | up to %d guests | %s",
		r.Number, r.Category, formatMoney(r.Nightly), r.MaxGuests, status)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatMoney trims trailing zeros so whole amounts print as "80", not "80.00".
func formatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s[len(s)-3:] == ".00" {
		return s[:len(s)-3]
	}
	return s
}
