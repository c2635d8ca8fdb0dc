//go:build integration || !unit

// Scripted end-to-end run: real console session wired to a real (miniredis)
// audit sink, with the ops endpoint reading the same desk.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"hotel_desk/internal/adapters/audit"
	"hotel_desk/internal/adapters/console"
	"hotel_desk/internal/adapters/observability"
	"hotel_desk/internal/adapters/ops"
	"hotel_desk/internal/app"
	"hotel_desk/internal/domain"
)

func TestFrontDeskSession_EndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	sink := audit.NewRedis(mr.Addr(), "", 0, "hoteldesk:audit")
	defer sink.Close()

	hotel := domain.NewHotel("Tbilisi Paradise", sink)
	for _, r := range []*domain.Room{
		domain.NewRoom(5, "Single", 80, 1),
		domain.NewRoom(10, "Double", 160, 2),
		domain.NewRoom(15, "Family", 300, 4),
	} {
		if err := hotel.AddRoom(r); err != nil {
			t.Fatalf("AddRoom: %v", err)
		}
	}

	input := strings.Join([]string{
		"Giorgi", "500", // greeting
		"1",            // available rooms
		"2", "10", "2", // book Double for 2 nights: 320₾
		"2", "15", "1", // Family at 300₾ exceeds the remaining 180₾
		"5",       // summary
		"3", "10", // cancel the Double
		"6", // exit
	}, "\n") + "\n"

	var out bytes.Buffer
	sess := console.NewSession(strings.NewReader(input), &out)
	name, budget, err := sess.Greet()
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}

	guest := domain.NewCustomer(name, budget)
	desk := app.NewDeskService(hotel, guest, zerolog.Nop())
	if err := sess.Run(context.Background(), desk); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// console transcript
	for _, want := range []string{
		"#10 | Double",
		"Booking confirmed! Total: 320.00₾",
		"Your budget is not sufficient for this room.",
		"Active bookings for Giorgi",
		"Refunded: 320.00₾",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("transcript missing %q:\n%s", want, out.String())
		}
	}

	// state after the session
	if guest.Budget != 500 || guest.Points != 0 {
		t.Fatalf("guest state: budget=%v points=%d", guest.Budget, guest.Points)
	}
	if !hotel.FindRoom(10).Available {
		t.Fatal("room #10 should be free again")
	}

	// audit trail landed in redis, timestamped
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer c.Close()
	lines, err := c.LRange(context.Background(), "hoteldesk:audit", 0, -1).Result()
	if err != nil {
		t.Fatalf("LRange: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("audit entries = %d, want 2: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Giorgi booked #10 (Double) – 320₾") {
		t.Fatalf("first audit entry = %q", lines[0])
	}
	if !strings.Contains(lines[1], "refunded 320₾") {
		t.Fatalf("second audit entry = %q", lines[1])
	}

	// ops endpoint serves the same trail from the in-memory mirror
	srv := ops.New(desk, observability.InitRegistry())
	req := httptest.NewRequest("GET", "/v1/audit", nil)
	rr := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("ops audit status: %d", rr.Code)
	}
	var tail struct {
		Lines []string `json:"lines"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&tail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tail.Lines) != 2 {
		t.Fatalf("ops audit lines = %v", tail.Lines)
	}
}
