// Package console implements the interactive front-desk session. It is a
// thin boundary: it parses input, calls the desk service, and prints
// whatever the service says. Malformed numbers never crash the loop.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotel_desk/internal/app"
	"hotel_desk/internal/domain"
)

const menu = `
--- Menu ---
1. View available rooms
2. Book a room
3. Cancel a booking
4. Update my profile
5. My bookings
6. Exit
`

// Session owns the single scanner over the guest's input, shared by the
// greeting and the menu loop.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{in: bufio.NewScanner(r), out: w}
}

// Greet reads the guest's name and starting budget, re-prompting on a
// malformed budget. Returns io.EOF if input runs out.
func (s *Session) Greet() (name string, budget float64, err error) {
	fmt.Fprint(s.out, "Welcome to the hotel!\n\nYour name: ")
	name, err = s.readLine()
	if err != nil {
		return "", 0, err
	}
	for {
		fmt.Fprint(s.out, "Your budget (₾): ")
		raw, err := s.readLine()
		if err != nil {
			return "", 0, err
		}
		budget, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}
		return name, budget, nil
	}
}

// Run drives the menu until the guest exits, input runs out, or ctx is done.
func (s *Session) Run(ctx context.Context, desk *app.DeskService) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, menu)
		fmt.Fprint(s.out, "Choose an option: ")
		choice, err := s.readLine()
		if err != nil {
			return nil // EOF ends the session
		}

		switch choice {
		case "1":
			fmt.Fprint(s.out, desk.AvailableRooms())
		case "2":
			s.book(ctx, desk)
		case "3":
			s.cancel(ctx, desk)
		case "4":
			s.updateProfile(desk)
		case "5":
			fmt.Fprint(s.out, desk.Summary())
		case "6":
			fmt.Fprintln(s.out, "\nThank you for visiting our hotel!")
			return nil
		default:
			fmt.Fprintln(s.out, "Please choose a valid option (1-6).")
		}
	}
}

func (s *Session) book(ctx context.Context, desk *app.DeskService) {
	fmt.Fprint(s.out, "Room number: ")
	number, err := s.readInt()
	if err != nil {
		fmt.Fprintln(s.out, "Please enter valid numbers.")
		return
	}
	fmt.Fprint(s.out, "How many nights: ")
	nights, err := s.readInt()
	if err != nil {
		fmt.Fprintln(s.out, "Please enter valid numbers.")
		return
	}
	fmt.Fprintln(s.out, desk.Book(ctx, number, nights))
}

func (s *Session) cancel(ctx context.Context, desk *app.DeskService) {
	fmt.Fprint(s.out, "Room number to cancel: ")
	number, err := s.readInt()
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number.")
		return
	}
	fmt.Fprintln(s.out, desk.Cancel(ctx, number))
}

func (s *Session) updateProfile(desk *app.DeskService) {
	fmt.Fprint(s.out, "New name (Enter to keep): ")
	rawName, err := s.readLine()
	if err != nil {
		return
	}
	fmt.Fprint(s.out, "New budget (Enter to keep): ")
	rawBudget, err := s.readLine()
	if err != nil {
		return
	}

	name := domain.Keep[string]()
	if rawName != "" {
		name = domain.Set(rawName)
	}
	budget := domain.Keep[float64]()
	if rawBudget != "" {
		v, err := strconv.ParseFloat(rawBudget, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Budget must be a number.")
			return
		}
		budget = domain.Set(v)
	}
	fmt.Fprintln(s.out, desk.UpdateProfile(name, budget))
}

func (s *Session) readInt() (int, error) {
	raw, err := s.readLine()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
