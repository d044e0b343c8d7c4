package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"clicktoride/internal/catalog"
	"clicktoride/internal/domain"
	"clicktoride/internal/repositories"
	"clicktoride/internal/utils"
)

// bookingCodePrefix is fixed; external systems match on the VR + 6 uppercase
// hex shape, so widen the random part only if that shape is preserved.
const bookingCodePrefix = "VR"

// BookingService owns the booking lifecycle: creation, confirmation, deletion
// and the overdue sweep.
type BookingService struct {
	Bookings repositories.BookingRepo
	Catalog  catalog.Catalog
	// Now overrides the clock in tests. Defaults to Manila time.
	Now func() time.Time
}

type CreateBookingInput struct {
	RouteID       int
	Name          string
	ContactNumber string
	Email         string
	TravelDate    string
	DepartureTime string
	Passengers    int
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowManila()
}

// Create books a seat on the given route. The route's display fields are
// copied into the row so later catalog edits never rewrite old tickets.
func (s BookingService) Create(in CreateBookingInput) (domain.Booking, error) {
	route, ok := s.Catalog.Find(in.RouteID)
	if !ok {
		return domain.Booking{}, domain.NotFoundError{Resource: "route"}
	}

	name := utils.NormalizeSpace(in.Name)
	if name == "" {
		return domain.Booking{}, domain.ValidationError{Field: "name", Msg: "customer name is required"}
	}
	if _, err := utils.ParseDate(in.TravelDate); err != nil {
		return domain.Booking{}, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if in.Passengers < 1 {
		return domain.Booking{}, domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}

	b := domain.Booking{
		BookingCode:   GenerateBookingCode(),
		CustomerName:  name,
		ContactNumber: utils.TrimOrEmpty(in.ContactNumber),
		Email:         utils.TrimOrEmpty(in.Email),
		RouteFrom:     route.From,
		RouteTo:       route.To,
		TravelDate:    utils.TrimOrEmpty(in.TravelDate),
		DepartureTime: utils.TrimOrEmpty(in.DepartureTime),
		Passengers:    in.Passengers,
		Price:         route.Price,
		RouteDuration: route.Duration,
		RouteColor:    route.Color,
		Status:        domain.StatusPending,
		CreatedAt:     s.now(),
	}

	// No collision retry: the unique key on booking_code is the enforcement
	// point, and a collision comes back as a conflict.
	if err := s.Bookings.Insert(&b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// Confirm forces the booking to confirmed, whatever its current status.
// Confirming twice, or confirming a booking the sweep already marked
// unconfirmed, still lands on confirmed.
func (s BookingService) Confirm(id int64) (domain.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := s.Bookings.UpdateStatus(id, domain.StatusConfirmed); err != nil {
		return domain.Booking{}, err
	}
	b.Status = domain.StatusConfirmed
	return b, nil
}

// Delete removes the booking permanently.
func (s BookingService) Delete(id int64) (domain.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := s.Bookings.Delete(id); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// SweepOverdue marks pending bookings whose departure passed more than grace
// ago as unconfirmed, in one batch, and returns how many it transitioned.
// Rows with malformed date/time strings are skipped, not fatal. Re-running
// with the same clock transitions nothing further.
func (s BookingService) SweepOverdue(now time.Time, grace time.Duration) (int, error) {
	pending, err := s.Bookings.ListPending()
	if err != nil {
		return 0, err
	}

	overdue := make([]int64, 0)
	for _, b := range pending {
		departure, err := utils.ParseDeparture(b.TravelDate, b.DepartureTime)
		if err != nil {
			continue
		}
		if now.After(departure.Add(grace)) {
			overdue = append(overdue, b.ID)
		}
	}

	if len(overdue) == 0 {
		return 0, nil
	}
	if err := s.Bookings.MarkUnconfirmed(overdue); err != nil {
		return 0, err
	}
	return len(overdue), nil
}

// GenerateBookingCode draws a short random token: VR plus three random bytes
// as uppercase hex. Best-effort unique; the store's unique key backstops it.
func GenerateBookingCode() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// fall back to the clock rather than handing out an empty code.
		return fmt.Sprintf("%s%06X", bookingCodePrefix, time.Now().UnixNano()&0xFFFFFF)
	}
	return bookingCodePrefix + strings.ToUpper(hex.EncodeToString(buf))
}
