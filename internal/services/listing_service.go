package services

import (
	"clicktoride/internal/domain"
	"clicktoride/internal/repositories"
)

// ListingService builds the paginated admin view of all bookings.
type ListingService struct {
	Bookings repositories.BookingRepo
	PerPage  int
}

// ListingPage is one page of bookings plus whole-table aggregates. The status
// counts always cover every row, not just the page being shown.
type ListingPage struct {
	Bookings         []domain.Booking
	Page             int
	TotalPages       int
	TotalBookings    int
	ConfirmedCount   int
	UnconfirmedCount int
}

func (s ListingService) perPage() int {
	if s.PerPage > 0 {
		return s.PerPage
	}
	return 12
}

// ListPage returns page (1-based), newest bookings first. Pages past the end
// come back empty rather than erroring.
func (s ListingService) ListPage(page int) (ListingPage, error) {
	if page < 1 {
		page = 1
	}
	per := s.perPage()

	total, err := s.Bookings.Count()
	if err != nil {
		return ListingPage{}, err
	}

	bookings, err := s.Bookings.ListPage((page-1)*per, per)
	if err != nil {
		return ListingPage{}, err
	}

	confirmed, err := s.Bookings.CountByStatus(domain.StatusConfirmed)
	if err != nil {
		return ListingPage{}, err
	}
	unconfirmed, err := s.Bookings.CountByStatus(domain.StatusUnconfirmed)
	if err != nil {
		return ListingPage{}, err
	}

	return ListingPage{
		Bookings:         bookings,
		Page:             page,
		TotalPages:       (total + per - 1) / per,
		TotalBookings:    total,
		ConfirmedCount:   confirmed,
		UnconfirmedCount: unconfirmed,
	}, nil
}
