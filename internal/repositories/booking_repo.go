package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"clicktoride/internal/domain"
	"clicktoride/internal/utils"

	"github.com/go-sql-driver/mysql"
)

const bookingColumns = `id, booking_code, customer_name, COALESCE(contact_number, ''),
	COALESCE(email, ''), route_from, route_to, travel_date, departure_time,
	passengers, price, COALESCE(route_duration, ''), COALESCE(route_color, ''),
	status, created_at`

// mysqlDuplicateEntry is the server error for a violated unique key.
const mysqlDuplicateEntry = 1062

type BookingRepo struct {
	DB *sql.DB
}

// Insert persists a new booking and fills in its assigned id. A duplicate
// booking_code surfaces as a ConflictError.
func (r BookingRepo) Insert(b *domain.Booking) error {
	res, err := r.DB.Exec(`
		INSERT INTO bookings
			(booking_code, customer_name, contact_number, email,
			 route_from, route_to, travel_date, departure_time,
			 passengers, price, route_duration, route_color, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.BookingCode,
		b.CustomerName,
		nullIfEmpty(b.ContactNumber),
		nullIfEmpty(b.Email),
		b.RouteFrom,
		b.RouteTo,
		b.TravelDate,
		b.DepartureTime,
		b.Passengers,
		b.Price,
		nullIfEmpty(b.RouteDuration),
		nullIfEmpty(b.RouteColor),
		b.Status,
		b.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return domain.ConflictError{Resource: "booking", Msg: "booking code already exists", Err: err}
		}
		return domain.InternalError{Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	b.ID = id
	return nil
}

// GetByID fetches a single booking.
func (r BookingRepo) GetByID(id int64) (domain.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return domain.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// UpdateStatus sets the status column. Callers verify existence first; an
// update matching zero rows is not distinguishable from a no-op write here
// because MySQL reports zero affected rows for same-value updates.
func (r BookingRepo) UpdateStatus(id int64, status string) error {
	if _, err := r.DB.Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// Delete removes a booking permanently.
func (r BookingRepo) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// ListPage returns bookings ordered newest-first with the given offset and
// limit. An out-of-range offset yields an empty slice, not an error.
func (r BookingRepo) ListPage(offset, limit int) ([]domain.Booking, error) {
	rows, err := r.DB.Query(`
		SELECT `+bookingColumns+`
		FROM bookings
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListPending returns every pending booking, for the overdue sweep.
func (r BookingRepo) ListPending() ([]domain.Booking, error) {
	rows, err := r.DB.Query(`SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'pending'`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	return collectBookings(rows)
}

// Count returns the total number of bookings.
func (r BookingRepo) Count() (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// CountByStatus counts bookings across the whole table, not a page.
func (r BookingRepo) CountByStatus(status string) (int, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE status = ?`, status).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

// MarkUnconfirmed flips the given pending bookings to unconfirmed in one
// transaction. Rows that already left pending are skipped by the WHERE
// clause, which keeps concurrent sweeps harmless.
func (r BookingRepo) MarkUnconfirmed(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if _, err := tx.Exec(
		`UPDATE bookings SET status = 'unconfirmed' WHERE status = 'pending' AND id IN (`+placeholders+`)`,
		args...,
	); err != nil {
		_ = tx.Rollback()
		return domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (domain.Booking, error) {
	var (
		b          domain.Booking
		travelDate time.Time
	)
	if err := row.Scan(
		&b.ID,
		&b.BookingCode,
		&b.CustomerName,
		&b.ContactNumber,
		&b.Email,
		&b.RouteFrom,
		&b.RouteTo,
		&travelDate,
		&b.DepartureTime,
		&b.Passengers,
		&b.Price,
		&b.RouteDuration,
		&b.RouteColor,
		&b.Status,
		&b.CreatedAt,
	); err != nil {
		return domain.Booking{}, err
	}
	b.TravelDate = utils.FormatDate(travelDate)
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// nullIfEmpty stores optional strings as NULL instead of empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
