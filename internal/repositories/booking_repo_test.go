package repositories

import (
	"database/sql/driver"
	"testing"
	"time"

	"clicktoride/internal/domain"
	"clicktoride/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var bookingRows = []string{
	"id", "booking_code", "customer_name", "contact_number", "email",
	"route_from", "route_to", "travel_date", "departure_time",
	"passengers", "price", "route_duration", "route_color", "status", "created_at",
}

func sampleRow(id int64, code, status string) []driver.Value {
	created := time.Date(2024, 1, 9, 14, 30, 0, 0, utils.Manila())
	travel := time.Date(2024, 1, 10, 0, 0, 0, 0, utils.Manila())
	return []driver.Value{
		id, code, "Juan Dela Cruz", "09170000000", "juan@example.com",
		"CALBAYOG", "PEÑA", travel, "08:00",
		2, "₱ 55", "45 mins", "blue", status, created,
	}
}

func TestInsertAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))

	b := domain.Booking{
		BookingCode:   "VRA1B2C3",
		CustomerName:  "Juan Dela Cruz",
		RouteFrom:     "CALBAYOG",
		RouteTo:       "PEÑA",
		TravelDate:    "2024-01-10",
		DepartureTime: "08:00",
		Passengers:    2,
		Price:         "₱ 55",
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2024, 1, 9, 14, 30, 0, 0, utils.Manila()),
	}
	if err := (BookingRepo{DB: db}).Insert(&b); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if b.ID != 42 {
		t.Fatalf("expected assigned id 42, got %d", b.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertDuplicateCodeIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'VRA1B2C3'"})

	b := domain.Booking{BookingCode: "VRA1B2C3", Status: domain.StatusPending, CreatedAt: time.Now()}
	err = BookingRepo{DB: db}.Insert(&b)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingRows))

	if _, err := (BookingRepo{DB: db}).GetByID(9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByIDScansSnapshotFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(bookingRows).AddRow(sampleRow(7, "VRA1B2C3", domain.StatusPending)...)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	b, err := BookingRepo{DB: db}.GetByID(7)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if b.BookingCode != "VRA1B2C3" || b.RouteTo != "PEÑA" || b.TravelDate != "2024-01-10" {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (BookingRepo{DB: db}).Delete(5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListPageEmptyStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY created_at DESC").
		WithArgs(12, 0).
		WillReturnRows(sqlmock.NewRows(bookingRows))

	got, err := BookingRepo{DB: db}.ListPage(0, 12)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestMarkUnconfirmedBatchesInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET status = 'unconfirmed' WHERE status = 'pending' AND id IN").
		WithArgs(int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := (BookingRepo{DB: db}).MarkUnconfirmed([]int64{1, 3}); err != nil {
		t.Fatalf("mark error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkUnconfirmedNoIDsSkipsDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	if err := (BookingRepo{DB: db}).MarkUnconfirmed(nil); err != nil {
		t.Fatalf("mark error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no queries should run: %v", err)
	}
}
