package domain

import "time"

// Booking statuses. A booking starts as pending; an admin confirms it, or the
// overdue sweep marks it unconfirmed. Nothing ever moves back to pending.
const (
	StatusPending     = "pending"
	StatusConfirmed   = "confirmed"
	StatusUnconfirmed = "unconfirmed"
)

// Booking is a single reservation row. Route fields are a snapshot taken from
// the catalog at creation time, so later catalog edits leave old bookings
// untouched.
type Booking struct {
	ID            int64     `json:"id"`
	BookingCode   string    `json:"booking_code"`
	CustomerName  string    `json:"customer_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	RouteFrom     string    `json:"route_from"`
	RouteTo       string    `json:"route_to"`
	TravelDate    string    `json:"travel_date"`
	DepartureTime string    `json:"departure_time"`
	Passengers    int       `json:"passengers"`
	Price         string    `json:"price"`
	RouteDuration string    `json:"route_duration"`
	RouteColor    string    `json:"route_color"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Admin is the single operator account. The password hash is opaque here;
// only the auth service reads it.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
}
