package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"clicktoride/internal/session"
	"clicktoride/internal/utils"

	"github.com/gin-gonic/gin"
)

// ConfirmBooking marks a booking confirmed, whatever its current status.
// POST /admin/confirm/:id
func (h Handlers) ConfirmBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}

	b, err := h.Bookings.Confirm(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(requestID(c), "booking", "confirm", "code="+b.BookingCode)
	c.Redirect(http.StatusSeeOther, "/admin/bookings")
}

// DeleteBooking removes a booking permanently and flashes the outcome.
// POST /admin/delete_booking/:id (behind RequireAdmin)
func (h Handlers) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusNotFound, "booking not found", nil)
		return
	}

	b, err := h.Bookings.Delete(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(requestID(c), "booking", "delete", "code="+b.BookingCode)

	st := h.Sessions.Read(c)
	st.Flash = &session.Flash{
		Message:  fmt.Sprintf("Booking %s has been deleted successfully.", b.BookingCode),
		Category: "success",
	}
	h.Sessions.Write(c, st)
	c.Redirect(http.StatusSeeOther, "/admin/bookings")
}

// AutoUnconfirm runs the overdue sweep on demand. Safe to hit repeatedly;
// an external cron is expected to call it.
// GET /admin/auto_unconfirm
func (h Handlers) AutoUnconfirm(c *gin.Context) {
	n, err := h.Bookings.SweepOverdue(utils.NowManila(), h.Grace)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(requestID(c), "booking", "sweep", fmt.Sprintf("unconfirmed=%d", n))
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d booking(s) marked as unconfirmed.", n),
	})
}

// AdminBookings renders one page of the booking table with whole-table
// status counts.
// GET /admin/bookings?page=N (behind RequireAdmin)
func (h Handlers) AdminBookings(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	listing, err := h.Listing.ListPage(page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	st := h.Sessions.Read(c)
	payload := gin.H{
		"bookings":          listing.Bookings,
		"page":              listing.Page,
		"total_pages":       listing.TotalPages,
		"total_bookings":    listing.TotalBookings,
		"confirmed_count":   listing.ConfirmedCount,
		"unconfirmed_count": listing.UnconfirmedCount,
		"current_year":      utils.NowManila().Year(),
	}
	if flash := h.popFlash(c, &st); flash != nil {
		payload["flash"] = flash
	}
	c.JSON(http.StatusOK, payload)
}
