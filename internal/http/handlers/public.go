package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"clicktoride/internal/domain"
	"clicktoride/internal/services"
	"clicktoride/internal/session"
	"clicktoride/internal/utils"

	"github.com/gin-gonic/gin"
)

// Index renders the route catalog for the landing page.
// GET /
func (h Handlers) Index(c *gin.Context) {
	st := h.Sessions.Read(c)
	payload := gin.H{
		"routes":       h.Catalog.Routes(),
		"current_year": utils.NowManila().Year(),
	}
	if flash := h.popFlash(c, &st); flash != nil {
		payload["flash"] = flash
	}
	c.JSON(http.StatusOK, payload)
}

// Reserve takes the reservation form, books the seat, publishes the ticket
// summary into the session and sends the passenger to the ticket view. A bad
// or unknown route id quietly goes back to the landing page.
// POST /reserve
func (h Handlers) Reserve(c *gin.Context) {
	routeID, err := strconv.Atoi(c.PostForm("route_id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	passengers, _ := strconv.Atoi(c.PostForm("passengers"))

	b, err := h.Bookings.Create(services.CreateBookingInput{
		RouteID:       routeID,
		Name:          c.PostForm("name"),
		ContactNumber: c.PostForm("contact"),
		Email:         c.PostForm("email"),
		TravelDate:    c.PostForm("date"),
		DepartureTime: c.PostForm("time"),
		Passengers:    passengers,
	})
	if err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(requestID(c), "booking", "create",
		fmt.Sprintf("code=%s route=%d passengers=%d", b.BookingCode, routeID, b.Passengers))

	route, _ := h.Catalog.Find(routeID)
	st := h.Sessions.Read(c)
	st.Ticket = &session.TicketSummary{
		Code:       b.BookingCode,
		Route:      route,
		Name:       b.CustomerName,
		Date:       b.TravelDate,
		Time:       b.DepartureTime,
		Passengers: b.Passengers,
	}
	h.Sessions.Write(c, st)

	c.Redirect(http.StatusSeeOther, "/ticket")
}

// Ticket shows the booking the visitor just made. Without one in the session
// there is nothing to show, so back to the landing page.
// GET /ticket
func (h Handlers) Ticket(c *gin.Context) {
	st := h.Sessions.Read(c)
	if st.Ticket == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":        st.Ticket,
		"formatted_date": services.FormatTicketDate(st.Ticket.Date),
	})
}

// TicketPDF downloads the current session ticket as a PDF.
// GET /ticket/pdf
func (h Handlers) TicketPDF(c *gin.Context) {
	st := h.Sessions.Read(c)
	if st.Ticket == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	t := st.Ticket
	data, filename, err := h.Docs.TicketPDF(services.TicketData{
		Code:       t.Code,
		RouteFrom:  t.Route.From,
		RouteTo:    t.Route.To,
		Duration:   t.Route.Duration,
		Price:      t.Route.Price,
		Name:       t.Name,
		Date:       t.Date,
		Time:       t.Time,
		Passengers: t.Passengers,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// NewBooking drops the current ticket from the session so the visitor can
// book again. The admin marker, if any, stays.
// GET /new-booking
func (h Handlers) NewBooking(c *gin.Context) {
	st := h.Sessions.Read(c)
	st.Ticket = nil
	h.Sessions.Write(c, st)
	c.Redirect(http.StatusFound, "/")
}
