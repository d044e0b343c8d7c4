package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// TicketData carries everything the printable ticket shows. It mirrors the
// session ticket summary rather than the stored row, so the PDF matches what
// the passenger saw on screen.
type TicketData struct {
	Code       string
	RouteFrom  string
	RouteTo    string
	Duration   string
	Price      string
	Name       string
	Date       string
	Time       string
	Passengers int
}

// DocsService renders the passenger-facing ticket PDF.
type DocsService struct{}

// TicketPDF builds the ticket document and a download filename carrying the
// booking code.
func (DocsService) TicketPDF(d TicketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Click to Ride Ticket", false)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "CLICK TO RIDE - BOARDING TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Code : %s", safe(d.Code, "-")),
		fmt.Sprintf("Passenger    : %s", safe(d.Name, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(d.RouteFrom, "-"), safe(d.RouteTo, "-")),
		fmt.Sprintf("Duration     : %s", safe(d.Duration, "-")),
		fmt.Sprintf("Travel Date  : %s", safe(FormatTicketDate(d.Date), "-")),
		fmt.Sprintf("Departure    : %s", safe(d.Time, "-")),
		fmt.Sprintf("Passengers   : %d", d.Passengers),
		fmt.Sprintf("Fare         : %s", safe(d.Price, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket at the terminal before departure. Pending bookings are released 10 minutes after the scheduled departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("ticket-%s.pdf", safe(d.Code, "unknown")), nil
}

// FormatTicketDate renders "Jan 02, 2006"; a date that does not parse is
// shown as-is.
func FormatTicketDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 02, 2006")
}

func safe(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
