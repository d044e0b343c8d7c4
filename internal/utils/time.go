package utils

import (
	"strings"
	"time"
)

const (
	layoutDate = "2006-01-02"
	layoutTime = "15:04"
)

// manila is the fixed civil timezone every booking timestamp lives in.
// Falls back to a fixed UTC+8 zone when the tzdata lookup fails.
var manila = loadManila()

func loadManila() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// Manila returns the application timezone.
func Manila() *time.Location {
	return manila
}

// NowManila returns the current time in the application timezone.
func NowManila() time.Time {
	return time.Now().In(manila)
}

// ParseDate parses YYYY-MM-DD in the application timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), manila)
}

// ParseDeparture combines a YYYY-MM-DD date and an HH:MM time-of-day into a
// single moment in the application timezone.
func ParseDeparture(date, clock string) (time.Time, error) {
	return time.ParseInLocation(layoutDate+" "+layoutTime,
		strings.TrimSpace(date)+" "+strings.TrimSpace(clock), manila)
}

// FormatDate formats a time to YYYY-MM-DD in the application timezone.
func FormatDate(t time.Time) string {
	return t.In(manila).Format(layoutDate)
}
