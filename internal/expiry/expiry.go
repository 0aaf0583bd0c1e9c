package expiry

// Package expiry implements the date arithmetic behind every urgency
// computation in the app: days remaining until an expiry date, the fixed
// SAFE/WARNING/EXPIRED classification, and the configurable lead-time
// priority check. All functions are pure; "today" is always an explicit
// argument so callers and tests control the clock.

import (
	"fmt"
	"time"

	"github.com/sisawaktu/sisawaktu/internal/model"
)

// WarningThresholdDays is the fixed visual warning band. It is intentionally
// independent of the user-configurable lead days: WARNING colors the card,
// lead days drive priority flags and notifications.
const WarningThresholdDays = 7

// DateLayout is the calendar date format used everywhere an expiry date is
// stored or entered.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in local time
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DaysRemaining returns the number of whole days from today until expiry.
// Both inputs are normalized to local midnight first, so time-of-day
// components never affect the result. 0 means the item expires today,
// negative values mean the date has passed.
func DaysRemaining(expiry, today time.Time) int {
	e := atMidnight(expiry)
	t := atMidnight(today)

	return int(e.Sub(t).Round(24*time.Hour) / (24 * time.Hour))
}

// StatusOf classifies an expiry date into the fixed urgency band
func StatusOf(expiry, today time.Time) model.ExpiryStatus {
	days := DaysRemaining(expiry, today)
	if days < 0 {
		return model.StatusExpired
	}
	if days < WarningThresholdDays {
		return model.StatusWarning
	}
	return model.StatusSafe
}

// IsPriority reports whether the item falls within the configured lead time.
// Recomputed on every read; never stored.
func IsPriority(expiry time.Time, leadDays int, today time.Time) bool {
	return DaysRemaining(expiry, today) <= leadDays
}

// atMidnight strips the time-of-day component in the local zone
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// indonesianMonths are the short month names used for display dates
var indonesianMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatDate renders a stored date string for display ("10 Jun 2024").
// Unparsable input is returned unchanged rather than hidden.
func FormatDate(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// RemainingLabel returns the card label for an expiry date: "EXPIRED",
// "HARI INI!" for the expiry day itself, otherwise "N HARI LAGI".
func RemainingLabel(expiry, today time.Time) string {
	if StatusOf(expiry, today) == model.StatusExpired {
		return "EXPIRED"
	}

	days := DaysRemaining(expiry, today)
	if days == 0 {
		return "HARI INI!"
	}
	return fmt.Sprintf("%d HARI LAGI", days)
}
