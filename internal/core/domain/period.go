package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
)

// PeriodToken names a reporting period relative to "now".
type PeriodToken string

const (
	PeriodThisMonth   PeriodToken = "thisMonth"
	PeriodLastMonth   PeriodToken = "lastMonth"
	PeriodLastThirty  PeriodToken = "lastThirty"
	PeriodCustomRange PeriodToken = "customRange"
	PeriodThisWeek    PeriodToken = "thisWeek"
	PeriodLastWeek    PeriodToken = "lastWeek"
	PeriodLastSeven   PeriodToken = "lastSeven"
)

// DateLayout is the calendar date format accepted and produced by the API.
const DateLayout = "2006-01-02"

// labelDateLayout renders custom range bounds in period labels.
const labelDateLayout = "02/01/2006"

// PeriodTokens lists every accepted token.
var PeriodTokens = []PeriodToken{
	PeriodThisMonth, PeriodLastMonth, PeriodLastThirty, PeriodCustomRange,
	PeriodThisWeek, PeriodLastWeek, PeriodLastSeven,
}

// Valid reports whether t is a known token. The empty token is valid and means thisMonth.
func (t PeriodToken) Valid() bool {
	if t == "" {
		return true
	}
	for _, known := range PeriodTokens {
		if t == known {
			return true
		}
	}
	return false
}

// PeriodSpec is the caller's period request. StartDate and EndDate are only read for customRange.
type PeriodSpec struct {
	Token     PeriodToken
	StartDate *time.Time
	EndDate   *time.Time
}

// Period is a resolved, day-normalized date range.
type Period struct {
	Token     PeriodToken
	Label     string
	StartDate time.Time // 00:00:00.000 of the first day
	EndDate   time.Time // 23:59:59.999 of the last day
}

// ResolvePeriod turns spec into concrete bounds relative to now, in loc.
// Every call recomputes from now; nothing is cached.
func ResolvePeriod(spec PeriodSpec, now time.Time, loc *time.Location) (Period, error) {
	if loc == nil {
		loc = time.UTC
	}
	today := StartOfDay(now.In(loc))

	token := spec.Token
	if token == "" {
		token = PeriodThisMonth
	}

	var start, end time.Time
	var label string

	switch token {
	case PeriodThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, -1)
		label = "This Month"
	case PeriodLastMonth:
		start = time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, -1)
		label = "Last Month"
	case PeriodLastThirty:
		start = today.AddDate(0, 0, -29)
		end = today
		label = "Last 30 Days"
	case PeriodThisWeek:
		start = today.AddDate(0, 0, -int(today.Weekday()))
		end = start.AddDate(0, 0, 6)
		label = "This Week"
	case PeriodLastWeek:
		start = today.AddDate(0, 0, -int(today.Weekday())-7)
		end = start.AddDate(0, 0, 6)
		label = "Last Week"
	case PeriodLastSeven:
		start = today.AddDate(0, 0, -6)
		end = today
		label = "Last 7 Days"
	case PeriodCustomRange:
		if spec.StartDate == nil || spec.EndDate == nil {
			return Period{}, fmt.Errorf("%w: start date and end date are required for custom range", apperrors.ErrValidation)
		}
		start = StartOfDay(spec.StartDate.In(loc))
		end = StartOfDay(spec.EndDate.In(loc))
		label = fmt.Sprintf("%s - %s", start.Format(labelDateLayout), end.Format(labelDateLayout))
	default:
		return Period{}, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, token)
	}

	p := Period{
		Token:     token,
		Label:     label,
		StartDate: StartOfDay(start),
		EndDate:   EndOfDay(end),
	}
	if p.EndDate.Before(p.StartDate) {
		return Period{}, fmt.Errorf("%w: end date cannot be before start date", apperrors.ErrValidation)
	}
	return p, nil
}

// Days returns the start of every calendar day in the period, in order.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := StartOfDay(p.StartDate); !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether t lies within the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// Overlaps reports whether the window [from, to] shares at least one instant with the period.
func (p Period) Overlaps(from, to time.Time) bool {
	return !from.After(p.EndDate) && !to.Before(p.StartDate)
}

// DayPeriod returns the single-day period starting at day.
func DayPeriod(day time.Time) Period {
	return Period{StartDate: StartOfDay(day), EndDate: EndOfDay(day)}
}

// StartOfDay returns 00:00:00.000 of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
