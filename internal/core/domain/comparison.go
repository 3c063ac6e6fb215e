package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ComparisonWindow selects a calendar period to compare with the one before it.
type ComparisonWindow string

const (
	CompareWeek  ComparisonWindow = "week"
	CompareMonth ComparisonWindow = "month"
	CompareYear  ComparisonWindow = "year"
)

// Valid reports whether w is a known window. Empty means month.
func (w ComparisonWindow) Valid() bool {
	switch w {
	case "", CompareWeek, CompareMonth, CompareYear:
		return true
	}
	return false
}

// ResolveComparison returns the window containing now and the window right before it.
func ResolveComparison(w ComparisonWindow, now time.Time, loc *time.Location) (current, previous Period, err error) {
	if loc == nil {
		loc = time.UTC
	}
	switch w {
	case CompareWeek:
		return resolvePair(PeriodThisWeek, PeriodLastWeek, now, loc)
	case "", CompareMonth:
		return resolvePair(PeriodThisMonth, PeriodLastMonth, now, loc)
	case CompareYear:
		year := now.In(loc).Year()
		return yearPeriod(year, "This Year", loc), yearPeriod(year-1, "Last Year", loc), nil
	}
	return Period{}, Period{}, fmt.Errorf("%w: unknown comparison window %q", apperrors.ErrValidation, w)
}

func resolvePair(cur, prev PeriodToken, now time.Time, loc *time.Location) (Period, Period, error) {
	current, err := ResolvePeriod(PeriodSpec{Token: cur}, now, loc)
	if err != nil {
		return Period{}, Period{}, err
	}
	previous, err := ResolvePeriod(PeriodSpec{Token: prev}, now, loc)
	if err != nil {
		return Period{}, Period{}, err
	}
	return current, previous, nil
}

func yearPeriod(year int, label string, loc *time.Location) Period {
	return Period{
		Label:     label,
		StartDate: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		EndDate:   EndOfDay(time.Date(year, time.December, 31, 0, 0, 0, 0, loc)),
	}
}

// ComparisonQuery is a source type comparison request. UserID and TeamID narrow it like SalesQuery.
type ComparisonQuery struct {
	Window ComparisonWindow
	UserID string
	TeamID string
}

// SourceTypeTrend is one source type's booked deal value in two consecutive windows.
type SourceTypeTrend struct {
	SourceTypeID     string          `json:"sourceTypeID"`
	SourceTypeName   string          `json:"sourceTypeName"`
	CurrentTotal     decimal.Decimal `json:"currentTotal"`
	PreviousTotal    decimal.Decimal `json:"previousTotal"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	CurrentDeals     int             `json:"currentDeals"`
	PreviousDeals    int             `json:"previousDeals"`
}

// SourceTypeComparison lists every source type of the organization, zero rows included.
type SourceTypeComparison struct {
	Current     Period            `json:"current"`
	Previous    Period            `json:"previous"`
	SourceTypes []SourceTypeTrend `json:"sourceTypes"`
}

// UserSalesMetrics is one user's booked business in a month.
type UserSalesMetrics struct {
	UserID         string          `json:"userID"`
	FullName       string          `json:"fullName"`
	Role           UserRole        `json:"role"`
	TeamID         *string         `json:"teamID,omitempty"`
	TeamName       string          `json:"teamName,omitempty"`
	DealCount      int             `json:"dealCount"`
	TotalDealValue decimal.Decimal `json:"totalDealValue"`
	// VerifiedPaid sums every verified payment of the month's deals, whenever it was received.
	VerifiedPaid decimal.Decimal `json:"verifiedPaid"`
}

// UserSalesMetricsReport covers one calendar month.
type UserSalesMetricsReport struct {
	Period Period             `json:"period"`
	Users  []UserSalesMetrics `json:"users"`
}

// MonthPeriod returns the calendar month containing t, in loc.
func MonthPeriod(t time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	d := t.In(loc)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, loc)
	return Period{
		Label:     start.Format("January 2006"),
		StartDate: start,
		EndDate:   EndOfDay(start.AddDate(0, 1, -1)),
	}
}
