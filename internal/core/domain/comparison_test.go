package domain

import (
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveComparison(t *testing.T) {
	// Wednesday
	now := time.Date(2024, time.March, 13, 15, 4, 5, 0, time.UTC)

	testCases := []struct {
		window        ComparisonWindow
		currentStart  time.Time
		currentEnd    time.Time
		previousStart time.Time
		previousEnd   time.Time
	}{
		{CompareWeek, date(2024, 3, 10), date(2024, 3, 16), date(2024, 3, 3), date(2024, 3, 9)},
		{CompareMonth, date(2024, 3, 1), date(2024, 3, 31), date(2024, 2, 1), date(2024, 2, 29)},
		{"", date(2024, 3, 1), date(2024, 3, 31), date(2024, 2, 1), date(2024, 2, 29)},
		{CompareYear, date(2024, 1, 1), date(2024, 12, 31), date(2023, 1, 1), date(2023, 12, 31)},
	}

	for _, tc := range testCases {
		t.Run(string(tc.window), func(t *testing.T) {
			current, previous, err := ResolveComparison(tc.window, now, time.UTC)

			require.NoError(t, err)
			assert.Equal(t, tc.currentStart, current.StartDate)
			assert.Equal(t, EndOfDay(tc.currentEnd), current.EndDate)
			assert.Equal(t, tc.previousStart, previous.StartDate)
			assert.Equal(t, EndOfDay(tc.previousEnd), previous.EndDate)
		})
	}
}

func TestResolveComparison_UnknownWindow(t *testing.T) {
	_, _, err := ResolveComparison("quarter", time.Now(), time.UTC)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOfferTargetPeriod(t *testing.T) {
	offer := Offer{OfferDate: time.Date(2024, time.February, 17, 18, 30, 0, 0, time.UTC)}

	p := offer.TargetPeriod(time.UTC)

	assert.Equal(t, date(2024, 2, 1), p.StartDate)
	assert.Equal(t, EndOfDay(date(2024, 2, 29)), p.EndDate)
	assert.Equal(t, "February 2024", p.Label)
}

func TestDealBookedWithin(t *testing.T) {
	march := Period{StartDate: date(2024, 3, 1), EndDate: EndOfDay(date(2024, 3, 31))}

	assert.True(t, Deal{DealDate: date(2024, 3, 31)}.BookedWithin(march))
	assert.False(t, Deal{DealDate: date(2024, 2, 28), DueDate: date(2024, 3, 20)}.BookedWithin(march))
}
