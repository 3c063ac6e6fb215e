package services

import (
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/utils/salescalc"
	"github.com/shopspring/decimal"
)

// bookedTotal sums the value of deals closed in one window.
type bookedTotal struct {
	value decimal.Decimal
	deals int
}

func (b *bookedTotal) add(d domain.Deal) {
	b.value = b.value.Add(d.DealValue)
	b.deals++
}

// CompareSourceTypes totals, per source type, the deal value booked in each window.
// Source types keep the given order and appear even when nothing was booked.
func CompareSourceTypes(sourceTypes []domain.SourceType, deals []domain.Deal, current, previous domain.Period) domain.SourceTypeComparison {
	now := make(map[string]*bookedTotal, len(sourceTypes))
	before := make(map[string]*bookedTotal, len(sourceTypes))
	for _, st := range sourceTypes {
		now[st.SourceTypeID] = &bookedTotal{}
		before[st.SourceTypeID] = &bookedTotal{}
	}

	for _, d := range deals {
		if t, ok := now[d.SourceTypeID]; ok && d.BookedWithin(current) {
			t.add(d)
		}
		if t, ok := before[d.SourceTypeID]; ok && d.BookedWithin(previous) {
			t.add(d)
		}
	}

	trends := make([]domain.SourceTypeTrend, len(sourceTypes))
	for i, st := range sourceTypes {
		cur, prev := now[st.SourceTypeID], before[st.SourceTypeID]
		trends[i] = domain.SourceTypeTrend{
			SourceTypeID:     st.SourceTypeID,
			SourceTypeName:   st.Name,
			CurrentTotal:     cur.value,
			PreviousTotal:    prev.value,
			ChangePercentage: salescalc.Change(cur.value, prev.value),
			CurrentDeals:     cur.deals,
			PreviousDeals:    prev.deals,
		}
	}
	return domain.SourceTypeComparison{Current: current, Previous: previous, SourceTypes: trends}
}

// BuildUserSalesMetrics reports every user's deals booked in month, users without deals included.
func BuildUserSalesMetrics(users []domain.User, teams []domain.Team, deals []domain.Deal, month domain.Period) domain.UserSalesMetricsReport {
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.TeamID] = t.TeamName
	}

	rows := make([]domain.UserSalesMetrics, len(users))
	byUser := make(map[string]*domain.UserSalesMetrics, len(users))
	for i, u := range users {
		rows[i] = domain.UserSalesMetrics{
			UserID:         u.UserID,
			FullName:       u.FullName,
			Role:           u.Role,
			TeamID:         u.TeamID,
			TotalDealValue: decimal.Zero,
			VerifiedPaid:   decimal.Zero,
		}
		if u.TeamID != nil {
			rows[i].TeamName = teamNames[*u.TeamID]
		}
		byUser[u.UserID] = &rows[i]
	}

	for _, d := range deals {
		row, ok := byUser[d.UserID]
		if !ok || !d.BookedWithin(month) {
			continue
		}
		row.DealCount++
		row.TotalDealValue = row.TotalDealValue.Add(d.DealValue)
		row.VerifiedPaid = row.VerifiedPaid.Add(d.VerifiedPaid())
	}
	return domain.UserSalesMetricsReport{Period: month, Users: rows}
}

// BuildOfferProgress measures the deal value booked in period against the offer's target.
func BuildOfferProgress(offer domain.Offer, deals []domain.Deal, period domain.Period) domain.OfferTargetProgress {
	var booked bookedTotal
	for _, d := range deals {
		if d.BookedWithin(period) {
			booked.add(d)
		}
	}
	return domain.OfferTargetProgress{
		Offer:                offer,
		Period:               period,
		TotalSales:           booked.value,
		TotalDeals:           booked.deals,
		AttainmentPercentage: salescalc.Percentage(booked.value, offer.Target),
		TargetMet:            offer.Target.IsPositive() && booked.value.GreaterThanOrEqual(offer.Target),
	}
}
