package services

import (
	"sort"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/SscSPs/sales_crm_app/internal/utils/salescalc"
	"github.com/shopspring/decimal"
)

// totalsAccumulator sums deal values and collected amounts for one bucket.
type totalsAccumulator struct {
	sales     decimal.Decimal
	paid      decimal.Decimal
	deals     int
	fullyPaid int
}

func (t *totalsAccumulator) add(value, paid decimal.Decimal) {
	t.sales = t.sales.Add(value)
	t.paid = t.paid.Add(paid)
	t.deals++
	if salescalc.IsFullyPaid(paid, value) {
		t.fullyPaid++
	}
}

func (t totalsAccumulator) result() domain.SalesTotals {
	return domain.SalesTotals{
		TotalSalesDealValue:  t.sales,
		TotalPaid:            t.paid,
		TotalDue:             t.sales.Sub(t.paid),
		CollectionPercentage: salescalc.Percentage(t.paid, t.sales),
		TotalDeals:           t.deals,
		FullyPaidDeals:       t.fullyPaid,
		PendingDeals:         t.deals - t.fullyPaid,
	}
}

type groupEntry struct {
	key    string
	name   string
	totals totalsAccumulator
}

// groupAccumulator keeps groups in first-encounter order.
type groupAccumulator struct {
	order []string
	byKey map[string]*groupEntry
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{byKey: make(map[string]*groupEntry)}
}

func (g *groupAccumulator) entry(key, name string) *groupEntry {
	e, ok := g.byKey[key]
	if !ok {
		e = &groupEntry{key: key, name: name}
		g.byKey[key] = e
		g.order = append(g.order, key)
	}
	return e
}

func (g *groupAccumulator) add(key, name string, value, paid decimal.Decimal) {
	g.entry(key, name).totals.add(value, paid)
}

func (g *groupAccumulator) result() []domain.SalesGroup {
	groups := make([]domain.SalesGroup, 0, len(g.order))
	for _, key := range g.order {
		e := g.byKey[key]
		groups = append(groups, domain.SalesGroup{
			Key:              e.key,
			Name:             e.name,
			SalesTotals:      e.totals.result(),
			AverageDealValue: salescalc.Average(e.totals.sales, e.totals.deals),
		})
	}
	return groups
}

// AggregateSales computes the full sales report of deals over period, bucketed by dimension.
// Deals whose activity window misses the period are ignored. Only VERIFIED payments dated
// inside a bucket count as collected for that bucket. The function is pure.
func AggregateSales(deals []domain.Deal, period domain.Period, dimension domain.GroupingDimension) domain.SalesReport {
	if dimension == "" {
		dimension = domain.GroupByWorkType
	}

	selected := make([]domain.Deal, 0, len(deals))
	for _, deal := range deals {
		if deal.ActiveDuring(period) {
			selected = append(selected, deal)
		}
	}

	var totals totalsAccumulator
	groups := newGroupAccumulator()
	verifiedCount := 0
	verifiedAmount := decimal.Zero

	for _, deal := range selected {
		paid := deal.VerifiedPaidWithin(period)
		totals.add(deal.DealValue, paid)

		key, name := dimension.GroupKey(deal)
		groups.add(key, name, deal.DealValue, paid)

		// every verified payment of a selected deal, regardless of its date
		for _, payment := range deal.Payments {
			if payment.PaymentStatus == domain.PaymentVerified {
				verifiedCount++
				verifiedAmount = verifiedAmount.Add(payment.ReceivedAmount)
			}
		}
	}

	summaryTotals := totals.result()
	daily := dailyBuckets(selected, period, dimension)

	return domain.SalesReport{
		Period:    period,
		Dimension: dimension,
		Summary: domain.SalesSummary{
			SalesTotals:            summaryTotals,
			VerifiedPaymentsCount:  verifiedCount,
			VerifiedPaymentsAmount: verifiedAmount,
		},
		Metrics:      deriveMetrics(summaryTotals, daily),
		Groups:       groups.result(),
		DailySales:   daily,
		WeeklyTotals: foldWeeks(daily),
	}
}

// dailyBuckets builds one bucket per calendar day of period. A deal appears in every day
// its activity window touches; its collected amount for the day only counts payments of that day.
func dailyBuckets(deals []domain.Deal, period domain.Period, dimension domain.GroupingDimension) []domain.DailySales {
	days := period.Days()
	daily := make([]domain.DailySales, 0, len(days))

	for _, day := range days {
		dayPeriod := domain.DayPeriod(day)
		var dayTotals totalsAccumulator
		dayGroups := newGroupAccumulator()

		for _, deal := range deals {
			if !deal.ActiveDuring(dayPeriod) {
				continue
			}
			paid := deal.VerifiedPaidWithin(dayPeriod)
			dayTotals.add(deal.DealValue, paid)
			key, name := dimension.GroupKey(deal)
			dayGroups.add(key, name, deal.DealValue, paid)
		}

		daily = append(daily, domain.DailySales{
			Date:        day,
			DayOfWeek:   day.Weekday().String(),
			SalesTotals: dayTotals.result(),
			Groups:      dayGroups.result(),
		})
	}
	return daily
}

// foldWeeks groups consecutive runs of seven daily buckets, counted from the period start.
func foldWeeks(daily []domain.DailySales) []domain.WeeklySales {
	weeks := make([]domain.WeeklySales, 0, (len(daily)+6)/7)
	for i, day := range daily {
		n := i / 7
		if n == len(weeks) {
			weeks = append(weeks, domain.WeeklySales{WeekNumber: n, WeekStart: day.Date})
		}
		w := &weeks[n]
		w.WeekEnd = day.Date
		w.TotalSalesDealValue = w.TotalSalesDealValue.Add(day.TotalSalesDealValue)
		w.TotalPaid = w.TotalPaid.Add(day.TotalPaid)
		w.TotalDue = w.TotalDue.Add(day.TotalDue)
		w.NumberOfDeals += day.TotalDeals
	}
	return weeks
}

// deriveMetrics averages the period totals per day and finds the peak days.
// Both peaks start at the first day, so on ties the earliest day wins.
func deriveMetrics(totals domain.SalesTotals, daily []domain.DailySales) domain.SalesMetrics {
	metrics := domain.SalesMetrics{
		DaysInPeriod:           len(daily),
		DailyAverageDealValue:  salescalc.Average(totals.TotalSalesDealValue, len(daily)),
		DailyAverageCollection: salescalc.Average(totals.TotalPaid, len(daily)),
	}
	if len(daily) == 0 {
		return metrics
	}
	sales := domain.PeakDay{Date: daily[0].Date, Amount: daily[0].TotalSalesDealValue}
	collection := domain.PeakDay{Date: daily[0].Date, Amount: daily[0].TotalPaid}
	for _, day := range daily[1:] {
		if day.TotalSalesDealValue.GreaterThan(sales.Amount) {
			sales = domain.PeakDay{Date: day.Date, Amount: day.TotalSalesDealValue}
		}
		if day.TotalPaid.GreaterThan(collection.Amount) {
			collection = domain.PeakDay{Date: day.Date, Amount: day.TotalPaid}
		}
	}
	metrics.PeakSalesDay, metrics.PeakCollectionDay = &sales, &collection
	return metrics
}

type employeeEntry struct {
	user      domain.User
	totals    totalsAccumulator
	workTypes *groupAccumulator
}

// BuildTeamSalesReport breaks the team's deals down per member. Members are listed in the
// order given, including those without deals. Deals owned by non-members are ignored.
// The top performers are the topN members with the highest collected amount.
func BuildTeamSalesReport(team domain.Team, members []domain.User, deals []domain.Deal, period domain.Period, topN int) domain.TeamSalesReport {
	entries := make([]*employeeEntry, 0, len(members))
	byUser := make(map[string]*employeeEntry, len(members))
	for _, member := range members {
		e := &employeeEntry{user: member, workTypes: newGroupAccumulator()}
		entries = append(entries, e)
		byUser[member.UserID] = e
	}

	var teamTotals totalsAccumulator
	for _, deal := range deals {
		if !deal.ActiveDuring(period) {
			continue
		}
		e, ok := byUser[deal.UserID]
		if !ok {
			continue
		}
		paid := deal.VerifiedPaidWithin(period)
		e.totals.add(deal.DealValue, paid)
		e.workTypes.add(deal.WorkTypeID, deal.WorkTypeName, deal.DealValue, paid)
		teamTotals.add(deal.DealValue, paid)
	}

	employees := make([]domain.EmployeeSales, 0, len(entries))
	for _, e := range entries {
		employees = append(employees, domain.EmployeeSales{
			EmployeeID:   e.user.UserID,
			EmployeeName: e.user.FullName,
			SalesTotals:  e.totals.result(),
			WorkTypes:    e.workTypes.result(),
		})
	}

	return domain.TeamSalesReport{
		Period:           period,
		TeamID:           team.TeamID,
		TeamName:         team.TeamName,
		Totals:           teamTotals.result(),
		AverageDealValue: salescalc.Average(teamTotals.sales, teamTotals.deals),
		Employees:        employees,
		TopPerformers:    topPerformers(employees, team.TeamName, topN),
	}
}

func topPerformers(employees []domain.EmployeeSales, teamName string, n int) []domain.TopPerformer {
	ranked := make([]domain.EmployeeSales, len(employees))
	copy(ranked, employees)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPaid.GreaterThan(ranked[j].TotalPaid)
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	top := make([]domain.TopPerformer, 0, len(ranked))
	for _, e := range ranked {
		top = append(top, domain.TopPerformer{
			EmployeeID:           e.EmployeeID,
			EmployeeName:         e.EmployeeName,
			TeamName:             teamName,
			TotalSales:           e.TotalSalesDealValue,
			TotalPaid:            e.TotalPaid,
			CollectionPercentage: e.CollectionPercentage,
		})
	}
	return top
}
