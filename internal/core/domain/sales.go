package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupingDimension selects how deals are bucketed in a sales report.
type GroupingDimension string

const (
	GroupByWorkType   GroupingDimension = "workType"
	GroupBySourceType GroupingDimension = "sourceType"
	GroupByEmployee   GroupingDimension = "employee"
	GroupByTeam       GroupingDimension = "team"
)

// Valid reports whether g is a known dimension. Empty means workType.
func (g GroupingDimension) Valid() bool {
	switch g {
	case "", GroupByWorkType, GroupBySourceType, GroupByEmployee, GroupByTeam:
		return true
	}
	return false
}

// GroupKey returns the bucket id and display name of d along dimension g.
func (g GroupingDimension) GroupKey(d Deal) (key, name string) {
	switch g {
	case GroupBySourceType:
		return d.SourceTypeID, d.SourceTypeName
	case GroupByEmployee:
		return d.UserID, d.UserName
	case GroupByTeam:
		if d.TeamID == nil {
			return "", "Unassigned"
		}
		return *d.TeamID, d.TeamName
	default:
		return d.WorkTypeID, d.WorkTypeName
	}
}

// SalesScope narrows a report. Non-empty fields are AND-combined with the organization.
type SalesScope struct {
	OrganizationID string
	UserID         string
	TeamID         string
}

// SalesQuery is a full sales report request.
type SalesQuery struct {
	Period    PeriodSpec
	Dimension GroupingDimension
	UserID    string
	TeamID    string
}

// SalesTotals are the money and count aggregates shared by every report level.
type SalesTotals struct {
	TotalSalesDealValue  decimal.Decimal `json:"totalSalesDealValue"`
	TotalPaid            decimal.Decimal `json:"totalPaid"`
	TotalDue             decimal.Decimal `json:"totalDue"`
	CollectionPercentage decimal.Decimal `json:"collectionPercentage"`
	TotalDeals           int             `json:"totalDeals"`
	FullyPaidDeals       int             `json:"fullyPaidDeals"`
	PendingDeals         int             `json:"pendingDeals"`
}

// SalesSummary covers the whole period.
type SalesSummary struct {
	SalesTotals
	VerifiedPaymentsCount  int             `json:"verifiedPaymentsCount"`
	VerifiedPaymentsAmount decimal.Decimal `json:"verifiedPaymentsAmount"`
}

// SalesGroup aggregates the deals sharing one dimension value.
type SalesGroup struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	SalesTotals
	AverageDealValue decimal.Decimal `json:"averageDealValue"`
}

// DailySales is a one-day bucket.
type DailySales struct {
	Date      time.Time `json:"date"`
	DayOfWeek string    `json:"dayOfWeek"`
	SalesTotals
	Groups []SalesGroup `json:"groups"`
}

// WeeklySales folds up to seven consecutive daily buckets.
type WeeklySales struct {
	WeekNumber          int             `json:"weekNumber"`
	WeekStart           time.Time       `json:"weekStart"`
	WeekEnd             time.Time       `json:"weekEnd"`
	TotalSalesDealValue decimal.Decimal `json:"totalSalesDealValue"`
	TotalPaid           decimal.Decimal `json:"totalPaid"`
	TotalDue            decimal.Decimal `json:"totalDue"`
	NumberOfDeals       int             `json:"numberOfDeals"`
}

// PeakDay is the day holding a maximum amount.
type PeakDay struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// SalesMetrics are figures derived from the totals and daily buckets.
type SalesMetrics struct {
	DaysInPeriod           int             `json:"daysInPeriod"`
	DailyAverageDealValue  decimal.Decimal `json:"dailyAverageDealValue"`
	DailyAverageCollection decimal.Decimal `json:"dailyAverageCollection"`
	PeakSalesDay           *PeakDay        `json:"peakSalesDay"`
	PeakCollectionDay      *PeakDay        `json:"peakCollectionDay"`
}

// SalesReport is the full output of the aggregation pipeline.
type SalesReport struct {
	Period       Period            `json:"period"`
	Dimension    GroupingDimension `json:"dimension"`
	Summary      SalesSummary      `json:"summary"`
	Metrics      SalesMetrics      `json:"metrics"`
	Groups       []SalesGroup      `json:"groups"`
	DailySales   []DailySales      `json:"dailySales"`
	WeeklyTotals []WeeklySales     `json:"weeklyTotals"`
}

// EmployeeSales is one team member's figures with a work type breakdown.
type EmployeeSales struct {
	EmployeeID   string `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
	SalesTotals
	WorkTypes []SalesGroup `json:"workTypes"`
}

// TopPerformer ranks an employee by verified collection.
type TopPerformer struct {
	EmployeeID           string          `json:"employeeID"`
	EmployeeName         string          `json:"employeeName"`
	TeamName             string          `json:"teamName"`
	TotalSales           decimal.Decimal `json:"totalSales"`
	TotalPaid            decimal.Decimal `json:"totalPaid"`
	CollectionPercentage decimal.Decimal `json:"collectionPercentage"`
}

// TeamSalesReport breaks a team's period down by employee.
type TeamSalesReport struct {
	Period           Period          `json:"period"`
	TeamID           string          `json:"teamID"`
	TeamName         string          `json:"teamName"`
	Totals           SalesTotals     `json:"totals"`
	AverageDealValue decimal.Decimal `json:"averageDealValue"`
	Employees        []EmployeeSales `json:"employees"`
	TopPerformers    []TopPerformer  `json:"topPerformers"`
	Message          string          `json:"message,omitempty"`
}

// PaymentStatusSummary counts and totals payments in one status.
type PaymentStatusSummary struct {
	Status      PaymentStatus   `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// VerificationDashboard summarises payment verification for a period.
type VerificationDashboard struct {
	Period   Period                 `json:"period"`
	Statuses []PaymentStatusSummary `json:"statuses"`
}
