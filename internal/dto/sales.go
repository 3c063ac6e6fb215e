package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesQueryParams defines query parameters shared by the sales reports.
type SalesQueryParams struct {
	Period    string `form:"period" binding:"omitempty,periodtoken"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	GroupBy   string `form:"groupBy" binding:"omitempty,dimension"`
	UserID    string `form:"userID"`
	TeamID    string `form:"teamID"`
}

// ToPeriodSpec parses the period part of the query. Dates are calendar days in loc.
func (p SalesQueryParams) ToPeriodSpec(loc *time.Location) (domain.PeriodSpec, error) {
	spec := domain.PeriodSpec{Token: domain.PeriodToken(p.Period)}
	var err error
	if spec.StartDate, err = parseOptionalDate("startDate", p.StartDate, loc); err != nil {
		return domain.PeriodSpec{}, err
	}
	if spec.EndDate, err = parseOptionalDate("endDate", p.EndDate, loc); err != nil {
		return domain.PeriodSpec{}, err
	}
	return spec, nil
}

// ToSalesQuery builds the full report request.
func (p SalesQueryParams) ToSalesQuery(loc *time.Location) (domain.SalesQuery, error) {
	spec, err := p.ToPeriodSpec(loc)
	if err != nil {
		return domain.SalesQuery{}, err
	}
	return domain.SalesQuery{
		Period:    spec,
		Dimension: domain.GroupingDimension(p.GroupBy),
		UserID:    p.UserID,
		TeamID:    p.TeamID,
	}, nil
}

func parseOptionalDate(field, value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(domain.DateLayout, value, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s %q, use YYYY-MM-DD", apperrors.ErrValidation, field, value)
	}
	return &t, nil
}

// PeriodResponse renders a resolved period.
type PeriodResponse struct {
	Token     domain.PeriodToken `json:"token"`
	Label     string             `json:"label"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
}

type SalesGroupResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	domain.SalesTotals
	AverageDealValue decimal.Decimal `json:"averageDealValue"`
}

type DailySalesResponse struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
	domain.SalesTotals
	Groups []SalesGroupResponse `json:"groups"`
}

type WeeklySalesResponse struct {
	WeekNumber          int             `json:"weekNumber"`
	WeekStart           string          `json:"weekStart"`
	WeekEnd             string          `json:"weekEnd"`
	TotalSalesDealValue decimal.Decimal `json:"totalSalesDealValue"`
	TotalPaid           decimal.Decimal `json:"totalPaid"`
	TotalDue            decimal.Decimal `json:"totalDue"`
	NumberOfDeals       int             `json:"numberOfDeals"`
}

type PeakDayResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type SalesMetricsResponse struct {
	DaysInPeriod           int              `json:"daysInPeriod"`
	DailyAverageDealValue  decimal.Decimal  `json:"dailyAverageDealValue"`
	DailyAverageCollection decimal.Decimal  `json:"dailyAverageCollection"`
	PeakSalesDay           *PeakDayResponse `json:"peakSalesDay"`
	PeakCollectionDay      *PeakDayResponse `json:"peakCollectionDay"`
}

// SalesReportResponse represents the sales report response
type SalesReportResponse struct {
	Period       PeriodResponse           `json:"period"`
	Dimension    domain.GroupingDimension `json:"dimension"`
	Summary      domain.SalesSummary      `json:"summary"`
	Metrics      SalesMetricsResponse     `json:"metrics"`
	Groups       []SalesGroupResponse     `json:"groups"`
	DailySales   []DailySalesResponse     `json:"dailySales"`
	WeeklyTotals []WeeklySalesResponse    `json:"weeklyTotals"`
}

type EmployeeSalesResponse struct {
	EmployeeID   string `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
	domain.SalesTotals
	WorkTypes []SalesGroupResponse `json:"workTypes"`
}

// TeamSalesResponse represents the per-employee team report response
type TeamSalesResponse struct {
	Period           PeriodResponse          `json:"period"`
	TeamID           string                  `json:"teamID"`
	TeamName         string                  `json:"teamName"`
	Totals           domain.SalesTotals      `json:"totals"`
	AverageDealValue decimal.Decimal         `json:"averageDealValue"`
	Employees        []EmployeeSalesResponse `json:"employees"`
	TopPerformers    []domain.TopPerformer   `json:"topPerformers"`
	Message          string                  `json:"message,omitempty"`
}

func ToPeriodResponse(p domain.Period) PeriodResponse {
	return PeriodResponse{
		Token:     p.Token,
		Label:     p.Label,
		StartDate: p.StartDate.Format(domain.DateLayout),
		EndDate:   p.EndDate.Format(domain.DateLayout),
	}
}

func toSalesGroupResponses(groups []domain.SalesGroup) []SalesGroupResponse {
	resp := make([]SalesGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = SalesGroupResponse{Key: g.Key, Name: g.Name, SalesTotals: g.SalesTotals, AverageDealValue: g.AverageDealValue}
	}
	return resp
}

func toPeakDayResponse(p *domain.PeakDay) *PeakDayResponse {
	if p == nil {
		return nil
	}
	return &PeakDayResponse{Date: p.Date.Format(domain.DateLayout), Amount: p.Amount}
}

// ToSalesReportResponse converts a domain.SalesReport to its response DTO
func ToSalesReportResponse(r domain.SalesReport) SalesReportResponse {
	resp := SalesReportResponse{
		Period:    ToPeriodResponse(r.Period),
		Dimension: r.Dimension,
		Summary:   r.Summary,
		Metrics: SalesMetricsResponse{
			DaysInPeriod:           r.Metrics.DaysInPeriod,
			DailyAverageDealValue:  r.Metrics.DailyAverageDealValue,
			DailyAverageCollection: r.Metrics.DailyAverageCollection,
			PeakSalesDay:           toPeakDayResponse(r.Metrics.PeakSalesDay),
			PeakCollectionDay:      toPeakDayResponse(r.Metrics.PeakCollectionDay),
		},
		Groups:       toSalesGroupResponses(r.Groups),
		DailySales:   make([]DailySalesResponse, len(r.DailySales)),
		WeeklyTotals: make([]WeeklySalesResponse, len(r.WeeklyTotals)),
	}
	for i, d := range r.DailySales {
		resp.DailySales[i] = DailySalesResponse{
			Date:        d.Date.Format(domain.DateLayout),
			DayOfWeek:   d.DayOfWeek,
			SalesTotals: d.SalesTotals,
			Groups:      toSalesGroupResponses(d.Groups),
		}
	}
	for i, w := range r.WeeklyTotals {
		resp.WeeklyTotals[i] = WeeklySalesResponse{
			WeekNumber:          w.WeekNumber,
			WeekStart:           w.WeekStart.Format(domain.DateLayout),
			WeekEnd:             w.WeekEnd.Format(domain.DateLayout),
			TotalSalesDealValue: w.TotalSalesDealValue,
			TotalPaid:           w.TotalPaid,
			TotalDue:            w.TotalDue,
			NumberOfDeals:       w.NumberOfDeals,
		}
	}
	return resp
}

// ToTeamSalesResponse converts a domain.TeamSalesReport to its response DTO
func ToTeamSalesResponse(r domain.TeamSalesReport) TeamSalesResponse {
	resp := TeamSalesResponse{
		Period:           ToPeriodResponse(r.Period),
		TeamID:           r.TeamID,
		TeamName:         r.TeamName,
		Totals:           r.Totals,
		AverageDealValue: r.AverageDealValue,
		Employees:        make([]EmployeeSalesResponse, len(r.Employees)),
		TopPerformers:    r.TopPerformers,
		Message:          r.Message,
	}
	if resp.TopPerformers == nil {
		resp.TopPerformers = []domain.TopPerformer{}
	}
	for i, e := range r.Employees {
		resp.Employees[i] = EmployeeSalesResponse{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			SalesTotals:  e.SalesTotals,
			WorkTypes:    toSalesGroupResponses(e.WorkTypes),
		}
	}
	return resp
}

// SourceTypeComparisonParams selects the window compared with the one before it.
type SourceTypeComparisonParams struct {
	Window string `form:"window" binding:"omitempty,oneof=week month year"`
	UserID string `form:"userID"`
	TeamID string `form:"teamID"`
}

func (p SourceTypeComparisonParams) ToComparisonQuery() domain.ComparisonQuery {
	return domain.ComparisonQuery{Window: domain.ComparisonWindow(p.Window), UserID: p.UserID, TeamID: p.TeamID}
}

// UserSalesMetricsParams names any day of the reported month.
type UserSalesMetricsParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ToDate parses Date in loc, falling back to now.
func (p UserSalesMetricsParams) ToDate(now time.Time, loc *time.Location) (time.Time, error) {
	date, err := parseOptionalDate("date", p.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if date == nil {
		return now.In(loc), nil
	}
	return *date, nil
}

type SourceTypeComparisonResponse struct {
	Current     PeriodResponse           `json:"current"`
	Previous    PeriodResponse           `json:"previous"`
	SourceTypes []domain.SourceTypeTrend `json:"sourceTypes"`
}

type UserSalesMetricsResponse struct {
	Period PeriodResponse            `json:"period"`
	Users  []domain.UserSalesMetrics `json:"users"`
}

func ToSourceTypeComparisonResponse(c domain.SourceTypeComparison) SourceTypeComparisonResponse {
	resp := SourceTypeComparisonResponse{
		Current:     ToPeriodResponse(c.Current),
		Previous:    ToPeriodResponse(c.Previous),
		SourceTypes: c.SourceTypes,
	}
	if resp.SourceTypes == nil {
		resp.SourceTypes = []domain.SourceTypeTrend{}
	}
	return resp
}

func ToUserSalesMetricsResponse(r domain.UserSalesMetricsReport) UserSalesMetricsResponse {
	resp := UserSalesMetricsResponse{Period: ToPeriodResponse(r.Period), Users: r.Users}
	if resp.Users == nil {
		resp.Users = []domain.UserSalesMetrics{}
	}
	return resp
}
