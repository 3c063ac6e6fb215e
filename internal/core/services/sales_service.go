package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
)

const (
	defaultTopPerformers = 5
	noEmployeesMessage   = "No employees found for the specified team"
)

type salesService struct {
	BaseService
	salesRepo     portsrepo.SalesRepository
	userRepo      portsrepo.UserReader
	teamRepo      portsrepo.TeamReader
	catalogRepo   portsrepo.CatalogRepository
	location      *time.Location
	topPerformers int
}

// SalesServiceOption is a function that configures a salesService
type SalesServiceOption func(*salesService)

// WithSalesAuthorizer sets the organization authorizer used to resolve the caller's role.
func WithSalesAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) SalesServiceOption {
	return func(s *salesService) {
		s.Authorizer = authorizer
	}
}

// WithClock replaces time.Now as the source of "now" for relative periods.
func WithClock(clock func() time.Time) SalesServiceOption {
	return func(s *salesService) {
		s.Clock = clock
	}
}

// WithReportLocation sets the time zone calendar days are computed in.
func WithReportLocation(loc *time.Location) SalesServiceOption {
	return func(s *salesService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithTopPerformersLimit caps the top performers list of team reports.
func WithTopPerformersLimit(n int) SalesServiceOption {
	return func(s *salesService) {
		if n > 0 {
			s.topPerformers = n
		}
	}
}

// NewSalesService creates the sales reporting service.
func NewSalesService(
	salesRepo portsrepo.SalesRepository,
	userRepo portsrepo.UserReader,
	teamRepo portsrepo.TeamReader,
	catalogRepo portsrepo.CatalogRepository,
	options ...SalesServiceOption,
) portssvc.SalesSvc {
	s := &salesService{
		salesRepo:     salesRepo,
		userRepo:      userRepo,
		teamRepo:      teamRepo,
		catalogRepo:   catalogRepo,
		location:      time.UTC,
		topPerformers: defaultTopPerformers,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.SalesSvc = (*salesService)(nil)

// SalesSummary resolves the period, loads the deals active in it and aggregates them.
// Sales users only ever see their own deals.
func (s *salesService) SalesSummary(ctx context.Context, organizationID, requestingUserID string, query domain.SalesQuery) (*domain.SalesReport, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !query.Dimension.Valid() {
		return nil, fmt.Errorf("%w: unknown grouping dimension %q", apperrors.ErrValidation, query.Dimension)
	}

	period, err := domain.ResolvePeriod(query.Period, s.Now(), s.location)
	if err != nil {
		return nil, err
	}

	scope := scopeFor(requester, organizationID, query.UserID, query.TeamID)
	deals, err := s.salesRepo.FindDealsInWindow(ctx, scope, period.StartDate, period.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load deals for sales summary",
			slog.String("organization_id", organizationID),
			slog.String("period", string(period.Token)))
		return nil, fmt.Errorf("failed to load deals: %w", err)
	}

	report := AggregateSales(deals, period, query.Dimension)
	s.LogDebug(ctx, "Sales summary computed",
		slog.String("organization_id", organizationID),
		slog.String("period", period.Label),
		slog.Int("deals", report.Summary.TotalDeals))
	return &report, nil
}

// scopeFor narrows a report to the requested user and team. Sales users are always narrowed to themselves.
func scopeFor(requester *domain.User, organizationID, userID, teamID string) domain.SalesScope {
	scope := domain.SalesScope{OrganizationID: organizationID, UserID: userID, TeamID: teamID}
	if requester != nil && requester.Role == domain.RoleSales {
		scope.UserID = requester.UserID
	}
	return scope
}

// CompareSourceTypes compares the deal value booked per source type in the current window
// with the window before it.
func (s *salesService) CompareSourceTypes(ctx context.Context, organizationID, requestingUserID string, query domain.ComparisonQuery) (*domain.SourceTypeComparison, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}

	current, previous, err := domain.ResolveComparison(query.Window, s.Now(), s.location)
	if err != nil {
		return nil, err
	}

	sourceTypes, err := s.catalogRepo.FindSourceTypes(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list source types for comparison")
		return nil, fmt.Errorf("failed to list source types: %w", err)
	}

	// Every deal booked in either window overlaps their union.
	scope := scopeFor(requester, organizationID, query.UserID, query.TeamID)
	deals, err := s.salesRepo.FindDealsInWindow(ctx, scope, previous.StartDate, current.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load deals for source type comparison",
			slog.String("window", string(query.Window)))
		return nil, fmt.Errorf("failed to load deals: %w", err)
	}

	comparison := CompareSourceTypes(sourceTypes, deals, current, previous)
	return &comparison, nil
}

// UserSalesMetrics reports each user's deals booked in the calendar month containing date.
// Sales users only get their own row.
func (s *salesService) UserSalesMetrics(ctx context.Context, organizationID, requestingUserID string, date time.Time) (*domain.UserSalesMetricsReport, error) {
	requester, err := s.AuthorizeUser(ctx, organizationID, requestingUserID)
	if err != nil {
		return nil, err
	}
	month := domain.MonthPeriod(date, s.location)

	var users []domain.User
	if requester != nil && requester.Role == domain.RoleSales {
		users = []domain.User{*requester}
	} else if users, err = s.userRepo.FindAllUsers(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Failed to list users for sales metrics")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	teams, err := s.teamRepo.FindTeams(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list teams for sales metrics")
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	scope := scopeFor(requester, organizationID, "", "")
	deals, err := s.salesRepo.FindDealsInWindow(ctx, scope, month.StartDate, month.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load deals for sales metrics", slog.String("month", month.Label))
		return nil, fmt.Errorf("failed to load deals: %w", err)
	}

	report := BuildUserSalesMetrics(users, teams, deals, month)
	return &report, nil
}

// TeamSales reports a team per employee. A team without employees is not an error.
func (s *salesService) TeamSales(ctx context.Context, organizationID, requestingUserID, teamID string, spec domain.PeriodSpec) (*domain.TeamSalesReport, error) {
	report, empty, err := s.teamReport(ctx, organizationID, requestingUserID, teamID, spec)
	if err != nil {
		return nil, err
	}
	if empty {
		s.LogInfo(ctx, "Team sales requested for team without employees",
			slog.String("team_id", teamID))
	}
	return report, nil
}

// EmployeeSalesByTeam reports a team per employee and fails when the team has no employees.
func (s *salesService) EmployeeSalesByTeam(ctx context.Context, organizationID, requestingUserID, teamID string, spec domain.PeriodSpec) (*domain.TeamSalesReport, error) {
	report, empty, err := s.teamReport(ctx, organizationID, requestingUserID, teamID, spec)
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, fmt.Errorf("%w: no employees found for team %s", apperrors.ErrNotFound, teamID)
	}
	return report, nil
}

func (s *salesService) teamReport(ctx context.Context, organizationID, requestingUserID, teamID string, spec domain.PeriodSpec) (*domain.TeamSalesReport, bool, error) {
	if _, err := s.AuthorizeUser(ctx, organizationID, requestingUserID); err != nil {
		return nil, false, err
	}
	if teamID == "" {
		return nil, false, fmt.Errorf("%w: team is required", apperrors.ErrValidation)
	}

	period, err := domain.ResolvePeriod(spec, s.Now(), s.location)
	if err != nil {
		return nil, false, err
	}

	team, err := s.teamRepo.FindTeamByID(ctx, organizationID, teamID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find team for sales report", slog.String("team_id", teamID))
		}
		return nil, false, err
	}

	members, err := s.userRepo.FindUsersByTeam(ctx, organizationID, teamID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list team members", slog.String("team_id", teamID))
		return nil, false, fmt.Errorf("failed to list team members: %w", err)
	}
	if len(members) == 0 {
		return &domain.TeamSalesReport{
			Period:        period,
			TeamID:        team.TeamID,
			TeamName:      team.TeamName,
			Employees:     []domain.EmployeeSales{},
			TopPerformers: []domain.TopPerformer{},
			Message:       noEmployeesMessage,
		}, true, nil
	}

	scope := domain.SalesScope{OrganizationID: organizationID, TeamID: teamID}
	deals, err := s.salesRepo.FindDealsInWindow(ctx, scope, period.StartDate, period.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to load team deals", slog.String("team_id", teamID))
		return nil, false, fmt.Errorf("failed to load deals: %w", err)
	}

	report := BuildTeamSalesReport(*team, members, deals, period, s.topPerformers)
	return &report, false, nil
}
