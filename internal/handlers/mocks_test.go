package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock DealService ---
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) GetDeal(ctx context.Context, organizationID, requestingUserID, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, organizationID, requestingUserID, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}
func (m *MockDealService) ListDeals(ctx context.Context, organizationID, requestingUserID string, params dto.ListDealsParams) ([]domain.Deal, string, error) {
	args := m.Called(ctx, organizationID, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Deal), args.String(1), args.Error(2)
}
func (m *MockDealService) LatestDealCode(ctx context.Context, organizationID string) (string, string, error) {
	args := m.Called(ctx, organizationID)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockDealService) CreateDeal(ctx context.Context, organizationID, requestingUserID string, req dto.CreateDealRequest) (*domain.Deal, error) {
	args := m.Called(ctx, organizationID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}
func (m *MockDealService) UpdateDeal(ctx context.Context, organizationID, requestingUserID, dealID string, req dto.UpdateDealRequest) (*domain.Deal, error) {
	args := m.Called(ctx, organizationID, requestingUserID, dealID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

var _ portssvc.DealSvcFacade = (*MockDealService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ListPaymentsByStatus(ctx context.Context, organizationID, requestingUserID string, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	args := m.Called(ctx, organizationID, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) VerificationDashboard(ctx context.Context, organizationID, requestingUserID string, period domain.PeriodSpec) (*domain.VerificationDashboard, error) {
	args := m.Called(ctx, organizationID, requestingUserID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationDashboard), args.Error(1)
}
func (m *MockPaymentService) AddPayment(ctx context.Context, organizationID, requestingUserID string, req dto.AddPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) EditPayment(ctx context.Context, organizationID, requestingUserID, paymentID string, req dto.EditPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, requestingUserID, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) VerifyPayment(ctx context.Context, organizationID, requestingUserID, paymentID string, req dto.VerifyPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, requestingUserID, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) DeletePayment(ctx context.Context, organizationID, requestingUserID, paymentID string) error {
	args := m.Called(ctx, organizationID, requestingUserID, paymentID)
	return args.Error(0)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock SalesService ---
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) SalesSummary(ctx context.Context, organizationID, requestingUserID string, query domain.SalesQuery) (*domain.SalesReport, error) {
	args := m.Called(ctx, organizationID, requestingUserID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}
func (m *MockSalesService) TeamSales(ctx context.Context, organizationID, requestingUserID, teamID string, period domain.PeriodSpec) (*domain.TeamSalesReport, error) {
	args := m.Called(ctx, organizationID, requestingUserID, teamID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamSalesReport), args.Error(1)
}
func (m *MockSalesService) EmployeeSalesByTeam(ctx context.Context, organizationID, requestingUserID, teamID string, period domain.PeriodSpec) (*domain.TeamSalesReport, error) {
	args := m.Called(ctx, organizationID, requestingUserID, teamID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamSalesReport), args.Error(1)
}

func (m *MockSalesService) CompareSourceTypes(ctx context.Context, organizationID, requestingUserID string, query domain.ComparisonQuery) (*domain.SourceTypeComparison, error) {
	args := m.Called(ctx, organizationID, requestingUserID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceTypeComparison), args.Error(1)
}
func (m *MockSalesService) UserSalesMetrics(ctx context.Context, organizationID, requestingUserID string, date time.Time) (*domain.UserSalesMetricsReport, error) {
	args := m.Called(ctx, organizationID, requestingUserID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSalesMetricsReport), args.Error(1)
}

var _ portssvc.SalesSvc = (*MockSalesService)(nil)

// --- Mock TeamService ---
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) GetTeam(ctx context.Context, organizationID, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, organizationID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamService) ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}
func (m *MockTeamService) LatestTeamCode(ctx context.Context, organizationID string) (string, string, error) {
	args := m.Called(ctx, organizationID)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockTeamService) CreateTeam(ctx context.Context, organizationID, requestingUserID string, req dto.CreateTeamRequest) (*domain.Team, error) {
	args := m.Called(ctx, organizationID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamService) RenameTeam(ctx context.Context, organizationID, requestingUserID, teamID string, req dto.RenameTeamRequest) (*domain.Team, error) {
	args := m.Called(ctx, organizationID, requestingUserID, teamID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamService) DeleteTeam(ctx context.Context, organizationID, requestingUserID, teamID string) error {
	args := m.Called(ctx, organizationID, requestingUserID, teamID)
	return args.Error(0)
}
func (m *MockTeamService) SwitchUserTeam(ctx context.Context, organizationID, requestingUserID, userID string, req dto.SwitchUserTeamRequest) (*domain.User, error) {
	args := m.Called(ctx, organizationID, requestingUserID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TeamSvcFacade = (*MockTeamService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	args := m.Called(ctx, organizationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) ListTeamUsers(ctx context.Context, organizationID, teamID string) ([]domain.User, error) {
	args := m.Called(ctx, organizationID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, organizationID, requestingUserID string, req dto.CreateUserRequest) (*domain.User, string, error) {
	args := m.Called(ctx, organizationID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockUserService) UpdateUser(ctx context.Context, organizationID, requestingUserID, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, organizationID, requestingUserID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, organizationID, requestingUserID, userID string) error {
	args := m.Called(ctx, organizationID, requestingUserID, userID)
	return args.Error(0)
}
func (m *MockUserService) AuthorizeUserAction(ctx context.Context, organizationID, userID string, roles ...domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, organizationID, userID, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock OfferService ---
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) GetOffer(ctx context.Context, organizationID, offerID string) (*domain.Offer, error) {
	args := m.Called(ctx, organizationID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) ListOffers(ctx context.Context, organizationID string) ([]domain.Offer, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}
func (m *MockOfferService) OfferTargetProgress(ctx context.Context, organizationID, requestingUserID, offerID string) (*domain.OfferTargetProgress, error) {
	args := m.Called(ctx, organizationID, requestingUserID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfferTargetProgress), args.Error(1)
}
func (m *MockOfferService) CreateOffer(ctx context.Context, organizationID, requestingUserID string, req dto.CreateOfferRequest) (*domain.Offer, error) {
	args := m.Called(ctx, organizationID, requestingUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) UpdateOffer(ctx context.Context, organizationID, requestingUserID, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error) {
	args := m.Called(ctx, organizationID, requestingUserID, offerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferService) DeleteOffer(ctx context.Context, organizationID, requestingUserID, offerID string) error {
	args := m.Called(ctx, organizationID, requestingUserID, offerID)
	return args.Error(0)
}
func (m *MockOfferService) AssignOfferToTeam(ctx context.Context, organizationID, requestingUserID, offerID string, req dto.AssignOfferRequest) (*domain.Offer, error) {
	args := m.Called(ctx, organizationID, requestingUserID, offerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

var _ portssvc.OfferSvcFacade = (*MockOfferService)(nil)

func ptrTime(t time.Time) *time.Time { return &t }
