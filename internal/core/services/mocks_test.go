package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) FindLatestIdentifier(ctx context.Context, kind domain.EntityKind, organizationID string) (string, error) {
	args := m.Called(ctx, kind, organizationID)
	return args.String(0), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, organizationID, userID string) (*domain.User, error) {
	args := m.Called(ctx, organizationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, organizationID string, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAllUsers(ctx context.Context, organizationID string) ([]domain.User, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByTeam(ctx context.Context, organizationID, teamID string) ([]domain.User, error) {
	args := m.Called(ctx, organizationID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserTeam(ctx context.Context, organizationID, userID string, teamID *string, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, organizationID, userID, teamID, updatedAt, updatedBy)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, organizationID, userID string) error {
	args := m.Called(ctx, organizationID, userID)
	return args.Error(0)
}

// --- Mock TeamRepository ---
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) FindTeamByID(ctx context.Context, organizationID, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, organizationID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindTeamByName(ctx context.Context, organizationID, teamName string) (*domain.Team, error) {
	args := m.Called(ctx, organizationID, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) SaveTeam(ctx context.Context, team domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) UpdateTeam(ctx context.Context, team domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteTeam(ctx context.Context, organizationID, teamID string) error {
	args := m.Called(ctx, organizationID, teamID)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, organizationID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, organizationID string, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock DealRepository ---
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) FindDealByID(ctx context.Context, organizationID, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, organizationID, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealRepository) FindDeals(ctx context.Context, organizationID string, filter portsrepo.DealListFilter) ([]domain.Deal, error) {
	args := m.Called(ctx, organizationID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealRepository) SaveDeal(ctx context.Context, deal domain.Deal, initialPayment *domain.Payment) error {
	args := m.Called(ctx, deal, initialPayment)
	return args.Error(0)
}

func (m *MockDealRepository) UpdateDeal(ctx context.Context, deal domain.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, organizationID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByStatus(ctx context.Context, organizationID string, status domain.PaymentStatus, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, organizationID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SummarizePaymentsByStatus(ctx context.Context, organizationID string, from, to time.Time) ([]domain.PaymentStatusSummary, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentStatusSummary), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, organizationID, paymentID string) error {
	args := m.Called(ctx, organizationID, paymentID)
	return args.Error(0)
}

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) SaveWorkType(ctx context.Context, workType domain.WorkType) error {
	args := m.Called(ctx, workType)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindWorkTypeByID(ctx context.Context, organizationID, workTypeID string) (*domain.WorkType, error) {
	args := m.Called(ctx, organizationID, workTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkType), args.Error(1)
}

func (m *MockCatalogRepository) FindWorkTypes(ctx context.Context, organizationID string) ([]domain.WorkType, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkType), args.Error(1)
}

func (m *MockCatalogRepository) SaveSourceType(ctx context.Context, sourceType domain.SourceType) error {
	args := m.Called(ctx, sourceType)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindSourceTypeByID(ctx context.Context, organizationID, sourceTypeID string) (*domain.SourceType, error) {
	args := m.Called(ctx, organizationID, sourceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceType), args.Error(1)
}

func (m *MockCatalogRepository) FindSourceTypes(ctx context.Context, organizationID string) ([]domain.SourceType, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceType), args.Error(1)
}

func (m *MockCatalogRepository) UpdateSourceType(ctx context.Context, sourceType domain.SourceType) error {
	args := m.Called(ctx, sourceType)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteSourceType(ctx context.Context, organizationID, sourceTypeID string) error {
	args := m.Called(ctx, organizationID, sourceTypeID)
	return args.Error(0)
}

// --- Mock SalesRepository ---
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) FindDealsInWindow(ctx context.Context, scope domain.SalesScope, from, to time.Time) ([]domain.Deal, error) {
	args := m.Called(ctx, scope, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

// --- Mock CommissionRepository ---
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) SaveCommissions(ctx context.Context, commissions []domain.Commission) error {
	args := m.Called(ctx, commissions)
	return args.Error(0)
}

func (m *MockCommissionRepository) FindCommissionsBetween(ctx context.Context, organizationID string, from, to time.Time) ([]domain.Commission, error) {
	args := m.Called(ctx, organizationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commission), args.Error(1)
}

// --- Mock OfferRepository ---
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) FindOfferByID(ctx context.Context, organizationID, offerID string) (*domain.Offer, error) {
	args := m.Called(ctx, organizationID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindOffers(ctx context.Context, organizationID string) ([]domain.Offer, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) DeleteOffer(ctx context.Context, organizationID, offerID string) error {
	args := m.Called(ctx, organizationID, offerID)
	return args.Error(0)
}

func (m *MockOfferRepository) AssignOfferTeam(ctx context.Context, organizationID, offerID, teamID string, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, organizationID, offerID, teamID, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Mock OrganizationAuthorizer ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeUserAction(ctx context.Context, organizationID, userID string, roles ...domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, organizationID, userID, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// allowAs makes the authorizer accept userID with role for any role list.
func allowAs(a *MockAuthorizer, organizationID, userID string, role domain.UserRole) *domain.User {
	user := &domain.User{UserID: userID, OrganizationID: organizationID, Role: role, FullName: "Requester"}
	a.On("AuthorizeUserAction", mock.Anything, organizationID, userID, mock.Anything).Return(user, nil)
	return user
}

var (
	_ portsrepo.SequenceRepository      = (*MockSequenceRepository)(nil)
	_ portsrepo.UserRepositoryFacade    = (*MockUserRepository)(nil)
	_ portsrepo.TeamRepositoryFacade    = (*MockTeamRepository)(nil)
	_ portsrepo.ClientRepositoryFacade  = (*MockClientRepository)(nil)
	_ portsrepo.DealRepositoryFacade    = (*MockDealRepository)(nil)
	_ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)
	_ portsrepo.CatalogRepository       = (*MockCatalogRepository)(nil)
	_ portsrepo.SalesRepository         = (*MockSalesRepository)(nil)
	_ portsrepo.CommissionRepository    = (*MockCommissionRepository)(nil)
	_ portsrepo.OfferRepositoryFacade   = (*MockOfferRepository)(nil)
)
