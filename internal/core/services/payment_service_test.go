package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/core/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo *MockPaymentRepository
	dealRepo    *MockDealRepository
	authorizer  *MockAuthorizer
	service     portssvc.PaymentSvcFacade
	ctx         context.Context
	orgID       string
	now         time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.paymentRepo = new(MockPaymentRepository)
	suite.dealRepo = new(MockDealRepository)
	suite.authorizer = new(MockAuthorizer)
	suite.ctx = context.Background()
	suite.orgID = "org-1"
	suite.now = time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewPaymentService(suite.paymentRepo, suite.dealRepo,
		services.WithPaymentAuthorizer(suite.authorizer),
		services.WithPaymentClock(func() time.Time { return suite.now }),
		services.WithPaymentLocation(time.UTC),
	)
}

func (suite *PaymentServiceTestSuite) pendingPayment() *domain.Payment {
	return &domain.Payment{
		PaymentID:      "p-1",
		OrganizationID: suite.orgID,
		DealID:         "d-1",
		ReceivedAmount: decimal.NewFromInt(250),
		PaymentDate:    day(3, 10),
		PaymentStatus:  domain.PaymentPending,
	}
}

func (suite *PaymentServiceTestSuite) TestAddPayment_StartsPending() {
	allowAs(suite.authorizer, suite.orgID, "u-sales", domain.RoleSales)
	suite.dealRepo.On("FindDealByID", suite.ctx, suite.orgID, "d-1").Return(&domain.Deal{DealID: "d-1"}, nil).Once()
	suite.paymentRepo.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentStatus == domain.PaymentPending && p.DealID == "d-1" && p.PaymentDate.Equal(day(3, 12))
	})).Return(nil).Once()

	payment, err := suite.service.AddPayment(suite.ctx, suite.orgID, "u-sales", dto.AddPaymentRequest{
		DealID: "d-1", ReceivedAmount: decimal.NewFromInt(100), PaymentDate: "2024-03-12",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, payment.PaymentStatus)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddPayment_UnknownDeal() {
	allowAs(suite.authorizer, suite.orgID, "u-sales", domain.RoleSales)
	suite.dealRepo.On("FindDealByID", suite.ctx, suite.orgID, "d-x").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AddPayment(suite.ctx, suite.orgID, "u-sales", dto.AddPaymentRequest{
		DealID: "d-x", ReceivedAmount: decimal.NewFromInt(100), PaymentDate: "2024-03-12",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.paymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestAddPayment_RejectsNonPositiveAmount() {
	allowAs(suite.authorizer, suite.orgID, "u-sales", domain.RoleSales)

	_, err := suite.service.AddPayment(suite.ctx, suite.orgID, "u-sales", dto.AddPaymentRequest{
		DealID: "d-1", ReceivedAmount: decimal.NewFromInt(-5), PaymentDate: "2024-03-12",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_Verified() {
	allowAs(suite.authorizer, suite.orgID, "u-verifier", domain.RoleVerifier)
	suite.paymentRepo.On("FindPaymentByID", suite.ctx, suite.orgID, "p-1").Return(suite.pendingPayment(), nil).Once()
	suite.paymentRepo.On("UpdatePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentStatus == domain.PaymentVerified && p.VerifierID != nil && *p.VerifierID == "u-verifier"
	})).Return(nil).Once()

	payment, err := suite.service.VerifyPayment(suite.ctx, suite.orgID, "u-verifier", "p-1", dto.VerifyPaymentRequest{Status: domain.PaymentVerified})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentVerified, payment.PaymentStatus)
	suite.Require().NotNil(payment.VerifiedAt)
	suite.Equal(suite.now, *payment.VerifiedAt)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_DeniedNeedsRemarks() {
	allowAs(suite.authorizer, suite.orgID, "u-verifier", domain.RoleVerifier)
	suite.paymentRepo.On("FindPaymentByID", suite.ctx, suite.orgID, "p-1").Return(suite.pendingPayment(), nil).Once()

	_, err := suite.service.VerifyPayment(suite.ctx, suite.orgID, "u-verifier", "p-1", dto.VerifyPaymentRequest{Status: domain.PaymentDenied})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.paymentRepo.AssertNotCalled(suite.T(), "UpdatePayment")
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_OnlyOnce() {
	allowAs(suite.authorizer, suite.orgID, "u-verifier", domain.RoleVerifier)
	settled := suite.pendingPayment()
	settled.PaymentStatus = domain.PaymentDenied
	suite.paymentRepo.On("FindPaymentByID", suite.ctx, suite.orgID, "p-1").Return(settled, nil).Once()

	_, err := suite.service.VerifyPayment(suite.ctx, suite.orgID, "u-verifier", "p-1", dto.VerifyPaymentRequest{Status: domain.PaymentVerified})

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestVerifyPayment_SalesRoleForbidden() {
	roles := []domain.UserRole{domain.RoleAdmin, domain.RoleVerifier}
	suite.authorizer.On("AuthorizeUserAction", suite.ctx, suite.orgID, "u-sales", roles).Return(nil, apperrors.ErrForbidden).Once()

	_, err := suite.service.VerifyPayment(suite.ctx, suite.orgID, "u-sales", "p-1", dto.VerifyPaymentRequest{Status: domain.PaymentVerified})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.paymentRepo.AssertNotCalled(suite.T(), "FindPaymentByID")
}

func (suite *PaymentServiceTestSuite) TestEditPayment_MarksEdited() {
	allowAs(suite.authorizer, suite.orgID, "u-sales", domain.RoleSales)
	suite.paymentRepo.On("FindPaymentByID", suite.ctx, suite.orgID, "p-1").Return(suite.pendingPayment(), nil).Once()
	suite.paymentRepo.On("UpdatePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.IsEdited && p.ReceivedAmount.Equal(decimal.NewFromInt(300))
	})).Return(nil).Once()
	amount := decimal.NewFromInt(300)

	payment, err := suite.service.EditPayment(suite.ctx, suite.orgID, "u-sales", "p-1", dto.EditPaymentRequest{ReceivedAmount: &amount})

	suite.Require().NoError(err)
	suite.True(payment.IsEdited)
	suite.Require().NotNil(payment.EditedAt)
}

func (suite *PaymentServiceTestSuite) TestEditPayment_AfterVerificationKeepsStatus() {
	allowAs(suite.authorizer, suite.orgID, "u-admin", domain.RoleAdmin)
	verified := suite.pendingPayment()
	verified.PaymentStatus = domain.PaymentVerified
	suite.paymentRepo.On("FindPaymentByID", suite.ctx, suite.orgID, "p-1").Return(verified, nil).Once()
	suite.paymentRepo.On("UpdatePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.IsEdited && p.PaymentStatus == domain.PaymentVerified && p.Remarks == "receipt re-issued"
	})).Return(nil).Once()
	remarks := "receipt re-issued"

	payment, err := suite.service.EditPayment(suite.ctx, suite.orgID, "u-admin", "p-1", dto.EditPaymentRequest{Remarks: &remarks})

	suite.Require().NoError(err)
	suite.True(payment.IsEdited)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_VerifiedIsKept() {
	allowAs(suite.authorizer, suite.orgID, "u-admin", domain.RoleAdmin)
	verified := suite.pendingPayment()
	verified.PaymentStatus = domain.PaymentVerified
	suite.paymentRepo.On("FindPaymentByID", suite.ctx, suite.orgID, "p-1").Return(verified, nil).Once()

	err := suite.service.DeletePayment(suite.ctx, suite.orgID, "u-admin", "p-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.paymentRepo.AssertNotCalled(suite.T(), "DeletePayment")
}

func (suite *PaymentServiceTestSuite) TestVerificationDashboard_ZeroFillsStatuses() {
	allowAs(suite.authorizer, suite.orgID, "u-verifier", domain.RoleVerifier)
	from, to := day(3, 1), domain.EndOfDay(day(3, 31))
	suite.paymentRepo.On("SummarizePaymentsByStatus", suite.ctx, suite.orgID, from, to).Return([]domain.PaymentStatusSummary{
		{Status: domain.PaymentVerified, Count: 2, TotalAmount: decimal.NewFromInt(700)},
	}, nil).Once()

	dashboard, err := suite.service.VerificationDashboard(suite.ctx, suite.orgID, "u-verifier", domain.PeriodSpec{Token: domain.PeriodThisMonth})

	suite.Require().NoError(err)
	suite.Require().Len(dashboard.Statuses, 3)
	suite.Equal(domain.PaymentPending, dashboard.Statuses[0].Status)
	suite.Equal(0, dashboard.Statuses[0].Count)
	suite.Equal(2, dashboard.Statuses[1].Count)
	suite.Equal(domain.PaymentDenied, dashboard.Statuses[2].Status)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByStatus_DefaultsToPending() {
	allowAs(suite.authorizer, suite.orgID, "u-verifier", domain.RoleVerifier)
	suite.paymentRepo.On("FindPaymentsByStatus", suite.ctx, suite.orgID, domain.PaymentPending, 20, 0).Return([]domain.Payment{*suite.pendingPayment()}, nil).Once()

	payments, err := suite.service.ListPaymentsByStatus(suite.ctx, suite.orgID, "u-verifier", dto.ListPaymentsParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(payments, 1)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
