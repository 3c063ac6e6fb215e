package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/dto"
	"github.com/SscSPs/sales_crm_app/internal/handlers"
	"github.com/SscSPs/sales_crm_app/internal/platform/config"
	"github.com/SscSPs/sales_crm_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtSecret  string
	orgID      string
	userID     string
	dealSvc    *MockDealService
	paymentSvc *MockPaymentService
	salesSvc   *MockSalesService
	teamSvc    *MockTeamService
	userSvc    *MockUserService
	offerSvc   *MockOfferService
}

// generateTestToken creates a signed access token scoped to the suite's organization.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.orgID, suite.jwtSecret, time.Hour, "crm-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.dealSvc = new(MockDealService)
	suite.paymentSvc = new(MockPaymentService)
	suite.salesSvc = new(MockSalesService)
	suite.teamSvc = new(MockTeamService)
	suite.userSvc = new(MockUserService)
	suite.offerSvc = new(MockOfferService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		IsProduction:   true,
		ReportLocation: time.UTC,
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		User:    suite.userSvc,
		Team:    suite.teamSvc,
		Deal:    suite.dealSvc,
		Payment: suite.paymentSvc,
		Sales:   suite.salesSvc,
		Offer:   suite.offerSvc,
	})
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &payload)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/deals", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.dealSvc.AssertNotCalled(suite.T(), "ListDeals")
}

func (suite *HandlerTestSuite) TestListDeals_PassesContinuationToken() {
	deal := domain.Deal{
		DealID:    uuid.NewString(),
		DealCode:  "ORG-DL-012",
		DealValue: decimal.NewFromInt(5000),
		DealDate:  time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC),
	}
	suite.dealSvc.On("ListDeals", mock.Anything, suite.orgID, suite.userID, mock.MatchedBy(func(p dto.ListDealsParams) bool {
		return p.Limit == 10 && p.NextToken == "abc" && p.ClientID == "c-1"
	})).Return([]domain.Deal{deal}, "def", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/deals?limit=10&nextToken=abc&clientID=c-1", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListDealsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("def", resp.NextToken)
	suite.Require().Len(resp.Deals, 1)
	suite.Equal("ORG-DL-012", resp.Deals[0].DealCode)
	suite.Equal("2024-03-04", resp.Deals[0].DealDate)
	suite.dealSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListDeals_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/deals?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.dealSvc.AssertNotCalled(suite.T(), "ListDeals")
}

func (suite *HandlerTestSuite) TestCreateDeal_ReportsMissingFields() {
	w := suite.do(http.MethodPost, "/api/v1/deals", map[string]any{"dealName": "Website"})

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Fields []string `json:"fields"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Fields, "dealCode")
	suite.Contains(resp.Fields, "dealValue")
	suite.NotContains(resp.Fields, "dealName")
	suite.dealSvc.AssertNotCalled(suite.T(), "CreateDeal")
}

func (suite *HandlerTestSuite) TestCreateDeal_CodeConflict() {
	suite.dealSvc.On("CreateDeal", mock.Anything, suite.orgID, suite.userID, mock.AnythingOfType("dto.CreateDealRequest")).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPost, "/api/v1/deals", map[string]any{
		"dealCode": "ORG-DL-001", "clientID": "c-1", "dealName": "Website", "workTypeID": "wt-1",
		"sourceTypeID": "st-1", "dealValue": "1200", "dealDate": "2024-03-01", "dueDate": "2024-03-31",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestVerifyPayment_Settles() {
	paymentID := uuid.NewString()
	suite.paymentSvc.On("VerifyPayment", mock.Anything, suite.orgID, suite.userID, paymentID, dto.VerifyPaymentRequest{Status: domain.PaymentVerified}).
		Return(&domain.Payment{
			PaymentID:      paymentID,
			PaymentStatus:  domain.PaymentVerified,
			ReceivedAmount: decimal.NewFromInt(250),
			PaymentDate:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			VerifiedAt:     ptrTime(time.Now()),
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/"+paymentID+"/verify", map[string]any{"status": "VERIFIED"})

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.PaymentVerified, resp.PaymentStatus)
}

func (suite *HandlerTestSuite) TestVerifyPayment_DenialNeedsRemarks() {
	w := suite.do(http.MethodPost, "/api/v1/payments/p-1/verify", map[string]any{"status": "DENIED"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.paymentSvc.AssertNotCalled(suite.T(), "VerifyPayment")
}

func (suite *HandlerTestSuite) TestVerifyPayment_AlreadySettled() {
	suite.paymentSvc.On("VerifyPayment", mock.Anything, suite.orgID, suite.userID, "p-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: payment p-1 is already VERIFIED", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments/p-1/verify", map[string]any{"status": "VERIFIED"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already VERIFIED")
}

func (suite *HandlerTestSuite) TestDeletePayment_NoContent() {
	suite.paymentSvc.On("DeletePayment", mock.Anything, suite.orgID, suite.userID, "p-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/payments/p-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.paymentSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestVerificationDashboard_UnknownPeriod() {
	w := suite.do(http.MethodGet, "/api/v1/payments/dashboard?period=fortnight", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.paymentSvc.AssertNotCalled(suite.T(), "VerificationDashboard")
}

func (suite *HandlerTestSuite) TestSalesSummary_ParsesQuery() {
	suite.salesSvc.On("SalesSummary", mock.Anything, suite.orgID, suite.userID, mock.MatchedBy(func(q domain.SalesQuery) bool {
		return q.Period.Token == domain.PeriodCustomRange &&
			q.Dimension == domain.GroupBySourceType &&
			q.Period.StartDate != nil && q.Period.StartDate.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
			q.Period.EndDate != nil && q.TeamID == "team-1"
	})).Return(&domain.SalesReport{Dimension: domain.GroupBySourceType}, nil).Once()

	w := suite.do(http.MethodGet,
		"/api/v1/sales/summary?period=customRange&startDate=2024-03-01&endDate=2024-03-15&groupBy=sourceType&teamID=team-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.salesSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSalesSummary_UnknownDimension() {
	w := suite.do(http.MethodGet, "/api/v1/sales/summary?groupBy=planet", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.salesSvc.AssertNotCalled(suite.T(), "SalesSummary")
}

func (suite *HandlerTestSuite) TestEmployeeSales_EmptyTeamIsNotFound() {
	suite.salesSvc.On("EmployeeSalesByTeam", mock.Anything, suite.orgID, suite.userID, "team-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: no employees found for team team-1", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/teams/team-1/employees?period=thisMonth", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestTeamSales_EmptyTeamCarriesMessage() {
	suite.salesSvc.On("TeamSales", mock.Anything, suite.orgID, suite.userID, "team-1", domain.PeriodSpec{Token: domain.PeriodThisWeek}).
		Return(&domain.TeamSalesReport{TeamID: "team-1", Message: "No users found in this team"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/teams/team-1?period=thisWeek", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "No users found in this team")
}

func (suite *HandlerTestSuite) TestLatestTeamCode() {
	suite.teamSvc.On("LatestTeamCode", mock.Anything, suite.orgID).Return("ORG-TM-004", "ORG-TM-005", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/teams/latest-code", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.LatestCodeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ORG-TM-005", resp.NextCode)
	suite.teamSvc.AssertNotCalled(suite.T(), "GetTeam")
}

func (suite *HandlerTestSuite) TestDeleteTeam_Forbidden() {
	suite.teamSvc.On("DeleteTeam", mock.Anything, suite.orgID, suite.userID, "team-1").Return(apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodDelete, "/api/v1/teams/team-1", nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCreateUser_ReturnsTemporaryPassword() {
	created := &domain.User{UserID: uuid.NewString(), OrganizationID: suite.orgID, FullName: "Asha Rai", Email: "asha@example.com", Role: domain.RoleSales}
	suite.userSvc.On("CreateUser", mock.Anything, suite.orgID, suite.userID, mock.MatchedBy(func(r dto.CreateUserRequest) bool {
		return r.Email == "asha@example.com" && r.Role == domain.RoleSales
	})).Return(created, "tmp-pass-123", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", map[string]any{"fullName": "Asha Rai", "email": "asha@example.com", "role": "SALES"})

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.CreateUserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tmp-pass-123", resp.TemporaryPassword)
	suite.Equal(created.UserID, resp.UserID)
}

func (suite *HandlerTestSuite) TestServerErrorHidesDetail() {
	suite.teamSvc.On("ListTeams", mock.Anything, suite.orgID).Return(nil, apperrors.NewAppError(500, "pool exhausted", nil)).Once()

	w := suite.do(http.MethodGet, "/api/v1/teams", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "pool exhausted")
}

func (suite *HandlerTestSuite) TestCompareSourceTypes_Window() {
	suite.salesSvc.On("CompareSourceTypes", mock.Anything, suite.orgID, suite.userID,
		domain.ComparisonQuery{Window: domain.CompareWeek, TeamID: "team-1"}).
		Return(&domain.SourceTypeComparison{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/source-types/compare?window=week&teamID=team-1", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"sourceTypes":[]`)
	suite.salesSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCompareSourceTypes_UnknownWindow() {
	w := suite.do(http.MethodGet, "/api/v1/sales/source-types/compare?window=quarter", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.salesSvc.AssertNotCalled(suite.T(), "CompareSourceTypes")
}

func (suite *HandlerTestSuite) TestUserSalesMetrics_ParsesDate() {
	suite.salesSvc.On("UserSalesMetrics", mock.Anything, suite.orgID, suite.userID, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)).
		Return(&domain.UserSalesMetricsReport{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/users?date=2024-03-20", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"users":[]`)
}

func (suite *HandlerTestSuite) TestCreateOffer_RequiresDate() {
	w := suite.do(http.MethodPost, "/api/v1/offers", map[string]any{"target": "1000"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.offerSvc.AssertNotCalled(suite.T(), "CreateOffer")
}

func (suite *HandlerTestSuite) TestAssignOffer() {
	teamID := "team-1"
	suite.offerSvc.On("AssignOfferToTeam", mock.Anything, suite.orgID, suite.userID, "of-1", dto.AssignOfferRequest{TeamID: teamID}).
		Return(&domain.Offer{OfferID: "of-1", TeamID: &teamID, TeamName: "Alpha", OfferDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/offers/of-1/team", map[string]any{"teamID": teamID})

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.OfferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Alpha", resp.TeamName)
	suite.Equal("2024-03-01", resp.OfferDate)
}

func (suite *HandlerTestSuite) TestOfferTarget() {
	offer := domain.Offer{OfferID: "of-1", Target: decimal.NewFromInt(1000), OfferDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}
	suite.offerSvc.On("OfferTargetProgress", mock.Anything, suite.orgID, suite.userID, "of-1").
		Return(&domain.OfferTargetProgress{Offer: offer, TotalSales: decimal.NewFromInt(1200), TargetMet: true}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/offers/of-1/target", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.OfferTargetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.TargetMet)
	suite.True(decimal.NewFromInt(1200).Equal(resp.TotalSales))
}

func (suite *HandlerTestSuite) TestDeleteUser_StillOwnsDeals() {
	suite.userSvc.On("DeleteUser", mock.Anything, suite.orgID, suite.userID, "u-1").
		Return(fmt.Errorf("%w: user u-1 is still referenced", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/users/u-1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
