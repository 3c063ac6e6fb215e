package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/sales_crm_app/internal/apperrors"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_app/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// recordingInsert stores into an in-memory set of taken identifiers and records every attempt.
type recordingInsert struct {
	taken    map[string]bool
	attempts []string
	failWith error
}

func (r *recordingInsert) insert(_ context.Context, identifier string) error {
	r.attempts = append(r.attempts, identifier)
	if r.failWith != nil {
		return r.failWith
	}
	if r.taken[identifier] {
		return apperrors.ErrDuplicate
	}
	r.taken[identifier] = true
	return nil
}

type IDAllocatorTestSuite struct {
	suite.Suite
	mockRepo  *MockSequenceRepository
	allocator portssvc.IDAllocatorSvc
	ctx       context.Context
	orgID     string
}

func (suite *IDAllocatorTestSuite) SetupTest() {
	suite.mockRepo = new(MockSequenceRepository)
	suite.allocator = services.NewIDAllocator(suite.mockRepo)
	suite.ctx = context.Background()
	suite.orgID = "org-1"
}

func (suite *IDAllocatorTestSuite) TestAllocate_CandidateFree() {
	ins := &recordingInsert{taken: map[string]bool{}}

	id, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindClient, "ORG-CL-001", ins.insert)

	suite.Require().NoError(err)
	suite.Equal("ORG-CL-001", id)
	suite.Equal([]string{"ORG-CL-001"}, ins.attempts)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindLatestIdentifier")
}

func (suite *IDAllocatorTestSuite) TestAllocate_RetriesWithSuccessorOfLatest() {
	ins := &recordingInsert{taken: map[string]bool{"ORG-CL-003": true, "ORG-CL-009": true}}
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindClient, suite.orgID).Return("ORG-CL-009", nil).Once()

	id, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindClient, "ORG-CL-003", ins.insert)

	suite.Require().NoError(err)
	suite.Equal("ORG-CL-010", id)
	suite.Equal([]string{"ORG-CL-003", "ORG-CL-010"}, ins.attempts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IDAllocatorTestSuite) TestAllocate_SecondCollisionIsConflict() {
	ins := &recordingInsert{taken: map[string]bool{"TM-001": true, "TM-005": true}}
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindTeam, suite.orgID).Return("TM-004", nil).Once()

	_, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindTeam, "TM-001", ins.insert)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.NotErrorIs(err, apperrors.ErrDuplicate)
	suite.Len(ins.attempts, 2, "never more than two insert attempts")
}

func (suite *IDAllocatorTestSuite) TestAllocate_NoPredecessor() {
	ins := &recordingInsert{taken: map[string]bool{"DL-001": true}}
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindDeal, suite.orgID).Return("", apperrors.ErrNotFound).Once()

	_, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindDeal, "DL-001", ins.insert)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Len(ins.attempts, 1)
}

func (suite *IDAllocatorTestSuite) TestAllocate_MalformedLatest() {
	ins := &recordingInsert{taken: map[string]bool{"DL-001": true}}
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindDeal, suite.orgID).Return("LEGACY-ABC", nil).Once()

	_, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindDeal, "DL-001", ins.insert)

	suite.ErrorIs(err, domain.ErrMalformedIdentifier)
	suite.Len(ins.attempts, 1)
}

func (suite *IDAllocatorTestSuite) TestAllocate_OtherInsertErrorsPassThrough() {
	dbErr := errors.New("connection reset")
	ins := &recordingInsert{taken: map[string]bool{}, failWith: dbErr}

	_, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindClient, "CL-001", ins.insert)

	suite.ErrorIs(err, dbErr)
	suite.Len(ins.attempts, 1)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindLatestIdentifier")
}

func (suite *IDAllocatorTestSuite) TestAllocate_RepositoryFailureOnLookup() {
	ins := &recordingInsert{taken: map[string]bool{"CL-001": true}}
	dbErr := errors.New("timeout")
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindClient, suite.orgID).Return("", dbErr).Once()

	_, err := suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindClient, "CL-001", ins.insert)

	suite.ErrorIs(err, dbErr)
}

func (suite *IDAllocatorTestSuite) TestAllocate_InputChecks() {
	ins := &recordingInsert{taken: map[string]bool{}}

	_, err := suite.allocator.Allocate(suite.ctx, "", domain.EntityKindClient, "CL-001", ins.insert)
	suite.ErrorIs(err, apperrors.ErrPrecondition)

	_, err = suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKindClient, "  ", ins.insert)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.allocator.Allocate(suite.ctx, suite.orgID, domain.EntityKind("INVOICE"), "IN-001", ins.insert)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Empty(ins.attempts)
}

func (suite *IDAllocatorTestSuite) TestLatestIdentifier() {
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindTeam, suite.orgID).Return("ORG-TM-999", nil).Once()

	latest, next, err := suite.allocator.LatestIdentifier(suite.ctx, suite.orgID, domain.EntityKindTeam)

	suite.Require().NoError(err)
	suite.Equal("ORG-TM-999", latest)
	suite.Equal("ORG-TM-1000", next)
}

func (suite *IDAllocatorTestSuite) TestLatestIdentifier_NoneYet() {
	suite.mockRepo.On("FindLatestIdentifier", suite.ctx, domain.EntityKindTeam, suite.orgID).Return("", apperrors.ErrNotFound).Once()

	_, _, err := suite.allocator.LatestIdentifier(suite.ctx, suite.orgID, domain.EntityKindTeam)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestIDAllocatorTestSuite(t *testing.T) {
	suite.Run(t, new(IDAllocatorTestSuite))
}
