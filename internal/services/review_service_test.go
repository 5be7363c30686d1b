package services

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"
	"financehub/internal/repositories/repository_mocks"
)

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

type ReviewServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockTransactionRepositoryInterface
	service  ReviewServiceInterface
}

func (s *ReviewServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewReviewService(s.mockRepo, NewNoopMetrics())

	s.mockRepo.EXPECT().CountByStatus().Return(map[string]int64{}, nil).AnyTimes()
}

func (s *ReviewServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReviewServiceTestSuite) pendingTransaction() *models.Transaction {
	return &models.Transaction{
		ID:          uuid.New(),
		Date:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Description: gofakeit.Company(),
		Amount:      decimal.NewFromFloat(-42.50),
		Category:    models.CategoryUncategorized,
		Confidence:  0.1,
		Source:      models.SourceBank,
		Account:     "BofA Checking",
		Type:        models.TransactionTypeExpense,
		Status:      models.TransactionStatusPending,
	}
}

func (s *ReviewServiceTestSuite) TestApplyEdit_CategoryChangeKeepsStatus() {
	txn := s.pendingTransaction()
	s.mockRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)
	s.mockRepo.EXPECT().Update(txn).Return(nil)

	category := models.CategoryDining
	got, err := s.service.ApplyEdit(txn.ID, &dto.UpdateTransactionRequest{Category: &category})

	s.Require().NoError(err)
	s.Equal(models.CategoryDining, got.Category)
	s.True(got.Reviewed)
	s.Equal(models.TransactionStatusPending, got.Status)
}

func (s *ReviewServiceTestSuite) TestApplyEdit_AccountEditPreservesFlagged() {
	txn := s.pendingTransaction()
	txn.Category = models.CategoryTransfer
	txn.IsTransfer = true
	txn.Status = models.TransactionStatusFlagged
	s.mockRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)
	s.mockRepo.EXPECT().Update(txn).Return(nil)

	account := "Joint Checking"
	got, err := s.service.ApplyEdit(txn.ID, &dto.UpdateTransactionRequest{Account: &account})

	s.Require().NoError(err)
	s.Equal("Joint Checking", got.Account)
	s.True(got.Reviewed)
	s.Equal(models.TransactionStatusFlagged, got.Status)
}

func (s *ReviewServiceTestSuite) TestApplyEdit_TransferFlagForcesCategory() {
	txn := s.pendingTransaction()
	s.mockRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)
	s.mockRepo.EXPECT().Update(txn).Return(nil)

	isTransfer := true
	got, err := s.service.ApplyEdit(txn.ID, &dto.UpdateTransactionRequest{IsTransfer: &isTransfer})

	s.Require().NoError(err)
	s.True(got.IsTransfer)
	s.Equal(models.CategoryTransfer, got.Category)
	s.Equal(models.TransactionTypeTransfer, got.Type)
}

func (s *ReviewServiceTestSuite) TestApplyEdit_RecategorizingTransferClearsFlag() {
	txn := s.pendingTransaction()
	txn.Category = models.CategoryTransfer
	txn.IsTransfer = true
	s.mockRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)
	s.mockRepo.EXPECT().Update(txn).Return(nil)

	category := models.CategoryShopping
	got, err := s.service.ApplyEdit(txn.ID, &dto.UpdateTransactionRequest{Category: &category})

	s.Require().NoError(err)
	s.False(got.IsTransfer)
	s.Equal(models.CategoryShopping, got.Category)
}

func (s *ReviewServiceTestSuite) TestApplyEdit_InvalidCategory() {
	txn := s.pendingTransaction()
	s.mockRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)

	category := "Slush"
	_, err := s.service.ApplyEdit(txn.ID, &dto.UpdateTransactionRequest{Category: &category})
	s.ErrorIs(err, models.ErrInvalidCategory)
}

func (s *ReviewServiceTestSuite) TestApplyEdit_ExplicitStatusWins() {
	txn := s.pendingTransaction()
	s.mockRepo.EXPECT().GetByID(txn.ID).Return(txn, nil)
	s.mockRepo.EXPECT().Update(txn).Return(nil)

	status := models.TransactionStatusFlagged
	got, err := s.service.ApplyEdit(txn.ID, &dto.UpdateTransactionRequest{Status: &status})

	s.Require().NoError(err)
	s.True(got.Reviewed)
	s.Equal(models.TransactionStatusFlagged, got.Status)
}

func (s *ReviewServiceTestSuite) TestApplyEdit_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound)

	_, err := s.service.ApplyEdit(id, &dto.UpdateTransactionRequest{})
	s.ErrorIs(err, ErrNotFound)
}

func (s *ReviewServiceTestSuite) TestBulkApprove() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	s.mockRepo.EXPECT().ApproveBulk(ids).Return(int64(2), nil)

	affected, err := s.service.BulkApprove(ids)
	s.Require().NoError(err)
	s.Equal(int64(2), affected)
}

func (s *ReviewServiceTestSuite) TestListTransactions() {
	filters := models.TransactionFilters{Status: models.TransactionStatusPending}
	s.mockRepo.EXPECT().GetWithFilters(filters).Return([]models.Transaction{{}}, int64(1), nil)

	got, total, err := s.service.ListTransactions(filters)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(got, 1)
}
