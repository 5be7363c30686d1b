package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"
)

var ErrNotFound = errors.New("resource not found")

type reviewService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewReviewService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ReviewServiceInterface {
	return &reviewService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

func (s *reviewService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	return s.transactionRepo.GetWithFilters(filters)
}

func (s *reviewService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ApplyEdit applies a review edit. Touching a record marks it reviewed
// but never moves its status on its own; approval and flag dismissal
// are explicit. The transfer coupling holds in both directions: marking
// a record a transfer forces the Transfer category, and moving a
// Transfer record to another category clears the flag.
func (s *reviewService) ApplyEdit(id uuid.UUID, edit *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	txn, err := s.GetTransaction(id)
	if err != nil {
		return nil, err
	}

	if edit.Category != nil {
		if !models.IsValidCategory(*edit.Category) {
			return nil, models.ErrInvalidCategory
		}
		txn.Category = *edit.Category
		if txn.Category != models.CategoryTransfer {
			txn.IsTransfer = false
		}
	}
	if edit.IsTransfer != nil {
		txn.IsTransfer = *edit.IsTransfer
		if txn.IsTransfer {
			txn.Category = models.CategoryTransfer
			txn.Type = models.TransactionTypeTransfer
		}
	}
	if edit.Account != nil {
		txn.Account = *edit.Account
	}

	txn.Reviewed = true
	if edit.Status != nil {
		if !models.IsValidTransactionStatus(*edit.Status) {
			return nil, models.ErrInvalidTransactionStatus
		}
		txn.Status = *edit.Status
	}

	if err := s.transactionRepo.Update(txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.Info("transaction edited",
		"transaction_id", txn.ID,
		"category", txn.Category,
		"status", txn.Status,
		"is_transfer", txn.IsTransfer)

	s.updateQueueGauge()
	return txn, nil
}

func (s *reviewService) BulkApprove(ids []uuid.UUID) (int64, error) {
	affected, err := s.transactionRepo.ApproveBulk(ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk approve: %w", err)
	}

	slog.Info("transactions bulk approved",
		"requested", len(ids),
		"approved", affected)

	s.metrics.IncrementCounter("review.bulk_approve", map[string]string{})
	s.updateQueueGauge()
	return affected, nil
}

func (s *reviewService) QueueCounts() (map[string]int64, error) {
	counts, err := s.transactionRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	return counts, nil
}

func (s *reviewService) updateQueueGauge() {
	counts, err := s.transactionRepo.CountByStatus()
	if err != nil {
		slog.Warn("failed to refresh review queue gauge", "error", err)
		return
	}
	s.metrics.RecordGauge("review.queue.pending",
		float64(counts[models.TransactionStatusPending]),
		map[string]string{"status": models.TransactionStatusPending})
	s.metrics.RecordGauge("review.queue.flagged",
		float64(counts[models.TransactionStatusFlagged]),
		map[string]string{"status": models.TransactionStatusFlagged})
}
