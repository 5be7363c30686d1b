package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"financehub/internal/dto"
	"financehub/internal/models"
)

// ImportServiceInterface owns the batch half of an import: files parse
// concurrently, then dedupe, commit and transfer-pair flagging run
// serialized in submission order.
type ImportServiceInterface interface {
	ImportBatch(ctx context.Context, files []dto.ImportFileRequest) (*dto.ImportBatchResponse, error)
}

// ReviewServiceInterface defines the contract for the review queue
type ReviewServiceInterface interface {
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ApplyEdit(id uuid.UUID, edit *dto.UpdateTransactionRequest) (*models.Transaction, error)
	BulkApprove(ids []uuid.UUID) (int64, error)
	QueueCounts() (map[string]int64, error)
}

// InsightsServiceInterface computes analytics over approved,
// non-transfer history.
type InsightsServiceInterface interface {
	Summary() (*dto.InsightsSummary, error)
	RecurringCharges() ([]dto.RecurringCharge, error)
	// BudgetStatus reports limit vs spend per category for a YYYY-MM
	// month; the empty string means the current month.
	BudgetStatus(month string) ([]dto.BudgetStatus, error)
}

// PlanningServiceInterface defines the contract for net worth entries,
// protected funds and budgets.
type PlanningServiceInterface interface {
	NetWorthSummary() (*dto.NetWorthSummary, error)
	CreateNetWorthEntry(req *dto.NetWorthEntryRequest) (*models.NetWorthEntry, error)
	UpdateNetWorthEntry(id uuid.UUID, req *dto.NetWorthEntryRequest) (*models.NetWorthEntry, error)
	DeleteNetWorthEntry(id uuid.UUID) error

	ListProtectedFunds() ([]models.ProtectedFund, error)
	CreateProtectedFund(req *dto.ProtectedFundRequest) (*models.ProtectedFund, error)
	UpdateProtectedFund(id uuid.UUID, req *dto.ProtectedFundRequest) (*models.ProtectedFund, error)
	DeleteProtectedFund(id uuid.UUID) error
	EmergencyReserve() (*dto.EmergencyReserve, error)

	ListBudgets() ([]models.Budget, error)
	SetBudget(req *dto.BudgetRequest) (*models.Budget, error)
	DeleteBudget(category string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
