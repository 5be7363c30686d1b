package repositories

import (
	"time"

	"github.com/google/uuid"

	"financehub/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	ApproveBulk(ids []uuid.UUID) (int64, error)
	CountByStatus() (map[string]int64, error)
	ExistingDedupKeys() (map[string]struct{}, error)
	CommitImport(created []*models.Transaction, updated []*models.Transaction) error
}

// NetWorthRepositoryInterface defines the contract for net worth entry operations
type NetWorthRepositoryInterface interface {
	Create(entry *models.NetWorthEntry) error
	GetByID(id uuid.UUID) (*models.NetWorthEntry, error)
	GetAll() ([]models.NetWorthEntry, error)
	Update(entry *models.NetWorthEntry) error
	Delete(id uuid.UUID) error
}

// ProtectedFundRepositoryInterface defines the contract for protected fund operations
type ProtectedFundRepositoryInterface interface {
	Create(fund *models.ProtectedFund) error
	GetByID(id uuid.UUID) (*models.ProtectedFund, error)
	GetAll() ([]models.ProtectedFund, error)
	GetByType(fundType string) ([]models.ProtectedFund, error)
	Update(fund *models.ProtectedFund) error
	Delete(id uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetAll() ([]models.Budget, error)
	GetByCategory(category string) (*models.Budget, error)
	Delete(category string) error
}
