package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financehub/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetAll retrieves the full collection ordered by date. The pair
// detector and the insight queries both want the whole thing; personal
// finance volumes make that reasonable.
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date ASC, created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions matching the review filters with pagination
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	query := r.db.Model(&models.Transaction{})

	if filters.Status != "" {
		if filters.Status == "unreviewed" {
			query = query.Where("status <> ?", models.TransactionStatusApproved)
		} else {
			query = query.Where("status = ?", filters.Status)
		}
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.Account != "" {
		query = query.Where("account = ?", filters.Account)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.TransferOnly {
		query = query.Where("is_transfer = ?", true)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []models.Transaction
	q := query.Order("CASE WHEN status = 'flagged' THEN 0 ELSE 1 END, date DESC")
	if filters.Limit > 0 {
		q = q.Offset(filters.Offset).Limit(filters.Limit)
	}
	if err := q.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByDateRange retrieves transactions within a date range
func (r *transactionRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// Update persists reviewer edits to a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Save(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// ApproveBulk marks the given transactions approved and reviewed,
// returning how many rows changed.
func (r *transactionRepository) ApproveBulk(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.Model(&models.Transaction{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     models.TransactionStatusApproved,
			"reviewed":   true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk approve transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountByStatus returns how many transactions sit in each review status
func (r *transactionRepository) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := r.db.Model(&models.Transaction{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// ExistingDedupKeys returns the identity keys of every stored
// transaction, used to filter re-imports.
func (r *transactionRepository) ExistingDedupKeys() (map[string]struct{}, error) {
	var keys []string
	if err := r.db.Model(&models.Transaction{}).
		Pluck("dedup_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to load dedup keys: %w", err)
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set, nil
}

// CommitImport applies one file's merge step atomically: the surviving
// new records are inserted and any records retagged by the transfer
// pair detector are saved, all in a single database transaction.
func (r *transactionRepository) CommitImport(created []*models.Transaction, updated []*models.Transaction) error {
	if len(created) == 0 && len(updated) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(created) > 0 {
			if err := tx.Create(created).Error; err != nil {
				return fmt.Errorf("failed to insert imported transactions: %w", err)
			}
		}
		for _, t := range updated {
			if err := tx.Save(t).Error; err != nil {
				return fmt.Errorf("failed to update paired transaction: %w", err)
			}
		}
		return nil
	})
}
