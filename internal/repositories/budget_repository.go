package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"financehub/internal/models"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates or replaces the budget for a category. Category is
// unique, so setting a budget twice just moves the limit.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_limit", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) GetByCategory(category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("category = ?", category).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *budgetRepository) Delete(category string) error {
	result := r.db.Delete(&models.Budget{}, "category = ?", category)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
