package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financehub/internal/models"
)

var (
	ErrProtectedFundNotFound = errors.New("protected fund not found")
)

// protectedFundRepository implements ProtectedFundRepositoryInterface
type protectedFundRepository struct {
	db *gorm.DB
}

// NewProtectedFundRepository creates a new protected fund repository
func NewProtectedFundRepository(db *gorm.DB) ProtectedFundRepositoryInterface {
	return &protectedFundRepository{
		db: db,
	}
}

func (r *protectedFundRepository) Create(fund *models.ProtectedFund) error {
	if err := r.db.Create(fund).Error; err != nil {
		return fmt.Errorf("failed to create protected fund: %w", err)
	}
	return nil
}

func (r *protectedFundRepository) GetByID(id uuid.UUID) (*models.ProtectedFund, error) {
	fund := &models.ProtectedFund{ID: id}
	if err := r.db.First(fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProtectedFundNotFound
		}
		return nil, fmt.Errorf("failed to get protected fund: %w", err)
	}
	return fund, nil
}

func (r *protectedFundRepository) GetAll() ([]models.ProtectedFund, error) {
	var funds []models.ProtectedFund
	if err := r.db.Order("created_at ASC").Find(&funds).Error; err != nil {
		return nil, fmt.Errorf("failed to get protected funds: %w", err)
	}
	return funds, nil
}

func (r *protectedFundRepository) GetByType(fundType string) ([]models.ProtectedFund, error) {
	var funds []models.ProtectedFund
	if err := r.db.Where("type = ?", fundType).Order("created_at ASC").Find(&funds).Error; err != nil {
		return nil, fmt.Errorf("failed to get protected funds by type: %w", err)
	}
	return funds, nil
}

func (r *protectedFundRepository) Update(fund *models.ProtectedFund) error {
	result := r.db.Save(fund)
	if result.Error != nil {
		return fmt.Errorf("failed to update protected fund: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProtectedFundNotFound
	}
	return nil
}

func (r *protectedFundRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ProtectedFund{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete protected fund: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProtectedFundNotFound
	}
	return nil
}
