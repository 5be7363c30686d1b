package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"financehub/internal/models"
)

var (
	ErrNetWorthEntryNotFound = errors.New("net worth entry not found")
)

// netWorthRepository implements NetWorthRepositoryInterface
type netWorthRepository struct {
	db *gorm.DB
}

// NewNetWorthRepository creates a new net worth repository
func NewNetWorthRepository(db *gorm.DB) NetWorthRepositoryInterface {
	return &netWorthRepository{
		db: db,
	}
}

func (r *netWorthRepository) Create(entry *models.NetWorthEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create net worth entry: %w", err)
	}
	return nil
}

func (r *netWorthRepository) GetByID(id uuid.UUID) (*models.NetWorthEntry, error) {
	entry := &models.NetWorthEntry{ID: id}
	if err := r.db.First(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNetWorthEntryNotFound
		}
		return nil, fmt.Errorf("failed to get net worth entry: %w", err)
	}
	return entry, nil
}

func (r *netWorthRepository) GetAll() ([]models.NetWorthEntry, error) {
	var entries []models.NetWorthEntry
	if err := r.db.Order("type ASC, value DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get net worth entries: %w", err)
	}
	return entries, nil
}

func (r *netWorthRepository) Update(entry *models.NetWorthEntry) error {
	result := r.db.Save(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to update net worth entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNetWorthEntryNotFound
	}
	return nil
}

func (r *netWorthRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.NetWorthEntry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete net worth entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNetWorthEntryNotFound
	}
	return nil
}
