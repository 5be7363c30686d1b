package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"financehub/internal/config"
	"financehub/internal/models"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

func CreateTestTransaction(t *testing.T, db *DB, date, description string, amount float64) *models.Transaction {
	t.Helper()

	d, err := time.ParseInLocation(models.DateLayout, date, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		Date:        d,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Category:    models.CategoryUncategorized,
		Confidence:  0.1,
		Source:      models.SourceBank,
		Account:     "Test Account",
		Type:        models.TransactionTypeExpense,
		Status:      models.TransactionStatusPending,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}
