package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	NetWorthTypeAsset     = "asset"
	NetWorthTypeLiability = "liability"

	FundTypeEmergency  = "emergency"
	FundTypeSinking    = "sinking"
	FundTypeGoal       = "goal"
	FundTypeInvestment = "investment"
)

var (
	ErrInvalidNetWorthType = errors.New("net worth entry type must be asset or liability")
	ErrInvalidFundType     = errors.New("invalid protected fund type")
	ErrInvalidFundTarget   = errors.New("protected fund target must be positive")
)

// NetWorthEntry is one asset or liability position tracked alongside the
// transaction collection. Values are point-in-time and edited in place.
type NetWorthEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Type      string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Category  string          `gorm:"type:varchar(50);not null" json:"category"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	Date      time.Time       `gorm:"type:date;not null" json:"date"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *NetWorthEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return e.Validate()
}

func (e *NetWorthEntry) Validate() error {
	if e.Type != NetWorthTypeAsset && e.Type != NetWorthTypeLiability {
		return ErrInvalidNetWorthType
	}
	if e.Name == "" {
		return errors.New("net worth entry name is required")
	}
	return nil
}

func (e *NetWorthEntry) TableName() string {
	return "net_worth_entries"
}

// ProtectedFund is a savings pot with a target the user is working toward.
type ProtectedFund struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Type      string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Target    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target"`
	Current   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current"`
	Deadline  *time.Time      `gorm:"type:date" json:"deadline,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (f *ProtectedFund) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return f.Validate()
}

func (f *ProtectedFund) Validate() error {
	switch f.Type {
	case FundTypeEmergency, FundTypeSinking, FundTypeGoal, FundTypeInvestment:
	default:
		return ErrInvalidFundType
	}
	if f.Name == "" {
		return errors.New("protected fund name is required")
	}
	if !f.Target.IsPositive() {
		return ErrInvalidFundTarget
	}
	return nil
}

func (f *ProtectedFund) TableName() string {
	return "protected_funds"
}

// Budget is a monthly spending limit for one expense category.
type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category     string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_limit"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

func (b *Budget) Validate() error {
	if !IsValidCategory(b.Category) {
		return errors.New("unknown budget category")
	}
	if b.Category == CategoryIncome || b.Category == CategoryTransfer || b.Category == CategoryUncategorized {
		return errors.New("budgets apply to expense categories only")
	}
	if b.MonthlyLimit.IsNegative() {
		return errors.New("budget limit cannot be negative")
	}
	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}
