package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SourceBank      = "bank"
	SourceBrokerage = "brokerage"
	SourceExchange  = "exchange"

	TransactionTypeIncome     = "income"
	TransactionTypeExpense    = "expense"
	TransactionTypeTransfer   = "transfer"
	TransactionTypeBuy        = "buy"
	TransactionTypeSell       = "sell"
	TransactionTypeDividend   = "dividend"
	TransactionTypeInterest   = "interest"
	TransactionTypeStaking    = "staking"
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeOther      = "other"

	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusFlagged  = "flagged"
)

var (
	ErrInvalidSource            = errors.New("invalid transaction source")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidConfidence        = errors.New("confidence must be between 0 and 1")
	ErrTransferCategoryMismatch = errors.New("transfer flag requires the Transfer category")
)

// Transaction is one normalized financial event after parsing. It is created
// by a source parser, adjusted by the transfer pair detector within the same
// import batch, and afterwards only touched by reviewer edits.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Confidence  float64         `gorm:"not null" json:"confidence"`
	IsTransfer  bool            `gorm:"not null;default:false" json:"is_transfer"`
	Source      string          `gorm:"type:varchar(20);not null;index" json:"source"`
	Account     string          `gorm:"type:varchar(100);not null" json:"account"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`

	Symbol   string           `gorm:"type:varchar(20)" json:"symbol,omitempty"`
	Quantity *decimal.Decimal `gorm:"type:decimal(18,8)" json:"quantity,omitempty"`
	Fees     decimal.Decimal  `gorm:"type:decimal(15,2);default:0" json:"fees"`
	Balance  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"balance,omitempty"`

	Reviewed bool   `gorm:"not null;default:false" json:"reviewed"`
	Status   string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// DedupKey is the exact (date, description, amount) identity used to
	// filter re-imports. Kept as a column so the dedupe check is one query.
	DedupKey string `gorm:"type:varchar(512);not null;index" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// DateLayout is the canonical calendar date form used everywhere.
const DateLayout = "2006-01-02"

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TransactionStatusPending
	}
	if t.DedupKey == "" {
		t.DedupKey = t.ComputeDedupKey()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate checks the invariants every stored record must hold.
func (t *Transaction) Validate() error {
	if !IsValidSource(t.Source) {
		return ErrInvalidSource
	}
	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}
	if t.Confidence < 0 || t.Confidence > 1 {
		return ErrInvalidConfidence
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	if !IsValidCategory(t.Category) {
		return fmt.Errorf("unknown category %q", t.Category)
	}
	if t.IsTransfer && t.Category != CategoryTransfer {
		return ErrTransferCategoryMismatch
	}
	return nil
}

// ComputeDedupKey derives the exact-match identity for duplicate filtering.
// Intentionally coarse: source and account are excluded so overlapping
// exports of the same statement collapse to one record.
func (t *Transaction) ComputeDedupKey() string {
	return strings.Join([]string{
		t.Date.Format(DateLayout),
		t.Description,
		t.Amount.String(),
	}, "|")
}

// DateString returns the canonical YYYY-MM-DD form of the transaction date
func (t *Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// Month returns the YYYY-MM bucket the transaction falls in
func (t *Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// IsApproved returns true once the record no longer needs review
func (t *Transaction) IsApproved() bool {
	return t.Status == TransactionStatusApproved
}

// IsFlagged returns true while an auto-detected transfer pair awaits confirmation
func (t *Transaction) IsFlagged() bool {
	return t.Status == TransactionStatusFlagged
}

// MarkTransferPair applies the pair-detector override: the record becomes a
// transfer but stays flagged rather than approved because the override beats
// whatever the classifier said and a human should confirm it.
func (t *Transaction) MarkTransferPair() {
	t.IsTransfer = true
	t.Category = CategoryTransfer
	t.Status = TransactionStatusFlagged
	t.Confidence = 0.9
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidSource checks if the source is one of the supported institutions
func IsValidSource(source string) bool {
	switch source {
	case SourceBank, SourceBrokerage, SourceExchange:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the review status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusFlagged:
		return true
	default:
		return false
	}
}

// SourceLabel maps a source constant to its human-readable institution name
func SourceLabel(source string) string {
	switch source {
	case SourceBank:
		return "Bank of America"
	case SourceBrokerage:
		return "Charles Schwab"
	case SourceExchange:
		return "Kraken"
	default:
		return source
	}
}

// DefaultAccountLabel returns the account label used when the import request
// does not name one.
func DefaultAccountLabel(source string) string {
	switch source {
	case SourceBrokerage:
		return "Schwab Brokerage"
	case SourceExchange:
		return "Kraken"
	default:
		return "BofA Account"
	}
}
