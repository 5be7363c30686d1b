package models

import "errors"

var ErrInvalidCategory = errors.New("invalid category")

// Spending categories as they appear in exports and reports. The display
// names double as the stored values so the persisted collection stays
// readable without a lookup table.
const (
	CategoryHousing        = "Housing"
	CategoryUtilities      = "Utilities"
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryAuto           = "Auto"
	CategoryShopping       = "Shopping"
	CategoryEntertainment  = "Entertainment"
	CategoryHealth         = "Health"
	CategorySubscriptions  = "Subscriptions"
	CategoryInsurance      = "Insurance"
	CategoryEducation      = "Education"
	CategoryPersonalCare   = "Personal Care"
	CategoryFeesCharges    = "Fees & Charges"
	CategoryInvestments    = "Investments"
	CategoryCrypto         = "Crypto"
	CategoryIncome         = "Income"
	CategoryTransfer       = "Transfer"
	CategoryUncategorized  = "Uncategorized"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryHousing,
		CategoryUtilities,
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryAuto,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealth,
		CategorySubscriptions,
		CategoryInsurance,
		CategoryEducation,
		CategoryPersonalCare,
		CategoryFeesCharges,
		CategoryInvestments,
		CategoryCrypto,
		CategoryIncome,
		CategoryTransfer,
		CategoryUncategorized,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// ExpenseCategories returns the categories budgets can be set for.
// Income, Transfer and Uncategorized are excluded: they never represent
// discretionary spending.
func ExpenseCategories() []string {
	out := make([]string, 0, len(AllCategories()))
	for _, c := range AllCategories() {
		if c == CategoryIncome || c == CategoryTransfer || c == CategoryUncategorized {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ClassificationResult contains the outcome of classifying one description/amount pair
type ClassificationResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	IsTransfer bool    `json:"is_transfer"`
}
