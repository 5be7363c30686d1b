package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

// AutoApproveThreshold is the confidence at or above which a freshly
// parsed record skips the review queue.
const AutoApproveThreshold = 0.8

// categoryOrder fixes the evaluation order of the per-category keyword
// tables. Map iteration is randomized, and a description matching two
// tables must classify the same way on every run.
var categoryOrder = []string{
	models.CategoryHousing,
	models.CategoryUtilities,
	models.CategoryGroceries,
	models.CategoryDining,
	models.CategoryTransportation,
	models.CategoryAuto,
	models.CategoryShopping,
	models.CategoryEntertainment,
	models.CategoryHealth,
	models.CategorySubscriptions,
	models.CategoryInsurance,
	models.CategoryEducation,
	models.CategoryPersonalCare,
	models.CategoryFeesCharges,
}

// Classifier assigns a spending category, confidence and transfer flag
// from a description and amount. It is a pure function of its inputs
// plus the keyword tables and is only consulted for bank records;
// brokerage and exchange rows carry authoritative structural fields.
type Classifier struct {
	rules Rules
}

func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

var oneHundred = decimal.NewFromInt(100)

// Classify runs the rule cascade, first match wins:
// transfer keywords, income keywords, per-category keywords, then the
// amount-shape fallbacks. The fallbacks exist only to bias review
// ordering; their confidence never reaches the auto-approve threshold.
func (c *Classifier) Classify(description string, amount decimal.Decimal) models.ClassificationResult {
	d := strings.ToLower(description)

	for _, kw := range c.rules.Transfer {
		if strings.Contains(d, kw) {
			return models.ClassificationResult{Category: models.CategoryTransfer, Confidence: 0.85, IsTransfer: true}
		}
	}
	for _, kw := range c.rules.Income {
		if strings.Contains(d, kw) {
			return models.ClassificationResult{Category: models.CategoryIncome, Confidence: 0.9}
		}
	}
	for _, cat := range categoryOrder {
		for _, kw := range c.rules.Categories[cat] {
			if strings.Contains(d, kw) {
				return models.ClassificationResult{Category: cat, Confidence: 0.8}
			}
		}
	}

	// Large round inbound amounts are statistically more likely to be
	// intra-account movements than income.
	if amount.IsPositive() && amount.GreaterThanOrEqual(oneHundred) && amount.IsInteger() {
		return models.ClassificationResult{Category: models.CategoryTransfer, Confidence: 0.5, IsTransfer: true}
	}
	if amount.IsPositive() {
		return models.ClassificationResult{Category: models.CategoryIncome, Confidence: 0.3}
	}
	return models.ClassificationResult{Category: models.CategoryUncategorized, Confidence: 0.1}
}
