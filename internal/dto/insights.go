package dto

import "github.com/shopspring/decimal"

// CashflowTotals summarizes approved, non-transfer activity.
type CashflowTotals struct {
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Net         decimal.Decimal `json:"net"`
	SavingsRate float64         `json:"savings_rate"`
}

type MonthlyCashflow struct {
	Month       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Net         decimal.Decimal `json:"net"`
	SavingsRate float64         `json:"savings_rate"`
}

type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type MerchantSpend struct {
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

type InsightsSummary struct {
	Totals       CashflowTotals    `json:"totals"`
	Monthly      []MonthlyCashflow `json:"monthly"`
	Categories   []CategorySpend   `json:"categories"`
	TopMerchants []MerchantSpend   `json:"top_merchants"`
}

// RecurringCharge is a detected subscription-like expense group.
type RecurringCharge struct {
	Description string          `json:"description"`
	Average     decimal.Decimal `json:"average"`
	Frequency   int             `json:"frequency"`
	Annualized  decimal.Decimal `json:"annualized"`
}

// BudgetStatus compares a category's limit against the month's spend and
// the historical monthly average.
type BudgetStatus struct {
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
	Average      decimal.Decimal `json:"average"`
	Remaining    decimal.Decimal `json:"remaining"`
	OverBudget   bool            `json:"over_budget"`
}
