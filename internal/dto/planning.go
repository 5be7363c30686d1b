package dto

import (
	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

type NetWorthEntryRequest struct {
	Name     string          `json:"name" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=asset liability"`
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
	Date     string          `json:"date" validate:"omitempty,iso_date"`
}

type NetWorthSummary struct {
	Assets      decimal.Decimal         `json:"assets"`
	Liabilities decimal.Decimal         `json:"liabilities"`
	NetWorth    decimal.Decimal         `json:"net_worth"`
	Entries     []models.NetWorthEntry  `json:"entries"`
}

type ProtectedFundRequest struct {
	Name     string          `json:"name" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=emergency sinking goal investment"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline string          `json:"deadline" validate:"omitempty,iso_date"`
}

// EmergencyReserve reports how many months of average spending the
// emergency funds cover.
type EmergencyReserve struct {
	ProtectedTotal     decimal.Decimal `json:"protected_total"`
	EmergencyTotal     decimal.Decimal `json:"emergency_total"`
	AvgMonthlyExpenses decimal.Decimal `json:"avg_monthly_expenses"`
	MonthsCovered      float64         `json:"months_covered"`
	SixMonthTarget     decimal.Decimal `json:"six_month_target"`
}

type BudgetRequest struct {
	Category     string          `json:"category" validate:"required,category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}
