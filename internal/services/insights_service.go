package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"
)

const (
	topMerchantLimit = 10
	// recurringKeyLen is how much of the digit-stripped description
	// identifies a merchant. "NETFLIX.COM 866-579-7172" and
	// "NETFLIX.COM 866-716-0414" collapse to the same key.
	recurringKeyLen = 30
	monthsPerYear   = 12
)

// recurringKeyStrip removes store and reference numbers so repeat
// charges from the same merchant group together.
var recurringKeyStrip = regexp.MustCompile(`[#0-9]`)

type insightsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	// now is injectable so current-month logic is testable.
	now func() time.Time
}

func NewInsightsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) InsightsServiceInterface {
	return &insightsService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		now:             time.Now,
	}
}

// settled returns the records analytics run over: approved and not a
// transfer. Pending rows would double-count once edited, and transfers
// are internal movement, not income or spending.
func (s *insightsService) settled() ([]models.Transaction, error) {
	all, err := s.transactionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	out := make([]models.Transaction, 0, len(all))
	for _, t := range all {
		if t.IsTransfer || !t.IsApproved() {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func isIncomeRecord(t *models.Transaction) bool {
	return t.Category == models.CategoryIncome ||
		(t.Amount.IsPositive() && t.Category != models.CategoryTransfer)
}

func isExpenseRecord(t *models.Transaction) bool {
	return t.Amount.IsNegative() && t.Category != models.CategoryIncome
}

func (s *insightsService) Summary() (*dto.InsightsSummary, error) {
	settled, err := s.settled()
	if err != nil {
		return nil, err
	}

	summary := &dto.InsightsSummary{
		Totals: dto.CashflowTotals{
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		},
	}

	for i := range settled {
		t := &settled[i]
		if isIncomeRecord(t) {
			summary.Totals.Income = summary.Totals.Income.Add(t.Amount)
		}
		if isExpenseRecord(t) {
			summary.Totals.Expenses = summary.Totals.Expenses.Add(t.Amount.Abs())
		}
	}
	summary.Totals.Net = summary.Totals.Income.Sub(summary.Totals.Expenses)
	if summary.Totals.Income.IsPositive() {
		summary.Totals.SavingsRate = summary.Totals.Net.Div(summary.Totals.Income).InexactFloat64() * 100
	}

	summary.Monthly = monthlySeries(settled)
	summary.Categories = categoryBreakdown(settled)
	summary.TopMerchants = topMerchants(settled, topMerchantLimit)

	return summary, nil
}

func monthlySeries(settled []models.Transaction) []dto.MonthlyCashflow {
	byMonth := make(map[string]*dto.MonthlyCashflow)
	for i := range settled {
		t := &settled[i]
		mo := t.Month()
		entry, ok := byMonth[mo]
		if !ok {
			entry = &dto.MonthlyCashflow{Month: mo, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[mo] = entry
		}
		switch {
		case t.Amount.IsPositive() && (t.Category == models.CategoryIncome || t.Type == models.TransactionTypeIncome):
			entry.Income = entry.Income.Add(t.Amount)
		case t.Amount.IsNegative():
			entry.Expenses = entry.Expenses.Add(t.Amount.Abs())
		}
	}

	series := make([]dto.MonthlyCashflow, 0, len(byMonth))
	for _, entry := range byMonth {
		entry.Net = entry.Income.Sub(entry.Expenses)
		if entry.Income.IsPositive() {
			entry.SavingsRate = entry.Net.Div(entry.Income).InexactFloat64() * 100
		}
		series = append(series, *entry)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

func categoryBreakdown(settled []models.Transaction) []dto.CategorySpend {
	byCategory := make(map[string]*dto.CategorySpend)
	for i := range settled {
		t := &settled[i]
		if !isExpenseRecord(t) {
			continue
		}
		entry, ok := byCategory[t.Category]
		if !ok {
			entry = &dto.CategorySpend{Category: t.Category, Total: decimal.Zero}
			byCategory[t.Category] = entry
		}
		entry.Total = entry.Total.Add(t.Amount.Abs())
		entry.Count++
	}

	out := make([]dto.CategorySpend, 0, len(byCategory))
	for _, entry := range byCategory {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func topMerchants(settled []models.Transaction, limit int) []dto.MerchantSpend {
	byMerchant := make(map[string]*dto.MerchantSpend)
	for i := range settled {
		t := &settled[i]
		if !isExpenseRecord(t) {
			continue
		}
		entry, ok := byMerchant[t.Description]
		if !ok {
			entry = &dto.MerchantSpend{Description: t.Description, Total: decimal.Zero}
			byMerchant[t.Description] = entry
		}
		entry.Total = entry.Total.Add(t.Amount.Abs())
		entry.Count++
	}

	out := make([]dto.MerchantSpend, 0, len(byMerchant))
	for _, entry := range byMerchant {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Description < out[j].Description
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecurringCharges groups expenses by a digit-stripped description
// prefix and keeps groups with at least two charges whose amount
// variance stays under twice the mean. Loose on purpose: utility bills
// wobble month to month but are still recurring.
func (s *insightsService) RecurringCharges() ([]dto.RecurringCharge, error) {
	settled, err := s.settled()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*models.Transaction)
	for i := range settled {
		t := &settled[i]
		if !t.Amount.IsNegative() {
			continue
		}
		groups[recurringKey(t.Description)] = append(groups[recurringKey(t.Description)], t)
	}

	var charges []dto.RecurringCharge
	for key, txns := range groups {
		if len(txns) < 2 {
			continue
		}

		var mean float64
		for _, t := range txns {
			mean += t.Amount.Abs().InexactFloat64()
		}
		mean /= float64(len(txns))

		var variance float64
		for _, t := range txns {
			d := t.Amount.Abs().InexactFloat64() - mean
			variance += d * d
		}
		variance /= float64(len(txns))
		if variance >= mean*2 {
			continue
		}

		sum := decimal.Zero
		for _, t := range txns {
			sum = sum.Add(t.Amount)
		}
		avg := sum.Abs().Div(decimal.NewFromInt(int64(len(txns))))
		charges = append(charges, dto.RecurringCharge{
			Description: key,
			Average:     avg,
			Frequency:   len(txns),
			Annualized:  avg.Mul(decimal.NewFromInt(monthsPerYear)),
		})
	}

	sort.Slice(charges, func(i, j int) bool {
		if !charges[i].Annualized.Equal(charges[j].Annualized) {
			return charges[i].Annualized.GreaterThan(charges[j].Annualized)
		}
		return charges[i].Description < charges[j].Description
	})
	return charges, nil
}

func recurringKey(description string) string {
	key := strings.TrimSpace(recurringKeyStrip.ReplaceAllString(description, ""))
	if r := []rune(key); len(r) > recurringKeyLen {
		key = string(r[:recurringKeyLen])
	}
	return key
}

// BudgetStatus reports, per expense category, the configured limit, the
// month's spend and the historical monthly average. Categories surface
// when they carry a budget, current spend or history; Income, Transfer
// and Uncategorized never do.
func (s *insightsService) BudgetStatus(month string) ([]dto.BudgetStatus, error) {
	if month == "" {
		month = s.now().UTC().Format("2006-01")
	}

	settled, err := s.settled()
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	limits := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		limits[b.Category] = b.MonthlyLimit
	}

	monthSpend := make(map[string]decimal.Decimal)
	perMonth := make(map[string]map[string]decimal.Decimal)
	for i := range settled {
		t := &settled[i]
		if !t.Amount.IsNegative() {
			continue
		}
		mo := t.Month()
		if perMonth[mo] == nil {
			perMonth[mo] = make(map[string]decimal.Decimal)
		}
		perMonth[mo][t.Category] = perMonth[mo][t.Category].Add(t.Amount.Abs())
		if mo == month {
			monthSpend[t.Category] = monthSpend[t.Category].Add(t.Amount.Abs())
		}
	}

	monthCount := int64(len(perMonth))
	if monthCount == 0 {
		monthCount = 1
	}
	averages := make(map[string]decimal.Decimal)
	for _, categories := range perMonth {
		for category, total := range categories {
			averages[category] = averages[category].Add(total)
		}
	}
	for category, total := range averages {
		averages[category] = total.Div(decimal.NewFromInt(monthCount))
	}

	seen := make(map[string]struct{})
	for category := range limits {
		seen[category] = struct{}{}
	}
	for category := range monthSpend {
		seen[category] = struct{}{}
	}
	for category := range averages {
		seen[category] = struct{}{}
	}
	delete(seen, models.CategoryIncome)
	delete(seen, models.CategoryTransfer)
	delete(seen, models.CategoryUncategorized)

	out := make([]dto.BudgetStatus, 0, len(seen))
	for category := range seen {
		limit := limits[category]
		spent := monthSpend[category]
		out = append(out, dto.BudgetStatus{
			Category:     category,
			MonthlyLimit: limit,
			Spent:        spent,
			Average:      averages[category],
			Remaining:    limit.Sub(spent),
			OverBudget:   limit.IsPositive() && spent.GreaterThan(limit),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Spent.Equal(out[j].Spent) {
			return out[i].Spent.GreaterThan(out[j].Spent)
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}
