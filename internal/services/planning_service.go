package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"
)

const emergencyTargetMonths = 6

type planningService struct {
	netWorthRepo    repositories.NetWorthRepositoryInterface
	fundRepo        repositories.ProtectedFundRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewPlanningService(
	netWorthRepo repositories.NetWorthRepositoryInterface,
	fundRepo repositories.ProtectedFundRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) PlanningServiceInterface {
	return &planningService{
		netWorthRepo:    netWorthRepo,
		fundRepo:        fundRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *planningService) NetWorthSummary() (*dto.NetWorthSummary, error) {
	entries, err := s.netWorthRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load net worth entries: %w", err)
	}

	summary := &dto.NetWorthSummary{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Entries:     entries,
	}
	for i := range entries {
		switch entries[i].Type {
		case models.NetWorthTypeAsset:
			summary.Assets = summary.Assets.Add(entries[i].Value)
		case models.NetWorthTypeLiability:
			summary.Liabilities = summary.Liabilities.Add(entries[i].Value)
		}
	}
	summary.NetWorth = summary.Assets.Sub(summary.Liabilities)
	return summary, nil
}

func (s *planningService) CreateNetWorthEntry(req *dto.NetWorthEntryRequest) (*models.NetWorthEntry, error) {
	entry := &models.NetWorthEntry{
		Name:     req.Name,
		Type:     req.Type,
		Category: req.Category,
		Value:    req.Value,
		Date:     time.Now().UTC(),
	}
	if req.Date != "" {
		date, err := time.ParseInLocation(models.DateLayout, req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid net worth entry date: %w", err)
		}
		entry.Date = date
	}

	if err := s.netWorthRepo.Create(entry); err != nil {
		return nil, err
	}
	slog.Info("net worth entry created", "entry_id", entry.ID, "type", entry.Type)
	return entry, nil
}

func (s *planningService) UpdateNetWorthEntry(id uuid.UUID, req *dto.NetWorthEntryRequest) (*models.NetWorthEntry, error) {
	entry, err := s.netWorthRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNetWorthEntryNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get net worth entry: %w", err)
	}

	entry.Name = req.Name
	entry.Type = req.Type
	entry.Category = req.Category
	entry.Value = req.Value
	if req.Date != "" {
		date, err := time.ParseInLocation(models.DateLayout, req.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid net worth entry date: %w", err)
		}
		entry.Date = date
	}

	if err := s.netWorthRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *planningService) DeleteNetWorthEntry(id uuid.UUID) error {
	if err := s.netWorthRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNetWorthEntryNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *planningService) ListProtectedFunds() ([]models.ProtectedFund, error) {
	return s.fundRepo.GetAll()
}

func (s *planningService) CreateProtectedFund(req *dto.ProtectedFundRequest) (*models.ProtectedFund, error) {
	fund := &models.ProtectedFund{
		Name:    req.Name,
		Type:    req.Type,
		Target:  req.Target,
		Current: req.Current,
	}
	if req.Deadline != "" {
		deadline, err := time.ParseInLocation(models.DateLayout, req.Deadline, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid fund deadline: %w", err)
		}
		fund.Deadline = &deadline
	}

	if err := s.fundRepo.Create(fund); err != nil {
		return nil, err
	}
	slog.Info("protected fund created", "fund_id", fund.ID, "type", fund.Type)
	return fund, nil
}

func (s *planningService) UpdateProtectedFund(id uuid.UUID, req *dto.ProtectedFundRequest) (*models.ProtectedFund, error) {
	fund, err := s.fundRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProtectedFundNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get protected fund: %w", err)
	}

	fund.Name = req.Name
	fund.Type = req.Type
	fund.Target = req.Target
	fund.Current = req.Current
	fund.Deadline = nil
	if req.Deadline != "" {
		deadline, err := time.ParseInLocation(models.DateLayout, req.Deadline, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid fund deadline: %w", err)
		}
		fund.Deadline = &deadline
	}

	if err := s.fundRepo.Update(fund); err != nil {
		return nil, err
	}
	return fund, nil
}

func (s *planningService) DeleteProtectedFund(id uuid.UUID) error {
	if err := s.fundRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProtectedFundNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// EmergencyReserve reports how long the emergency funds would last at
// the average monthly burn rate, computed from approved non-transfer
// spending across every month with history.
func (s *planningService) EmergencyReserve() (*dto.EmergencyReserve, error) {
	funds, err := s.fundRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load protected funds: %w", err)
	}

	reserve := &dto.EmergencyReserve{
		ProtectedTotal: decimal.Zero,
		EmergencyTotal: decimal.Zero,
	}
	for i := range funds {
		reserve.ProtectedTotal = reserve.ProtectedTotal.Add(funds[i].Current)
		if funds[i].Type == models.FundTypeEmergency {
			reserve.EmergencyTotal = reserve.EmergencyTotal.Add(funds[i].Current)
		}
	}

	avg, err := s.averageMonthlyExpenses()
	if err != nil {
		return nil, err
	}
	reserve.AvgMonthlyExpenses = avg
	reserve.SixMonthTarget = avg.Mul(decimal.NewFromInt(emergencyTargetMonths))
	if avg.IsPositive() {
		reserve.MonthsCovered = reserve.EmergencyTotal.Div(avg).InexactFloat64()
	}
	return reserve, nil
}

func (s *planningService) averageMonthlyExpenses() (decimal.Decimal, error) {
	all, err := s.transactionRepo.GetAll()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load transactions: %w", err)
	}

	months := make(map[string]struct{})
	total := decimal.Zero
	for i := range all {
		t := &all[i]
		if t.IsTransfer || !t.IsApproved() || !t.Amount.IsNegative() {
			continue
		}
		months[t.Month()] = struct{}{}
		total = total.Add(t.Amount)
	}
	if len(months) == 0 {
		return decimal.Zero, nil
	}
	return total.Abs().Div(decimal.NewFromInt(int64(len(months)))), nil
}

func (s *planningService) ListBudgets() ([]models.Budget, error) {
	return s.budgetRepo.GetAll()
}

func (s *planningService) SetBudget(req *dto.BudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
	}
	if err := s.budgetRepo.Upsert(budget); err != nil {
		return nil, err
	}
	slog.Info("budget set", "category", budget.Category)
	return budget, nil
}

func (s *planningService) DeleteBudget(category string) error {
	if err := s.budgetRepo.Delete(category); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
