package service

import (
	"context"
	"fmt"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/dto"
	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCurrency = "USD"

type MetricsService struct {
	store  TransactionStore
	logger *zap.Logger
}

func NewMetricsService(store TransactionStore, logger *zap.Logger) *MetricsService {
	return &MetricsService{
		store:  store,
		logger: logger,
	}
}

// GetDashboardMetrics aggregates the user's transactions since the
// start of the requested period into the dashboard shape. No data is
// not an error: the result is zeroed with empty slices.
func (s *MetricsService) GetDashboardMetrics(ctx context.Context, userID uuid.UUID, period string) (*dto.DashboardMetrics, error) {
	start := PeriodStart(period, time.Now())

	s.logger.Debug("Computing dashboard metrics",
		zap.String("user_id", userID.String()),
		zap.String("period", period),
		zap.Time("start", start),
	)

	transactions, err := s.store.ListSince(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	metrics := computeDashboardMetrics(transactions)
	return &metrics, nil
}

// GetSummary returns lifetime balance, income and expense totals.
// Sums are signed as stored. The currency is taken from the first
// income row, else the first expense row, else USD.
func (s *MetricsService) GetSummary(ctx context.Context, userID uuid.UUID) (*dto.Summary, error) {
	incomes, err := s.store.ListByType(ctx, userID, models.TypeIncome)
	if err != nil {
		return nil, fmt.Errorf("fetch incomes: %w", err)
	}

	expenses, err := s.store.ListByType(ctx, userID, models.TypeExpense)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	summary := &dto.Summary{Currency: defaultCurrency}
	for _, tx := range incomes {
		summary.TotalIncome += tx.Amount
	}
	for _, tx := range expenses {
		summary.TotalExpense += tx.Amount
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	if len(incomes) > 0 {
		summary.Currency = incomes[0].Currency
	} else if len(expenses) > 0 {
		summary.Currency = expenses[0].Currency
	}

	return summary, nil
}
