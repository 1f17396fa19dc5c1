package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsServiceGetSummary(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	t.Run("empty data returns zeros and USD", func(t *testing.T) {
		store := &fakeTransactionStore{byType: map[models.TransactionType][]*models.Transaction{}}
		svc := NewMetricsService(store, zap.NewNop())

		summary, err := svc.GetSummary(context.Background(), userID)
		require.NoError(t, err)

		assert.Zero(t, summary.Balance)
		assert.Zero(t, summary.TotalIncome)
		assert.Zero(t, summary.TotalExpense)
		assert.Equal(t, "USD", summary.Currency)
	})

	t.Run("sums stay signed and currency comes from the first income row", func(t *testing.T) {
		income1 := tx(models.TypeIncome, 1000, date, "", "")
		income1.Currency = "EUR"
		income2 := tx(models.TypeIncome, 500, date, "", "")
		expense := tx(models.TypeExpense, -200, date, "", "")

		store := &fakeTransactionStore{byType: map[models.TransactionType][]*models.Transaction{
			models.TypeIncome:  {income1, income2},
			models.TypeExpense: {expense},
		}}
		svc := NewMetricsService(store, zap.NewNop())

		summary, err := svc.GetSummary(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, 1500.0, summary.TotalIncome)
		assert.Equal(t, -200.0, summary.TotalExpense)
		assert.Equal(t, 1700.0, summary.Balance)
		assert.Equal(t, "EUR", summary.Currency)
	})

	t.Run("currency falls back to the first expense row", func(t *testing.T) {
		expense := tx(models.TypeExpense, 50, date, "", "")
		expense.Currency = "MXN"

		store := &fakeTransactionStore{byType: map[models.TransactionType][]*models.Transaction{
			models.TypeExpense: {expense},
		}}
		svc := NewMetricsService(store, zap.NewNop())

		summary, err := svc.GetSummary(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "MXN", summary.Currency)
		assert.Equal(t, -50.0, summary.Balance)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := &fakeTransactionStore{err: errors.New("connection refused")}
		svc := NewMetricsService(store, zap.NewNop())

		_, err := svc.GetSummary(context.Background(), userID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestMetricsServiceGetDashboardMetrics(t *testing.T) {
	userID := uuid.New()

	t.Run("queries from the period start", func(t *testing.T) {
		store := &fakeTransactionStore{}
		svc := NewMetricsService(store, zap.NewNop())

		metrics, err := svc.GetDashboardMetrics(context.Background(), userID, PeriodMonth)
		require.NoError(t, err)

		wantStart := PeriodStart(PeriodMonth, time.Now())
		assert.Equal(t, wantStart, store.lastSince)
		assert.NotNil(t, metrics.CategorySummary)
		assert.Zero(t, metrics.TotalTransactions)
	})

	t.Run("store failure aborts the aggregation", func(t *testing.T) {
		store := &fakeTransactionStore{err: errors.New("query timeout")}
		svc := NewMetricsService(store, zap.NewNop())

		_, err := svc.GetDashboardMetrics(context.Background(), userID, PeriodWeek)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query timeout")
	})
}
