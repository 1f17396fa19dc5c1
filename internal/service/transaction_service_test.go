package service

import (
	"context"
	"testing"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTxService(store *fakeTransactionStore, categories *fakeCategoryStore) *TransactionService {
	if categories == nil {
		categories = &fakeCategoryStore{}
	}
	return NewTransactionService(store, categories, zap.NewNop())
}

func TestTransactionServiceCreate(t *testing.T) {
	store := &fakeTransactionStore{}
	svc := newTxService(store, nil)

	date := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC)
	input := CreateTransactionInput{
		UserID:          uuid.New(),
		InputMethodID:   uuid.New(),
		Type:            models.TypeExpense,
		Amount:          99.99,
		Currency:        "USD",
		TransactionDate: date,
		Description:     "Grocery shopping",
	}

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, input.UserID, created.UserID)
	assert.False(t, created.IsRecurring)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created, store.created)
}

func TestTransactionServiceCreateRejectsUnknownType(t *testing.T) {
	svc := newTxService(&fakeTransactionStore{}, nil)

	_, err := svc.Create(context.Background(), CreateTransactionInput{Type: "loan"})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestTransactionServiceFindOne(t *testing.T) {
	existing := tx(models.TypeExpense, 10, time.Now(), "", "")
	store := &fakeTransactionStore{transactions: []*models.Transaction{existing}}
	svc := newTxService(store, nil)

	t.Run("found", func(t *testing.T) {
		got, err := svc.FindOne(context.Background(), existing.ID, existing.UserID)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("missing row maps to not-found", func(t *testing.T) {
		_, err := svc.FindOne(context.Background(), uuid.New(), existing.UserID)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionServiceUpdate(t *testing.T) {
	existing := tx(models.TypeExpense, 10, time.Now(), "cat-a", "Comida")
	store := &fakeTransactionStore{transactions: []*models.Transaction{existing}}
	svc := newTxService(store, nil)

	amount := 25.5
	updated, err := svc.Update(context.Background(), existing.ID, existing.UserID, UpdateTransactionInput{
		Amount: &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, 25.5, updated.Amount)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, updated, store.updated)
}

func TestTransactionServiceRemoveMissing(t *testing.T) {
	svc := newTxService(&fakeTransactionStore{}, nil)

	err := svc.Remove(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestTransactionServiceRecent(t *testing.T) {
	date := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	t.Run("defaults the limit to 10", func(t *testing.T) {
		store := &fakeTransactionStore{}
		svc := newTxService(store, nil)

		_, err := svc.Recent(context.Background(), uuid.New(), 0)
		require.NoError(t, err)
		assert.Equal(t, 10, store.lastLimit)
	})

	t.Run("resolves category names", func(t *testing.T) {
		store := &fakeTransactionStore{transactions: []*models.Transaction{
			tx(models.TypeExpense, 10, date, "cat-a", ""),
			tx(models.TypeExpense, 10, date, "", ""),
		}}
		categories := &fakeCategoryStore{names: map[string]string{"cat-a": "Comida"}}
		svc := newTxService(store, categories)

		got, err := svc.Recent(context.Background(), uuid.New(), 5)
		require.NoError(t, err)
		assert.Equal(t, 5, store.lastLimit)

		require.Len(t, got, 2)
		assert.Equal(t, "Comida", *got[0].CategoryName)
		assert.Equal(t, "Sin categoría", *got[1].CategoryName)
	})
}

func TestTransactionServiceTotalsByPeriod(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	t.Run("groups by currency", func(t *testing.T) {
		store := &fakeTransactionStore{totals: []models.PeriodTotal{
			{Total: 1200.5, Currency: "EUR"},
			{Total: 300, Currency: "USD"},
		}}
		svc := newTxService(store, nil)

		totals, err := svc.TotalsByPeriod(context.Background(), userID, "", start, end)
		require.NoError(t, err)

		require.Len(t, totals, 2)
		assert.Equal(t, models.PeriodTotal{Total: 1200.5, Currency: "EUR"}, totals[0])
		assert.Equal(t, models.PeriodTotal{Total: 300, Currency: "USD"}, totals[1])
		assert.Equal(t, start, store.lastStart)
		assert.Equal(t, end, store.lastEnd)
	})

	t.Run("forwards the optional type filter", func(t *testing.T) {
		store := &fakeTransactionStore{}
		svc := newTxService(store, nil)

		_, err := svc.TotalsByPeriod(context.Background(), userID, models.TypeExpense, start, end)
		require.NoError(t, err)
		assert.Equal(t, models.TypeExpense, store.lastType)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc := newTxService(&fakeTransactionStore{}, nil)

		_, err := svc.TotalsByPeriod(context.Background(), userID, "loan", start, end)
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		svc := newTxService(&fakeTransactionStore{}, nil)

		_, err := svc.TotalsByPeriod(context.Background(), userID, "", end, start)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestTransactionServiceFindByRecurringID(t *testing.T) {
	series := []*models.Transaction{
		tx(models.TypeExpense, 10, time.Now(), "", ""),
		tx(models.TypeExpense, 10, time.Now().AddDate(0, -1, 0), "", ""),
	}
	store := &fakeTransactionStore{transactions: series}
	svc := newTxService(store, nil)

	got, err := svc.FindByRecurringID(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, series, got)
}
