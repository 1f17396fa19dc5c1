package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
	"github.com/betoquiroga/edmoney-backend/internal/repository"

	"github.com/google/uuid"
)

// fakeTransactionStore satisfies TransactionStore with canned data.
type fakeTransactionStore struct {
	transactions []*models.Transaction
	byType       map[models.TransactionType][]*models.Transaction
	totals       []models.PeriodTotal
	err          error

	created      *models.Transaction
	updated      *models.Transaction
	deletedID    uuid.UUID
	lastSince    time.Time
	lastLimit    int
	lastType     models.TransactionType
	lastStart    time.Time
	lastEnd      time.Time
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.created = tx
	return nil
}

func (f *fakeTransactionStore) GetByID(_ context.Context, id, _ uuid.UUID) (*models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, tx := range f.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.updated = tx
	return nil
}

func (f *fakeTransactionStore) Delete(_ context.Context, id, _ uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, tx := range f.transactions {
		if tx.ID == id {
			f.deletedID = id
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTransactionStore) ListByUser(_ context.Context, _ uuid.UUID) ([]*models.Transaction, error) {
	return f.transactions, f.err
}

func (f *fakeTransactionStore) ListSince(_ context.Context, _ uuid.UUID, since time.Time) ([]*models.Transaction, error) {
	f.lastSince = since
	return f.transactions, f.err
}

func (f *fakeTransactionStore) ListByType(_ context.Context, _ uuid.UUID, txType models.TransactionType) ([]*models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byType[txType], nil
}

func (f *fakeTransactionStore) ListRecent(_ context.Context, _ uuid.UUID, limit int) ([]*models.Transaction, error) {
	f.lastLimit = limit
	return f.transactions, f.err
}

func (f *fakeTransactionStore) ListByRecurringID(_ context.Context, _, _ uuid.UUID) ([]*models.Transaction, error) {
	return f.transactions, f.err
}

func (f *fakeTransactionStore) TotalsByPeriod(_ context.Context, _ uuid.UUID, txType models.TransactionType, start, end time.Time) ([]models.PeriodTotal, error) {
	f.lastType = txType
	f.lastStart = start
	f.lastEnd = end
	return f.totals, f.err
}

// fakeCategoryStore resolves names from a map and counts lookups.
type fakeCategoryStore struct {
	names map[string]string
	calls atomic.Int64
}

func (f *fakeCategoryStore) Name(_ context.Context, id string) (string, error) {
	f.calls.Add(1)
	if name, ok := f.names[id]; ok {
		return name, nil
	}
	return "", repository.ErrNotFound
}

func strPtr(s string) *string { return &s }

func tx(txType models.TransactionType, amount float64, date time.Time, categoryID, categoryName string) *models.Transaction {
	t := &models.Transaction{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Type:            txType,
		Amount:          amount,
		Currency:        "USD",
		TransactionDate: date,
	}
	if categoryID != "" {
		t.CategoryID = strPtr(categoryID)
	}
	if categoryName != "" {
		t.CategoryName = strPtr(categoryName)
	}
	return t
}
