package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
	"github.com/betoquiroga/edmoney-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRecentLimit = 10

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrInvalidDateRange    = errors.New("invalid date range")
)

type TransactionService struct {
	store      TransactionStore
	categories CategoryNameStore
	logger     *zap.Logger
}

func NewTransactionService(store TransactionStore, categories CategoryNameStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:      store,
		categories: categories,
		logger:     logger,
	}
}

type CreateTransactionInput struct {
	UserID          uuid.UUID
	CategoryID      *string
	PaymentMethodID *uuid.UUID
	InputMethodID   uuid.UUID
	Type            models.TransactionType
	Amount          float64
	Currency        string
	TransactionDate time.Time
	Description     string
	IsRecurring     bool
	RecurringID     *uuid.UUID
}

func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	if !input.Type.Valid() {
		return nil, ErrInvalidType
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:              uuid.New(),
		UserID:          input.UserID,
		CategoryID:      input.CategoryID,
		PaymentMethodID: input.PaymentMethodID,
		InputMethodID:   input.InputMethodID,
		Type:            input.Type,
		Amount:          input.Amount,
		Currency:        input.Currency,
		TransactionDate: input.TransactionDate,
		Description:     sanitizeUTF8(input.Description),
		IsRecurring:     input.IsRecurring,
		RecurringID:     input.RecurringID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return tx, nil
}

func (s *TransactionService) FindAll(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	transactions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return transactions, nil
}

func (s *TransactionService) FindOne(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	tx, err := s.store.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("fetch transaction: %w", err)
	}
	return tx, nil
}

type UpdateTransactionInput struct {
	CategoryID      *string
	PaymentMethodID *uuid.UUID
	Type            *models.TransactionType
	Amount          *float64
	Currency        *string
	TransactionDate *time.Time
	Description     *string
	IsRecurring     *bool
}

func (s *TransactionService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateTransactionInput) (*models.Transaction, error) {
	// Ownership check first, matching the create/delete paths.
	tx, err := s.FindOne(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		tx.CategoryID = input.CategoryID
		tx.CategoryName = nil
	}
	if input.PaymentMethodID != nil {
		tx.PaymentMethodID = input.PaymentMethodID
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, ErrInvalidType
		}
		tx.Type = *input.Type
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Currency != nil {
		tx.Currency = *input.Currency
	}
	if input.TransactionDate != nil {
		tx.TransactionDate = *input.TransactionDate
	}
	if input.Description != nil {
		tx.Description = sanitizeUTF8(*input.Description)
	}
	if input.IsRecurring != nil {
		tx.IsRecurring = *input.IsRecurring
	}
	tx.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	return tx, nil
}

func (s *TransactionService) Remove(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// Recent returns the newest transactions with category names resolved.
func (s *TransactionService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	transactions, err := s.store.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent transactions: %w", err)
	}

	enrichCategoryNames(ctx, s.categories, transactions, s.logger)
	return transactions, nil
}

// TotalsByPeriod sums amounts per currency over the inclusive range.
// An empty txType means every transaction type participates.
func (s *TransactionService) TotalsByPeriod(ctx context.Context, userID uuid.UUID, txType models.TransactionType, start, end time.Time) ([]models.PeriodTotal, error) {
	if txType != "" && !txType.Valid() {
		return nil, ErrInvalidType
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	totals, err := s.store.TotalsByPeriod(ctx, userID, txType, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch period totals: %w", err)
	}
	return totals, nil
}

// FindByRecurringID returns every instance of one recurring series,
// newest first. No aggregation happens here.
func (s *TransactionService) FindByRecurringID(ctx context.Context, userID, recurringID uuid.UUID) ([]*models.Transaction, error) {
	transactions, err := s.store.ListByRecurringID(ctx, userID, recurringID)
	if err != nil {
		return nil, fmt.Errorf("fetch recurring series: %w", err)
	}
	return transactions, nil
}
