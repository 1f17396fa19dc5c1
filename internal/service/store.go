package service

import (
	"context"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/google/uuid"
)

// TransactionStore is the narrow gateway the aggregation services need
// from the transactions relation. *repository.TransactionRepository
// satisfies it.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.Transaction, error)
	ListByType(ctx context.Context, userID uuid.UUID, txType models.TransactionType) ([]*models.Transaction, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error)
	ListByRecurringID(ctx context.Context, userID, recurringID uuid.UUID) ([]*models.Transaction, error)
	TotalsByPeriod(ctx context.Context, userID uuid.UUID, txType models.TransactionType, start, end time.Time) ([]models.PeriodTotal, error)
}

// CategoryNameStore resolves category ids to display names for
// enrichment. *repository.CategoryRepository satisfies it.
type CategoryNameStore interface {
	Name(ctx context.Context, id string) (string, error)
}
