package repository

import (
	"context"
	"errors"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// joinedColumns selects transactions annotated with the category name
// from a LEFT JOIN against categories.
var joinedColumns = []string{
	"t.id", "t.user_id", "t.category_id", "t.payment_method_id", "t.input_method_id",
	"t.type", "t.amount", "t.currency", "t.transaction_date",
	"COALESCE(t.description, '')", "t.is_recurring", "t.recurring_id",
	"t.created_at", "t.updated_at", "c.name",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "category_id", "payment_method_id", "input_method_id",
			"type", "amount", "currency", "transaction_date", "description",
			"is_recurring", "recurring_id", "created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.CategoryID, tx.PaymentMethodID, tx.InputMethodID,
			tx.Type, tx.Amount, tx.Currency, tx.TransactionDate, tx.Description,
			tx.IsRecurring, tx.RecurringID, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	query := r.selectJoined().
		Where(squirrel.Eq{"t.id": id, "t.user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return tx, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("category_id", tx.CategoryID).
		Set("payment_method_id", tx.PaymentMethodID).
		Set("type", tx.Type).
		Set("amount", tx.Amount).
		Set("currency", tx.Currency).
		Set("transaction_date", tx.TransactionDate).
		Set("description", tx.Description).
		Set("is_recurring", tx.IsRecurring).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	query := r.selectJoined().
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.transaction_date DESC")

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.Transaction, error) {
	query := r.selectJoined().
		Where(squirrel.Eq{"t.user_id": userID}).
		Where(squirrel.GtOrEq{"t.transaction_date": since}).
		OrderBy("t.transaction_date ASC")

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) ListByType(ctx context.Context, userID uuid.UUID, txType models.TransactionType) ([]*models.Transaction, error) {
	query := r.selectJoined().
		Where(squirrel.Eq{"t.user_id": userID, "t.type": txType}).
		OrderBy("t.transaction_date ASC")

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	query := r.selectJoined().
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.transaction_date DESC").
		Limit(uint64(limit))

	return r.queryTransactions(ctx, query)
}

func (r *TransactionRepository) ListByRecurringID(ctx context.Context, userID, recurringID uuid.UUID) ([]*models.Transaction, error) {
	query := r.selectJoined().
		Where(squirrel.Eq{"t.user_id": userID, "t.recurring_id": recurringID}).
		OrderBy("t.transaction_date DESC")

	return r.queryTransactions(ctx, query)
}

// TotalsByPeriod sums amounts per currency inside the inclusive date
// range. A zero-value txType means no type filter. Everything is bound
// as a parameter, never interpolated into the query text.
func (r *TransactionRepository) TotalsByPeriod(ctx context.Context, userID uuid.UUID, txType models.TransactionType, start, end time.Time) ([]models.PeriodTotal, error) {
	query := squirrel.Select("SUM(amount)", "currency").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"transaction_date": start}).
		Where(squirrel.LtOrEq{"transaction_date": end}).
		GroupBy("currency").
		OrderBy("currency ASC").
		PlaceholderFormat(squirrel.Dollar)

	if txType != "" {
		query = query.Where(squirrel.Eq{"type": txType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]models.PeriodTotal, 0)
	for rows.Next() {
		var pt models.PeriodTotal
		if err := rows.Scan(&pt.Total, &pt.Currency); err != nil {
			return nil, err
		}
		totals = append(totals, pt)
	}

	return totals, rows.Err()
}

func (r *TransactionRepository) selectJoined() squirrel.SelectBuilder {
	return squirrel.Select(joinedColumns...).
		From("transactions t").
		LeftJoin("categories c ON c.id = t.category_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	if err := row.Scan(
		&tx.ID, &tx.UserID, &tx.CategoryID, &tx.PaymentMethodID, &tx.InputMethodID,
		&tx.Type, &tx.Amount, &tx.Currency, &tx.TransactionDate,
		&tx.Description, &tx.IsRecurring, &tx.RecurringID,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.CategoryName,
	); err != nil {
		return nil, err
	}
	return &tx, nil
}
