package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}

type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	CategoryID      *string         `db:"category_id"`
	PaymentMethodID *uuid.UUID      `db:"payment_method_id"`
	InputMethodID   uuid.UUID       `db:"input_method_id"`
	Type            TransactionType `db:"type"`
	Amount          float64         `db:"amount"`
	Currency        string          `db:"currency"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	IsRecurring     bool            `db:"is_recurring"`
	RecurringID     *uuid.UUID      `db:"recurring_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`

	// CategoryName is populated only when the fetch joined the
	// categories relation. Nil means "not resolved", not "no category".
	CategoryName *string `db:"-"`
}

// PeriodTotal is the per-currency sum of amounts inside a date range.
// Derived on every call, never persisted.
type PeriodTotal struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}
