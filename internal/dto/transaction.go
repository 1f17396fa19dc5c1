package dto

import (
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
)

type CreateTransactionRequest struct {
	CategoryID      *string   `json:"category_id"`
	PaymentMethodID *string   `json:"payment_method_id"`
	InputMethodID   string    `json:"input_method_id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	TransactionDate time.Time `json:"transaction_date"`
	Description     string    `json:"description"`
	IsRecurring     *bool     `json:"is_recurring"`
	RecurringID     *string   `json:"recurring_id"`
}

type UpdateTransactionRequest struct {
	CategoryID      *string    `json:"category_id"`
	PaymentMethodID *string    `json:"payment_method_id"`
	Type            *string    `json:"type"`
	Amount          *float64   `json:"amount"`
	Currency        *string    `json:"currency"`
	TransactionDate *time.Time `json:"transaction_date"`
	Description     *string    `json:"description"`
	IsRecurring     *bool      `json:"is_recurring"`
}

type TransactionResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	CategoryID      *string `json:"category_id"`
	CategoryName    string  `json:"category_name,omitempty"`
	PaymentMethodID *string `json:"payment_method_id"`
	InputMethodID   string  `json:"input_method_id"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	TransactionDate string  `json:"transaction_date"`
	Description     string  `json:"description"`
	IsRecurring     bool    `json:"is_recurring"`
	RecurringID     *string `json:"recurring_id"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              tx.ID.String(),
		UserID:          tx.UserID.String(),
		CategoryID:      tx.CategoryID,
		InputMethodID:   tx.InputMethodID.String(),
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		Description:     tx.Description,
		IsRecurring:     tx.IsRecurring,
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       tx.UpdatedAt.Format(time.RFC3339),
	}
	if tx.CategoryName != nil {
		resp.CategoryName = *tx.CategoryName
	}
	if tx.PaymentMethodID != nil {
		s := tx.PaymentMethodID.String()
		resp.PaymentMethodID = &s
	}
	if tx.RecurringID != nil {
		s := tx.RecurringID.String()
		resp.RecurringID = &s
	}
	return resp
}

func NewTransactionResponses(txs []*models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}
