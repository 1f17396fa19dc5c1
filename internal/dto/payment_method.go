package dto

import (
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
)

type CreatePaymentMethodRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

type UpdatePaymentMethodRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type PaymentMethodResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id"`
	Name      string  `json:"name"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewPaymentMethodResponse(pm *models.PaymentMethod) PaymentMethodResponse {
	resp := PaymentMethodResponse{
		ID:        pm.ID.String(),
		Name:      pm.Name,
		IsActive:  pm.IsActive,
		CreatedAt: pm.CreatedAt.Format(time.RFC3339),
		UpdatedAt: pm.UpdatedAt.Format(time.RFC3339),
	}
	if pm.UserID != nil {
		s := pm.UserID.String()
		resp.UserID = &s
	}
	return resp
}

func NewPaymentMethodResponses(methods []*models.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, pm := range methods {
		out = append(out, NewPaymentMethodResponse(pm))
	}
	return out
}
