package dto

import (
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
)

type CreateInputMethodRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

type UpdateInputMethodRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type InputMethodResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewInputMethodResponse(im *models.InputMethod) InputMethodResponse {
	return InputMethodResponse{
		ID:        im.ID.String(),
		Name:      im.Name,
		IsActive:  im.IsActive,
		CreatedAt: im.CreatedAt.Format(time.RFC3339),
		UpdatedAt: im.UpdatedAt.Format(time.RFC3339),
	}
}

func NewInputMethodResponses(methods []*models.InputMethod) []InputMethodResponse {
	out := make([]InputMethodResponse, 0, len(methods))
	for _, im := range methods {
		out = append(out, NewInputMethodResponse(im))
	}
	return out
}
