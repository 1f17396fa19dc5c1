package dto

import (
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"
)

type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	IsDefault *bool  `json:"is_default"`
	IsActive  *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Icon     *string `json:"icon"`
	IsActive *bool   `json:"is_active"`
}

type CategoryResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Icon      string  `json:"icon"`
	IsDefault bool    `json:"is_default"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		Icon:      c.Icon,
		IsDefault: c.IsDefault,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.UserID != nil {
		s := c.UserID.String()
		resp.UserID = &s
	}
	return resp
}

func NewCategoryResponses(categories []*models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
