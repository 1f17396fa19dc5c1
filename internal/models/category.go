package models

import (
	"time"

	"github.com/google/uuid"
)

// Category ids are TEXT rather than UUID: rows imported from the legacy
// system carry "cat_"-prefixed identifiers.
type Category struct {
	ID        string          `db:"id"`
	UserID    *uuid.UUID      `db:"user_id"` // nil means a default, globally visible category
	Name      string          `db:"name"`
	Type      TransactionType `db:"type"`
	Icon      string          `db:"icon"`
	IsDefault bool            `db:"is_default"`
	IsActive  bool            `db:"is_active"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
