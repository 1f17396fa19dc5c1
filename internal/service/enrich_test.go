package service

import (
	"context"
	"testing"
	"time"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnrichCategoryNames(t *testing.T) {
	date := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	t.Run("nil category id gets the uncategorized label", func(t *testing.T) {
		transactions := []*models.Transaction{
			tx(models.TypeExpense, 10, date, "", ""),
		}
		store := &fakeCategoryStore{}

		enrichCategoryNames(context.Background(), store, transactions, zap.NewNop())

		require.NotNil(t, transactions[0].CategoryName)
		assert.Equal(t, "Sin categoría", *transactions[0].CategoryName)
		assert.Zero(t, store.calls.Load())
	})

	t.Run("joined name wins without a lookup", func(t *testing.T) {
		transactions := []*models.Transaction{
			tx(models.TypeExpense, 10, date, "cat-a", "Comida"),
		}
		store := &fakeCategoryStore{names: map[string]string{"cat-a": "Otra cosa"}}

		enrichCategoryNames(context.Background(), store, transactions, zap.NewNop())

		assert.Equal(t, "Comida", *transactions[0].CategoryName)
		assert.Zero(t, store.calls.Load())
	})

	t.Run("unresolved ids are looked up once per distinct id", func(t *testing.T) {
		transactions := []*models.Transaction{
			tx(models.TypeExpense, 10, date, "cat-a", ""),
			tx(models.TypeExpense, 20, date, "cat-a", ""),
			tx(models.TypeExpense, 30, date, "cat-a", ""),
			tx(models.TypeExpense, 40, date, "cat-b", ""),
		}
		store := &fakeCategoryStore{names: map[string]string{
			"cat-a": "Comida",
			"cat-b": "Transporte",
		}}

		enrichCategoryNames(context.Background(), store, transactions, zap.NewNop())

		assert.Equal(t, int64(2), store.calls.Load())
		assert.Equal(t, "Comida", *transactions[0].CategoryName)
		assert.Equal(t, "Comida", *transactions[2].CategoryName)
		assert.Equal(t, "Transporte", *transactions[3].CategoryName)
	})

	t.Run("failed lookup on legacy id derives label from the id", func(t *testing.T) {
		transactions := []*models.Transaction{
			tx(models.TypeExpense, 10, date, "cat_comida", ""),
		}
		store := &fakeCategoryStore{}

		enrichCategoryNames(context.Background(), store, transactions, zap.NewNop())

		assert.Equal(t, "Comida", *transactions[0].CategoryName)
	})

	t.Run("failed lookup on opaque id uses the unknown label", func(t *testing.T) {
		transactions := []*models.Transaction{
			tx(models.TypeExpense, 10, date, "550e8400-e29b-41d4-a716-446655442222", ""),
		}
		store := &fakeCategoryStore{}

		enrichCategoryNames(context.Background(), store, transactions, zap.NewNop())

		assert.Equal(t, "Categoría desconocida", *transactions[0].CategoryName)
	})
}

func TestFallbackCategoryLabel(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"cat_comida", "Comida"},
		{"cat_ocio", "Ocio"},
		{"cat_", "Categoría desconocida"},
		{"550e8400-e29b-41d4-a716-446655442222", "Categoría desconocida"},
		{"", "Categoría desconocida"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackCategoryLabel(tt.id), "id=%q", tt.id)
	}
}
