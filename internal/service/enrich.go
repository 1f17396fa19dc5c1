package service

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/betoquiroga/edmoney-backend/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const legacyCategoryPrefix = "cat_"

// enrichCategoryNames fills CategoryName on every transaction. Names
// already joined by the store win; the rest are looked up concurrently,
// once per distinct id, with a cache scoped to this call. A failed
// lookup degrades to a fallback label — enrichment never fails the
// request.
func enrichCategoryNames(ctx context.Context, store CategoryNameStore, transactions []*models.Transaction, logger *zap.Logger) {
	pending := make([]string, 0)
	seen := make(map[string]bool)
	for _, tx := range transactions {
		if tx.CategoryID == nil || tx.CategoryName != nil {
			continue
		}
		if id := *tx.CategoryID; !seen[id] {
			seen[id] = true
			pending = append(pending, id)
		}
	}

	names := make(map[string]string, len(pending))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range pending {
		id := id
		g.Go(func() error {
			name, err := store.Name(ctx, id)
			if err != nil {
				logger.Warn("Category lookup failed, using fallback label",
					zap.String("category_id", id),
					zap.Error(err),
				)
				name = fallbackCategoryLabel(id)
			}
			mu.Lock()
			names[id] = name
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // lookups never return errors, they degrade

	for _, tx := range transactions {
		if tx.CategoryName != nil {
			continue
		}
		if tx.CategoryID == nil {
			name := labelUncategorized
			tx.CategoryName = &name
			continue
		}
		if name, ok := names[*tx.CategoryID]; ok {
			n := name
			tx.CategoryName = &n
		}
	}
}

// fallbackCategoryLabel renders a human-readable label for an id whose
// category row is gone. Legacy ids carry a "cat_" prefix with the name
// embedded in the remainder.
func fallbackCategoryLabel(id string) string {
	rest, found := strings.CutPrefix(id, legacyCategoryPrefix)
	if !found || rest == "" {
		return labelUnknownCategory
	}
	runes := []rune(rest)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
