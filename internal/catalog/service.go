package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/communica-av/quoter-backend/pkg/db/models"
	"github.com/communica-av/quoter-backend/pkg/logger"
)

type lister interface {
	ListActive(ctx context.Context) ([]models.CatalogEntry, error)
}

// Service supplies the catalog to the builder, substituting the compiled-in
// fallback when the backing table is unavailable or empty. A failed load is
// recovered locally and never surfaced as an error.
type Service interface {
	Load(ctx context.Context) []Item
}

type service struct {
	repo lister
	logg *logger.Logger
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo lister, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Load(ctx context.Context) []Item {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithField(ctx, "error", err.Error())
			s.logg.Warn(ctx, "catalog load failed, using fallback")
		}
		return Fallback()
	}

	items := s.normalize(ctx, rows)
	if len(items) == 0 {
		if s.logg != nil {
			s.logg.Warn(ctx, "catalog empty, using fallback")
		}
		return Fallback()
	}
	return items
}

// normalize drops malformed rows at the provider boundary so nothing dirty
// reaches the cart engine. Duplicate keys keep the first occurrence.
func (s *service) normalize(ctx context.Context, rows []models.CatalogEntry) []Item {
	seen := map[string]struct{}{}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		if reason := validateEntry(row); reason != "" {
			if s.logg != nil {
				rowCtx := s.logg.WithFields(ctx, map[string]any{
					"item_key": row.ItemKey,
					"reason":   reason,
				})
				s.logg.Warn(rowCtx, "dropping malformed catalog row")
			}
			continue
		}
		if _, dup := seen[row.ItemKey]; dup {
			continue
		}
		seen[row.ItemKey] = struct{}{}
		items = append(items, fromEntry(row))
	}
	return items
}

func validateEntry(row models.CatalogEntry) string {
	switch {
	case strings.TrimSpace(row.ItemKey) == "":
		return "blank item_key"
	case strings.TrimSpace(row.Category) == "":
		return "blank category"
	case strings.TrimSpace(row.Label) == "":
		return "blank label"
	case strings.TrimSpace(row.Unit) == "":
		return "blank unit"
	case !row.QuantityMode.IsValid():
		return "unknown quantity_mode"
	case row.BasePrice.IsNegative():
		return "negative base_price"
	}
	return ""
}
