package ingest

import (
	"context"
	"fmt"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/schema"

	"github.com/rs/zerolog"
)

// Store installs a complete dataset atomically.
type Store interface {
	ReplaceAll(ctx context.Context, rows []models.GameRow) error
	Count(ctx context.Context) (int64, error)
}

// Ingester validates uploaded datasets and replaces the stored catalog.
type Ingester struct {
	store Store
	log   zerolog.Logger
}

// NewIngester creates an Ingester writing to store.
func NewIngester(store Store, log zerolog.Logger) *Ingester {
	return &Ingester{store: store, log: log}
}

// Ingest normalizes t and replaces the stored dataset with it. It returns
// the number of rows stored. Nothing is written if t fails validation.
func (i *Ingester) Ingest(ctx context.Context, t *Table) (int, error) {
	rows, err := Normalize(t)
	if err != nil {
		return 0, err
	}
	if extra := unknownColumns(t.Header); len(extra) > 0 {
		i.log.Debug().Strs("columns", extra).Msg("ignoring columns outside the catalog schema")
	}
	if err := i.store.ReplaceAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("ingest: %w", err)
	}
	stored, err := i.store.Count(ctx)
	if err != nil {
		i.log.Warn().Err(err).Msg("count after replace failed")
	}
	i.log.Info().Int("rows", len(rows)).Int64("stored", stored).Int("columns", len(t.Header)).Msg("dataset replaced")
	return len(rows), nil
}

func unknownColumns(header []string) []string {
	var out []string
	for _, h := range header {
		if _, ok := schema.Lookup(h); !ok && !schema.IsIndexColumn(h) {
			out = append(out, h)
		}
	}
	return out
}
