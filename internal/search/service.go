package search

import (
	"context"
	"fmt"

	"gamecatalog/backend/internal/logger"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/store"
)

// Verifier checks a bearer credential.
type Verifier interface {
	Verify(credential string) (subject string, err error)
}

// Querier runs a read-only parameterized scan.
type Querier interface {
	Query(ctx context.Context, p store.Predicate) ([]store.RawRow, error)
}

// Result is the answer to one search.
type Result struct {
	Count   int                   `json:"count"`
	Results []models.CatalogEntry `json:"results"`
}

// Service runs authorized catalog searches.
type Service struct {
	verifier Verifier
	catalog  Querier
}

// NewService creates a search service.
func NewService(verifier Verifier, catalog Querier) *Service {
	return &Service{verifier: verifier, catalog: catalog}
}

// Search verifies credential, then returns every entry matching c.
func (s *Service) Search(ctx context.Context, credential string, c Criteria) (*Result, error) {
	if credential == "" {
		return nil, &AuthorizationError{Reason: "missing bearer token"}
	}
	subject, err := s.verifier.Verify(credential)
	if err != nil {
		return nil, &AuthorizationError{Reason: "invalid token", cause: err}
	}

	pred, err := Compile(c)
	if err != nil {
		return nil, err
	}

	rows, err := s.catalog.Query(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	res := &Result{Results: make([]models.CatalogEntry, 0, len(rows))}
	for _, row := range rows {
		e, err := Unmarshal(row)
		if err != nil {
			return nil, err
		}
		res.Results = append(res.Results, e)
	}
	res.Count = len(res.Results)

	log := logger.FromContext(ctx)
	log.Debug().Str("subject", subject).Int("criteria", len(c)).Int("count", res.Count).Msg("search")
	return res, nil
}
