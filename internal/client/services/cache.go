package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/logging"
)

// Clearer empties one local table.
type Clearer interface {
	Clear(ctx context.Context) error
}

// NamedClearer labels a Clearer for errors and logs.
type NamedClearer struct {
	Name    string
	Clearer Clearer
}

// CacheService drops cached collections on explicit user request. The
// stored access token is kept.
type CacheService interface {
	Purge(ctx context.Context) error
}

type cacheService struct {
	tables []NamedClearer
	log    logging.Logger
}

// NewCacheService purges tables in argument order.
func NewCacheService(log logging.Logger, tables ...NamedClearer) CacheService {
	if log == nil {
		log = logging.Nop()
	}
	return &cacheService{tables: tables, log: log}
}

func (s *cacheService) Purge(ctx context.Context) error {
	for _, t := range s.tables {
		if err := t.Clearer.Clear(ctx); err != nil {
			return fmt.Errorf("purge %s: %w", t.Name, err)
		}
		s.log.Info(ctx, "cache purged", "table", t.Name)
	}
	return nil
}
