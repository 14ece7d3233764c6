package adapter

import (
	"context"
	"time"
)

// SummaryCache stores serialized dashboard summaries keyed by fiscal year and filter.
type SummaryCache interface {
	// Get returns the cached payload and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload under key for ttl.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// InvalidateFiscalYear drops every cached summary of the given fiscal year.
	InvalidateFiscalYear(ctx context.Context, fiscalYear string) error

	// Ping reports whether the cache backend is reachable.
	Ping(ctx context.Context) error
}
