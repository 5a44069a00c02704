package repository

import (
	"context"
	"time"

	"chain-registry/internal/domain/entity"
)

// CacheRepository defines the interface for caching resolved chain data.
type CacheRepository interface {
	// GetChains retrieves the cached list of all chains.
	GetChains(ctx context.Context) ([]entity.ChainInfo, bool, error)

	// SetChains stores the list of all chains in the cache with a specified TTL.
	SetChains(ctx context.Context, chains []entity.ChainInfo, ttl time.Duration) error

	// GetChain retrieves the chain previously resolved for a reference.
	GetChain(ctx context.Context, ref string) (entity.ChainInfo, bool, error)

	// SetChain stores the chain resolved for a reference with a specified TTL.
	SetChain(ctx context.Context, ref string, chain entity.ChainInfo, ttl time.Duration) error
}
