package repository

import (
	"context"

	"chain-registry/internal/domain/entity"
)

// ChainRepository defines the interface for accessing chain data.
type ChainRepository interface {
	// GetAllChains retrieves every registered chain in declaration order.
	GetAllChains(ctx context.Context) ([]entity.ChainInfo, error)

	// GetChain resolves a chain reference (decimal or hex ID, canonical name or alias).
	GetChain(ctx context.Context, ref string) (entity.ChainInfo, error)
}
