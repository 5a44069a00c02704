package port

import (
	"context"

	"chain-registry/internal/domain/entity"
)

// ChainService defines the interface for the business logic behind the registry API.
type ChainService interface {
	// ListChains returns every registered chain.
	ListChains(ctx context.Context) ([]entity.ChainInfo, error)

	// ResolveChain resolves a chain reference (ID, hex ID, canonical name or alias).
	ResolveChain(ctx context.Context, ref string) (entity.ChainInfo, error)

	// DefaultChain returns the configured default chain.
	DefaultChain(ctx context.Context) (entity.ChainInfo, error)

	// ExplorerURLs returns the block explorer of the referenced chain.
	ExplorerURLs(ctx context.Context, ref string) (entity.ExplorerURLs, error)
}
