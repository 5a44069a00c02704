package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"chain-registry/internal/config"
	"chain-registry/internal/domain/entity"
	domainRepo "chain-registry/internal/domain/repository"
)

// Compile-time check
var _ domainRepo.ChainRepository = (*Repository)(nil)

// Repository implements ChainRepository over the static chain registry.
type Repository struct {
	selectors SelectorResolver
	logger    *zap.Logger
}

// NewRepository creates a registry repository. CCIP selectors are attached when enabled in cfg.
func NewRepository(cfg config.RegistryConfig, logger *zap.Logger) domainRepo.ChainRepository {
	selectors := noSelectors
	if cfg.Selectors {
		selectors = CCIPSelector
	}
	return NewRepositoryWithSelectors(selectors, logger)
}

// NewRepositoryWithSelectors creates a registry repository using the given selector source.
func NewRepositoryWithSelectors(selectors SelectorResolver, logger *zap.Logger) *Repository {
	if selectors == nil {
		selectors = noSelectors
	}
	return &Repository{
		selectors: selectors,
		logger:    logger.Named("RegistryStorage"),
	}
}

// GetAllChains returns every registered chain in declaration order.
func (r *Repository) GetAllChains(ctx context.Context) ([]entity.ChainInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chains := entity.All()
	infos := make([]entity.ChainInfo, 0, len(chains))
	for _, c := range chains {
		infos = append(infos, r.describe(c))
	}

	r.logger.Debug("Listed registry chains", zap.Int("count", len(infos)))
	return infos, nil
}

// GetChain resolves ref as a numeric ID or a name.
func (r *Repository) GetChain(ctx context.Context, ref string) (entity.ChainInfo, error) {
	if err := ctx.Err(); err != nil {
		return entity.ChainInfo{}, err
	}

	c, err := entity.ParseChainRef(ref)
	if err != nil {
		r.logger.Debug("Chain reference did not resolve", zap.String("ref", ref), zap.Error(err))
		return entity.ChainInfo{}, fmt.Errorf("resolve chain %q: %w", ref, err)
	}

	return r.describe(c), nil
}
