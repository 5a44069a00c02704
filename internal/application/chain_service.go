package application

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"chain-registry/internal/application/port"
	"chain-registry/internal/config"
	"chain-registry/internal/domain"
	"chain-registry/internal/domain/entity"
	domainRepo "chain-registry/internal/domain/repository"
)

// Compile-time check to ensure chainService implements ChainService
var _ port.ChainService = (*chainService)(nil)

// chainService implements port.ChainService on top of the registry and a cache.
type chainService struct {
	chainRepo domainRepo.ChainRepository
	cacheRepo domainRepo.CacheRepository
	logger    *zap.Logger
	cfg       config.Config
}

// NewChainService creates a new instance of the chain service.
func NewChainService(
	chainRepo domainRepo.ChainRepository,
	cacheRepo domainRepo.CacheRepository,
	logger *zap.Logger,
	cfg config.Config,
) port.ChainService {
	return &chainService{
		chainRepo: chainRepo,
		cacheRepo: cacheRepo,
		logger:    logger.Named("ChainService"),
		cfg:       cfg,
	}
}

// ListChains returns all chains, prioritizing cache, and falls back to the repository.
func (s *chainService) ListChains(ctx context.Context) ([]entity.ChainInfo, error) {
	cached, found, err := s.cacheRepo.GetChains(ctx)
	if err != nil {
		s.logger.Warn("Cache error when getting all chains", zap.Error(err))
	}
	if found {
		s.logger.Debug("Cache hit for all chains")
		return cached, nil
	}

	chains, err := s.chainRepo.GetAllChains(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chains from repository: %w", err)
	}

	if err := s.cacheRepo.SetChains(ctx, chains, s.cfg.Cache.GetDefaultExpiration()); err != nil {
		s.logger.Error("Failed to cache chain list", zap.Error(err))
	}

	s.logger.Debug("Listed chains from repository", zap.Int("count", len(chains)))
	return chains, nil
}

// ResolveChain resolves a reference, prioritizing cache. Failed lookups are not cached.
func (s *chainService) ResolveChain(ctx context.Context, ref string) (entity.ChainInfo, error) {
	cached, found, err := s.cacheRepo.GetChain(ctx, ref)
	if err != nil {
		s.logger.Warn("Cache error when resolving chain", zap.String("ref", ref), zap.Error(err))
	}
	if found {
		s.logger.Debug("Cache hit for chain reference", zap.String("ref", ref))
		return cached, nil
	}

	info, err := s.chainRepo.GetChain(ctx, ref)
	if err != nil {
		return entity.ChainInfo{}, err
	}

	if canonicalRef(ref, info) {
		if err := s.cacheRepo.SetChain(ctx, ref, info, s.cfg.Cache.GetDefaultExpiration()); err != nil {
			s.logger.Error("Failed to cache resolved chain", zap.String("ref", ref), zap.Error(err))
		}
	}

	s.logger.Debug("Resolved chain reference",
		zap.String("ref", ref), zap.Uint64("chainId", info.Chain.ID()), zap.String("name", info.Name),
	)
	return info, nil
}

// canonicalRef reports whether ref is the decimal ID, canonical name or an alias of info.
// Only these are cached; hex and zero-padded spellings always go to the repository.
func canonicalRef(ref string, info entity.ChainInfo) bool {
	if ref == info.Name || ref == strconv.FormatUint(info.Chain.ID(), 10) {
		return true
	}
	return slices.Contains(info.Aliases, ref)
}

// DefaultChain resolves the chain configured as registry.default_chain.
func (s *chainService) DefaultChain(ctx context.Context) (entity.ChainInfo, error) {
	info, err := s.ResolveChain(ctx, s.cfg.Registry.DefaultChain)
	if err != nil {
		return entity.ChainInfo{}, fmt.Errorf("default chain %q: %w", s.cfg.Registry.DefaultChain, err)
	}
	return info, nil
}

// ExplorerURLs returns the block explorer of the referenced chain.
func (s *chainService) ExplorerURLs(ctx context.Context, ref string) (entity.ExplorerURLs, error) {
	info, err := s.ResolveChain(ctx, ref)
	if err != nil {
		return entity.ExplorerURLs{}, err
	}
	if info.Explorer == nil {
		return entity.ExplorerURLs{}, fmt.Errorf("%w: %s", domain.ErrNoExplorer, info.Name)
	}
	return *info.Explorer, nil
}
