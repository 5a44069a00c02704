package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"chain-registry/internal/config"
	"chain-registry/internal/domain/entity"
	domainRepo "chain-registry/internal/domain/repository"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

// Cache keys
const (
	allChainsKey      = "all_chains"
	chainRefKeyPrefix = "chain_ref_"
)

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
// Entries are deep-copied on the way in and out, so callers never share cached memory.
type CacheRepository struct {
	cache  *cache.Cache
	logger *zap.Logger
	cfg    config.CacheConfig
}

// NewCacheRepository creates a new in-memory cache repository instance.
func NewCacheRepository(cfg config.CacheConfig, logger *zap.Logger) *CacheRepository {
	defaultExpiration := cfg.GetDefaultExpiration()
	cleanupInterval := cfg.GetCleanupInterval()

	c := cache.New(defaultExpiration, cleanupInterval)
	logger.Info(
		"Initialized go-cache for memory storage",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval),
	)

	return &CacheRepository{
		cache:  c,
		logger: logger.Named("MemoryCacheStorage"),
		cfg:    cfg,
	}
}

// GetChains retrieves the cached full list of chains, returning found status.
func (r *CacheRepository) GetChains(_ context.Context) ([]entity.ChainInfo, bool, error) {
	x, found := r.cache.Get(allChainsKey)
	if !found {
		r.logger.Debug("Memory cache miss", zap.String("key", allChainsKey))
		return nil, false, nil
	}
	chains, ok := x.([]entity.ChainInfo)
	if !ok {
		return nil, false, r.typeMismatch(allChainsKey, x)
	}
	r.logger.Debug("Memory cache hit", zap.String("key", allChainsKey))
	return entity.CloneChainInfos(chains), true, nil
}

// SetChains caches the full list of chains with a given TTL.
func (r *CacheRepository) SetChains(_ context.Context, chains []entity.ChainInfo, ttl time.Duration) error {
	ttl = r.ttl(ttl)
	r.cache.Set(allChainsKey, entity.CloneChainInfos(chains), ttl)
	r.logger.Debug("Memory cache set", zap.String("key", allChainsKey), zap.Duration("ttl", ttl))
	return nil
}

// GetChain retrieves the chain cached for a reference, returning found status.
func (r *CacheRepository) GetChain(_ context.Context, ref string) (entity.ChainInfo, bool, error) {
	key := chainRefKey(ref)
	x, found := r.cache.Get(key)
	if !found {
		r.logger.Debug("Memory cache miss", zap.String("key", key))
		return entity.ChainInfo{}, false, nil
	}
	info, ok := x.(entity.ChainInfo)
	if !ok {
		return entity.ChainInfo{}, false, r.typeMismatch(key, x)
	}
	r.logger.Debug("Memory cache hit", zap.String("key", key))
	return info.Clone(), true, nil
}

// SetChain caches the chain resolved for a reference with a given TTL.
func (r *CacheRepository) SetChain(_ context.Context, ref string, info entity.ChainInfo, ttl time.Duration) error {
	key := chainRefKey(ref)
	ttl = r.ttl(ttl)
	r.cache.Set(key, info.Clone(), ttl)
	r.logger.Debug("Memory cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// ttl falls back to the configured default expiration for zero or negative values.
func (r *CacheRepository) ttl(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return r.cfg.GetDefaultExpiration()
	}
	return ttl
}

func (r *CacheRepository) typeMismatch(key string, x interface{}) error {
	r.logger.Warn(
		"Memory cache data type mismatch for key",
		zap.String("key", key),
		zap.String("type", fmt.Sprintf("%T", x)),
	)
	return fmt.Errorf("cache entry %q holds unexpected type %T", key, x)
}

// chainRefKey generates the cache key for a chain reference.
func chainRefKey(ref string) string {
	return chainRefKeyPrefix + ref
}
