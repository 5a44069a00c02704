package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chain-registry/internal/adapter/storage/memory"
	"chain-registry/internal/adapter/storage/registry"
	"chain-registry/internal/config"
	"chain-registry/internal/domain"
	"chain-registry/internal/domain/entity"
)

// countingRepo wraps the registry repository and counts lookups.
type countingRepo struct {
	*registry.Repository
	listCalls int
	getCalls  int
}

func (r *countingRepo) GetAllChains(ctx context.Context) ([]entity.ChainInfo, error) {
	r.listCalls++
	return r.Repository.GetAllChains(ctx)
}

func (r *countingRepo) GetChain(ctx context.Context, ref string) (entity.ChainInfo, error) {
	r.getCalls++
	return r.Repository.GetChain(ctx, ref)
}

// brokenCache fails every operation.
type brokenCache struct{}

var errCacheDown = errors.New("cache down")

func (brokenCache) GetChains(context.Context) ([]entity.ChainInfo, bool, error) {
	return nil, false, errCacheDown
}

func (brokenCache) SetChains(context.Context, []entity.ChainInfo, time.Duration) error {
	return errCacheDown
}

func (brokenCache) GetChain(context.Context, string) (entity.ChainInfo, bool, error) {
	return entity.ChainInfo{}, false, errCacheDown
}

func (brokenCache) SetChain(context.Context, string, entity.ChainInfo, time.Duration) error {
	return errCacheDown
}

func testConfig(defaultChain string) config.Config {
	return config.Config{
		Cache: config.CacheConfig{
			DefaultExpiration: time.Minute,
			CleanupInterval:   time.Minute,
		},
		Registry: config.RegistryConfig{DefaultChain: defaultChain},
	}
}

func newTestService(t *testing.T, defaultChain string) (*chainService, *countingRepo) {
	t.Helper()

	cfg := testConfig(defaultChain)
	repo := &countingRepo{Repository: registry.NewRepositoryWithSelectors(nil, zap.NewNop())}
	cache := memory.NewCacheRepository(cfg.Cache, zap.NewNop())
	svc := NewChainService(repo, cache, zap.NewNop(), cfg)
	return svc.(*chainService), repo
}

func TestListChainsUsesCache(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, "mainnet")
	ctx := context.Background()

	first, err := svc.ListChains(ctx)
	require.NoError(t, err)
	require.Len(t, first, entity.Count)

	second, err := svc.ListChains(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestResolveChainUsesCache(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, "mainnet")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		info, err := svc.ResolveChain(ctx, "fuji")
		require.NoError(t, err)
		assert.Equal(t, entity.AvalancheFuji, info.Chain)
	}
	assert.Equal(t, 1, repo.getCalls)
}

func TestResolveChainFailuresAreNotCached(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, "mainnet")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.ResolveChain(ctx, "Mainnet")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrChainNotFound)
	}
	assert.Equal(t, 2, repo.getCalls)
}

func TestDefaultChain(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "mainnet")
	info, err := svc.DefaultChain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Mainnet, info.Chain)

	svc, _ = newTestService(t, "137")
	info, err = svc.DefaultChain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Polygon, info.Chain)

	svc, _ = newTestService(t, "not-a-chain")
	_, err = svc.DefaultChain(context.Background())
	assert.ErrorIs(t, err, domain.ErrChainNotFound)
}

func TestExplorerURLs(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "mainnet")
	ctx := context.Background()

	urls, err := svc.ExplorerURLs(ctx, "bsc")
	require.NoError(t, err)
	assert.Equal(t, "https://api.bscscan.com/api", urls.APIURL)
	assert.Equal(t, "https://bscscan.com", urls.BaseURL)

	_, err = svc.ExplorerURLs(ctx, "anvil")
	assert.ErrorIs(t, err, domain.ErrNoExplorer)

	_, err = svc.ExplorerURLs(ctx, "0xzz")
	assert.ErrorIs(t, err, domain.ErrInvalidChainRef)
}

func TestCacheFailureFallsBackToRepository(t *testing.T) {
	t.Parallel()

	cfg := testConfig("mainnet")
	repo := &countingRepo{Repository: registry.NewRepositoryWithSelectors(nil, zap.NewNop())}
	svc := NewChainService(repo, brokenCache{}, zap.NewNop(), cfg)
	ctx := context.Background()

	chains, err := svc.ListChains(ctx)
	require.NoError(t, err)
	assert.Len(t, chains, entity.Count)

	info, err := svc.ResolveChain(ctx, "matic")
	require.Error(t, err, "matic is not a registered alias")
	assert.Zero(t, info.Chain)

	info, err = svc.ResolveChain(ctx, "polygon")
	require.NoError(t, err)
	assert.Equal(t, entity.Polygon, info.Chain)
	assert.Equal(t, 2, repo.getCalls)
}

func TestResultsDoNotShareCachedMemory(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "mainnet")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		info, err := svc.ResolveChain(ctx, "bsc")
		require.NoError(t, err)
		require.NotNil(t, info.Explorer)
		require.NotEmpty(t, info.Aliases)
		info.Explorer.APIURL = "https://mutated.example/api"
		info.Aliases[0] = "mutated"
	}

	info, err := svc.ResolveChain(ctx, "bsc")
	require.NoError(t, err)
	assert.Equal(t, "https://api.bscscan.com/api", info.Explorer.APIURL)
	assert.Equal(t, []string{"bsc"}, info.Aliases)

	urls, err := svc.ExplorerURLs(ctx, "bsc")
	require.NoError(t, err)
	assert.Equal(t, "https://api.bscscan.com/api", urls.APIURL)

	for i := 0; i < 2; i++ {
		chains, err := svc.ListChains(ctx)
		require.NoError(t, err)
		chains[0].Name = "hijacked"
		chains[0].Explorer.BaseURL = "https://mutated.example"
	}

	chains, err := svc.ListChains(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", chains[0].Name)
	assert.Equal(t, "https://etherscan.io", chains[0].Explorer.BaseURL)
}

func TestOnlyCanonicalRefsAreCached(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, "mainnet")
	ctx := context.Background()

	for _, ref := range []string{"0x38", "0x0000000000038", "056", "0x38"} {
		info, err := svc.ResolveChain(ctx, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, entity.BinanceSmartChain, info.Chain, ref)
	}
	assert.Equal(t, 4, repo.getCalls, "non-canonical spellings bypass the cache")

	for _, ref := range []string{"56", "56", "binance-smart-chain", "binance-smart-chain", "bsc", "bsc"} {
		_, err := svc.ResolveChain(ctx, ref)
		require.NoError(t, err, ref)
	}
	assert.Equal(t, 7, repo.getCalls)
}

func TestCanonicalRef(t *testing.T) {
	t.Parallel()

	info := entity.Describe(entity.XDai)
	for _, ref := range []string{"100", "x-dai", "gnosis", "xdai", "gnosis-chain"} {
		assert.True(t, canonicalRef(ref, info), ref)
	}
	for _, ref := range []string{"0x64", "0100", "X-Dai"} {
		assert.False(t, canonicalRef(ref, info), ref)
	}
}
