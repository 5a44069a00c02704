package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTablesListEveryChain fails when a chain is declared but left out of a metadata table.
func TestTablesListEveryChain(t *testing.T) {
	t.Parallel()

	for _, c := range All() {
		_, listed := c.blockTimeMillis()
		assert.True(t, listed, "%s missing from the block time table", c)

		_, listed = c.explorerURLs()
		assert.True(t, listed, "%s missing from the explorer table", c)

		_, listed = c.legacyStatus()
		assert.True(t, listed, "%s missing from the legacy table", c)

		_, listed = c.network()
		assert.True(t, listed, "%s missing from the network table", c)
	}
}

func TestTablesRejectUnknownValues(t *testing.T) {
	t.Parallel()

	unknown := Chain(123)

	_, listed := unknown.blockTimeMillis()
	assert.False(t, listed)
	_, listed = unknown.explorerURLs()
	assert.False(t, listed)
	_, listed = unknown.legacyStatus()
	assert.False(t, listed)
	_, listed = unknown.network()
	assert.False(t, listed)

	_, ok := unknown.AverageBlockTime()
	assert.False(t, ok)
	_, ok = unknown.ExplorerURLs()
	assert.False(t, ok)
	assert.False(t, unknown.IsLegacy())
	assert.Empty(t, unknown.Network())
}

func TestBinanceSmartChain(t *testing.T) {
	t.Parallel()

	c, err := FromUint64(56)
	require.NoError(t, err)
	assert.Equal(t, "binance-smart-chain", c.String())

	alias, err := ParseChain("bsc")
	require.NoError(t, err)
	assert.Equal(t, c, alias)

	assert.True(t, c.IsLegacy())

	blockTime, ok := c.AverageBlockTime()
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, blockTime)
}

func TestMainnet(t *testing.T) {
	t.Parallel()

	assert.False(t, Mainnet.IsLegacy())

	urls, ok := Mainnet.ExplorerURLs()
	require.True(t, ok)
	assert.Equal(t, "https://api.etherscan.io/api", urls.APIURL)
	assert.Equal(t, "https://etherscan.io", urls.BaseURL)
	assert.Equal(t, NetworkMainnet, Mainnet.Network())
}

func TestNoDataOutcomes(t *testing.T) {
	t.Parallel()

	for _, c := range []Chain{Morden, Goerli, XDai, Sepolia, Rsk, EmeraldTestnet} {
		_, ok := c.AverageBlockTime()
		assert.False(t, ok, c.String())
	}

	for _, c := range []Chain{AnvilHardhat, Dev, Morden, MoonbeamDev} {
		_, ok := c.ExplorerURLs()
		assert.False(t, ok, c.String())
	}

	// unknown fee-market support defaults to non-legacy
	for _, c := range []Chain{Dev, AnvilHardhat, XDai, Moonbeam, Aurora, Cronos} {
		assert.False(t, c.IsLegacy(), c.String())
	}
}

func TestExplorerURLsShape(t *testing.T) {
	t.Parallel()

	for _, c := range All() {
		urls, ok := c.ExplorerURLs()
		if !ok {
			continue
		}
		assert.True(t, strings.HasPrefix(urls.APIURL, "https://"), c.String())
		assert.True(t, strings.HasPrefix(urls.BaseURL, "https://"), c.String())
		assert.True(t, strings.HasSuffix(urls.APIURL, "/api"), "%s api url %s", c, urls.APIURL)
	}
}

func TestBlockTimesArePositive(t *testing.T) {
	t.Parallel()

	for _, c := range All() {
		if blockTime, ok := c.AverageBlockTime(); ok {
			assert.Greater(t, int64(blockTime), int64(0), c.String())
		}
	}
}

func TestNetworkClassification(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NetworkTestnet, Sepolia.Network())
	assert.Equal(t, NetworkTestnet, PolygonMumbai.Network())
	assert.Equal(t, NetworkDevnet, AnvilHardhat.Network())
	assert.Equal(t, NetworkMainnet, XDai.Network())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	info := Describe(XDai)
	assert.Equal(t, XDai, info.Chain)
	assert.Equal(t, "x-dai", info.Name)
	assert.Equal(t, []string{"gnosis", "xdai", "gnosis-chain"}, info.Aliases)
	assert.Equal(t, NetworkMainnet, info.Network)
	assert.Zero(t, info.BlockTime)
	require.NotNil(t, info.Explorer)
	assert.Equal(t, "https://blockscout.com/xdai/mainnet", info.Explorer.BaseURL)
	assert.False(t, info.Legacy)

	info = Describe(Dev)
	assert.Nil(t, info.Explorer)
	assert.Equal(t, 200*time.Millisecond, info.BlockTime)
}

func TestChainInfoClone(t *testing.T) {
	t.Parallel()

	info := Describe(XDai)
	clone := info.Clone()
	require.Equal(t, info, clone)

	clone.Aliases[0] = "mutated"
	clone.Explorer.APIURL = "https://mutated.example/api"
	assert.Equal(t, "gnosis", info.Aliases[0])
	assert.Equal(t, "https://blockscout.com/xdai/mainnet/api", info.Explorer.APIURL)

	bare := Describe(Dev).Clone()
	assert.Nil(t, bare.Explorer)

	infos := []ChainInfo{Describe(Mainnet), Describe(BinanceSmartChain)}
	copied := CloneChainInfos(infos)
	copied[1].Aliases[0] = "mutated"
	assert.Equal(t, []string{"bsc"}, infos[1].Aliases)
	assert.Nil(t, CloneChainInfos(nil))
}
