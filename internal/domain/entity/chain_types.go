package entity

import "time"

// NetworkType defines the type for network classifications (e.g., mainnet, testnet).
type NetworkType string

// Constants for known network types.
const (
	NetworkMainnet NetworkType = "mainnet"
	NetworkTestnet NetworkType = "testnet"
	NetworkDevnet  NetworkType = "devnet"
)

// ExplorerURLs holds a block explorer's API endpoint and its human-facing base URL.
type ExplorerURLs struct {
	APIURL  string
	BaseURL string
}

// ChainInfo is a snapshot of a chain's identity and metadata for presentation.
type ChainInfo struct {
	Chain     Chain
	Name      string
	Aliases   []string
	Network   NetworkType
	BlockTime time.Duration // zero when no default is known
	Explorer  *ExplorerURLs // nil when no explorer is known
	Legacy    bool
	Selector  uint64 // CCIP chain selector, zero when the chain has none
}

// Describe collects everything the registry knows about c.
func Describe(c Chain) ChainInfo {
	info := ChainInfo{
		Chain:   c,
		Name:    c.String(),
		Aliases: c.Aliases(),
		Network: c.Network(),
		Legacy:  c.IsLegacy(),
	}
	if blockTime, ok := c.AverageBlockTime(); ok {
		info.BlockTime = blockTime
	}
	if urls, ok := c.ExplorerURLs(); ok {
		info.Explorer = &urls
	}
	return info
}

// Clone returns a copy of info that shares no memory with it.
func (info ChainInfo) Clone() ChainInfo {
	if info.Aliases != nil {
		info.Aliases = append([]string(nil), info.Aliases...)
	}
	if info.Explorer != nil {
		explorer := *info.Explorer
		info.Explorer = &explorer
	}
	return info
}

// CloneChainInfos deep-copies infos with Clone.
func CloneChainInfos(infos []ChainInfo) []ChainInfo {
	if infos == nil {
		return nil
	}
	out := make([]ChainInfo, len(infos))
	for i, info := range infos {
		out[i] = info.Clone()
	}
	return out
}
