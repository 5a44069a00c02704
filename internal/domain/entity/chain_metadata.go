package entity

import "time"

// Every table below lists each chain explicitly and has no default branch, so a newly
// declared chain is reported by the exhaustive linter and by the coverage tests until it is
// classified everywhere. The second return value of each lookup reports whether c was listed.

// AverageBlockTime returns a sensible polling interval for the chain, if one is known.
//
// This is not an accurate average; it is a default derived from block time charts such as
// https://etherscan.io/chart/blocktime.
func (c Chain) AverageBlockTime() (time.Duration, bool) {
	ms, _ := c.blockTimeMillis()
	if ms == 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

func (c Chain) blockTimeMillis() (int64, bool) {
	//exhaustive:enforce
	switch c {
	case Arbitrum, ArbitrumTestnet, ArbitrumGoerli, ArbitrumNova:
		return 1_300, true
	case Mainnet, Optimism:
		return 13_000, true
	case Polygon, PolygonMumbai:
		return 2_100, true
	case Moonbeam, Moonriver:
		return 12_500, true
	case BinanceSmartChain, BinanceSmartChainTestnet:
		return 3_000, true
	case Avalanche, AvalancheFuji:
		return 2_000, true
	case Fantom, FantomTestnet:
		return 1_200, true
	case Cronos, CronosTestnet:
		return 5_700, true
	case Evmos, EvmosTestnet:
		return 1_900, true
	case Aurora, AuroraTestnet:
		return 1_100, true
	case Oasis:
		return 5_500, true
	case Emerald:
		return 6_000, true
	case Dev, AnvilHardhat:
		return 200, true
	case Celo, CeloAlfajores, CeloBaklava:
		return 5_000, true
	case Morden, Ropsten, Rinkeby, Goerli, Kovan, XDai, Chiado, Sepolia, Moonbase,
		MoonbeamDev, OptimismGoerli, OptimismKovan, Poa, Sokol, Rsk, EmeraldTestnet:
		return 0, true
	}
	return 0, false
}

// ExplorerURLs returns the chain's Etherscan-compatible explorer, if one is known.
func (c Chain) ExplorerURLs() (ExplorerURLs, bool) {
	urls, _ := c.explorerURLs()
	if urls.APIURL == "" {
		return ExplorerURLs{}, false
	}
	return urls, true
}

func (c Chain) explorerURLs() (ExplorerURLs, bool) {
	var api, base string

	//exhaustive:enforce
	switch c {
	case Mainnet:
		api, base = "https://api.etherscan.io/api", "https://etherscan.io"
	case Ropsten:
		api, base = "https://api-ropsten.etherscan.io/api", "https://ropsten.etherscan.io"
	case Kovan:
		api, base = "https://api-kovan.etherscan.io/api", "https://kovan.etherscan.io"
	case Rinkeby:
		api, base = "https://api-rinkeby.etherscan.io/api", "https://rinkeby.etherscan.io"
	case Goerli:
		api, base = "https://api-goerli.etherscan.io/api", "https://goerli.etherscan.io"
	case Sepolia:
		api, base = "https://api-sepolia.etherscan.io/api", "https://sepolia.etherscan.io"
	case Polygon:
		api, base = "https://api.polygonscan.com/api", "https://polygonscan.com"
	case PolygonMumbai:
		api, base = "https://api-testnet.polygonscan.com/api", "https://mumbai.polygonscan.com"
	case Avalanche:
		api, base = "https://api.snowtrace.io/api", "https://snowtrace.io"
	case AvalancheFuji:
		api, base = "https://api-testnet.snowtrace.io/api", "https://testnet.snowtrace.io"
	case Optimism:
		api, base = "https://api-optimistic.etherscan.io/api", "https://optimistic.etherscan.io"
	case OptimismGoerli:
		api, base = "https://api-goerli-optimistic.etherscan.io/api", "https://goerli-optimism.etherscan.io"
	case OptimismKovan:
		api, base = "https://api-kovan-optimistic.etherscan.io/api", "https://kovan-optimistic.etherscan.io"
	case Fantom:
		api, base = "https://api.ftmscan.com/api", "https://ftmscan.com"
	case FantomTestnet:
		api, base = "https://api-testnet.ftmscan.com/api", "https://testnet.ftmscan.com"
	case BinanceSmartChain:
		api, base = "https://api.bscscan.com/api", "https://bscscan.com"
	case BinanceSmartChainTestnet:
		api, base = "https://api-testnet.bscscan.com/api", "https://testnet.bscscan.com"
	case Arbitrum:
		api, base = "https://api.arbiscan.io/api", "https://arbiscan.io"
	case ArbitrumTestnet:
		api, base = "https://api-testnet.arbiscan.io/api", "https://testnet.arbiscan.io"
	case ArbitrumGoerli:
		api, base = "https://goerli-rollup-explorer.arbitrum.io/api", "https://goerli-rollup-explorer.arbitrum.io"
	case ArbitrumNova:
		api, base = "https://api-nova.arbiscan.io/api", "https://nova.arbiscan.io/"
	case Cronos:
		api, base = "https://api.cronoscan.com/api", "https://cronoscan.com"
	case CronosTestnet:
		api, base = "https://api-testnet.cronoscan.com/api", "https://testnet.cronoscan.com"
	case Moonbeam:
		api, base = "https://api-moonbeam.moonscan.io/api", "https://moonbeam.moonscan.io/"
	case Moonbase:
		api, base = "https://api-moonbase.moonscan.io/api", "https://moonbase.moonscan.io/"
	case Moonriver:
		api, base = "https://api-moonriver.moonscan.io/api", "https://moonriver.moonscan.io"
	// blockscout exposes an etherscan compatible API
	case XDai:
		api, base = "https://blockscout.com/xdai/mainnet/api", "https://blockscout.com/xdai/mainnet"
	case Chiado:
		api, base = "https://blockscout.chiadochain.net/api", "https://blockscout.chiadochain.net"
	case Sokol:
		api, base = "https://blockscout.com/poa/sokol/api", "https://blockscout.com/poa/sokol"
	case Poa:
		api, base = "https://blockscout.com/poa/core/api", "https://blockscout.com/poa/core"
	case Rsk:
		api, base = "https://blockscout.com/rsk/mainnet/api", "https://blockscout.com/rsk/mainnet"
	case Oasis:
		api, base = "https://scan.oasischain.io/api", "https://scan.oasischain.io/"
	case Emerald:
		api, base = "https://explorer.emerald.oasis.dev/api", "https://explorer.emerald.oasis.dev/"
	case EmeraldTestnet:
		api, base = "https://testnet.explorer.emerald.oasis.dev/api", "https://testnet.explorer.emerald.oasis.dev/"
	case Aurora:
		api, base = "https://api.aurorascan.dev/api", "https://aurorascan.dev"
	case AuroraTestnet:
		api, base = "https://testnet.aurorascan.dev/api", "https://testnet.aurorascan.dev"
	case Evmos:
		api, base = "https://evm.evmos.org/api", "https://evm.evmos.org/"
	case EvmosTestnet:
		api, base = "https://evm.evmos.dev/api", "https://evm.evmos.dev/"
	// Celo pairs are upstream's (base, api) order flipped into (api, base). Keep this
	// order when syncing; TestExplorerURLsShape requires every API URL to end in /api.
	case Celo:
		api, base = "https://explorer.celo.org/mainnet/api", "https://explorer.celo.org/mainnet"
	case CeloAlfajores:
		api, base = "https://explorer.celo.org/alfajores/api", "https://explorer.celo.org/alfajores"
	case CeloBaklava:
		api, base = "https://explorer.celo.org/baklava/api", "https://explorer.celo.org/baklava"
	case AnvilHardhat, Dev, Morden, MoonbeamDev:
		return ExplorerURLs{}, true
	}

	if api == "" {
		return ExplorerURLs{}, false
	}
	return ExplorerURLs{APIURL: api, BaseURL: base}, true
}

// IsLegacy reports whether the chain lacks EIP-1559 (type 2) transactions.
// Chains whose status is unknown are treated as not legacy.
func (c Chain) IsLegacy() bool {
	legacy, _ := c.legacyStatus()
	return legacy
}

func (c Chain) legacyStatus() (bool, bool) {
	//exhaustive:enforce
	switch c {
	// known legacy, not EIP-1559 compliant
	case Optimism, OptimismGoerli, OptimismKovan, Fantom, FantomTestnet, BinanceSmartChain,
		BinanceSmartChainTestnet, Arbitrum, ArbitrumTestnet, ArbitrumGoerli, ArbitrumNova, Rsk,
		Oasis, Emerald, EmeraldTestnet, Celo, CeloAlfajores, CeloBaklava:
		return true, true

	// known EIP-1559
	case Mainnet, Goerli, Sepolia, Polygon, PolygonMumbai, Avalanche, AvalancheFuji:
		return false, true

	// unknown or not applicable
	case Dev, AnvilHardhat, Morden, Ropsten, Rinkeby, Cronos, CronosTestnet, Kovan, Sokol, Poa,
		XDai, Moonbeam, MoonbeamDev, Moonriver, Moonbase, Evmos, EvmosTestnet, Chiado, Aurora,
		AuroraTestnet:
		return false, true
	}
	return false, false
}

// Network classifies the chain as a production network, a public testnet or a local devnet.
// Values outside the registry return the empty NetworkType.
func (c Chain) Network() NetworkType {
	network, _ := c.network()
	return network
}

func (c Chain) network() (NetworkType, bool) {
	//exhaustive:enforce
	switch c {
	case Mainnet, Optimism, Arbitrum, ArbitrumNova, Cronos, Rsk, BinanceSmartChain, Poa, XDai,
		Polygon, Fantom, Moonbeam, Moonriver, Evmos, Oasis, Emerald, Avalanche, Celo, Aurora:
		return NetworkMainnet, true
	case Morden, Ropsten, Rinkeby, Goerli, Kovan, Sepolia, OptimismKovan, OptimismGoerli,
		ArbitrumTestnet, ArbitrumGoerli, CronosTestnet, BinanceSmartChainTestnet, Sokol,
		PolygonMumbai, FantomTestnet, Moonbase, EvmosTestnet, Chiado, EmeraldTestnet,
		AvalancheFuji, CeloAlfajores, CeloBaklava, AuroraTestnet:
		return NetworkTestnet, true
	case MoonbeamDev, Dev, AnvilHardhat:
		return NetworkDevnet, true
	}
	return "", false
}
