package entity

import (
	"fmt"
	"strconv"
)

// When adding a chain:
//  1. declare the constant below;
//  2. add its registry entry (canonical name, optional aliases);
//  3. list it in every table of chain_metadata.go. The switches carry no default
//     branch, so the exhaustive linter and the coverage tests flag an omission.

// Chain is an EIP-155 chain. The value is the numeric chain ID.
//
// Only the constants declared in this package are chains; Chain(0) is not one.
// Use DefaultChain for the default network.
type Chain uint64

const (
	Mainnet Chain = 1
	Morden  Chain = 2
	Ropsten Chain = 3
	Rinkeby Chain = 4
	Goerli  Chain = 5
	Kovan   Chain = 42
	Sepolia Chain = 11155111

	Optimism       Chain = 10
	OptimismKovan  Chain = 69
	OptimismGoerli Chain = 420

	Arbitrum        Chain = 42161
	ArbitrumTestnet Chain = 421611
	ArbitrumGoerli  Chain = 421613
	ArbitrumNova    Chain = 42170

	Cronos        Chain = 25
	CronosTestnet Chain = 338

	Rsk Chain = 30

	BinanceSmartChain        Chain = 56
	BinanceSmartChainTestnet Chain = 97

	Poa   Chain = 99
	Sokol Chain = 77

	XDai Chain = 100

	Polygon       Chain = 137
	PolygonMumbai Chain = 80001

	Fantom        Chain = 250
	FantomTestnet Chain = 4002

	Moonbeam    Chain = 1284
	MoonbeamDev Chain = 1281

	Moonriver Chain = 1285

	Moonbase Chain = 1287

	Dev          Chain = 1337
	AnvilHardhat Chain = 31337

	Evmos        Chain = 9001
	EvmosTestnet Chain = 9000

	Chiado Chain = 10200

	Oasis Chain = 26863

	Emerald        Chain = 42262
	EmeraldTestnet Chain = 42261

	Avalanche     Chain = 43114
	AvalancheFuji Chain = 43113

	Celo          Chain = 42220
	CeloAlfajores Chain = 44787
	CeloBaklava   Chain = 62320

	Aurora        Chain = 1313161554
	AuroraTestnet Chain = 1313161555
)

// chainSpec binds a chain to its canonical name and parse-only aliases.
type chainSpec struct {
	chain   Chain
	name    string
	aliases []string
}

// registry lists every chain in declaration order. Names and aliases are a wire contract.
var registry = [...]chainSpec{
	{chain: Mainnet, name: "mainnet"},
	{chain: Morden, name: "morden"},
	{chain: Ropsten, name: "ropsten"},
	{chain: Rinkeby, name: "rinkeby"},
	{chain: Goerli, name: "goerli"},
	{chain: Kovan, name: "kovan"},
	{chain: Sepolia, name: "sepolia"},

	{chain: Optimism, name: "optimism"},
	{chain: OptimismKovan, name: "optimism-kovan"},
	{chain: OptimismGoerli, name: "optimism-goerli"},

	{chain: Arbitrum, name: "arbitrum"},
	{chain: ArbitrumTestnet, name: "arbitrum-testnet"},
	{chain: ArbitrumGoerli, name: "arbitrum-goerli"},
	{chain: ArbitrumNova, name: "arbitrum-nova"},

	{chain: Cronos, name: "cronos"},
	{chain: CronosTestnet, name: "cronos-testnet"},

	{chain: Rsk, name: "rsk"},

	{chain: BinanceSmartChain, name: "binance-smart-chain", aliases: []string{"bsc"}},
	{chain: BinanceSmartChainTestnet, name: "binance-smart-chain-testnet", aliases: []string{"bsc-testnet"}},

	{chain: Poa, name: "poa"},
	{chain: Sokol, name: "sokol"},

	{chain: XDai, name: "x-dai", aliases: []string{"gnosis", "xdai", "gnosis-chain"}},

	{chain: Polygon, name: "polygon"},
	{chain: PolygonMumbai, name: "polygon-mumbai", aliases: []string{"mumbai", "polygon-mumbai"}},

	{chain: Fantom, name: "fantom"},
	{chain: FantomTestnet, name: "fantom-testnet"},

	{chain: Moonbeam, name: "moonbeam"},
	{chain: MoonbeamDev, name: "moonbeam-dev"},

	{chain: Moonriver, name: "moonriver"},

	{chain: Moonbase, name: "moonbase"},

	{chain: Dev, name: "dev", aliases: []string{"dev"}},
	{chain: AnvilHardhat, name: "anvil-hardhat", aliases: []string{"anvil-hardhat", "anvil", "hardhat"}},

	{chain: Evmos, name: "evmos"},
	{chain: EvmosTestnet, name: "evmos-testnet"},

	{chain: Chiado, name: "chiado"},

	{chain: Oasis, name: "oasis"},

	{chain: Emerald, name: "emerald"},
	{chain: EmeraldTestnet, name: "emerald-testnet"},

	{chain: Avalanche, name: "avalanche"},
	{chain: AvalancheFuji, name: "avalanche-fuji", aliases: []string{"fuji", "avalanche-fuji"}},

	{chain: Celo, name: "celo"},
	{chain: CeloAlfajores, name: "celo-alfajores"},
	{chain: CeloBaklava, name: "celo-baklava"},

	{chain: Aurora, name: "aurora"},
	{chain: AuroraTestnet, name: "aurora-testnet"},
}

// Count is the number of chains in the registry.
const Count = len(registry)

var (
	byID   = indexByID()
	byName = indexByName()
)

func indexByID() map[uint64]*chainSpec {
	idx := make(map[uint64]*chainSpec, len(registry))
	for i := range registry {
		spec := &registry[i]
		if prev, ok := idx[uint64(spec.chain)]; ok {
			panic(fmt.Sprintf("chain id %d registered twice (%s, %s)", spec.chain, prev.name, spec.name))
		}
		idx[uint64(spec.chain)] = spec
	}
	return idx
}

// indexByName maps canonical names and aliases to chains. A string may only ever
// resolve to one chain.
func indexByName() map[string]Chain {
	idx := make(map[string]Chain, len(registry)*2)
	add := func(name string, c Chain) {
		if prev, ok := idx[name]; ok && prev != c {
			panic(fmt.Sprintf("chain name %q is ambiguous (%d, %d)", name, prev, c))
		}
		idx[name] = c
	}
	for i := range registry {
		add(registry[i].name, registry[i].chain)
	}
	for i := range registry {
		for _, alias := range registry[i].aliases {
			add(alias, registry[i].chain)
		}
	}
	return idx
}

// DefaultChain returns Mainnet.
func DefaultChain() Chain {
	return Mainnet
}

// All returns every chain in declaration order.
func All() []Chain {
	chains := make([]Chain, len(registry))
	for i := range registry {
		chains[i] = registry[i].chain
	}
	return chains
}

// Names returns the canonical name of every chain in declaration order.
func Names() []string {
	names := make([]string, len(registry))
	for i := range registry {
		names[i] = registry[i].name
	}
	return names
}

// ID returns the EIP-155 chain ID.
func (c Chain) ID() uint64 {
	return uint64(c)
}

// IsKnown reports whether c is one of the registered chains.
func (c Chain) IsKnown() bool {
	_, ok := byID[uint64(c)]
	return ok
}

// String returns the canonical name. Values outside the registry format as Chain(<id>).
func (c Chain) String() string {
	if spec, ok := byID[uint64(c)]; ok {
		return spec.name
	}
	return "Chain(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Aliases returns the additional names accepted by ParseChain. They are never used for display.
func (c Chain) Aliases() []string {
	spec, ok := byID[uint64(c)]
	if !ok || len(spec.aliases) == 0 {
		return nil
	}
	return append([]string(nil), spec.aliases...)
}
