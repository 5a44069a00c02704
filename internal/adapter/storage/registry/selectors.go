package registry

import (
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// SelectorResolver returns the CCIP chain selector for an EVM chain ID, if one is assigned.
type SelectorResolver func(chainID uint64) (uint64, bool)

// CCIPSelector resolves selectors from the chain-selectors catalogue.
func CCIPSelector(chainID uint64) (uint64, bool) {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(chainID, 10), chainsel.FamilyEVM)
	if err != nil {
		return 0, false
	}
	return details.ChainSelector, true
}

// noSelectors is used when enrichment is disabled.
func noSelectors(uint64) (uint64, bool) {
	return 0, false
}
