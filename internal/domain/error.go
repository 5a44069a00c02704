package domain

import "errors"

var (
	// ErrChainNotFound means the requested chain is not part of the registry.
	ErrChainNotFound = errors.New("chain not found")

	// ErrInvalidChainRef means a chain reference could not be interpreted as an ID or a name.
	ErrInvalidChainRef = errors.New("invalid chain reference")

	// ErrNoExplorer means the chain has no known block explorer.
	ErrNoExplorer = errors.New("no block explorer known for the chain")
)
