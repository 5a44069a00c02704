package entity

import (
	"fmt"

	"chain-registry/internal/domain"
)

// ParseErrorKind tells whether a ParseChainError came from a number or a name.
type ParseErrorKind int

const (
	// UnknownChainID means no chain has the given numeric ID.
	UnknownChainID ParseErrorKind = iota + 1
	// UnrecognizedName means no chain has the given canonical name or alias.
	UnrecognizedName
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnknownChainID:
		return "unknown chain id"
	case UnrecognizedName:
		return "unrecognized chain name"
	}
	return "ParseErrorKind(" + fmt.Sprint(int(k)) + ")"
}

// ParseChainError is returned by every fallible conversion into a Chain.
// Number is set for UnknownChainID, Name for UnrecognizedName.
type ParseChainError struct {
	Kind   ParseErrorKind
	Number uint64
	Name   string
}

func (e *ParseChainError) Error() string {
	if e.Kind == UnknownChainID {
		return fmt.Sprintf("%s: %d", e.Kind, e.Number)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Name)
}

// Unwrap lets callers match any parse failure with errors.Is(err, domain.ErrChainNotFound).
func (e *ParseChainError) Unwrap() error {
	return domain.ErrChainNotFound
}

func unknownChainID(number uint64) *ParseChainError {
	return &ParseChainError{Kind: UnknownChainID, Number: number}
}

func unrecognizedName(name string) *ParseChainError {
	return &ParseChainError{Kind: UnrecognizedName, Name: name}
}
