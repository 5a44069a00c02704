package entity

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// unsigned lists the integer types that widen losslessly into a chain ID.
type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint | ~uint64
}

// Uint64 returns the chain ID. It is the same as ID.
func (c Chain) Uint64() uint64 {
	return uint64(c)
}

// Big returns the chain ID as a new big.Int.
func (c Chain) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(c))
}

// Uint256 returns the chain ID as a new 256-bit integer.
func (c Chain) Uint256() *uint256.Int {
	return uint256.NewInt(uint64(c))
}

// FromUint64 returns the chain with the given ID.
func FromUint64(id uint64) (Chain, error) {
	if spec, ok := byID[id]; ok {
		return spec.chain, nil
	}
	return 0, unknownChainID(id)
}

// FromNumber widens v to 64 bits and looks the chain up.
func FromNumber[T unsigned](v T) (Chain, error) {
	return FromUint64(uint64(v))
}

func FromUint8(v uint8) (Chain, error)   { return FromNumber(v) }
func FromUint16(v uint16) (Chain, error) { return FromNumber(v) }
func FromUint32(v uint32) (Chain, error) { return FromNumber(v) }
func FromUint(v uint) (Chain, error)     { return FromNumber(v) }

// FromBig converts an integer of any width (128-bit, 512-bit, ...) into a chain.
// Values needing more than 64 bits fail with UnknownChainID carrying the low 64 bits.
// Negative values are never chains and report the low 64 bits of their magnitude.
func FromBig(v *big.Int) (Chain, error) {
	if v == nil {
		return 0, unknownChainID(0)
	}
	low := lowUint64(v)
	if v.Sign() < 0 || v.BitLen() > 64 {
		return 0, unknownChainID(low)
	}
	return FromUint64(low)
}

// FromUint256 converts a 256-bit integer into a chain with the same overflow rule as FromBig.
func FromUint256(v *uint256.Int) (Chain, error) {
	if v == nil {
		return 0, unknownChainID(0)
	}
	if v.BitLen() > 64 {
		return 0, unknownChainID(v.Uint64())
	}
	return FromUint64(v.Uint64())
}

// lowUint64 truncates |v| to its low 64 bits. big.Int.Uint64 is undefined above 64 bits.
func lowUint64(v *big.Int) uint64 {
	abs := new(big.Int).Abs(v)
	return abs.And(abs, maxUint64).Uint64()
}
