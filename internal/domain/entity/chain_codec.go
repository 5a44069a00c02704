package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"

	"chain-registry/internal/domain"
)

// ParseChain resolves a canonical name or alias. Matching is exact and case-sensitive.
func ParseChain(name string) (Chain, error) {
	if c, ok := byName[name]; ok {
		return c, nil
	}
	return 0, unrecognizedName(name)
}

// ParseChainRef resolves user input that may be a decimal ID, a 0x-prefixed hex ID or a name.
// Numeric references of any width go through FromBig, so IDs wider than 64 bits report
// their low 64 bits instead of wrapping.
func ParseChainRef(ref string) (Chain, error) {
	if ref == "" {
		return 0, fmt.Errorf("%w: empty reference", domain.ErrInvalidChainRef)
	}

	digits, base := ref, 10
	if strings.HasPrefix(ref, "0x") || strings.HasPrefix(ref, "0X") {
		digits, base = ref[2:], 16
	}
	if !isDigits(digits, base) {
		if base == 16 {
			return 0, fmt.Errorf("%w: malformed hex id %q", domain.ErrInvalidChainRef, ref)
		}
		return ParseChain(ref)
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, fmt.Errorf("%w: malformed id %q", domain.ErrInvalidChainRef, ref)
	}
	return FromBig(n)
}

func isDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
		case base == 16 && (ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'):
		default:
			return false
		}
	}
	return true
}

// MarshalText emits the canonical name. Values outside the registry cannot be encoded.
func (c Chain) MarshalText() ([]byte, error) {
	if !c.IsKnown() {
		return nil, unknownChainID(uint64(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts the canonical name or any alias.
func (c *Chain) UnmarshalText(text []byte) error {
	parsed, err := ParseChain(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalJSON accepts a name string or a bare numeric chain ID.
func (c *Chain) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidChainRef, err)
		}
		parsed, err := parseInteger(n.String(), 10)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(name))
}

// parseInteger resolves a numeric literal through FromBig. Literals that are not integers,
// such as 5.6e1 or 56.0, are invalid references rather than unknown names.
func parseInteger(literal string, base int) (Chain, error) {
	n, ok := new(big.Int).SetString(literal, base)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an integer chain id", domain.ErrInvalidChainRef, literal)
	}
	return FromBig(n)
}

// MarshalYAML emits the canonical name as a plain scalar.
func (c Chain) MarshalYAML() (interface{}, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML accepts a name scalar or an integer scalar holding the chain ID.
func (c *Chain) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar at line %d", domain.ErrInvalidChainRef, value.Line)
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		// YAML integers may carry a sign, 0x/0o/0b prefixes or underscores; integers too
		// wide for 64 bits resolve as floats.
		parsed, err := parseInteger(value.Value, 0)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return c.UnmarshalText([]byte(value.Value))
}
