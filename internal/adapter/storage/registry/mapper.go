package registry

import (
	"go.uber.org/zap"

	"chain-registry/internal/domain/entity"
)

// describe snapshots c and attaches its CCIP selector when one is assigned.
func (r *Repository) describe(c entity.Chain) entity.ChainInfo {
	info := entity.Describe(c)
	if selector, ok := r.selectors(c.ID()); ok {
		info.Selector = selector
	} else {
		r.logger.Debug("No CCIP selector for chain", zap.Uint64("chainId", c.ID()), zap.Stringer("chain", c))
	}
	return info
}
