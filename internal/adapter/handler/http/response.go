package http

import (
	"chain-registry/internal/domain/entity"
)

// ChainResponse is the wire representation of a registry chain.
type ChainResponse struct {
	ID                 uint64            `json:"id" yaml:"id"`
	Name               string            `json:"name" yaml:"name"`
	Aliases            []string          `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Network            string            `json:"network" yaml:"network"`
	AverageBlockTimeMs int64             `json:"averageBlockTimeMs,omitempty" yaml:"averageBlockTimeMs,omitempty"`
	Explorer           *ExplorerResponse `json:"explorer,omitempty" yaml:"explorer,omitempty"`
	Legacy             bool              `json:"legacy" yaml:"legacy"`
	CCIPSelector       uint64            `json:"ccipSelector,omitempty" yaml:"ccipSelector,omitempty"`
}

// ExplorerResponse is the wire representation of a block explorer.
type ExplorerResponse struct {
	APIURL  string `json:"apiUrl" yaml:"apiUrl"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

type errorResponse struct {
	Error string `json:"error" yaml:"error"`
}

func toChainResponse(info entity.ChainInfo) ChainResponse {
	resp := ChainResponse{
		ID:                 info.Chain.ID(),
		Name:               info.Name,
		Aliases:            info.Aliases,
		Network:            string(info.Network),
		AverageBlockTimeMs: info.BlockTime.Milliseconds(),
		Legacy:             info.Legacy,
		CCIPSelector:       info.Selector,
	}
	if info.Explorer != nil {
		explorer := toExplorerResponse(*info.Explorer)
		resp.Explorer = &explorer
	}
	return resp
}

func toExplorerResponse(urls entity.ExplorerURLs) ExplorerResponse {
	return ExplorerResponse{APIURL: urls.APIURL, BaseURL: urls.BaseURL}
}

func toChainResponses(infos []entity.ChainInfo) []ChainResponse {
	resp := make([]ChainResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, toChainResponse(info))
	}
	return resp
}
