package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"chain-registry/internal/application/port"
	"chain-registry/internal/domain"
	"chain-registry/internal/pkg/apperrors"
)

const (
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"

	formatParam = "format"
	formatJSON  = "json"
	formatYAML  = "yaml"

	// defaultRef addresses the configured default chain wherever a {chain} parameter is taken.
	defaultRef = "default"
)

type ChainHandler struct {
	service port.ChainService
	logger  *zap.Logger
}

func NewChainHandler(service port.ChainService, logger *zap.Logger) *ChainHandler {
	return &ChainHandler{
		service: service,
		logger:  logger.Named("ChainHandler"),
	}
}

// ListChains handles requests for the whole registry.
func (h *ChainHandler) ListChains(ctx *fasthttp.RequestCtx) {
	chains, err := h.service.ListChains(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.write(ctx, fasthttp.StatusOK, toChainResponses(chains))
}

// GetChain handles requests for a single chain referenced by ID, hex ID, name or alias.
func (h *ChainHandler) GetChain(ctx *fasthttp.RequestCtx) {
	ref, ok := chainRef(ctx)
	if !ok {
		h.writeError(ctx, fmt.Errorf("%w: missing chain reference", apperrors.ErrInvalidInput))
		return
	}
	if ref == defaultRef {
		h.GetDefaultChain(ctx)
		return
	}

	info, err := h.service.ResolveChain(ctx, ref)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.write(ctx, fasthttp.StatusOK, toChainResponse(info))
}

// GetDefaultChain handles requests for the configured default chain.
func (h *ChainHandler) GetDefaultChain(ctx *fasthttp.RequestCtx) {
	info, err := h.service.DefaultChain(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.write(ctx, fasthttp.StatusOK, toChainResponse(info))
}

// GetExplorer handles requests for a chain's block explorer URLs.
func (h *ChainHandler) GetExplorer(ctx *fasthttp.RequestCtx) {
	ref, ok := chainRef(ctx)
	if !ok {
		h.writeError(ctx, fmt.Errorf("%w: missing chain reference", apperrors.ErrInvalidInput))
		return
	}
	if ref == defaultRef {
		info, err := h.service.DefaultChain(ctx)
		if err != nil {
			h.writeError(ctx, err)
			return
		}
		ref = info.Name
	}

	urls, err := h.service.ExplorerURLs(ctx, ref)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.write(ctx, fasthttp.StatusOK, toExplorerResponse(urls))
}

func chainRef(ctx *fasthttp.RequestCtx) (string, bool) {
	ref, ok := ctx.UserValue("chain").(string)
	return ref, ok && ref != ""
}

// classify maps service errors onto application error categories and HTTP statuses.
func classify(err error) (int, error) {
	switch {
	case errors.Is(err, domain.ErrInvalidChainRef), errors.Is(err, apperrors.ErrInvalidInput):
		return fasthttp.StatusBadRequest, apperrors.ErrInvalidInput
	case errors.Is(err, domain.ErrChainNotFound), errors.Is(err, domain.ErrNoExplorer):
		return fasthttp.StatusNotFound, apperrors.ErrNotFound
	default:
		return fasthttp.StatusInternalServerError, apperrors.ErrInternal
	}
}

func (h *ChainHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, kind := classify(err)

	message := err.Error()
	if status == fasthttp.StatusInternalServerError {
		h.logger.Error("Request failed", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
		message = kind.Error()
	} else {
		h.logger.Debug("Request rejected",
			zap.ByteString("uri", ctx.RequestURI()), zap.Int("status", status), zap.Error(err),
		)
	}

	h.write(ctx, status, errorResponse{Error: message})
}

// write encodes body as JSON, or as YAML when the request asks for ?format=yaml.
func (h *ChainHandler) write(ctx *fasthttp.RequestCtx, status int, body any) {
	format := string(ctx.QueryArgs().Peek(formatParam))

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch format {
	case "", formatJSON:
		contentType = contentTypeJSON
		payload, err = json.Marshal(body)
	case formatYAML:
		contentType = contentTypeYAML
		payload, err = yaml.Marshal(body)
	default:
		status = fasthttp.StatusBadRequest
		contentType = contentTypeJSON
		payload, err = json.Marshal(errorResponse{
			Error: fmt.Sprintf("%s: unsupported format %q", apperrors.ErrInvalidInput, format),
		})
	}
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		ctx.Error(apperrors.ErrInternal.Error(), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType(contentType)
	ctx.SetBody(payload)
}
