package http

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	handler "chain-registry/internal/adapter/handler/http"
)

// RegisterRoutes sets up the routes for the chain handler and common health checks.
func RegisterRoutes(r *router.Router, h *handler.ChainHandler, logger *zap.Logger) {
	logger.Info("Setting up application-specific routes...")

	r.GET("/chains", h.ListChains)
	r.GET("/chains/{chain}", h.GetChain)
	r.GET("/chains/{chain}/explorer", h.GetExplorer)

	logger.Info("Setting up health check route...")
	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	logger.Info("All routes registered.")
}

// LoggingMiddleware logs every request together with the status it was answered with.
func LoggingMiddleware(next fasthttp.RequestHandler, logger *zap.Logger) fasthttp.RequestHandler {
	logger = logger.Named("HTTP")
	return func(ctx *fasthttp.RequestCtx) {
		next(ctx)
		logger.Info("Request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", ctx.Response.StatusCode()),
		)
	}
}
