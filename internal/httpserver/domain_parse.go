package httpserver

import (
	"context"

	"nl-command-parser/internal/intent"
	"nl-command-parser/internal/langpack"
	"nl-command-parser/internal/middleware"
	parseHTTP "nl-command-parser/internal/parse/delivery/http"
	parseUC "nl-command-parser/internal/parse/usecase"

	"github.com/gin-gonic/gin"
)

// setupParseDomain initializes the parse domain and registers its routes.
func (srv HTTPServer) setupParseDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// 1. Language packs, preferred locale first
	packs := langpack.AllPreferring(srv.parser.DefaultLocale)

	// 2. UseCase with the configured scorer thresholds
	cfg := intent.DefaultConfig()
	cfg.AmbiguityGap = srv.parser.AmbiguityGap
	cfg.MinConfidence = srv.parser.MinConfidence
	cfg.MaxPredictions = srv.parser.MaxPredictions
	uc := parseUC.New(srv.l, packs, cfg)

	// 3. HTTP Handler
	h := parseHTTP.New(srv.l, uc, srv.parser.CacheSize, srv.parser.DefaultTimezone)

	// 4. Routes: registers /api/v1/parse
	parseHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Parse domain registered")
}
