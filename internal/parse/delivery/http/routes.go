package http

import (
	"github.com/gin-gonic/gin"

	"nl-command-parser/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Process)
}
