package http

import (
	"github.com/gin-gonic/gin"

	"nl-command-parser/internal/parse"
	"nl-command-parser/pkg/log"
)

// Handler is the public interface for the parse HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l               log.Logger
	uc              parse.UseCase
	cache           *resultCache
	defaultTimezone string
}

// New creates a new HTTP handler for the parse domain. cacheSize <= 0
// disables response caching. defaultTimezone anchors requests that carry
// neither a reference date nor a timezone of their own.
func New(l log.Logger, uc parse.UseCase, cacheSize int, defaultTimezone string) *handler {
	return &handler{
		l:               l,
		uc:              uc,
		cache:           newResultCache(cacheSize),
		defaultTimezone: defaultTimezone,
	}
}
