package http

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cacheTTL bounds staleness for cached responses. Entries keyed on an
// explicit reference date never go stale, but "now"-anchored requests do.
const cacheTTL = 5 * time.Minute

// resultCache memoizes presented responses. Parsing is deterministic, so
// repeating the exact request within the TTL returns the identical
// interpretation without re-running the pipeline.
type resultCache struct {
	lru *expirable.LRU[string, processResp]
}

func newResultCache(size int) *resultCache {
	if size <= 0 {
		return &resultCache{}
	}
	return &resultCache{
		lru: expirable.NewLRU[string, processResp](size, nil, cacheTTL),
	}
}

func cacheKey(text, referenceDate, timezone string) string {
	return fmt.Sprintf("%s|%s|%s", text, referenceDate, timezone)
}

func (rc *resultCache) get(key string) (processResp, bool) {
	if rc.lru == nil {
		return processResp{}, false
	}
	return rc.lru.Get(key)
}

func (rc *resultCache) add(key string, resp processResp) {
	if rc.lru != nil {
		rc.lru.Add(key, resp)
	}
}
