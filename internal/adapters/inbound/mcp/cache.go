package mcp

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/layercheck/layercheck/internal/domain"
)

const resultCacheSize = 64

// resultCache memoizes the analysis of a graph document by its content, so
// repeated checks of an unchanged graph skip decoding and evaluation. Entries
// carry no graph source; callers fill it in per request.
type resultCache struct {
	lru *lru.Cache[string, *domain.CheckResult]
}

func newResultCache(size int) *resultCache {
	c, err := lru.New[string, *domain.CheckResult](size)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return &resultCache{lru: c}
}

func graphKey(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func (c *resultCache) get(raw []byte) (*domain.CheckResult, bool) {
	return c.lru.Get(graphKey(raw))
}

func (c *resultCache) add(raw []byte, result *domain.CheckResult) {
	c.lru.Add(graphKey(raw), result)
}
