package core

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/internal/render"
	"github.com/huangsam/radar/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheTTL is how long a rendered chart stays valid.
const cacheTTL = 7 * 24 * time.Hour

// cachedRender returns the rendered chart, reusing a cached artifact when one exists.
func cachedRender(store contract.CacheStore, layout schema.ChartLayout, format schema.OutputMode) ([]byte, error) {
	if store == nil {
		// Fallback to direct computation
		return renderArtifact(layout, format)
	}

	key, err := generateCacheKey(layout, format)
	if err != nil {
		return renderArtifact(layout, format)
	}

	// Check for cache hit
	if data := checkCacheHit(store, key); data != nil {
		return data, nil
	}

	// Cache miss: compute and store
	return computeAndStore(store, layout, format, key)
}

// checkCacheHit attempts to retrieve and validate a cached artifact
func checkCacheHit(store contract.CacheStore, key string) []byte {
	data, version, ts, err := store.Get(key)
	if err != nil || len(data) == 0 {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion && time.Since(time.Unix(ts, 0)) <= cacheTTL {
		return data // Cache hit
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore renders the artifact and stores it in cache
func computeAndStore(store contract.CacheStore, layout schema.ChartLayout, format schema.OutputMode, key string) ([]byte, error) {
	data, err := renderArtifact(layout, format)
	if err != nil {
		return nil, err
	}

	if err := store.Set(key, data, currentCacheVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("failed to cache rendered chart", err)
	}

	return data, nil
}

// generateCacheKey hashes the output format together with the full layout.
// The layout already carries options, categories, scores and label lines.
func generateCacheKey(layout schema.ChartLayout, format schema.OutputMode) (string, error) {
	payload, err := json.Marshal(layout)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s:%d:%s", format, currentCacheVersion, payload)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key))), nil
}

// renderArtifact draws the layout in the requested image format.
func renderArtifact(layout schema.ChartLayout, format schema.OutputMode) ([]byte, error) {
	style := render.DefaultStyle()
	switch format {
	case schema.SVGOut:
		return render.SVG(layout, style)
	case schema.PNGOut:
		var buf bytes.Buffer
		if err := render.PNG(layout, style, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("cannot render %s output", format)
	}
}
