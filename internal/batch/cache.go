package batch

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// SkipCache remembers which jobs have already been quantized earlier in the
// same run, keyed by a stable hash of the job's identity (image path plus
// every option that affects its output), so a repeated manifest entry is
// skipped. It lives in memory only: nothing is persisted, and a new run
// starts with an empty cache.
type SkipCache struct {
	done map[uint64]bool
}

// NewSkipCache returns an empty cache.
func NewSkipCache() *SkipCache {
	return &SkipCache{done: make(map[uint64]bool)}
}

// jobFingerprint hashes the parts of a Job that determine its output, so
// editing the manifest's output path or other cosmetic fields doesn't
// spuriously invalidate the cache, but editing max_colors/dithering_level
// does.
func jobFingerprint(j Job) (uint64, error) {
	key := struct {
		Image          string
		MaxColors      int
		DitheringLevel float32
		AddFixedColors bool
		ResizeWidth    int
		ResizeHeight   int
	}{j.Image, j.MaxColors, j.DitheringLevel, j.AddFixedColors, j.ResizeWidth, j.ResizeHeight}

	h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("batch: hashing job %q: %w", j.Image, err)
	}
	return h, nil
}

// Seen reports whether j has already been processed and, if not, marks it
// as processed for subsequent calls.
func (c *SkipCache) Seen(j Job) (bool, error) {
	h, err := jobFingerprint(j)
	if err != nil {
		return false, err
	}
	if c.done[h] {
		return true, nil
	}
	c.done[h] = true
	return false, nil
}
