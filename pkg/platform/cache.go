package platform

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultProbeCacheSize bounds the number of remembered executable lookups
const DefaultProbeCacheSize = 256

// CachingProber memoises successful executable lookups of another Prober.
// Entries are keyed by executable and the PATH value at probe time, so a tool
// that rewrites PATH through its env directives forces a fresh lookup.
// Misses are not remembered: an earlier tool's command may install the
// executable without touching PATH. Preconditions are never cached since
// they are arbitrary commands.
type CachingProber struct {
	next  Prober
	cache *lru.Cache[string, bool]
}

// NewCachingProber wraps next with an LRU cache of the given size.
func NewCachingProber(next Prober, size int) (*CachingProber, error) {
	if size <= 0 {
		size = DefaultProbeCacheSize
	}
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, err
	}
	return &CachingProber{next: next, cache: cache}, nil
}

// ProbeExecutable implements Prober.
func (c *CachingProber) ProbeExecutable(name string) bool {
	key := name + "\x00" + os.Getenv("PATH")
	if found, ok := c.cache.Get(key); ok {
		return found
	}
	found := c.next.ProbeExecutable(name)
	if found {
		c.cache.Add(key, true)
	}
	return found
}

// ProbePrecondition implements Prober.
func (c *CachingProber) ProbePrecondition(command string) bool {
	return c.next.ProbePrecondition(command)
}
