package validate

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"architect/internal/artifact"
	"architect/internal/designsys"
)

// Cache memoizes verdicts keyed by artifact fingerprint and registry
// checksum. Validate is pure, so a cached verdict is always identical to a
// fresh one.
type Cache struct {
	verdicts *lru.Cache[string, Verdict]
}

// NewCache creates a verdict cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, Verdict](size)
	if err != nil {
		return nil, err
	}
	return &Cache{verdicts: c}, nil
}

// Validate returns the memoized verdict for the artifact, computing and
// storing it on a miss.
func (c *Cache) Validate(a *artifact.Artifact, reg *designsys.Registry) Verdict {
	if c == nil || c.verdicts == nil {
		return Validate(a, reg)
	}
	key := a.Fingerprint() + ":" + reg.Checksum()
	if v, ok := c.verdicts.Get(key); ok {
		return v
	}
	v := Validate(a, reg)
	c.verdicts.Add(key, v)
	return v
}
