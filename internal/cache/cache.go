package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"pagescope/internal/domain"
)

// DefaultSize bounds how many page outlines are kept in memory.
const DefaultSize = 512

// OutlineCache memoizes extracted outlines keyed by page URL so
// repeated scrapes of the same page skip the network fetch.
type OutlineCache struct {
	entries *lru.Cache[string, *domain.Outline]
}

func New(size int) (*OutlineCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *domain.Outline](size)
	if err != nil {
		return nil, err
	}
	return &OutlineCache{entries: entries}, nil
}

func (c *OutlineCache) Get(pageURL string) (*domain.Outline, bool) {
	return c.entries.Get(pageURL)
}

func (c *OutlineCache) Put(pageURL string, outline *domain.Outline) {
	c.entries.Add(pageURL, outline)
}

func (c *OutlineCache) Len() int {
	return c.entries.Len()
}
