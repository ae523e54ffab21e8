package translation

import (
	lru "github.com/hashicorp/golang-lru"

	"codeberg.org/snonux/naivetrans/internal/lexicon"
)

// DefaultCacheSize is the number of fuzzy matches kept per translator
const DefaultCacheSize = 4096

type cacheKey struct {
	mapping *lexicon.Mapping
	word    string
}

type cacheEntry struct {
	match string
	found bool
}

// MatchCache remembers similarity matches for words missing from a mapping.
// Mappings are immutable, so an entry never goes stale.
type MatchCache struct {
	cache *lru.Cache
}

// NewMatchCache creates a cache holding up to size matches
func NewMatchCache(size int) (*MatchCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &MatchCache{cache: c}, nil
}

// Get returns the cached match for word. The last value reports whether the
// word was cached at all.
func (mc *MatchCache) Get(m *lexicon.Mapping, word string) (match string, found bool, cached bool) {
	v, ok := mc.cache.Get(cacheKey{m, word})
	if !ok {
		return "", false, false
	}
	entry := v.(cacheEntry)
	return entry.match, entry.found, true
}

// Add stores a match, including the absence of one
func (mc *MatchCache) Add(m *lexicon.Mapping, word, match string, found bool) {
	mc.cache.Add(cacheKey{m, word}, cacheEntry{match: match, found: found})
}

// Len returns the number of cached matches
func (mc *MatchCache) Len() int {
	return mc.cache.Len()
}
