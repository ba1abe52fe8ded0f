package interpreter

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultCacheTTL = 10 * time.Minute

type implInterpreter struct {
	parser DateParser
	cache  *expirable.LRU[string, Result]
}

// New creates an Interpreter. parser may be nil, in which case only
// recurrence phrases are recognized.
func New(parser DateParser, cfg Config) Interpreter {
	i := &implInterpreter{parser: parser}
	if cfg.CacheSize > 0 {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		i.cache = expirable.NewLRU[string, Result](cfg.CacheSize, nil, ttl)
	}
	return i
}
