package pricecache

import (
	"context"
	"time"

	"github.com/turtacn/retrosynth/internal/platform/logging"
)

// PriceOracle answers lookup_price(smiles): a non-negative per-gram price,
// or nil when the molecule is not commercially available. Implementations
// are expected to be slow relative to a cache hit (an HTTP call, a database
// query, a flat-file scan) — PriceCache exists to absorb that cost.
type PriceOracle interface {
	LookupPrice(ctx context.Context, smiles string) (*float64, error)
}

// priceEntry is the cached wire representation of a lookup_price result.
// Found is false for a cached "not commercially available" answer, which
// keeps the distinction between "zero dollars" and "no price" in the cache.
type priceEntry struct {
	Price float64 `json:"price"`
	Found bool    `json:"found"`
}

// PriceCache wraps a PriceOracle with a Cache, so repeated lookup_price
// calls for the same SMILES — common within a single rollout loop, and
// across concurrent BuildTree requests for overlapping targets — hit Redis
// instead of the oracle. Concurrent misses for the same SMILES collapse to
// one oracle call via the underlying Cache's singleflight group.
type PriceCache struct {
	cache  Cache
	oracle PriceOracle
	log    logging.Logger
	ttl    time.Duration
}

// NewPriceCache builds a PriceCache. ttl is the cache lifetime of every
// answer, a known price and a "not commercially available" one alike.
func NewPriceCache(cache Cache, oracle PriceOracle, log logging.Logger, ttl time.Duration) *PriceCache {
	return &PriceCache{
		cache:  cache,
		oracle: oracle,
		log:    log,
		ttl:    ttl,
	}
}

// LookupPrice implements lookup_price(smiles): returns a non-negative price,
// or nil if smiles is not commercially available. The second return value
// reports whether the answer came from cache, for metrics purposes.
func (p *PriceCache) LookupPrice(ctx context.Context, smiles string) (price *float64, cacheHit bool, err error) {
	key := priceKey(smiles)

	var entry priceEntry
	getErr := p.cache.Get(ctx, key, &entry)
	if getErr == nil {
		if !entry.Found {
			return nil, true, nil
		}
		v := entry.Price
		return &v, true, nil
	}
	if getErr != ErrCacheMiss {
		p.log.Warn("price cache read failed, falling back to oracle", logging.String("smiles", smiles), logging.Err(getErr))
		v, oracleErr := p.oracle.LookupPrice(ctx, smiles)
		return v, false, oracleErr
	}

	loaderErr := p.cache.GetOrSet(ctx, key, &entry, p.ttl, func(ctx context.Context) (interface{}, error) {
		v, oracleErr := p.oracle.LookupPrice(ctx, smiles)
		if oracleErr != nil {
			return nil, oracleErr
		}
		if v == nil {
			return priceEntry{Found: false}, nil
		}
		return priceEntry{Price: *v, Found: true}, nil
	})

	switch {
	case loaderErr == nil:
		if !entry.Found {
			return nil, false, nil
		}
		v := entry.Price
		return &v, false, nil
	case loaderErr == ErrCacheMiss:
		return nil, false, nil
	default:
		return nil, false, loaderErr
	}
}

func priceKey(smiles string) string {
	return "price:" + smiles
}

//Personal.AI order the ending
