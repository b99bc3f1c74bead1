package services

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/whauf/sportscard-tracker/internal/metrics"
	"github.com/whauf/sportscard-tracker/internal/models"
)

const (
	defaultSalesCacheSize = 128
	defaultSalesCacheTTL  = time.Minute
)

// SalesHistoryCache keeps recently viewed sales histories keyed by card ID.
// Entries expire after a TTL so sales recorded by other clients show up.
//
// Each card carries a version that Invalidate bumps. A fetch that read the
// version before an invalidation cannot repopulate the entry afterwards.
type SalesHistoryCache struct {
	cache *expirable.LRU[int, []models.Sale]

	mu       sync.Mutex
	versions map[int]uint64
}

// NewSalesHistoryCache creates a cache holding at most size histories
func NewSalesHistoryCache(size int, ttl time.Duration) *SalesHistoryCache {
	if size <= 0 {
		size = defaultSalesCacheSize
	}
	if ttl <= 0 {
		ttl = defaultSalesCacheTTL
	}
	return &SalesHistoryCache{
		cache:    expirable.NewLRU[int, []models.Sale](size, nil, ttl),
		versions: make(map[int]uint64),
	}
}

func (c *SalesHistoryCache) Get(cardID int) ([]models.Sale, bool) {
	sales, ok := c.cache.Get(cardID)
	if ok {
		metrics.SalesCacheHits.Inc()
	} else {
		metrics.SalesCacheMisses.Inc()
	}
	return sales, ok
}

func (c *SalesHistoryCache) Put(cardID int, sales []models.Sale) {
	c.cache.Add(cardID, sales)
}

// Version returns the card's current invalidation count. Read it before
// fetching and hand it to PutIfCurrent.
func (c *SalesHistoryCache) Version(cardID int) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[cardID]
}

// PutIfCurrent stores sales only if the card was not invalidated since
// version was read. It reports whether the entry was stored.
func (c *SalesHistoryCache) PutIfCurrent(cardID int, version uint64, sales []models.Sale) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[cardID] != version {
		return false
	}
	c.cache.Add(cardID, sales)
	return true
}

// Invalidate drops a card's history, e.g. after a sale was recorded for it
func (c *SalesHistoryCache) Invalidate(cardID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[cardID]++
	c.cache.Remove(cardID)
}

func (c *SalesHistoryCache) Len() int {
	return c.cache.Len()
}
