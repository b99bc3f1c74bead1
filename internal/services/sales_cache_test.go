package services

import (
	"testing"
	"time"

	"github.com/whauf/sportscard-tracker/internal/models"
)

func TestSalesHistoryCache(t *testing.T) {
	cache := NewSalesHistoryCache(2, time.Minute)

	if _, ok := cache.Get(1); ok {
		t.Error("expected miss on empty cache")
	}

	cache.Put(1, []models.Sale{{ID: 1, CardID: 1}})
	cache.Put(2, []models.Sale{})

	sales, ok := cache.Get(1)
	if !ok || len(sales) != 1 {
		t.Errorf("expected cached history for card 1, got %v, %v", sales, ok)
	}

	// Card 2 is now least recently used and is evicted by card 3
	cache.Put(3, nil)
	if _, ok := cache.Get(2); ok {
		t.Error("expected card 2 to be evicted")
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}

	cache.Invalidate(1)
	if _, ok := cache.Get(1); ok {
		t.Error("expected card 1 to be invalidated")
	}
}

func TestSalesHistoryCache_PutIfCurrent(t *testing.T) {
	cache := NewSalesHistoryCache(4, time.Minute)

	version := cache.Version(1)
	if !cache.PutIfCurrent(1, version, []models.Sale{{ID: 1}}) {
		t.Fatal("expected store with an unchanged version")
	}

	stale := cache.Version(1)
	cache.Invalidate(1)
	if cache.PutIfCurrent(1, stale, []models.Sale{{ID: 1}}) {
		t.Error("expected store to be refused after invalidation")
	}
	if _, ok := cache.Get(1); ok {
		t.Error("expected no entry after refused store")
	}

	if !cache.PutIfCurrent(1, cache.Version(1), []models.Sale{{ID: 1}, {ID: 2}}) {
		t.Error("expected store with the new version")
	}
	if cache.Version(2) != 0 {
		t.Error("expected untouched cards to stay at version 0")
	}
}

func TestSalesHistoryCache_Expires(t *testing.T) {
	cache := NewSalesHistoryCache(4, 20*time.Millisecond)
	cache.Put(1, []models.Sale{{ID: 1}})

	time.Sleep(60 * time.Millisecond)

	if _, ok := cache.Get(1); ok {
		t.Error("expected entry to expire")
	}
}
