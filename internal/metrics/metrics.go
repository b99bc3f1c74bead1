// Package metrics provides Prometheus metrics for the card tracker view layer.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtracker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cardtracker_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Backend API Metrics
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtracker_backend_requests_total",
			Help: "Requests made to the card backend REST API",
		},
		[]string{"op", "result"}, // result: "ok", "network_error", "rejected", "decode_error"
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cardtracker_backend_request_duration_seconds",
			Help:    "Card backend request latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"op"},
	)

	// Snapshot / Filter Metrics
	SnapshotCards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cardtracker_snapshot_cards",
			Help: "Number of cards in the current snapshot",
		},
	)

	SnapshotRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtracker_snapshot_refreshes_total",
			Help: "Snapshot refresh attempts",
		},
		[]string{"result"}, // "success", "failed" or "superseded"
	)

	FilterEvaluationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardtracker_filter_evaluations_total",
			Help: "Number of filter evaluations over the card snapshot",
		},
	)

	FilteredCards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cardtracker_filtered_cards",
			Help: "Number of cards in the current filtered view",
		},
	)

	DebounceCoalescedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardtracker_debounce_coalesced_total",
			Help: "Criteria changes superseded before their evaluation ran",
		},
	)

	// Notification Metrics
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardtracker_notifications_total",
			Help: "User-visible notifications raised by type",
		},
		[]string{"type"}, // "success", "danger"
	)

	// Sales History Cache Metrics
	SalesCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardtracker_sales_cache_hits_total",
			Help: "Sales history cache hit count",
		},
	)

	SalesCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardtracker_sales_cache_misses_total",
			Help: "Sales history cache miss count",
		},
	)

	// Reference Backend Metrics
	InventoryCardsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cardtracker_inventory_cards_total",
			Help: "Total number of cards stored by the reference backend",
		},
	)

	InventorySalesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cardtracker_inventory_sales_total",
			Help: "Total number of sales stored by the reference backend",
		},
	)
)
