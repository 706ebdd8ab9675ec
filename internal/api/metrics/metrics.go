// Package metrics defines all custom Prometheus metrics for the hotel booking
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stayhub"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts successfully created bookings.
// Label:
//   - payment_method: "CREDIT_CARD", "UPI", "NET_BANKING", ...
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by payment method.",
	},
	[]string{"payment_method"},
)

// BookingsCancelledTotal counts cancellations.
var BookingsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cancelled_total",
		Help:      "Total number of bookings cancelled.",
	},
)

// BookingsRejectedTotal counts create attempts turned away by the
// availability guard.
// Label:
//   - reason: "no_availability" (occupancy exceeded) or "contention" (room hold busy)
var BookingsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_rejected_total",
		Help:      "Total number of booking attempts rejected by the availability guard.",
	},
	[]string{"reason"},
)

// BookingAmountCents observes the distribution of booking totals in cents.
var BookingAmountCents = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_amount_cents",
		Help:      "Distribution of booking total prices, in cents.",
		Buckets:   prometheus.ExponentialBuckets(10_000, 4, 8), // 100 … ~1.6M in currency units
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "suspended"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CatalogCacheTotal counts catalog cache decisions.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by result.",
	},
	[]string{"result"},
)
