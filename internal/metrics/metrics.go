package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artify_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artify_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artify_store_operation_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artify_store_operation_errors_total",
			Help: "Total number of failed MongoDB operations",
		},
		[]string{"operation", "collection"},
	)

	FavoriteDuplicates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artify_favorite_duplicates_total",
			Help: "Favorite inserts rejected because the pair already exists",
		},
	)
)

func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveStore returns a func to defer around a store call.
//
//	defer metrics.ObserveStore("find", "artworks")(&err)
func ObserveStore(operation, collection string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		StoreOperationDuration.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
		if errp != nil && *errp != nil {
			StoreOperationErrors.WithLabelValues(operation, collection).Inc()
		}
	}
}
