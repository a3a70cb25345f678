package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/platform/logger"
)

// Manager holds the service's Prometheus metrics on a private registry.
type Manager struct {
	Registry *prometheus.Registry

	ListingsCreatedTotal  prometheus.Counter
	ListingsDeactivated   prometheus.Counter
	FavoritesAddedTotal   prometheus.Counter
	FavoritesRemovedTotal prometheus.Counter
	ContactRequestsTotal  prometheus.Counter
	APIErrorsTotal        *prometheus.CounterVec
	RequestLatency        *prometheus.HistogramVec
}

func NewManager(namespace string) *Manager {
	registry := prometheus.NewRegistry()

	listingsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of listings accepted into the catalog.",
	})
	listingsDeactivated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_deactivated_total",
		Help:      "Total number of listings deactivated by their owner.",
	})
	favoritesAdded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_added_total",
		Help:      "Total number of favorite links created.",
	})
	favoritesRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_removed_total",
		Help:      "Total number of favorite links removed.",
	})
	contactRequests := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_requests_total",
		Help:      "Total number of contact requests accepted.",
	})
	apiErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of API errors by route and status.",
	}, []string{"route", "status"})
	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_latency_seconds",
		Help:      "Latency of API requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	registry.MustRegister(
		listingsCreated,
		listingsDeactivated,
		favoritesAdded,
		favoritesRemoved,
		contactRequests,
		apiErrors,
		requestLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Manager{
		Registry:              registry,
		ListingsCreatedTotal:  listingsCreated,
		ListingsDeactivated:   listingsDeactivated,
		FavoritesAddedTotal:   favoritesAdded,
		FavoritesRemovedTotal: favoritesRemoved,
		ContactRequestsTotal:  contactRequests,
		APIErrorsTotal:        apiErrors,
		RequestLatency:        requestLatency,
	}
}

// StartServer exposes /metrics on its own port. Blocks; run in a goroutine.
// An empty port disables the server.
func StartServer(port string, appLogger *logger.Logger, registry *prometheus.Registry) error {
	if port == "" {
		appLogger.Info("metrics server disabled, no port configured")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	appLogger.Info("metrics server starting", zap.String("port", port))
	server := &http.Server{Addr: ":" + port, Handler: mux}
	return server.ListenAndServe()
}
