package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name unless Config.Namespace overrides it.
const DefaultNamespace = "lockstream"

// Registry holds all metric instances for lockstream components.
type Registry struct {
	// Lock Metrics
	LockAcquisitions *prometheus.CounterVec
	LockContended    *prometheus.CounterVec
	LockWaitTime     *prometheus.HistogramVec
	LockHoldTime     *prometheus.HistogramVec
	LockHeld         *prometheus.GaugeVec
	LockErrors       *prometheus.CounterVec

	// Stream Metrics
	StreamOperations *prometheus.CounterVec
	StreamBytes      *prometheus.CounterVec
	StreamShortOps   *prometheus.CounterVec
	StreamErrors     *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by lockstream components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryWithConfig(Config{Enabled: true, Registry: reg})
}

// NewRegistryWithConfig creates a metrics registry honoring the namespace and
// constant labels of config. A nil config.Registry registers nothing.
func NewRegistryWithConfig(config Config) *Registry {
	factory := promauto.With(config.Registry)

	ns := config.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	labels := config.Labels

	return &Registry{
		LockAcquisitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "lock",
				Name:        "acquisitions_total",
				Help:        "Total number of successful lock acquisitions",
				ConstLabels: labels,
			},
			[]string{"lock_type", "lock_name", "mode"},
		),

		LockContended: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "lock",
				Name:        "contended_total",
				Help:        "Total number of non-blocking acquisition attempts that found the lock held",
				ConstLabels: labels,
			},
			[]string{"lock_type", "lock_name"},
		),

		LockWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "lock",
				Name:        "wait_duration_seconds",
				Help:        "Time spent blocked waiting to acquire a lock",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"lock_type", "lock_name"},
		),

		LockHoldTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "lock",
				Name:        "hold_duration_seconds",
				Help:        "Time a lock was held between acquisition and release",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"lock_type", "lock_name"},
		),

		LockHeld: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "lock",
				Name:        "held",
				Help:        "Whether the lock is currently held (0 or 1)",
				ConstLabels: labels,
			},
			[]string{"lock_type", "lock_name"},
		),

		LockErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "lock",
				Name:        "errors_total",
				Help:        "Total number of lock backend errors",
				ConstLabels: labels,
			},
			[]string{"lock_type", "lock_name", "operation"},
		),

		StreamOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "operations_total",
				Help:        "Total number of stream Read and Write calls",
				ConstLabels: labels,
			},
			[]string{"operation", "stream_name"},
		),

		StreamBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "bytes_total",
				Help:        "Total bytes transferred by stream operations",
				ConstLabels: labels,
			},
			[]string{"operation", "stream_name"},
		),

		StreamShortOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "short_operations_total",
				Help:        "Total number of reads or writes that transferred fewer bytes than requested",
				ConstLabels: labels,
			},
			[]string{"operation", "stream_name"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "stream",
				Name:        "errors_total",
				Help:        "Total number of stream operation errors, end of data excluded",
				ConstLabels: labels,
			},
			[]string{"operation", "stream_name"},
		),
	}
}
