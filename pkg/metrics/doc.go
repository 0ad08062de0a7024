// Package metrics provides Prometheus instrumentation for lockstream components.
//
// Locks and streams are instrumented by wrapping them: the wrapped value keeps
// its contract and every call is recorded on a Registry.
//
// # Quick Start
//
//	m := mutex.NewWithMetrics("orders")
//	s := stream.NewWithMetrics(stream.NewMemory(), "orders_feed")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	m := mutex.NewWithConfigAndMetrics(mutex.New(), "orders", config)
//
// # Available Metrics
//
// Lock metrics (labels lock_type, lock_name):
//
//   - lockstream_lock_acquisitions_total: successful acquisitions, by mode (enter, try)
//   - lockstream_lock_contended_total: TryEntering calls that found the lock held
//   - lockstream_lock_wait_duration_seconds: time blocked in Enter
//   - lockstream_lock_hold_duration_seconds: time between acquisition and Leave
//   - lockstream_lock_held: 1 while held, 0 otherwise
//   - lockstream_lock_errors_total: backend failures of distributed locks
//
// Stream metrics (labels operation, stream_name):
//
//   - lockstream_stream_operations_total: Read and Write calls
//   - lockstream_stream_bytes_total: bytes transferred
//   - lockstream_stream_short_operations_total: calls that moved fewer bytes than requested
//   - lockstream_stream_errors_total: failed calls, io.EOF excluded
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.DefaultRegisterer,
//		Namespace: "myapp",                             // Override default "lockstream"
//		Labels:    prometheus.Labels{"version": "1.0"}, // Constant labels
//	}
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	m := mutex.NewWithMetrics("orders")
//	m.DisableMetrics()
//	m.EnableMetrics(config)
//	enabled := m.MetricsEnabled()
package metrics
