// Package metrics exposes Prometheus instrumentation for the arrangement
// engine: solve duration, solver outcome counts, and cascade reduction
// progress, registered at package load via promauto.
package metrics
