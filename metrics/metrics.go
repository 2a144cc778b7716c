// Package metrics manages the Prometheus metrics describing the export.
// The exporter is a short-lived process, so the metrics are written to a
// text file in the exposition format, e.g. for the textfile collector of
// the node exporter.
//
// To add new statistic you should:
//  1. Update the Metrics structure.
//  2. Prepare the metric instance in the NewMetrics function.
//  3. Extend the ServerStats structure and the Update function.
package metrics

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dhcp2ipam"

// Statistics of a single server export.
type ServerStats struct {
	Server       string
	Scopes       int
	Reservations int
	// Number of the records per schema.
	Records map[string]int
	// Number of the failed collections per collection name.
	RetrievalErrors map[string]int
	ReviewIssues    int
}

// Set of the export metrics.
type Metrics struct {
	Registry *prometheus.Registry

	ScopesTotal             *prometheus.GaugeVec
	ReservationsTotal       *prometheus.GaugeVec
	RecordsTotal            *prometheus.GaugeVec
	RetrievalErrorsTotal    *prometheus.GaugeVec
	ReviewIssuesTotal       *prometheus.GaugeVec
	UnreachableServersTotal prometheus.Gauge
}

// Constructor of the metrics. They are automatically registered in the
// dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,

		ScopesTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scopes_total",
			Help:      "Scopes fetched from the server",
		}, []string{"server"}),
		ReservationsTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservations fetched from the server",
		}, []string{"server"}),
		RecordsTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Exported records",
		}, []string{"server", "schema"}),
		RetrievalErrorsTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "retrieval_errors_total",
			Help:      "Collections that could not be fetched",
		}, []string{"server", "collection"}),
		ReviewIssuesTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "review_issues_total",
			Help:      "Issues found by the configuration review",
		}, []string{"server"}),
		UnreachableServersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unreachable_servers_total",
			Help:      "Servers that did not respond to the connectivity check",
		}),
	}
}

// Sets the metric values of the exported server.
func (m *Metrics) Update(stats *ServerStats) {
	labels := prometheus.Labels{"server": stats.Server}
	m.ScopesTotal.With(labels).Set(float64(stats.Scopes))
	m.ReservationsTotal.With(labels).Set(float64(stats.Reservations))
	m.ReviewIssuesTotal.With(labels).Set(float64(stats.ReviewIssues))
	for schema, count := range stats.Records {
		m.RecordsTotal.With(prometheus.Labels{"server": stats.Server, "schema": schema}).Set(float64(count))
	}
	for collection, count := range stats.RetrievalErrors {
		m.RetrievalErrorsTotal.With(prometheus.Labels{"server": stats.Server, "collection": collection}).Set(float64(count))
	}
}

// Counts the server that could not be exported because it was unreachable.
func (m *Metrics) AddUnreachableServer() {
	m.UnreachableServersTotal.Inc()
}

// Writes the metrics to a file in the text exposition format. The file is
// replaced atomically.
func (m *Metrics) WriteToFile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.Registry), "cannot write the metrics to %s", path)
}

// Unregister all metrics from the Prometheus registry.
func (m *Metrics) UnregisterAll() {
	v := reflect.ValueOf(*m)
	typeMetrics := v.Type()
	for i := 0; i < typeMetrics.NumField(); i++ {
		fieldObj := v.Field(i)
		if !fieldObj.CanInterface() {
			// Field is not exported.
			continue
		}
		collector, ok := fieldObj.Interface().(prometheus.Collector)
		if !ok {
			continue
		}
		m.Registry.Unregister(collector)
	}
}
