package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	storktestutil "isc.org/dhcp2ipam/testutil"
)

// All metrics should be properly constructed.
func TestNewMetrics(t *testing.T) {
	// Act
	metrics := NewMetrics()
	mfs, _ := metrics.Registry.Gather()

	// Assert
	require.NotNil(t, metrics)
	// Only the unreachable servers gauge has a value at the beginning.
	// The vectors have no values until the first server is exported.
	require.Len(t, mfs, 1)
}

// Test that the server statistics are set.
func TestUpdate(t *testing.T) {
	// Arrange
	metrics := NewMetrics()

	// Act
	metrics.Update(&ServerStats{
		Server:       "dhcp1",
		Scopes:       2,
		Reservations: 3,
		Records: map[string]int{
			"network":      2,
			"fixedaddress": 3,
		},
		RetrievalErrors: map[string]int{"dns_settings": 1},
		ReviewIssues:    4,
	})
	metrics.AddUnreachableServer()

	// Assert
	require.EqualValues(t, 2, testutil.ToFloat64(metrics.ScopesTotal.WithLabelValues("dhcp1")))
	require.EqualValues(t, 3, testutil.ToFloat64(metrics.ReservationsTotal.WithLabelValues("dhcp1")))
	require.EqualValues(t, 3, testutil.ToFloat64(metrics.RecordsTotal.WithLabelValues("dhcp1", "fixedaddress")))
	require.EqualValues(t, 1, testutil.ToFloat64(metrics.RetrievalErrorsTotal.WithLabelValues("dhcp1", "dns_settings")))
	require.EqualValues(t, 4, testutil.ToFloat64(metrics.ReviewIssuesTotal.WithLabelValues("dhcp1")))
	require.EqualValues(t, 1, testutil.ToFloat64(metrics.UnreachableServersTotal))

	err := testutil.GatherAndCompare(metrics.Registry, strings.NewReader(`
# HELP dhcp2ipam_scopes_total Scopes fetched from the server
# TYPE dhcp2ipam_scopes_total gauge
dhcp2ipam_scopes_total{server="dhcp1"} 2
`), "dhcp2ipam_scopes_total")
	require.NoError(t, err)
}

// Test that the metrics are written to a file.
func TestWriteToFile(t *testing.T) {
	// Arrange
	sb := storktestutil.NewSandbox()
	defer sb.Close()
	metrics := NewMetrics()
	metrics.Update(&ServerStats{Server: "dhcp1", Scopes: 5})

	// Act
	err := metrics.WriteToFile(sb.Path("dhcp2ipam.prom"))

	// Assert
	require.NoError(t, err)
	content, err := sb.Read("dhcp2ipam.prom")
	require.NoError(t, err)
	require.Contains(t, string(content), `dhcp2ipam_scopes_total{server="dhcp1"} 5`)
	require.Contains(t, string(content), "dhcp2ipam_unreachable_servers_total 0")
}

// Test that writing to a missing directory fails.
func TestWriteToFileMissingDirectory(t *testing.T) {
	sb := storktestutil.NewSandbox()
	defer sb.Close()

	err := NewMetrics().WriteToFile(sb.Path("missing/dhcp2ipam.prom"))

	require.Error(t, err)
}

// All metrics should be unregistered.
func TestUnregisterAllMetrics(t *testing.T) {
	// Arrange
	metrics := NewMetrics()
	metrics.Update(&ServerStats{Server: "dhcp1"})

	// Act
	metrics.UnregisterAll()
	mfs, _ := metrics.Registry.Gather()

	// Assert
	require.Empty(t, mfs)
}
