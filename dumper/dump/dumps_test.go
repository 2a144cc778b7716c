package dump_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"isc.org/dhcp2ipam/collector"
	"isc.org/dhcp2ipam/configreview"
	dhcptest "isc.org/dhcp2ipam/datamodel/dhcp/test"
	dumppkg "isc.org/dhcp2ipam/dumper/dump"
	"isc.org/dhcp2ipam/tabular"
	"isc.org/dhcp2ipam/transform"
)

// Test that the server hierarchy dump contains the server.
func TestServerHierarchyDump(t *testing.T) {
	// Arrange
	server := dhcptest.NewServer()
	dump := dumppkg.NewServerHierarchyDump(server)

	// Act
	err := dump.Execute()

	// Assert
	require.NoError(t, err)
	require.EqualValues(t, "server", dump.GetName())
	require.EqualValues(t, 1, dump.GetArtifactsNumber())
	artifact := dump.GetArtifact(0).(dumppkg.StructArtifact)
	require.EqualValues(t, "hierarchy", artifact.GetName())
	require.Same(t, server, artifact.GetStruct())
}

// Test that the server hierarchy dump fails without a server.
func TestServerHierarchyDumpMissingServer(t *testing.T) {
	dump := dumppkg.NewServerHierarchyDump(nil)
	require.Error(t, dump.Execute())
	require.Zero(t, dump.GetArtifactsNumber())
}

// Test that the review dump contains the review result.
func TestReviewDump(t *testing.T) {
	result := &configreview.ReviewResult{Checkers: []string{"foo"}}
	dump := dumppkg.NewReviewDump(result)

	require.NoError(t, dump.Execute())
	require.EqualValues(t, "review", dump.GetName())
	artifact := dump.GetArtifact(0).(dumppkg.StructArtifact)
	require.EqualValues(t, "reports", artifact.GetName())
	require.Same(t, result, artifact.GetStruct())
}

// Test that the review dump fails when the review was not performed.
func TestReviewDumpMissingResult(t *testing.T) {
	dump := dumppkg.NewReviewDump(nil)
	require.Error(t, dump.Execute())
}

// Test that the retrieval errors dump always produces a list.
func TestRetrievalErrorsDump(t *testing.T) {
	// Arrange
	retrievalErr := collector.NewRetrievalError(collector.CollectionReservations, "dhcp1", "192.0.2.0", "", errors.New("timeout"))
	withErrors := dumppkg.NewRetrievalErrorsDump([]*collector.RetrievalError{retrievalErr})
	withoutErrors := dumppkg.NewRetrievalErrorsDump(nil)

	// Act
	require.NoError(t, withErrors.Execute())
	require.NoError(t, withoutErrors.Execute())

	// Assert
	require.EqualValues(t, "retrieval", withErrors.GetName())
	require.Len(t, withErrors.GetArtifact(0).(dumppkg.StructArtifact).GetStruct(), 1)
	require.NotNil(t, withoutErrors.GetArtifact(0).(dumppkg.StructArtifact).GetStruct())
	require.Empty(t, withoutErrors.GetArtifact(0).(dumppkg.StructArtifact).GetStruct())
}

// Test that the tables dump renders a table for each schema.
func TestTablesDump(t *testing.T) {
	// Arrange
	records := transform.Transform(dhcptest.NewServer(), transform.Settings{})
	dump := dumppkg.NewTablesDump(records, tabular.NewWriter(tabular.DefaultDelimiter, tabular.EncodingUTF8))

	// Act
	err := dump.Execute()

	// Assert
	require.NoError(t, err)
	require.EqualValues(t, "tables", dump.GetName())
	require.EqualValues(t, 3, dump.GetArtifactsNumber())
	var names []string
	for i := 0; i < dump.GetArtifactsNumber(); i++ {
		artifact := dump.GetArtifact(i).(dumppkg.BinaryArtifact)
		require.EqualValues(t, ".csv", artifact.GetExtension())
		names = append(names, artifact.GetName())
	}
	require.Equal(t, []string{"networks", "ranges", "fixed_addresses"}, names)

	fixedAddresses := string(dump.GetArtifact(2).(dumppkg.BinaryArtifact).GetBinary())
	require.True(t, strings.HasPrefix(fixedAddresses, "header-fixedaddress,"))
	require.Contains(t, fixedAddresses, "fixedaddress,192.0.2.50,00:11:22:33:44:55,")
}

// Test that the tables dump fails without the records.
func TestTablesDumpMissingRecords(t *testing.T) {
	dump := dumppkg.NewTablesDump(nil, tabular.NewWriter(tabular.DefaultDelimiter, tabular.EncodingUTF8))
	require.Error(t, dump.Execute())
}
