package tabular

import (
	"bytes"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
	infobloxconfig "isc.org/dhcp2ipam/appcfg/infoblox"
	"isc.org/dhcp2ipam/testutil"
	storkutil "isc.org/dhcp2ipam/util"
)

func newTestRanges() []infobloxconfig.Record {
	return []infobloxconfig.Record{
		&infobloxconfig.RangeRecord{
			StartAddress:          "192.0.2.10",
			EndAddress:            "192.0.2.200",
			ExclusionRanges:       storkutil.NewNullableFromValue("192.0.2.10-192.0.2.20,192.0.2.30-192.0.2.40"),
			FailoverAssociation:   storkutil.NewNullableFromValue("fo1"),
			ServerAssociationType: infobloxconfig.ServerAssociationTypeFailover,
		},
		&infobloxconfig.RangeRecord{
			StartAddress:          "198.51.100.10",
			EndAddress:            "198.51.100.100",
			ServerAssociationType: infobloxconfig.ServerAssociationTypeFailover,
		},
	}
}

// Test that the encoding names are parsed.
func TestParseEncoding(t *testing.T) {
	for name, expected := range map[string]Encoding{
		"":          EncodingUTF8,
		"utf-8":     EncodingUTF8,
		"UTF-8-BOM": EncodingUTF8BOM,
		" utf-16le": EncodingUTF16LE,
	} {
		encoding, err := ParseEncoding(name)
		require.NoError(t, err, name)
		require.Equal(t, expected, encoding)
	}

	_, err := ParseEncoding("latin1")
	require.Error(t, err)
}

// Test that the delimiters are parsed.
func TestParseDelimiter(t *testing.T) {
	delimiter, err := ParseDelimiter("")
	require.NoError(t, err)
	require.EqualValues(t, ',', delimiter)

	delimiter, err = ParseDelimiter(";")
	require.NoError(t, err)
	require.EqualValues(t, ';', delimiter)

	delimiter, err = ParseDelimiter(`\t`)
	require.NoError(t, err)
	require.EqualValues(t, '\t', delimiter)

	_, err = ParseDelimiter(";;")
	require.Error(t, err)
	_, err = ParseDelimiter(`"`)
	require.Error(t, err)
}

// Test that the table has a header row and the null cells are empty.
func TestRenderTable(t *testing.T) {
	// Arrange
	writer := NewWriter(DefaultDelimiter, EncodingUTF8)

	// Act
	content, err := writer.Render(infobloxconfig.SchemaRange, newTestRanges())

	// Assert
	require.NoError(t, err)
	require.Equal(t,
		"header-dhcprange,start_address*,end_address*,exclusion_ranges,failover_association,server_association_type\r\n"+
			"dhcprange,192.0.2.10,192.0.2.200,\"192.0.2.10-192.0.2.20,192.0.2.30-192.0.2.40\",fo1,FAILOVER\r\n"+
			"dhcprange,198.51.100.10,198.51.100.100,,,FAILOVER\r\n",
		string(content))
}

// Test that an empty table contains only the header.
func TestRenderEmptyTable(t *testing.T) {
	writer := NewWriter(';', EncodingUTF8)

	content, err := writer.Render(infobloxconfig.SchemaFixedAddress, nil)

	require.NoError(t, err)
	require.Equal(t, "header-fixedaddress;ip_address*;mac_address;name;comment;match_client;domain_name_servers;routers\r\n", string(content))
}

// Test that the records of a different schema are rejected.
func TestRenderMismatchedSchema(t *testing.T) {
	writer := NewWriter(DefaultDelimiter, EncodingUTF8)

	_, err := writer.Render(infobloxconfig.SchemaNetwork, newTestRanges())

	require.ErrorContains(t, err, "instead of network")
}

// Test that an unknown schema is rejected.
func TestRenderUnknownSchema(t *testing.T) {
	writer := NewWriter(DefaultDelimiter, EncodingUTF8)
	_, err := writer.Render(infobloxconfig.Schema("host"), nil)
	require.Error(t, err)
}

// Test that the byte order mark is prepended.
func TestRenderUTF8BOM(t *testing.T) {
	writer := NewWriter(DefaultDelimiter, EncodingUTF8BOM)

	content, err := writer.Render(infobloxconfig.SchemaRange, nil)

	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF, 'h', 'e'}))
}

// Test that the table is encoded in UTF-16 little endian.
func TestRenderUTF16LE(t *testing.T) {
	writer := NewWriter(DefaultDelimiter, EncodingUTF16LE)

	content, err := writer.Render(infobloxconfig.SchemaRange, nil)

	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte{0xFF, 0xFE, 'h', 0x00, 'e', 0x00}))
	utf8Content, _ := NewWriter(DefaultDelimiter, EncodingUTF8).Render(infobloxconfig.SchemaRange, nil)
	require.Len(t, content, 2+2*len(utf8Content))
}

// Test that the table is saved in a file.
func TestWriteFile(t *testing.T) {
	// Arrange
	sb := testutil.NewSandbox()
	defer sb.Close()
	filePath := path.Join(sb.BasePath, "out", "dhcp1_ranges.csv")
	writer := NewWriter(DefaultDelimiter, EncodingUTF8)

	// Act
	err := writer.WriteFile(filePath, infobloxconfig.SchemaRange, newTestRanges())

	// Assert
	require.NoError(t, err)
	content, err := sb.Read(path.Join("out", "dhcp1_ranges.csv"))
	require.NoError(t, err)
	expected, _ := writer.Render(infobloxconfig.SchemaRange, newTestRanges())
	require.Equal(t, expected, content)
}
