// Package infobloxconfig defines the fixed record schemas of the CSV import
// files accepted by the target address management system. Each schema has
// a fixed set of columns. The optional columns are nullable and a null value
// is rendered as an empty cell.
package infobloxconfig

import (
	"fmt"

	storkutil "isc.org/dhcp2ipam/util"
)

// Identifies the record schema.
type Schema string

// Supported record schemas.
const (
	SchemaNetwork      Schema = "network"
	SchemaRange        Schema = "dhcprange"
	SchemaFixedAddress Schema = "fixedaddress"
)

// Returns the name of the record type marker column. The marker column is
// always the first one. Its header is the schema name prefixed with
// "header-" and its value in each row is the schema name.
func (s Schema) GetMarkerColumn() string {
	return "header-" + string(s)
}

// Returns the name of the table holding the records of the schema. It is
// used in the output file names.
func (s Schema) GetTableName() string {
	switch s {
	case SchemaNetwork:
		return "networks"
	case SchemaRange:
		return "ranges"
	case SchemaFixedAddress:
		return "fixed_addresses"
	default:
		return string(s)
	}
}

// Returns all supported schemas in the order the files are produced.
func GetSchemas() []Schema {
	return []Schema{SchemaNetwork, SchemaRange, SchemaFixedAddress}
}

// Common interface of the records of all schemas.
type Record interface {
	// Returns the schema of the record.
	GetSchema() Schema
	// Returns the column names mapped to the rendered cell values. The
	// map contains all schema columns in the schema order, starting
	// with the record type marker.
	GetFields() *storkutil.OrderedMap[string, string]
}

// Returns the column names of the schema in order.
func GetColumns(schema Schema) []string {
	var record Record
	switch schema {
	case SchemaNetwork:
		record = &NetworkRecord{}
	case SchemaRange:
		record = &RangeRecord{}
	case SchemaFixedAddress:
		record = &FixedAddressRecord{}
	default:
		return nil
	}
	return record.GetFields().GetKeys()
}

// Helper building the ordered fields of a record. It starts with the
// record type marker.
type fieldsBuilder struct {
	fields *storkutil.OrderedMap[string, string]
}

func newFieldsBuilder(schema Schema) *fieldsBuilder {
	builder := &fieldsBuilder{
		fields: storkutil.NewOrderedMap[string, string](),
	}
	builder.fields.Set(schema.GetMarkerColumn(), string(schema))
	return builder
}

func (b *fieldsBuilder) add(column string, value string) *fieldsBuilder {
	b.fields.Set(column, value)
	return b
}

func (b *fieldsBuilder) addNullable(column string, value fmt.Stringer) *fieldsBuilder {
	return b.add(column, value.String())
}
