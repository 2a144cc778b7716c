package infobloxconfig

import storkutil "isc.org/dhcp2ipam/util"

// Range record columns.
const (
	RangeColumnStartAddress          = "start_address*"
	RangeColumnEndAddress            = "end_address*"
	RangeColumnExclusionRanges       = "exclusion_ranges"
	RangeColumnFailoverAssociation   = "failover_association"
	RangeColumnServerAssociationType = "server_association_type"
)

// Server association type of all exported ranges. The ranges are served
// by a failover association.
const ServerAssociationTypeFailover = "FAILOVER"

// A DHCP range record. One record is produced for each scope.
type RangeRecord struct {
	StartAddress          string                     `json:"startAddress"`
	EndAddress            string                     `json:"endAddress"`
	ExclusionRanges       storkutil.Nullable[string] `json:"exclusionRanges"`
	FailoverAssociation   storkutil.Nullable[string] `json:"failoverAssociation"`
	ServerAssociationType string                     `json:"serverAssociationType"`
}

var _ Record = (*RangeRecord)(nil)

// Returns the range schema.
func (r *RangeRecord) GetSchema() Schema {
	return SchemaRange
}

// Returns the range record cells in the schema order.
func (r *RangeRecord) GetFields() *storkutil.OrderedMap[string, string] {
	return newFieldsBuilder(SchemaRange).
		add(RangeColumnStartAddress, r.StartAddress).
		add(RangeColumnEndAddress, r.EndAddress).
		addNullable(RangeColumnExclusionRanges, r.ExclusionRanges).
		addNullable(RangeColumnFailoverAssociation, r.FailoverAssociation).
		add(RangeColumnServerAssociationType, r.ServerAssociationType).
		fields
}
