package infobloxconfig

import storkutil "isc.org/dhcp2ipam/util"

// Fixed address record columns.
const (
	FixedAddressColumnIPAddress         = "ip_address*"
	FixedAddressColumnMACAddress        = "mac_address"
	FixedAddressColumnName              = "name"
	FixedAddressColumnComment           = "comment"
	FixedAddressColumnMatchClient       = "match_client"
	FixedAddressColumnDomainNameServers = "domain_name_servers"
	FixedAddressColumnRouters           = "routers"
)

// Fixed addresses are matched by the client hardware address.
const MatchClientMACAddress = "MAC_ADDRESS"

// A fixed address record. One record is produced for each reservation.
type FixedAddressRecord struct {
	IPAddress         string                     `json:"ipAddress"`
	MACAddress        storkutil.Nullable[string] `json:"macAddress"`
	Name              storkutil.Nullable[string] `json:"name"`
	Comment           storkutil.Nullable[string] `json:"comment"`
	MatchClient       string                     `json:"matchClient"`
	DomainNameServers storkutil.Nullable[string] `json:"domainNameServers"`
	Routers           storkutil.Nullable[string] `json:"routers"`
}

var _ Record = (*FixedAddressRecord)(nil)

// Returns the fixed address schema.
func (r *FixedAddressRecord) GetSchema() Schema {
	return SchemaFixedAddress
}

// Returns the fixed address record cells in the schema order.
func (r *FixedAddressRecord) GetFields() *storkutil.OrderedMap[string, string] {
	return newFieldsBuilder(SchemaFixedAddress).
		add(FixedAddressColumnIPAddress, r.IPAddress).
		addNullable(FixedAddressColumnMACAddress, r.MACAddress).
		addNullable(FixedAddressColumnName, r.Name).
		addNullable(FixedAddressColumnComment, r.Comment).
		add(FixedAddressColumnMatchClient, r.MatchClient).
		addNullable(FixedAddressColumnDomainNameServers, r.DomainNameServers).
		addNullable(FixedAddressColumnRouters, r.Routers).
		fields
}
