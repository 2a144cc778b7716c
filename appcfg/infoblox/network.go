package infobloxconfig

import storkutil "isc.org/dhcp2ipam/util"

// Network record columns.
const (
	NetworkColumnAddress                 = "address*"
	NetworkColumnNetmask                 = "netmask*"
	NetworkColumnComment                 = "comment"
	NetworkColumnDisabled                = "disabled"
	NetworkColumnLeaseTime               = "lease_time"
	NetworkColumnDHCPMembers             = "dhcp_members"
	NetworkColumnRouters                 = "routers"
	NetworkColumnDomainNameServers       = "domain_name_servers"
	NetworkColumnDomainName              = "domain_name"
	NetworkColumnDDNSDomainName          = "ddns_domainname"
	NetworkColumnAlwaysUpdateDNS         = "always_update_dns"
	NetworkColumnEnableDDNS              = "enable_ddns"
	NetworkColumnEnableOption81          = "enable_option81"
	NetworkColumnUpdateStaticLeases      = "update_static_leases"
	NetworkColumnUpdateDNSOnLeaseRenewal = "update_dns_on_lease_renewal"
	NetworkColumnBootServer              = "boot_server"
	NetworkColumnBootFile                = "boot_file"
	NetworkColumnOption43                = "OPTION-43"
	NetworkColumnSite                    = "EA-Site"
	NetworkColumnVLAN                    = "EA-VLAN"
)

// A network record. One record is produced for each scope.
type NetworkRecord struct {
	Address                 string                     `json:"address"`
	Netmask                 string                     `json:"netmask"`
	Comment                 storkutil.Nullable[string] `json:"comment"`
	Disabled                storkutil.Nullable[bool]   `json:"disabled"`
	LeaseTime               storkutil.Nullable[int64]  `json:"leaseTime"`
	DHCPMembers             storkutil.Nullable[string] `json:"dhcpMembers"`
	Routers                 storkutil.Nullable[string] `json:"routers"`
	DomainNameServers       storkutil.Nullable[string] `json:"domainNameServers"`
	DomainName              storkutil.Nullable[string] `json:"domainName"`
	DDNSDomainName          storkutil.Nullable[string] `json:"ddnsDomainName"`
	AlwaysUpdateDNS         storkutil.Nullable[bool]   `json:"alwaysUpdateDns"`
	EnableDDNS              storkutil.Nullable[bool]   `json:"enableDdns"`
	EnableOption81          storkutil.Nullable[bool]   `json:"enableOption81"`
	UpdateStaticLeases      storkutil.Nullable[bool]   `json:"updateStaticLeases"`
	UpdateDNSOnLeaseRenewal storkutil.Nullable[bool]   `json:"updateDnsOnLeaseRenewal"`
	BootServer              storkutil.Nullable[string] `json:"bootServer"`
	BootFile                storkutil.Nullable[string] `json:"bootFile"`
	Option43                storkutil.Nullable[string] `json:"option43"`
	Site                    storkutil.Nullable[string] `json:"site"`
	VLAN                    storkutil.Nullable[int]    `json:"vlan"`
}

var _ Record = (*NetworkRecord)(nil)

// Returns the network schema.
func (r *NetworkRecord) GetSchema() Schema {
	return SchemaNetwork
}

// Returns the network record cells in the schema order.
func (r *NetworkRecord) GetFields() *storkutil.OrderedMap[string, string] {
	return newFieldsBuilder(SchemaNetwork).
		add(NetworkColumnAddress, r.Address).
		add(NetworkColumnNetmask, r.Netmask).
		addNullable(NetworkColumnComment, r.Comment).
		addNullable(NetworkColumnDisabled, r.Disabled).
		addNullable(NetworkColumnLeaseTime, r.LeaseTime).
		addNullable(NetworkColumnDHCPMembers, r.DHCPMembers).
		addNullable(NetworkColumnRouters, r.Routers).
		addNullable(NetworkColumnDomainNameServers, r.DomainNameServers).
		addNullable(NetworkColumnDomainName, r.DomainName).
		addNullable(NetworkColumnDDNSDomainName, r.DDNSDomainName).
		addNullable(NetworkColumnAlwaysUpdateDNS, r.AlwaysUpdateDNS).
		addNullable(NetworkColumnEnableDDNS, r.EnableDDNS).
		addNullable(NetworkColumnEnableOption81, r.EnableOption81).
		addNullable(NetworkColumnUpdateStaticLeases, r.UpdateStaticLeases).
		addNullable(NetworkColumnUpdateDNSOnLeaseRenewal, r.UpdateDNSOnLeaseRenewal).
		addNullable(NetworkColumnBootServer, r.BootServer).
		addNullable(NetworkColumnBootFile, r.BootFile).
		addNullable(NetworkColumnOption43, r.Option43).
		addNullable(NetworkColumnSite, r.Site).
		addNullable(NetworkColumnVLAN, r.VLAN).
		fields
}
