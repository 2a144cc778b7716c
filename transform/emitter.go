// Package transform derives the flat import records from the DHCP server
// hierarchy. The derivation never fails: a missing or malformed value
// results in a null field, never in a missing record.
package transform

import (
	log "github.com/sirupsen/logrus"
	infobloxconfig "isc.org/dhcp2ipam/appcfg/infoblox"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	storkutil "isc.org/dhcp2ipam/util"
)

// The records derived from a single server.
type Records struct {
	Networks       []*infobloxconfig.NetworkRecord
	Ranges         []*infobloxconfig.RangeRecord
	FixedAddresses []*infobloxconfig.FixedAddressRecord
}

// Returns the records of the given schema.
func (r *Records) GetRecords(schema infobloxconfig.Schema) []infobloxconfig.Record {
	var records []infobloxconfig.Record
	switch schema {
	case infobloxconfig.SchemaNetwork:
		for _, record := range r.Networks {
			records = append(records, record)
		}
	case infobloxconfig.SchemaRange:
		for _, record := range r.Ranges {
			records = append(records, record)
		}
	case infobloxconfig.SchemaFixedAddress:
		for _, record := range r.FixedAddresses {
			records = append(records, record)
		}
	}
	return records
}

// Derives the records from the server hierarchy. It produces one network
// and one range record per scope and one fixed address record per
// reservation. The records follow the order of the scopes and the
// reservations in the hierarchy.
func Transform(server *dhcpmodel.Server, settings Settings) *Records {
	records := &Records{}
	if server == nil {
		return records
	}
	resolver := NewOptionResolver(server)
	for _, scope := range server.Scopes {
		if scope == nil {
			continue
		}
		records.Networks = append(records.Networks, NewNetworkRecord(resolver, scope, settings))
		records.Ranges = append(records.Ranges, NewRangeRecord(scope, settings))
		for _, reservation := range scope.Reservations {
			if reservation == nil {
				continue
			}
			records.FixedAddresses = append(records.FixedAddresses, NewFixedAddressRecord(reservation))
		}
	}
	log.WithFields(log.Fields{
		"server":          server.Name,
		"networks":        len(records.Networks),
		"ranges":          len(records.Ranges),
		"fixed_addresses": len(records.FixedAddresses),
	}).Debug("Derived the import records")
	return records
}

// Creates the network record of the scope. The DNS servers, the vendor
// specific information and the boot parameters fall back to the server
// options. The routers and the domain name are taken from the scope only.
// The domain name may be inherited from the server when the dynamic DNS
// updates are enabled.
func NewNetworkRecord(resolver *OptionResolver, scope *dhcpmodel.Scope, settings Settings) *infobloxconfig.NetworkRecord {
	record := &infobloxconfig.NetworkRecord{
		Address:     scope.ID,
		Netmask:     scope.SubnetMask,
		Comment:     nullableString(NormalizeComment(scope.Name, settings.Site, settings.AddSiteToComment)),
		Disabled:    isScopeDisabled(scope.State),
		LeaseTime:   formatLeaseTime(scope.LeaseDuration),
		DHCPMembers: nullableString(settings.DHCPMembers),
		Site:        nullableString(settings.Site),
		VLAN:        extractScopeVLAN(scope, settings),
	}

	record.DomainNameServers = joinOptionValue(resolver.Resolve(dhcpmodel.OptionDomainNameServer, scope, nil))
	record.Routers = joinOptionValue(LookupLocal(scope, dhcpmodel.OptionRouter))
	record.Option43 = joinOptionValue(resolver.Resolve(dhcpmodel.OptionVendorSpecific, scope, nil))
	record.BootServer = firstOptionValue(resolver.Resolve(dhcpmodel.OptionTFTPServerName, scope, nil))
	record.BootFile = firstOptionValue(resolver.Resolve(dhcpmodel.OptionBootfileName, scope, nil))

	domainName := firstOptionValue(LookupLocal(scope, dhcpmodel.OptionDomainName))
	record.DomainName = domainName
	record.DDNSDomainName = domainName

	var serverDomain storkutil.Nullable[string]
	if resolver.server != nil {
		serverDomain = firstOptionValue(LookupLocal(resolver.server, dhcpmodel.OptionDomainName))
	}
	dns := ClassifyDNS(scope.DNSSettings, scope.Options.Has(dhcpmodel.OptionDomainName), serverDomain)
	record.AlwaysUpdateDNS = dns.AlwaysUpdateDNS
	record.EnableDDNS = dns.EnableDDNS
	record.EnableOption81 = dns.EnableOption81
	record.UpdateStaticLeases = dns.UpdateStaticLeases
	record.UpdateDNSOnLeaseRenewal = dns.UpdateDNSOnLeaseRenewal
	if !dns.DomainName.IsNull() {
		record.DomainName = dns.DomainName
	}
	if !dns.DDNSDomainName.IsNull() {
		record.DDNSDomainName = dns.DDNSDomainName
	}
	return record
}

// Creates the range record of the scope.
func NewRangeRecord(scope *dhcpmodel.Scope, settings Settings) *infobloxconfig.RangeRecord {
	return &infobloxconfig.RangeRecord{
		StartAddress:          scope.Range.Start,
		EndAddress:            scope.Range.End,
		ExclusionRanges:       SerializeExclusions(scope.Range.Exclusions),
		FailoverAssociation:   nullableString(settings.FailoverAssociation),
		ServerAssociationType: infobloxconfig.ServerAssociationTypeFailover,
	}
}

// Creates the fixed address record of the reservation. The DNS servers
// and the routers are taken from the reservation only.
func NewFixedAddressRecord(reservation *dhcpmodel.Reservation) *infobloxconfig.FixedAddressRecord {
	return &infobloxconfig.FixedAddressRecord{
		IPAddress:         reservation.IPAddress,
		MACAddress:        FormatHWAddress(reservation.ClientID),
		Name:              nullableString(reservation.Name),
		Comment:           nullableString(reservation.Description),
		MatchClient:       infobloxconfig.MatchClientMACAddress,
		DomainNameServers: joinOptionValue(LookupLocal(reservation, dhcpmodel.OptionDomainNameServer)),
		Routers:           joinOptionValue(LookupLocal(reservation, dhcpmodel.OptionRouter)),
	}
}
