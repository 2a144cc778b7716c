package transform

import (
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	storkutil "isc.org/dhcp2ipam/util"
)

// Dynamic DNS flags and inherited domain names of a network record.
type DNSClassification struct {
	AlwaysUpdateDNS         storkutil.Nullable[bool]
	EnableDDNS              storkutil.Nullable[bool]
	EnableOption81          storkutil.Nullable[bool]
	UpdateStaticLeases      storkutil.Nullable[bool]
	UpdateDNSOnLeaseRenewal storkutil.Nullable[bool]
	// The domain names are set only when they are inherited from the
	// server. Otherwise, they are null and the scope-local value applies.
	DDNSDomainName storkutil.Nullable[string]
	DomainName     storkutil.Nullable[string]
}

// Classifies the dynamic DNS settings of a scope. When the dynamic updates
// are enabled and the scope lacks the domain name option, the server domain
// name is inherited. The flags remain null when the updates are disabled.
func ClassifyDNS(settings dhcpmodel.DNSSettings, scopeHasDomainOption bool, serverDomain storkutil.Nullable[string]) DNSClassification {
	var classification DNSClassification
	if settings.DeleteDNSRROnLeaseExpiry {
		classification.UpdateDNSOnLeaseRenewal = storkutil.NewNullableFromValue(true)
	}

	switch settings.DynamicUpdates.Normalize() {
	case dhcpmodel.DNSUpdateModeAlways:
		classification.AlwaysUpdateDNS = storkutil.NewNullableFromValue(true)
		classification.EnableDDNS = storkutil.NewNullableFromValue(true)
		classification.EnableOption81 = storkutil.NewNullableFromValue(true)
		classification.UpdateStaticLeases = storkutil.NewNullableFromValue(true)
	case dhcpmodel.DNSUpdateModeOnClientRequest:
		classification.AlwaysUpdateDNS = storkutil.NewNullableFromValue(false)
		classification.EnableDDNS = storkutil.NewNullableFromValue(true)
		classification.EnableOption81 = storkutil.NewNullableFromValue(true)
	default:
		return classification
	}

	if !scopeHasDomainOption {
		classification.DDNSDomainName = serverDomain
		classification.DomainName = serverDomain
	}
	return classification
}
