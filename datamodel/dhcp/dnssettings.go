package dhcpmodel

import "strings"

// Policy governing whether and when the DHCP service updates the DNS
// records on lease events.
type DNSUpdateMode string

// Dynamic DNS update modes.
const (
	DNSUpdateModeDisabled        DNSUpdateMode = "Disabled"
	DNSUpdateModeAlways          DNSUpdateMode = "Always"
	DNSUpdateModeOnClientRequest DNSUpdateMode = "OnClientRequest"
)

// Returns the canonical form of the mode. The comparison is case
// insensitive. An empty or unknown mode is treated as disabled.
func (m DNSUpdateMode) Normalize() DNSUpdateMode {
	for _, known := range []DNSUpdateMode{DNSUpdateModeAlways, DNSUpdateModeOnClientRequest} {
		if strings.EqualFold(strings.TrimSpace(string(m)), string(known)) {
			return known
		}
	}
	return DNSUpdateModeDisabled
}

// Dynamic DNS settings of a scope.
type DNSSettings struct {
	DynamicUpdates             DNSUpdateMode `json:"dynamicUpdates,omitempty"`
	DeleteDNSRROnLeaseExpiry   bool          `json:"deleteDnsRrOnLeaseExpiry"`
	UpdateDNSRRForOlderClients bool          `json:"updateDnsRrForOlderClients,omitempty"`
	NameProtection             bool          `json:"nameProtection,omitempty"`
	DisableDNSPtrRRUpdate      bool          `json:"disableDnsPtrRrUpdate,omitempty"`
}
