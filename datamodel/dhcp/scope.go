package dhcpmodel

import "strings"

// Operational state of a scope.
type ScopeState string

// Scope states reported by the DHCP service.
const (
	ScopeStateActive   ScopeState = "Active"
	ScopeStateInactive ScopeState = "Inactive"
)

// Returns the canonical form of the state. The comparison is case
// insensitive. The unknown states are returned unchanged.
func (s ScopeState) Normalize() ScopeState {
	switch {
	case strings.EqualFold(string(s), string(ScopeStateActive)):
		return ScopeStateActive
	case strings.EqualFold(string(s), string(ScopeStateInactive)):
		return ScopeStateInactive
	default:
		return s
	}
}

// Address range excluded from the dynamic assignment.
type ExclusionRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Address range of a scope with its exclusions.
type AddressRange struct {
	Start      string           `json:"start"`
	End        string           `json:"end"`
	Exclusions []ExclusionRange `json:"exclusions,omitempty"`
}

// A contiguous address range managed by the DHCP service.
type Scope struct {
	// Network address identifying the scope, e.g. 192.0.2.0.
	ID             string         `json:"scopeId"`
	SubnetMask     string         `json:"subnetMask"`
	Name           string         `json:"name,omitempty"`
	Description    string         `json:"description,omitempty"`
	State          ScopeState     `json:"state,omitempty"`
	LeaseDuration  int64          `json:"leaseDurationSeconds"`
	SuperscopeName string         `json:"superscopeName,omitempty"`
	Type           string         `json:"type,omitempty"`
	Delay          int64          `json:"delayMilliseconds,omitempty"`
	Range          AddressRange   `json:"range"`
	Options        Options        `json:"options,omitempty"`
	DNSSettings    DNSSettings    `json:"dnsSettings"`
	Reservations   []*Reservation `json:"reservations,omitempty"`
}

var _ DHCPOptionAccessor = (*Scope)(nil)

// Returns the options configured directly for the scope.
func (s *Scope) GetDHCPOptions() Options {
	if s == nil {
		return nil
	}
	return s.Options
}
