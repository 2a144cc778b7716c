package dhcpmodel

// A fixed binding of a hardware identifier to an address within a scope.
type Reservation struct {
	IPAddress string `json:"ipAddress"`
	ScopeID   string `json:"scopeId,omitempty"`
	// Hardware (MAC) address in the hyphen-separated form, e.g.
	// 00-11-22-33-44-55.
	ClientID     string  `json:"clientId"`
	Name         string  `json:"name,omitempty"`
	Description  string  `json:"description,omitempty"`
	AddressState string  `json:"addressState,omitempty"`
	Type         string  `json:"type,omitempty"`
	Options      Options `json:"options,omitempty"`
}

var _ DHCPOptionAccessor = (*Reservation)(nil)

// Returns the options configured directly for the reservation.
func (r *Reservation) GetDHCPOptions() Options {
	if r == nil {
		return nil
	}
	return r.Options
}
