package transform

import (
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	storkutil "isc.org/dhcp2ipam/util"
)

// Separator of the multi-valued options rendered in a single cell.
const listSeparator = ","

// Looks up the well-known options in the server hierarchy.
type OptionResolver struct {
	server *dhcpmodel.Server
}

// Creates the resolver for the given server. The server may be nil, in
// which case the resolver never falls back to the server level.
func NewOptionResolver(server *dhcpmodel.Server) *OptionResolver {
	return &OptionResolver{
		server: server,
	}
}

// Returns the option with the given identifier. The reservation and the
// scope may be nil. The reservation-local options take precedence over the
// scope-local options, which take precedence over the server options.
func (r *OptionResolver) Resolve(id int, scope *dhcpmodel.Scope, reservation *dhcpmodel.Reservation) (*dhcpmodel.Option, bool) {
	var levels []dhcpmodel.DHCPOptionAccessor
	if reservation != nil {
		levels = append(levels, reservation)
	}
	if scope != nil {
		levels = append(levels, scope)
	}
	if r.server != nil {
		levels = append(levels, r.server)
	}
	for _, level := range levels {
		if option, ok := LookupLocal(level, id); ok {
			return option, true
		}
	}
	return nil, false
}

// Returns the option configured directly for the entity without any
// fallback.
func LookupLocal(owner dhcpmodel.DHCPOptionAccessor, id int) (*dhcpmodel.Option, bool) {
	if owner == nil {
		return nil, false
	}
	return owner.GetDHCPOptions().Get(id)
}

// Renders all option values as a comma-separated list. It returns null
// if the option was not found or has no values.
func joinOptionValue(option *dhcpmodel.Option, found bool) storkutil.Nullable[string] {
	if !found || option == nil || option.Value.IsEmpty() {
		return storkutil.Nullable[string]{}
	}
	return storkutil.NewNullableFromValue(option.Value.Join(listSeparator))
}

// Renders the first option value. It returns null if the option was not
// found or has no values.
func firstOptionValue(option *dhcpmodel.Option, found bool) storkutil.Nullable[string] {
	if !found || option == nil {
		return storkutil.Nullable[string]{}
	}
	value, ok := option.Value.First()
	if !ok {
		return storkutil.Nullable[string]{}
	}
	return storkutil.NewNullableFromValue(value)
}

// Returns null for an empty string.
func nullableString(value string) storkutil.Nullable[string] {
	if value == "" {
		return storkutil.Nullable[string]{}
	}
	return storkutil.NewNullableFromValue(value)
}
