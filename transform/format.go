package transform

import (
	"fmt"
	"strings"

	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	storkutil "isc.org/dhcp2ipam/util"
)

// Serializes the exclusion ranges as a comma-separated list of
// "start-end" pairs. It returns null if there are no exclusions.
func SerializeExclusions(exclusions []dhcpmodel.ExclusionRange) storkutil.Nullable[string] {
	if len(exclusions) == 0 {
		return storkutil.Nullable[string]{}
	}
	serialized := make([]string, 0, len(exclusions))
	for _, exclusion := range exclusions {
		serialized = append(serialized, fmt.Sprintf("%s-%s", exclusion.Start, exclusion.End))
	}
	return storkutil.NewNullableFromValue(strings.Join(serialized, listSeparator))
}

// Converts the hyphen-separated hardware address to the colon-separated
// form. It returns null for an empty address.
func FormatHWAddress(clientID string) storkutil.Nullable[string] {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return storkutil.Nullable[string]{}
	}
	return storkutil.NewNullableFromValue(strings.ReplaceAll(clientID, "-", ":"))
}

// Returns true for the inactive scopes and false for the active ones. It
// returns null for an unknown state.
func isScopeDisabled(state dhcpmodel.ScopeState) storkutil.Nullable[bool] {
	switch state.Normalize() {
	case dhcpmodel.ScopeStateActive:
		return storkutil.NewNullableFromValue(false)
	case dhcpmodel.ScopeStateInactive:
		return storkutil.NewNullableFromValue(true)
	default:
		return storkutil.Nullable[bool]{}
	}
}

// Returns the lease duration in seconds. The missing duration, reported as
// zero by the sources, is null.
func formatLeaseTime(duration int64) storkutil.Nullable[int64] {
	if duration <= 0 {
		return storkutil.Nullable[int64]{}
	}
	return storkutil.NewNullableFromValue(duration)
}
