package transform

import (
	"regexp"
	"strconv"

	log "github.com/sirupsen/logrus"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	storkutil "isc.org/dhcp2ipam/util"
)

var vlanPattern = regexp.MustCompile(`(?i)vlan\s*(\d*)`)

// Searches the text for the "vlan" token optionally followed by whitespace
// and a number. Only the first occurrence of the token is considered. It
// returns null if the token is not found, no digits follow it or the number
// does not fit in an integer.
func ExtractVLAN(text string) storkutil.Nullable[int] {
	match := vlanPattern.FindStringSubmatch(text)
	if len(match) < 2 || match[1] == "" {
		return storkutil.Nullable[int]{}
	}
	vlan, err := strconv.Atoi(match[1])
	if err != nil {
		return storkutil.Nullable[int]{}
	}
	return storkutil.NewNullableFromValue(vlan)
}

// Returns the VLAN tag of the scope. The description is evaluated after the
// name, so a number found in the description takes precedence. A
// description with the token but without a number keeps the number found
// in the name.
func extractScopeVLAN(scope *dhcpmodel.Scope, settings Settings) storkutil.Nullable[int] {
	var vlan storkutil.Nullable[int]
	if settings.ParseVLANFromName {
		vlan = ExtractVLAN(scope.Name)
	}
	if settings.ParseVLANFromDescription {
		fromDescription := ExtractVLAN(scope.Description)
		switch {
		case !fromDescription.IsNull():
			vlan = fromDescription
		case !vlan.IsNull() && vlanPattern.MatchString(scope.Description):
			log.WithFields(log.Fields{
				"scope":       scope.ID,
				"vlan":        vlan.String(),
				"description": scope.Description,
			}).Debug("Scope description mentions a VLAN without a number; keeping the VLAN parsed from the name")
		}
	}
	return vlan
}
