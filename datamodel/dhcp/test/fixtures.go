// Package dhcptest provides DHCP server hierarchies used in unit tests.
package dhcptest

import dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"

// Creates an option with a scalar value.
func NewScalarOption(id int, value string) *dhcpmodel.Option {
	return &dhcpmodel.Option{
		ID:    id,
		Value: dhcpmodel.NewScalarOptionValue(value),
	}
}

// Creates an option with a sequence of values.
func NewListOption(id int, values ...string) *dhcpmodel.Option {
	return &dhcpmodel.Option{
		ID:    id,
		Value: dhcpmodel.NewOptionValueList(values...),
	}
}

// Returns a server with two scopes. The first scope overrides some of the
// server-level options, has exclusions and two reservations. The second
// scope is inactive and relies on the server-level options only.
func NewServer() *dhcpmodel.Server {
	return &dhcpmodel.Server{
		Name: "dhcp1.example.org",
		Options: dhcpmodel.NewOptions(
			NewListOption(dhcpmodel.OptionRouter, "10.0.0.1"),
			NewListOption(dhcpmodel.OptionDomainNameServer, "10.0.0.53", "10.0.0.54"),
			NewScalarOption(dhcpmodel.OptionDomainName, "example.org"),
			NewScalarOption(dhcpmodel.OptionVendorSpecific, "01:04:c0:00:02:01"),
			NewScalarOption(dhcpmodel.OptionTFTPServerName, "tftp.example.org"),
			NewScalarOption(dhcpmodel.OptionBootfileName, "pxelinux.0"),
		),
		Scopes: []*dhcpmodel.Scope{
			{
				ID:            "192.0.2.0",
				SubnetMask:    "255.255.255.0",
				Name:          "Engineering VLAN 42",
				Description:   "uses VLAN99 internally",
				State:         dhcpmodel.ScopeStateActive,
				LeaseDuration: 86400,
				Range: dhcpmodel.AddressRange{
					Start: "192.0.2.10",
					End:   "192.0.2.200",
					Exclusions: []dhcpmodel.ExclusionRange{
						{Start: "192.0.2.10", End: "192.0.2.20"},
						{Start: "192.0.2.30", End: "192.0.2.40"},
					},
				},
				Options: dhcpmodel.NewOptions(
					NewListOption(dhcpmodel.OptionRouter, "192.0.2.1", "192.0.2.2"),
					NewScalarOption(dhcpmodel.OptionDomainName, "eng.example.org"),
				),
				DNSSettings: dhcpmodel.DNSSettings{
					DynamicUpdates:           dhcpmodel.DNSUpdateModeAlways,
					DeleteDNSRROnLeaseExpiry: true,
				},
				Reservations: []*dhcpmodel.Reservation{
					{
						IPAddress:    "192.0.2.50",
						ScopeID:      "192.0.2.0",
						ClientID:     "00-11-22-33-44-55",
						Name:         "printer",
						Description:  "2nd floor printer",
						AddressState: "Active",
						Options: dhcpmodel.NewOptions(
							NewListOption(dhcpmodel.OptionRouter, "192.0.2.254"),
							NewListOption(dhcpmodel.OptionDomainNameServer, "192.0.2.53"),
						),
					},
					{
						IPAddress:    "192.0.2.51",
						ScopeID:      "192.0.2.0",
						ClientID:     "aa-bb-cc-dd-ee-ff",
						Name:         "camera",
						AddressState: "Active",
					},
				},
			},
			{
				ID:            "198.51.100.0",
				SubnetMask:    "255.255.255.128",
				Name:          "Guests",
				State:         dhcpmodel.ScopeStateInactive,
				LeaseDuration: 3600,
				Range: dhcpmodel.AddressRange{
					Start: "198.51.100.10",
					End:   "198.51.100.100",
				},
				DNSSettings: dhcpmodel.DNSSettings{
					DynamicUpdates: dhcpmodel.DNSUpdateModeOnClientRequest,
				},
			},
		},
	}
}
