package transform

// Settings controlling the derivation of the records. The values come from
// the command line and are identical for all scopes of a server.
type Settings struct {
	// Site name. It is copied to the network records and optionally
	// prepended to their comments.
	Site string
	// Opaque list of the target system members serving the networks.
	DHCPMembers string
	// Opaque name of the failover association serving the ranges.
	FailoverAssociation string
	// Enables the VLAN tag extraction from the scope name.
	ParseVLANFromName bool
	// Enables the VLAN tag extraction from the scope description.
	ParseVLANFromDescription bool
	// Enables prefixing the network comments with the site name.
	AddSiteToComment bool
}
