// Package collector populates the DHCP server hierarchy from a retrieval
// source. The source is queried top-down: the server options and the scopes
// first, then the per-scope collections and finally the per-reservation
// options. A failure of a single query is not fatal.
package collector

import (
	"context"

	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
)

// Interface to the DHCP service holding the configuration. Each call
// returns a single collection. The scopes returned by GetScopes carry only
// their own attributes and the range bounds; the exclusions, options, DNS
// settings and reservations are fetched separately.
type Source interface {
	// Checks that the server is reachable.
	Ping(ctx context.Context, server string) error
	// Returns the server-level options.
	GetServerOptions(ctx context.Context, server string) (dhcpmodel.Options, error)
	// Returns the scopes of the server.
	GetScopes(ctx context.Context, server string) ([]*dhcpmodel.Scope, error)
	// Returns the exclusion ranges of the scope.
	GetExclusionRanges(ctx context.Context, server, scopeID string) ([]dhcpmodel.ExclusionRange, error)
	// Returns the reservations of the scope without their options.
	GetReservations(ctx context.Context, server, scopeID string) ([]*dhcpmodel.Reservation, error)
	// Returns the scope-level options.
	GetScopeOptions(ctx context.Context, server, scopeID string) (dhcpmodel.Options, error)
	// Returns the reservation-level options.
	GetReservationOptions(ctx context.Context, server, scopeID, ipAddress string) (dhcpmodel.Options, error)
	// Returns the dynamic DNS settings of the scope.
	GetDNSSettings(ctx context.Context, server, scopeID string) (*dhcpmodel.DNSSettings, error)
}
