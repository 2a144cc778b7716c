package collector

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
)

// Result of the collection. The server hierarchy is complete except for the
// collections that could not be fetched.
type Result struct {
	Server *dhcpmodel.Server
	Errors []*RetrievalError
}

// Populates the hierarchy of a single server.
type collector struct {
	source Source
	server string
	errors []*RetrievalError
}

// Fetches the complete configuration hierarchy of the server. It checks the
// connectivity first and returns an error wrapping ErrServerUnreachable if
// the server does not respond. The failures of the individual collections
// are logged as warnings and returned in the result. The failed collections
// are empty in the hierarchy. The dynamic DNS settings default to the
// disabled updates. The context cancellation aborts the collection.
func Collect(ctx context.Context, source Source, serverName string) (*Result, error) {
	if err := CheckConnectivity(ctx, source, serverName); err != nil {
		return nil, err
	}
	return CollectReachable(ctx, source, serverName)
}

// Checks that the server responds. It returns an error wrapping
// ErrServerUnreachable otherwise.
func CheckConnectivity(ctx context.Context, source Source, serverName string) error {
	if err := source.Ping(ctx, serverName); err != nil {
		return errors.Wrapf(ErrServerUnreachable, "%s: %s", serverName, err)
	}
	return nil
}

// Fetches the configuration hierarchy of the server whose connectivity
// was already checked with CheckConnectivity. It behaves like Collect
// without the connectivity check.
func CollectReachable(ctx context.Context, source Source, serverName string) (*Result, error) {
	log.WithField("server", serverName).Info("Server is reachable; fetching the configuration")

	c := &collector{
		source: source,
		server: serverName,
	}
	server, err := c.collectServer(ctx)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"server":       serverName,
		"scopes":       len(server.Scopes),
		"reservations": server.GetReservationsCount(),
		"errors":       len(c.errors),
	}).Info("Fetched the server configuration")
	return &Result{
		Server: server,
		Errors: c.errors,
	}, nil
}

// Records the failure of a single collection.
func (c *collector) fail(collection, scope, reservation string, err error) {
	retrievalErr := NewRetrievalError(collection, c.server, scope, reservation, err)
	c.errors = append(c.errors, retrievalErr)
	fields := log.Fields{
		"server":     c.server,
		"collection": collection,
	}
	if scope != "" {
		fields["scope"] = scope
	}
	if reservation != "" {
		fields["reservation"] = reservation
	}
	log.WithFields(fields).WithError(err).Warn("Failed to fetch the collection; treating it as empty")
}

func (c *collector) collectServer(ctx context.Context) (*dhcpmodel.Server, error) {
	server := &dhcpmodel.Server{
		Name: c.server,
	}

	options, err := c.source.GetServerOptions(ctx, c.server)
	if err != nil {
		c.fail(CollectionServerOptions, "", "", err)
		options = nil
	}
	server.Options = options

	scopes, err := c.source.GetScopes(ctx, c.server)
	if err != nil {
		c.fail(CollectionScopes, "", "", err)
		scopes = nil
	}
	for _, scope := range scopes {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}
		if scope == nil {
			continue
		}
		if err := c.collectScope(ctx, scope); err != nil {
			return nil, err
		}
		server.Scopes = append(server.Scopes, scope)
	}
	return server, nil
}

func (c *collector) collectScope(ctx context.Context, scope *dhcpmodel.Scope) error {
	exclusions, err := c.source.GetExclusionRanges(ctx, c.server, scope.ID)
	if err != nil {
		c.fail(CollectionExclusionRanges, scope.ID, "", err)
		exclusions = nil
	}
	scope.Range.Exclusions = exclusions

	options, err := c.source.GetScopeOptions(ctx, c.server, scope.ID)
	if err != nil {
		c.fail(CollectionScopeOptions, scope.ID, "", err)
		options = nil
	}
	scope.Options = options

	dnsSettings, err := c.source.GetDNSSettings(ctx, c.server, scope.ID)
	switch {
	case err != nil:
		c.fail(CollectionDNSSettings, scope.ID, "", err)
		scope.DNSSettings = dhcpmodel.DNSSettings{DynamicUpdates: dhcpmodel.DNSUpdateModeDisabled}
	case dnsSettings == nil:
		scope.DNSSettings = dhcpmodel.DNSSettings{DynamicUpdates: dhcpmodel.DNSUpdateModeDisabled}
	default:
		scope.DNSSettings = *dnsSettings
	}

	reservations, err := c.source.GetReservations(ctx, c.server, scope.ID)
	if err != nil {
		c.fail(CollectionReservations, scope.ID, "", err)
		reservations = nil
	}
	scope.Reservations = nil
	for _, reservation := range reservations {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		if reservation == nil {
			continue
		}
		if reservation.ScopeID == "" {
			reservation.ScopeID = scope.ID
		}
		options, err := c.source.GetReservationOptions(ctx, c.server, scope.ID, reservation.IPAddress)
		if err != nil {
			c.fail(CollectionReservationOptions, scope.ID, reservation.IPAddress, err)
			options = nil
		}
		reservation.Options = options
		scope.Reservations = append(scope.Reservations, reservation)
	}
	return nil
}
