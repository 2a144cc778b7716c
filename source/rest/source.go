package restsource

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"isc.org/dhcp2ipam/collector"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
)

var _ collector.Source = (*Source)(nil)

// Retrieval source fetching the configuration from the REST API.
type Source struct {
	client *client
}

// Creates the source sending the requests to the gateway with a given URL.
func NewSource(baseURL, apiKey string) *Source {
	return &Source{
		client: newClient(baseURL, apiKey),
	}
}

// Sets custom timeout for the requests.
func (s *Source) SetRequestTimeout(timeout time.Duration) {
	s.client.innerClient.SetTimeout(timeout)
}

// Checks that the gateway responds and that it reaches the DHCP server.
// The gateway reports an unknown or unreachable server with an error
// status.
func (s *Source) Ping(ctx context.Context, server string) error {
	log.WithFields(log.Fields{
		"url":    s.client.baseURL,
		"server": server,
	}).Debug("Checking the REST API connectivity")
	if err := s.client.getJSON(ctx, nil, "ping"); err != nil {
		return errors.WithMessage(err, "gateway is unreachable")
	}
	return errors.WithMessagef(s.client.getJSON(ctx, nil, "servers", server, "ping"),
		"server %s is unreachable through the gateway", server)
}

// Fetches the server-level options.
func (s *Source) GetServerOptions(ctx context.Context, server string) (dhcpmodel.Options, error) {
	var options dhcpmodel.Options
	err := s.client.getJSON(ctx, &options, "servers", server, "options")
	return options, err
}

// Fetches the scopes of the server.
func (s *Source) GetScopes(ctx context.Context, server string) ([]*dhcpmodel.Scope, error) {
	var scopes []*dhcpmodel.Scope
	err := s.client.getJSON(ctx, &scopes, "servers", server, "scopes")
	return scopes, err
}

// Fetches the exclusion ranges of the scope.
func (s *Source) GetExclusionRanges(ctx context.Context, server, scopeID string) ([]dhcpmodel.ExclusionRange, error) {
	var exclusions []dhcpmodel.ExclusionRange
	err := s.client.getJSON(ctx, &exclusions, "servers", server, "scopes", scopeID, "exclusions")
	return exclusions, err
}

// Fetches the reservations of the scope.
func (s *Source) GetReservations(ctx context.Context, server, scopeID string) ([]*dhcpmodel.Reservation, error) {
	var reservations []*dhcpmodel.Reservation
	err := s.client.getJSON(ctx, &reservations, "servers", server, "scopes", scopeID, "reservations")
	return reservations, err
}

// Fetches the scope-level options.
func (s *Source) GetScopeOptions(ctx context.Context, server, scopeID string) (dhcpmodel.Options, error) {
	var options dhcpmodel.Options
	err := s.client.getJSON(ctx, &options, "servers", server, "scopes", scopeID, "options")
	return options, err
}

// Fetches the options of the reservation.
func (s *Source) GetReservationOptions(ctx context.Context, server, scopeID, ipAddress string) (dhcpmodel.Options, error) {
	var options dhcpmodel.Options
	err := s.client.getJSON(ctx, &options, "servers", server, "scopes", scopeID, "reservations", ipAddress, "options")
	return options, err
}

// Fetches the dynamic DNS settings of the scope.
func (s *Source) GetDNSSettings(ctx context.Context, server, scopeID string) (*dhcpmodel.DNSSettings, error) {
	settings := &dhcpmodel.DNSSettings{}
	if err := s.client.getJSON(ctx, settings, "servers", server, "scopes", scopeID, "dns-settings"); err != nil {
		return nil, err
	}
	return settings, nil
}
