// Package jsonsource implements the retrieval source reading the DHCP server
// configuration from a local file. The file is a JSON document (comments
// are allowed) or a tarball produced by a previous export, so an archived
// hierarchy can be exported again.
package jsonsource

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"isc.org/dhcp2ipam/collector"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	"isc.org/dhcp2ipam/dumper"
	storkutil "isc.org/dhcp2ipam/util"
	"muzzammil.xyz/jsonc"
)

var _ collector.Source = (*Source)(nil)

// Returned when the requested server is not defined in the file.
var ErrUnknownServer = errors.New("unknown server")

// Document holding multiple servers.
type document struct {
	Servers []*dhcpmodel.Server `json:"servers"`
}

// Retrieval source serving the servers loaded from a file.
type Source struct {
	servers map[string]*dhcpmodel.Server
	// Server names in the order of appearance in the file.
	names []string
}

// Loads the servers from a file. The file is either a gzipped tarball
// containing the server hierarchy dump or a JSON document. The document
// holds a single server, an array of servers or an object with the
// "servers" array.
func NewSourceFromFile(path string) (*Source, error) {
	content, err := (&storkutil.FileManager{}).Read(path)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to read the configuration file")
	}
	if isGzip(content) {
		log.WithField("file", path).Info("Reading the server hierarchy from the dump tarball")
		content, err = storkutil.SearchFileInTarball(bytes.NewReader(content), dumper.ServerHierarchyFilename)
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to read the dump %s", path)
		}
		if content == nil {
			return nil, newIncompleteDumpError(path)
		}
	}
	source, err := NewSource(content)
	return source, errors.WithMessagef(err, "invalid configuration file %s", path)
}

// Returns the error describing the dump without the server hierarchy. It
// lists the files the dump holds.
func newIncompleteDumpError(path string) error {
	var files []string
	if content, err := (&storkutil.FileManager{}).Read(path); err == nil {
		files, _ = storkutil.ListFilesInTarball(bytes.NewReader(content))
	}
	contained := "no files"
	if len(files) > 0 {
		contained = strings.Join(files, ", ")
	}
	return errors.Errorf("dump %s lacks the %s file; it contains: %s",
		path, dumper.ServerHierarchyFilename, contained)
}

// Parses the servers from the JSON document.
func NewSource(content []byte) (*Source, error) {
	var servers []*dhcpmodel.Server
	trimmed := bytes.TrimSpace(jsonc.ToJSON(content))
	switch {
	case len(trimmed) == 0:
		return nil, errors.New("empty document")
	case trimmed[0] == '[':
		if err := jsonc.Unmarshal(content, &servers); err != nil {
			return nil, errors.Wrap(err, "failed to parse the server list")
		}
	default:
		var doc document
		if err := jsonc.Unmarshal(content, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse the document")
		}
		if doc.Servers != nil {
			servers = doc.Servers
		} else {
			var server dhcpmodel.Server
			if err := jsonc.Unmarshal(content, &server); err != nil {
				return nil, errors.Wrap(err, "failed to parse the server")
			}
			servers = []*dhcpmodel.Server{&server}
		}
	}

	source := &Source{
		servers: make(map[string]*dhcpmodel.Server),
	}
	for i, server := range servers {
		if server == nil {
			continue
		}
		name := strings.TrimSpace(server.Name)
		if name == "" {
			return nil, errors.Errorf("server at position %d has no name", i)
		}
		if _, ok := source.servers[name]; ok {
			return nil, errors.Errorf("server %s is defined twice", name)
		}
		source.servers[name] = server
		source.names = append(source.names, name)
	}
	return source, nil
}

// Returns the names of the servers in the order of appearance.
func (s *Source) GetServerNames() []string {
	return append([]string{}, s.names...)
}

func (s *Source) getServer(name string) (*dhcpmodel.Server, error) {
	server, ok := s.servers[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownServer, name)
	}
	return server, nil
}

func (s *Source) getScope(serverName, scopeID string) (*dhcpmodel.Scope, error) {
	server, err := s.getServer(serverName)
	if err != nil {
		return nil, err
	}
	for _, scope := range server.Scopes {
		if scope != nil && scope.ID == scopeID {
			return scope, nil
		}
	}
	return nil, errors.Errorf("scope %s not found on server %s", scopeID, serverName)
}

// Checks that the server is defined in the file.
func (s *Source) Ping(ctx context.Context, server string) error {
	_, err := s.getServer(server)
	return err
}

// Returns the server-level options.
func (s *Source) GetServerOptions(ctx context.Context, serverName string) (dhcpmodel.Options, error) {
	server, err := s.getServer(serverName)
	if err != nil {
		return nil, err
	}
	return server.Options, nil
}

// Returns copies of the scopes without the collections fetched separately.
func (s *Source) GetScopes(ctx context.Context, serverName string) ([]*dhcpmodel.Scope, error) {
	server, err := s.getServer(serverName)
	if err != nil {
		return nil, err
	}
	scopes := make([]*dhcpmodel.Scope, 0, len(server.Scopes))
	for _, scope := range server.Scopes {
		if scope == nil {
			continue
		}
		scopes = append(scopes, &dhcpmodel.Scope{
			ID:             scope.ID,
			SubnetMask:     scope.SubnetMask,
			Name:           scope.Name,
			Description:    scope.Description,
			State:          scope.State,
			LeaseDuration:  scope.LeaseDuration,
			SuperscopeName: scope.SuperscopeName,
			Type:           scope.Type,
			Delay:          scope.Delay,
			Range: dhcpmodel.AddressRange{
				Start: scope.Range.Start,
				End:   scope.Range.End,
			},
		})
	}
	return scopes, nil
}

// Returns the exclusion ranges of the scope.
func (s *Source) GetExclusionRanges(ctx context.Context, server, scopeID string) ([]dhcpmodel.ExclusionRange, error) {
	scope, err := s.getScope(server, scopeID)
	if err != nil {
		return nil, err
	}
	return append([]dhcpmodel.ExclusionRange{}, scope.Range.Exclusions...), nil
}

// Returns copies of the reservations without their options.
func (s *Source) GetReservations(ctx context.Context, server, scopeID string) ([]*dhcpmodel.Reservation, error) {
	scope, err := s.getScope(server, scopeID)
	if err != nil {
		return nil, err
	}
	reservations := make([]*dhcpmodel.Reservation, 0, len(scope.Reservations))
	for _, reservation := range scope.Reservations {
		if reservation == nil {
			continue
		}
		copied := *reservation
		copied.Options = nil
		reservations = append(reservations, &copied)
	}
	return reservations, nil
}

// Returns the scope-level options.
func (s *Source) GetScopeOptions(ctx context.Context, server, scopeID string) (dhcpmodel.Options, error) {
	scope, err := s.getScope(server, scopeID)
	if err != nil {
		return nil, err
	}
	return scope.Options, nil
}

// Returns the options of the reservation with the given address.
func (s *Source) GetReservationOptions(ctx context.Context, server, scopeID, ipAddress string) (dhcpmodel.Options, error) {
	scope, err := s.getScope(server, scopeID)
	if err != nil {
		return nil, err
	}
	for _, reservation := range scope.Reservations {
		if reservation != nil && reservation.IPAddress == ipAddress {
			return reservation.Options, nil
		}
	}
	return nil, errors.Errorf("reservation %s not found in scope %s", ipAddress, scopeID)
}

// Returns the dynamic DNS settings of the scope.
func (s *Source) GetDNSSettings(ctx context.Context, server, scopeID string) (*dhcpmodel.DNSSettings, error) {
	scope, err := s.getScope(server, scopeID)
	if err != nil {
		return nil, err
	}
	settings := scope.DNSSettings
	return &settings, nil
}

// Checks the gzip magic number.
func isGzip(content []byte) bool {
	return len(content) >= 2 && content[0] == 0x1f && content[1] == 0x8b
}
