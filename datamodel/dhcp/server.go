package dhcpmodel

// A DHCP server with its full configuration hierarchy. It is populated once
// by a retrieval collaborator and is read-only afterwards.
type Server struct {
	// Host name or address identifying the server. It is also used to
	// name the output files.
	Name    string   `json:"name"`
	Options Options  `json:"options,omitempty"`
	Scopes  []*Scope `json:"scopes,omitempty"`
}

var _ DHCPOptionAccessor = (*Server)(nil)

// Returns the server-level options.
func (s *Server) GetDHCPOptions() Options {
	if s == nil {
		return nil
	}
	return s.Options
}

// Returns the total number of reservations in all scopes.
func (s *Server) GetReservationsCount() int {
	count := 0
	for _, scope := range s.Scopes {
		if scope != nil {
			count += len(scope.Reservations)
		}
	}
	return count
}
