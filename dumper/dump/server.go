package dump

import (
	"github.com/pkg/errors"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
)

// Dumps the complete configuration hierarchy of the server. The dump is
// lossless and can be loaded back by the JSON file source.
type ServerHierarchyDump struct {
	BasicDump
	server *dhcpmodel.Server
}

// Constructs the server hierarchy dump.
func NewServerHierarchyDump(server *dhcpmodel.Server) *ServerHierarchyDump {
	return &ServerHierarchyDump{
		*NewBasicDump("server"),
		server,
	}
}

// Appends the server hierarchy as the struct artifact.
func (d *ServerHierarchyDump) Execute() error {
	if d.server == nil {
		return errors.New("missing server configuration")
	}
	d.AppendArtifact(NewBasicStructArtifact("hierarchy", d.server))
	return nil
}
