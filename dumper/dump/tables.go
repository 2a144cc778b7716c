package dump

import (
	"github.com/pkg/errors"
	infobloxconfig "isc.org/dhcp2ipam/appcfg/infoblox"
	"isc.org/dhcp2ipam/tabular"
	"isc.org/dhcp2ipam/transform"
)

// Dumps the rendered record tables. Each table is a binary artifact
// identical to the exported file.
type TablesDump struct {
	BasicDump
	records *transform.Records
	writer  *tabular.Writer
}

// Constructs the tables dump.
func NewTablesDump(records *transform.Records, writer *tabular.Writer) *TablesDump {
	return &TablesDump{
		*NewBasicDump("tables"),
		records,
		writer,
	}
}

// Renders the tables of all schemas.
func (d *TablesDump) Execute() error {
	if d.records == nil {
		return errors.New("missing records")
	}
	for _, schema := range infobloxconfig.GetSchemas() {
		content, err := d.writer.Render(schema, d.records.GetRecords(schema))
		if err != nil {
			return err
		}
		d.AppendArtifact(NewBasicBinaryArtifact(schema.GetTableName(), ".csv", content))
	}
	return nil
}
