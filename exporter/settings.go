package exporter

import (
	"github.com/pkg/errors"
	"isc.org/dhcp2ipam/tabular"
	"isc.org/dhcp2ipam/transform"
)

// Settings of the export run.
type Settings struct {
	// Directory where the tables and the dumps are written.
	OutputDirectory string
	// Settings of the record derivation.
	Transform transform.Settings
	// Cell delimiter of the tables.
	Delimiter rune
	// Character encoding of the tables.
	Encoding tabular.Encoding
	// Disables the archival dumps.
	NoArchive bool
	// Path of the file the metrics are written to. The metrics are not
	// written if it is empty.
	MetricsFile string
	// Names of the review checkers to disable.
	DisabledCheckers []string
}

// Returns the default settings.
func NewSettings() *Settings {
	return &Settings{
		OutputDirectory: ".",
		Delimiter:       tabular.DefaultDelimiter,
		Encoding:        tabular.EncodingUTF8,
	}
}

// Checks the settings consistency.
func (s *Settings) Validate() error {
	if s.OutputDirectory == "" {
		return errors.New("output directory must not be empty")
	}
	if s.Delimiter == 0 {
		return errors.New("delimiter must be specified")
	}
	if _, err := tabular.ParseEncoding(string(s.Encoding)); err != nil {
		return err
	}
	return nil
}
