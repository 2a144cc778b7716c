// Package dumper produces the archival dump of a single server. The dump is
// a gzipped tarball with a flat structure. It holds the lossless server
// configuration hierarchy, the retrieval errors, the review reports, the
// rendered tables and the summary of the dump process.
package dumper

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"isc.org/dhcp2ipam/collector"
	"isc.org/dhcp2ipam/configreview"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	"isc.org/dhcp2ipam/dumper/dump"
	"isc.org/dhcp2ipam/tabular"
	"isc.org/dhcp2ipam/transform"
)

// Name of the archive file holding the server configuration hierarchy.
const ServerHierarchyFilename = "server_hierarchy.json"

// Data of a single server export put in the dump.
type Contents struct {
	Server          *dhcpmodel.Server
	RetrievalErrors []*collector.RetrievalError
	Review          *configreview.ReviewResult
	Records         *transform.Records
	// Renders the tables. The tables are not dumped if it is nil.
	TableWriter *tabular.Writer
}

// The main function of this module. It dumps the server configuration and
// the export results to the tarball archive. The failed dumps are
// omitted from the archive and marked in the summary.
func DumpServer(target io.Writer, contents *Contents) error {
	if contents == nil || contents.Server == nil {
		return errors.New("missing server configuration to dump")
	}
	// Factory will create the dump instances.
	factory := newFactory(contents)

	// Perform dump process.
	summary := executeDumps(factory.All())
	// Exclude the failed dumps. The dump summary is one of the dumps too.
	dumps := summary.GetSuccessfulDumps()

	// Saver will save the dumps to the tarball as JSON and raw binary files.
	// It uses a flat structure - the output doesn't contain subfolders.
	saver := newTarballSaver(indentJSONSerializer, flatStructureNamingConvention, summary.Timestamp)
	return saveDumps(saver, target, dumps)
}

// Dumps the server to a file. The missing parent directories are created.
// The incomplete file is removed if the dump fails.
func DumpServerToFile(path string, contents *Contents) error {
	if contents == nil || contents.Server == nil {
		return errors.New("missing server configuration to dump")
	}
	err := writeArchive(path, func(target io.Writer) error {
		return DumpServer(target, contents)
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"server": contents.Server.Name,
		"path":   path,
	}).Info("Saved the archival dump")
	return nil
}

// Creates the archive file and fills it using the write function. The file
// is removed if the function or the file closing fails.
func writeArchive(path string, write func(io.Writer) error) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "cannot create a directory for the %s archive", path)
	}
	target, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create the %s archive", path)
	}
	defer func() {
		if err == nil {
			return
		}
		_ = target.Close()
		if removeErr := os.Remove(path); removeErr != nil {
			log.WithError(removeErr).WithField("path", path).Warn("Cannot remove the incomplete archival dump")
		}
	}()

	if err = write(target); err != nil {
		return err
	}
	return errors.Wrapf(target.Close(), "cannot close the %s archive", path)
}

func saveDumps(saver saver, target io.Writer, dumps []dump.Dump) error {
	bufferWriter := bufio.NewWriter(target)
	err := saver.Save(bufferWriter, dumps)
	if err != nil {
		return errors.WithMessage(err, "cannot save the dumps")
	}

	err = bufferWriter.Flush()
	return errors.Wrap(err, "cannot flush the dump content")
}

// Naming convention rules:
//  1. Filename contains the dump name and artifact name separated by an
//     underscore.
//  2. Filename ends with the artifact extension.
//  3. Naming convention doesn't use subfolders.
//
// The names are deterministic so the archive can be searched for the
// well-known files.
func flatStructureNamingConvention(dump dump.Dump, artifact dump.Artifact) string {
	filename := fmt.Sprintf("%s_%s%s", dump.GetName(), artifact.GetName(), artifact.GetExtension())
	// Remove the insane characters.
	filename = strings.ReplaceAll(filename, "/", "?")
	filename = strings.ReplaceAll(filename, "*", "?")
	return filename
}

// Serialize Go struct to pretty indent JSON.
func indentJSONSerializer(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}
