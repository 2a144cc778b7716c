// Package tabular renders the flat records to the delimited files accepted
// by the import tool of the target system. Each file starts with a header
// row listing the schema columns followed by one row per record.
package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	infobloxconfig "isc.org/dhcp2ipam/appcfg/infoblox"
	storkutil "isc.org/dhcp2ipam/util"
)

// Character encoding of the output files.
type Encoding string

// Supported output encodings.
const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-bom"
	EncodingUTF16LE Encoding = "utf-16le"
)

// Default cell delimiter.
const DefaultDelimiter = ','

// Returns the encoding with a given name. The name is case-insensitive.
func ParseEncoding(name string) (Encoding, error) {
	switch encoding := Encoding(strings.ToLower(strings.TrimSpace(name))); encoding {
	case EncodingUTF8, EncodingUTF8BOM, EncodingUTF16LE:
		return encoding, nil
	case "":
		return EncodingUTF8, nil
	default:
		return "", errors.Errorf("unsupported output encoding: %s", name)
	}
}

// Returns the delimiter given as a single character string. An empty
// string selects the default delimiter.
func ParseDelimiter(delimiter string) (rune, error) {
	if delimiter == "" {
		return DefaultDelimiter, nil
	}
	if delimiter == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(delimiter)
	if size != len(delimiter) || r == utf8.RuneError {
		return 0, errors.Errorf("delimiter must be a single character: %q", delimiter)
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, errors.Errorf("invalid delimiter: %q", delimiter)
	}
	return r, nil
}

// Writes the records of a single schema as delimited text.
type Writer struct {
	delimiter   rune
	encoding    Encoding
	fileManager *storkutil.FileManager
}

// Constructs the writer using a given cell delimiter and output encoding.
func NewWriter(delimiter rune, encoding Encoding) *Writer {
	return &Writer{
		delimiter:   delimiter,
		encoding:    encoding,
		fileManager: &storkutil.FileManager{},
	}
}

// Wraps the target writer with the encoder of the output encoding.
func (w *Writer) encode(target io.Writer) (io.WriteCloser, error) {
	switch w.encoding {
	case EncodingUTF8, "":
		return nopCloser{target}, nil
	case EncodingUTF8BOM:
		return transform.NewWriter(target, unicode.UTF8BOM.NewEncoder()), nil
	case EncodingUTF16LE:
		return transform.NewWriter(target, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()), nil
	default:
		return nil, errors.Errorf("unsupported output encoding: %s", w.encoding)
	}
}

// Writes the header and the records to the target. All records must
// belong to the schema.
func (w *Writer) Write(target io.Writer, schema infobloxconfig.Schema, records []infobloxconfig.Record) error {
	columns := infobloxconfig.GetColumns(schema)
	if columns == nil {
		return errors.Errorf("unknown record schema: %s", schema)
	}

	encoder, err := w.encode(target)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(encoder)
	writer.Comma = w.delimiter
	// The import tool expects the Windows line endings.
	writer.UseCRLF = true

	if err = writer.Write(columns); err != nil {
		return errors.Wrapf(err, "cannot write the header of the %s table", schema)
	}
	for i, record := range records {
		if record.GetSchema() != schema {
			return errors.Errorf("record %d has schema %s instead of %s", i, record.GetSchema(), schema)
		}
		row := make([]string, 0, len(columns))
		record.GetFields().ForEach(func(column, value string) bool {
			row = append(row, value)
			return true
		})
		if len(row) != len(columns) {
			return errors.Errorf("record %d has %d fields instead of %d", i, len(row), len(columns))
		}
		if err = writer.Write(row); err != nil {
			return errors.Wrapf(err, "cannot write the record %d of the %s table", i, schema)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return errors.Wrapf(err, "cannot flush the %s table", schema)
	}
	return errors.Wrapf(encoder.Close(), "cannot encode the %s table", schema)
}

// Renders the table to a byte slice.
func (w *Writer) Render(schema infobloxconfig.Schema, records []infobloxconfig.Record) ([]byte, error) {
	var buffer bytes.Buffer
	if err := w.Write(&buffer, schema, records); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Renders the table and saves it in a file. The missing parent
// directories are created.
func (w *Writer) WriteFile(path string, schema infobloxconfig.Schema, records []infobloxconfig.Record) error {
	content, err := w.Render(schema, records)
	if err != nil {
		return err
	}
	return errors.WithMessagef(w.fileManager.Write(path, content), "cannot save the %s table", schema)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
