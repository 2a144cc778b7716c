package storkutil

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// Helper object to creating the tarball (TAR archive compressed with gzip).
// It allows to append a binary content. It doesn't support subfolders.
// The owner is responsible for call the close method.
type TarballWriter struct {
	gzipWriter *gzip.Writer
	tarWriter  *tar.Writer
}

// Constructs a new tarball wrapper instance. It accepts a writer where it will
// pass the tarball bytes.
func NewTarballWriter(target io.Writer) *TarballWriter {
	if target == nil {
		return nil
	}
	gzipWriter := gzip.NewWriter(target)
	tarWriter := tar.NewWriter(gzipWriter)
	return &TarballWriter{
		gzipWriter: gzipWriter,
		tarWriter:  tarWriter,
	}
}

// Add a binary content to the tarball. The path is a location inside the tarball,
// content is binary data, modTime is modification time related to the content.
func (t *TarballWriter) AddContent(path string, content []byte, modTime time.Time) error {
	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     path,
		Size:     int64(len(content)),
		ModTime:  modTime,
		Mode:     0o444,
	}

	err := t.tarWriter.WriteHeader(header)
	if err != nil {
		return pkgerrors.Wrap(err, "could not write header to TAR archive")
	}

	_, err = io.Copy(t.tarWriter, bytes.NewReader(content))
	return pkgerrors.Wrapf(err, "could not add the %s file to TAR archive", path)
}

// Close the internal writers. The TAR writer must be closed before the
// gzip writer to flush the TAR footer.
func (t *TarballWriter) Close() error {
	tarErr := t.tarWriter.Close()
	gzipErr := t.gzipWriter.Close()
	if tarErr != nil {
		return pkgerrors.Wrap(tarErr, "could not close the TAR archive")
	}
	return pkgerrors.Wrap(gzipErr, "could not close the gzip stream")
}

// Callback that accepts the TAR header of a file/directory/link,
// and a read content function - it returns a binary content or error.
// Callback must return the flag indicating to need to continue walking
// (true - continue, false - stop).
type WalkCallback = func(header *tar.Header, read func() ([]byte, error)) bool

// General purpose walk function. It unpacks the Tarball and calls the
// callback with each entry one-by-one.
func WalkFilesInTarball(tarball io.Reader, callback WalkCallback) error {
	gzipReader, err := gzip.NewReader(tarball)
	if err != nil {
		return pkgerrors.Wrap(err, "invalid tarball")
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return pkgerrors.Wrap(err, "problem reading next header")
		}

		read := func() ([]byte, error) {
			return nil, pkgerrors.New("reading unsupported")
		}
		if header.Typeflag == tar.TypeReg {
			read = func() ([]byte, error) {
				data, err := io.ReadAll(tarReader)
				return data, pkgerrors.Wrapf(err,
					"cannot read content of the tarball file (%s)",
					header.Name,
				)
			}
		}
		if !callback(header, read) {
			return nil
		}
	}

	return nil
}

// List the files inside the tarball.
func ListFilesInTarball(tarball io.Reader) ([]string, error) {
	result := make([]string, 0)

	err := WalkFilesInTarball(tarball,
		func(header *tar.Header, read func() ([]byte, error)) bool {
			if header.Typeflag == tar.TypeReg {
				result = append(result, header.Name)
			}
			return true
		})
	return result, err
}

// Search for a specific file in the tarball.
// If the file is found returns its binary content.
// If file doesn't exist in the tarball returns nil content and no error.
// Returns error if the tarball is unavailable or any reading problem occurs.
func SearchFileInTarball(tarball io.Reader, filename string) ([]byte, error) {
	var result []byte
	var readErr error

	err := WalkFilesInTarball(tarball,
		func(header *tar.Header, read func() ([]byte, error)) bool {
			if header.Typeflag != tar.TypeReg {
				return true
			}
			if header.Name == filename {
				result, readErr = read()
				return false
			}
			return true
		},
	)
	if err != nil {
		return nil, err
	}

	return result, readErr
}
