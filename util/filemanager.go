package storkutil

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Writes the output files. The missing parent directories are created.
type FileManager struct{}

func (*FileManager) isExist(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, errors.Wrapf(err, "cannot stat the file: %s", path)
	}
}

func (fm *FileManager) createDirectoryTree(path string) error {
	directory := filepath.Dir(path)
	ok, err := fm.isExist(directory)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return errors.Wrapf(err, "cannot create a directory tree: %s", directory)
	}
	return nil
}

// Reads the whole file.
func (*FileManager) Read(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read the file: %s", path)
	}
	return content, nil
}

// Writes the content to the file replacing its previous content.
func (fm *FileManager) Write(path string, content []byte) error {
	if err := fm.createDirectoryTree(path); err != nil {
		return err
	}

	err := os.WriteFile(path, content, 0o644)
	if err != nil {
		return errors.Wrapf(err, "cannot write the file: %s", path)
	}
	return nil
}
