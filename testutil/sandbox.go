package testutil

import (
	"os"
	"path"

	log "github.com/sirupsen/logrus"
)

// Sandbox is an object that creates a sandbox for the files and directories
// produced by the tests, e.g., the exported tables and dumps. Each created
// sandbox has its own, unique directory so two sandboxes never interfere.
type Sandbox struct {
	BasePath string
}

// Create a new sandbox. The sandbox is located in a temporary
// directory.
func NewSandbox() *Sandbox {
	dir, err := os.MkdirTemp("", "dhcp2ipam_ut_*")
	if err != nil {
		log.Fatal(err)
	}
	return &Sandbox{
		BasePath: dir,
	}
}

// Close sandbox and remove all its contents.
func (sb *Sandbox) Close() {
	os.RemoveAll(sb.BasePath)
}

// Returns a full path to the file or directory in the sandbox. It doesn't
// create anything.
func (sb *Sandbox) Path(name string) string {
	return path.Join(sb.BasePath, name)
}

// Create indicated directory in sandbox and all parent directories
// and return a full path.
func (sb *Sandbox) JoinDir(name string) (string, error) {
	dirPath := sb.Path(name)
	err := os.MkdirAll(dirPath, 0o777)
	if err != nil {
		return "", err
	}
	return dirPath, nil
}

// Create a file with the provided content. The missing parent directories
// are created. Returns a full path to the file.
func (sb *Sandbox) Write(name string, content string) (string, error) {
	filePath := sb.Path(name)
	if err := os.MkdirAll(path.Dir(filePath), 0o777); err != nil {
		return "", err
	}
	if err := os.WriteFile(filePath, []byte(content), 0o600); err != nil {
		return "", err
	}
	return filePath, nil
}

// Reads the file from the sandbox.
func (sb *Sandbox) Read(name string) ([]byte, error) {
	return os.ReadFile(sb.Path(name))
}
