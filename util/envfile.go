package storkutil

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Defines an interfaces that accepts the environment variables.
type EnvironmentVariableSetter interface {
	Set(key, value string) error
}

// Sets the variables in the process environment. The variables that are
// already present in the environment are left untouched, so the values
// exported in the shell take precedence over the environment file.
type ProcessEnvironmentSetter struct{}

// Implements the EnvironmentVariableSetter interface.
func (ProcessEnvironmentSetter) Set(key, value string) error {
	if _, exists := os.LookupEnv(key); exists {
		return nil
	}
	return errors.WithStack(os.Setenv(key, value))
}

// Loads all entries from the environment file into the setter object.
// The entries are passed to the setter in the alphabetical order of keys.
func LoadEnvironmentFileToSetter(path string, setter EnvironmentVariableSetter) error {
	data, err := loadEnvironmentFile(path)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		err = setter.Set(key, data[key])
		if err != nil {
			err = errors.WithMessagef(err, "cannot set value for key: '%s'", key)
			return err
		}
	}

	return nil
}

// Loads all entries from the environment file.
func loadEnvironmentFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open the '%s' environment file", path)
	}
	defer file.Close()
	return loadEnvironmentEntries(file)
}

// Loads all entries from a given reader.
func loadEnvironmentEntries(reader io.Reader) (map[string]string, error) {
	data := make(map[string]string)
	scanner := bufio.NewScanner(reader)

	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		key, value, err := loadEnvironmentLine(scanner.Text())
		if err != nil {
			return nil, errors.WithMessagef(err, "invalid line %d of environment file", lineIdx)
		}
		if key == "" {
			// Comment or blank line.
			continue
		}
		data[key] = value
	}

	return data, errors.WithStack(scanner.Err())
}

// Parses a line of the environment file.
func loadEnvironmentLine(line string) (string, string, error) {
	line = strings.TrimSpace(line)

	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", nil
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", errors.Errorf("line must contain the key and value separated by the '=' sign")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", errors.Errorf("key cannot be empty")
	}

	return key, value, nil
}
