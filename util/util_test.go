package storkutil

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"isc.org/dhcp2ipam/testutil"
)

// Test that the logging level names are converted to the logrus levels.
func TestParseLogLevel(t *testing.T) {
	level, ok := ParseLogLevel("debug")
	require.True(t, ok)
	require.Equal(t, log.DebugLevel, level)

	level, ok = ParseLogLevel("INFO")
	require.True(t, ok)
	require.Equal(t, log.InfoLevel, level)

	level, ok = ParseLogLevel(" Warn ")
	require.True(t, ok)
	require.Equal(t, log.WarnLevel, level)

	level, ok = ParseLogLevel("ERROR")
	require.True(t, ok)
	require.Equal(t, log.ErrorLevel, level)

	level, ok = ParseLogLevel("")
	require.True(t, ok)
	require.Equal(t, log.InfoLevel, level)

	level, ok = ParseLogLevel("verbose")
	require.False(t, ok)
	require.Equal(t, log.InfoLevel, level)
}

// Test that the logging level is taken from the environment variable.
func TestSetupLoggingLevelFromEnvironment(t *testing.T) {
	// Arrange
	restore := testutil.CreateEnvironmentRestorePoint()
	defer restore()
	defer log.SetLevel(log.InfoLevel)
	os.Setenv(LogLevelEnvironmentVariable, "ERROR")

	// Act
	SetupLogging()

	// Assert
	require.Equal(t, log.ErrorLevel, log.GetLevel())
}

// Test selecting the first non-blank string.
func TestFirstNonBlank(t *testing.T) {
	require.Equal(t, "foo", FirstNonBlank("", "  ", "foo", "bar"))
	require.Equal(t, "bar", FirstNonBlank("bar"))
	require.Empty(t, FirstNonBlank("", " "))
	require.Empty(t, FirstNonBlank())
}
