package storkutil

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Name of the environment variable selecting the logging level.
const LogLevelEnvironmentVariable = "DHCP2IPAM_LOG_LEVEL"

func UTCNow() time.Time {
	return time.Now().UTC()
}

// Converts the logging level name (DEBUG, INFO, WARN, ERROR) to the logrus
// level. The name is case insensitive. The INFO level is returned for an
// empty or unknown name and the second value is false in the latter case.
func ParseLogLevel(name string) (log.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "":
		return log.InfoLevel, true
	case "DEBUG":
		return log.DebugLevel, true
	case "INFO":
		return log.InfoLevel, true
	case "WARN", "WARNING":
		return log.WarnLevel, true
	case "ERROR":
		return log.ErrorLevel, true
	default:
		return log.InfoLevel, false
	}
}

func SetupLogging() {
	level, ok := ParseLogLevel(os.Getenv(LogLevelEnvironmentVariable))
	log.SetLevel(level)
	log.SetOutput(os.Stdout)
	log.SetReportCaller(true)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			// Grab filename and line of current frame and add it to log entry
			_, filename := path.Split(f.File)
			return "", fmt.Sprintf("%20v:%-5d", filename, f.Line)
		},
	})
	if !ok {
		log.WithField("level", os.Getenv(LogLevelEnvironmentVariable)).
			Warnf("Unknown logging level specified in %s; using INFO", LogLevelEnvironmentVariable)
	}
}

// Returns the first non-blank string from the arguments or an empty string
// if all of them are blank.
func FirstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
