package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"isc.org/dhcp2ipam"
	"isc.org/dhcp2ipam/collector"
	"isc.org/dhcp2ipam/exporter"
	jsonsource "isc.org/dhcp2ipam/source/jsonfile"
	restsource "isc.org/dhcp2ipam/source/rest"
	"isc.org/dhcp2ipam/tabular"
	storkutil "isc.org/dhcp2ipam/util"
)

// Supported retrieval sources.
const (
	sourceJSON = "json"
	sourceREST = "rest"
)

// Sets the flag values from the environment file. The variables are also
// exported to the process environment. The flags specified on the command
// line or in the shell environment take precedence.
type flagEnvironmentSetter struct {
	context *cli.Context
	// Maps the environment variable names to the flag names.
	flagNames map[string]string
}

func newFlagEnvironmentSetter(c *cli.Context) *flagEnvironmentSetter {
	setter := &flagEnvironmentSetter{
		context:   c,
		flagNames: map[string]string{},
	}
	if c.Command == nil {
		return setter
	}
	for _, flag := range c.Command.Flags {
		withEnvVars, ok := flag.(interface{ GetEnvVars() []string })
		if !ok {
			continue
		}
		for _, envVar := range withEnvVars.GetEnvVars() {
			setter.flagNames[envVar] = flag.Names()[0]
		}
	}
	return setter
}

// Implements the storkutil.EnvironmentVariableSetter interface.
func (s *flagEnvironmentSetter) Set(key, value string) error {
	name, ok := s.flagNames[key]
	if ok && !s.context.IsSet(name) {
		if err := s.context.Set(name, value); err != nil {
			return errors.WithMessagef(err, "invalid value of the %s flag", name)
		}
	}
	return storkutil.ProcessEnvironmentSetter{}.Set(key, value)
}

// Loads the environment file if it was requested.
func loadEnvironmentFile(c *cli.Context) error {
	if c.Bool("use-env-file") {
		err := storkutil.LoadEnvironmentFileToSetter(c.Path("env-file"), newFlagEnvironmentSetter(c))
		if err != nil {
			return errors.WithMessagef(err, "the '%s' environment file is invalid", c.Path("env-file"))
		}
		// Reconfigures logging using new environment variables.
		storkutil.SetupLogging()
	} else if c.IsSet("env-file") {
		log.Warning("The environment file is provided but it is not used because the '--use-env-file' flag is not set")
	}
	return nil
}

// Creates the retrieval source selected with the flags and returns the
// names of the servers to process.
func newSource(c *cli.Context) (collector.Source, []string, error) {
	serverNames := c.StringSlice("server")

	switch strings.ToLower(c.String("source")) {
	case sourceJSON:
		if c.Path("input") == "" {
			return nil, nil, errors.New("the --input flag is required for the json source")
		}
		source, err := jsonsource.NewSourceFromFile(c.Path("input"))
		if err != nil {
			return nil, nil, err
		}
		if len(serverNames) == 0 {
			serverNames = source.GetServerNames()
		}
		return source, serverNames, nil
	case sourceREST:
		if c.String("url") == "" {
			return nil, nil, errors.New("the --url flag is required for the rest source")
		}
		if len(serverNames) == 0 {
			return nil, nil, errors.New("at least one --server must be specified for the rest source")
		}
		source := restsource.NewSource(c.String("url"), c.String("api-key"))
		source.SetRequestTimeout(c.Duration("timeout"))
		return source, serverNames, nil
	default:
		return nil, nil, errors.Errorf("unsupported source '%s'; allowed values are: %s, %s",
			c.String("source"), sourceJSON, sourceREST)
	}
}

// Builds the export settings from the flags.
func newSettings(c *cli.Context) (*exporter.Settings, error) {
	delimiter, err := tabular.ParseDelimiter(c.String("delimiter"))
	if err != nil {
		return nil, err
	}
	encoding, err := tabular.ParseEncoding(c.String("encoding"))
	if err != nil {
		return nil, err
	}

	settings := exporter.NewSettings()
	settings.OutputDirectory = storkutil.FirstNonBlank(c.Path("output-dir"), settings.OutputDirectory)
	settings.Delimiter = delimiter
	settings.Encoding = encoding
	settings.NoArchive = c.Bool("no-archive")
	settings.MetricsFile = c.Path("metrics-file")
	settings.DisabledCheckers = c.StringSlice("disable-checker")
	settings.Transform.Site = c.String("site")
	settings.Transform.DHCPMembers = c.String("dhcp-members")
	settings.Transform.FailoverAssociation = c.String("failover-association")
	settings.Transform.ParseVLANFromName = c.Bool("parse-vlan-from-name")
	settings.Transform.ParseVLANFromDescription = c.Bool("parse-vlan-from-description")
	settings.Transform.AddSiteToComment = c.Bool("add-site-to-comment")
	return settings, nil
}

// Creates the exporter configured with the flags.
func newExporter(c *cli.Context) (*exporter.Exporter, []string, error) {
	source, serverNames, err := newSource(c)
	if err != nil {
		return nil, nil, err
	}
	settings, err := newSettings(c)
	if err != nil {
		return nil, nil, err
	}
	exp, err := exporter.NewExporter(source, settings)
	if err != nil {
		return nil, nil, err
	}
	return exp, serverNames, nil
}

// Execute the export command. It writes the tables and the dumps of all
// selected servers.
func runExport(c *cli.Context) error {
	exp, serverNames, err := newExporter(c)
	if err != nil {
		return err
	}
	results, err := exp.Export(c.Context, serverNames)
	if err != nil {
		return err
	}
	for _, result := range results {
		for _, path := range result.Files {
			fmt.Fprintln(c.App.Writer, path)
		}
	}
	return nil
}

// Execute the review command. It prints the issues found in the
// configurations of the selected servers.
func runReview(c *cli.Context) error {
	exp, serverNames, err := newExporter(c)
	if err != nil {
		return err
	}
	results, err := exp.Review(c.Context, serverNames)
	if err != nil {
		return err
	}
	for _, result := range results {
		fmt.Fprintf(c.App.Writer, "%s: %d issue(s), %d retrieval error(s)\n",
			result.Server, result.Review.GetIssuesCount(), len(result.RetrievalErrors))
		for _, report := range result.Review.Reports {
			fmt.Fprintf(c.App.Writer, "  [%s] %s\n", report.Checker, report.Content)
		}
		for _, retrievalErr := range result.RetrievalErrors {
			fmt.Fprintf(c.App.Writer, "  [retrieval] %s\n", retrievalErr.Error())
		}
	}
	return nil
}

// Returns the flags selecting the source and the servers.
func getSourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "source",
			Usage:   "Source of the DHCP server configuration. Allowed values are: json, rest",
			Value:   sourceJSON,
			EnvVars: []string{"DHCP2IPAM_SOURCE"},
		},
		&cli.PathFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Path to the JSON file or the dump tarball with the server configuration; applicable to the json source",
			EnvVars: []string{"DHCP2IPAM_INPUT"},
		},
		&cli.StringFlag{
			Name:    "url",
			Usage:   "Base URL of the DHCP REST gateway; applicable to the rest source",
			EnvVars: []string{"DHCP2IPAM_URL"},
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "API key sent to the DHCP REST gateway",
			EnvVars: []string{"DHCP2IPAM_API_KEY"},
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Timeout of a single request to the DHCP REST gateway",
			Value:   restsource.DefaultRequestTimeout,
			EnvVars: []string{"DHCP2IPAM_TIMEOUT"},
		},
		&cli.StringSliceFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Name of the DHCP server to process; may be repeated. All servers from the input file are processed if not specified",
			EnvVars: []string{"DHCP2IPAM_SERVER"},
		},
		&cli.StringSliceFlag{
			Name:    "disable-checker",
			Usage:   "Name of the configuration review checker to disable; may be repeated",
			EnvVars: []string{"DHCP2IPAM_DISABLE_CHECKER"},
		},
		&cli.BoolFlag{
			Name:  "use-env-file",
			Usage: "Read the environment variables from the environment file",
			Value: false,
		},
		&cli.PathFlag{
			Name:  "env-file",
			Usage: "Environment file location; applicable only if the use-env-file is provided",
			Value: "/etc/dhcp2ipam/dhcp2ipam.env",
		},
	}
}

// Returns the flags controlling the output files.
func getExportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Directory where the tables and the dumps are written",
			Value:   ".",
			EnvVars: []string{"DHCP2IPAM_OUTPUT_DIR"},
		},
		&cli.StringFlag{
			Name:    "site",
			Usage:   "Site name copied to the network records",
			EnvVars: []string{"DHCP2IPAM_SITE"},
		},
		&cli.StringFlag{
			Name:    "dhcp-members",
			Usage:   "Members of the target system serving the networks",
			EnvVars: []string{"DHCP2IPAM_DHCP_MEMBERS"},
		},
		&cli.StringFlag{
			Name:    "failover-association",
			Usage:   "Failover association serving the ranges",
			EnvVars: []string{"DHCP2IPAM_FAILOVER_ASSOCIATION"},
		},
		&cli.BoolFlag{
			Name:    "parse-vlan-from-name",
			Usage:   "Extract the VLAN tag from the scope name",
			EnvVars: []string{"DHCP2IPAM_PARSE_VLAN_FROM_NAME"},
		},
		&cli.BoolFlag{
			Name:    "parse-vlan-from-description",
			Usage:   "Extract the VLAN tag from the scope description",
			EnvVars: []string{"DHCP2IPAM_PARSE_VLAN_FROM_DESCRIPTION"},
		},
		&cli.BoolFlag{
			Name:    "add-site-to-comment",
			Usage:   "Prefix the network comments with the site name",
			EnvVars: []string{"DHCP2IPAM_ADD_SITE_TO_COMMENT"},
		},
		&cli.StringFlag{
			Name:    "delimiter",
			Usage:   "Cell delimiter of the tables; use \\t for a tab",
			Value:   string(tabular.DefaultDelimiter),
			EnvVars: []string{"DHCP2IPAM_DELIMITER"},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "Character encoding of the tables. Allowed values are: utf-8, utf-8-bom, utf-16le",
			Value:   string(tabular.EncodingUTF8),
			EnvVars: []string{"DHCP2IPAM_ENCODING"},
		},
		&cli.BoolFlag{
			Name:    "no-archive",
			Usage:   "Do not write the archival dumps",
			EnvVars: []string{"DHCP2IPAM_NO_ARCHIVE"},
		},
		&cli.PathFlag{
			Name:    "metrics-file",
			Usage:   "Path of the file the run metrics are written to in the Prometheus text format",
			EnvVars: []string{"DHCP2IPAM_METRICS_FILE"},
		},
	}
}

// Prepare urfave cli app with all flags and commands defined.
func setupApp() *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, c.App.Version)
	}

	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version",
	}

	app := &cli.App{
		Name:  "dhcp2ipam",
		Usage: "A tool for migrating the DHCP server configurations to the IPAM import files.",
		Description: `The tool fetches the configuration of the DHCP servers and converts
   it into the import tables of the address management system:

   - {server}_networks.csv - one network record per scope;

   - {server}_ranges.csv - one DHCP range record per scope;

   - {server}_fixed_addresses.csv - one fixed address record per reservation.

   The complete fetched configuration is archived in {server}_dump.tar.gz.
   The archive can be used as the input of the json source.`,
		Version:  dhcp2ipam.Version,
		HelpName: "dhcp2ipam",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "",
				Usage:   "Logging level can be specified using env variable only. Allowed values: are DEBUG, INFO, WARN, ERROR",
				Value:   "INFO",
				EnvVars: []string{storkutil.LogLevelEnvironmentVariable},
			},
		},
		Commands: []*cli.Command{
			{
				Name:        "export",
				Usage:       "Export the DHCP server configurations",
				UsageText:   "dhcp2ipam export [options]",
				Description: "Write the import tables and the archival dump of each server.",
				Flags:       append(getSourceFlags(), getExportFlags()...),
				Before:      loadEnvironmentFile,
				Action:      runExport,
			},
			{
				Name:        "review",
				Usage:       "Review the DHCP server configurations",
				UsageText:   "dhcp2ipam review [options]",
				Description: "Print the configuration issues of each server without writing any files.",
				Flags:       getSourceFlags(),
				Before:      loadEnvironmentFile,
				Action:      runReview,
			},
		},
	}

	return app
}

func main() {
	// Setup logging
	storkutil.SetupLogging()

	app := setupApp()
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
