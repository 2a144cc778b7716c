// Package exporter runs the export of the DHCP servers. For each server it
// fetches the configuration hierarchy, reviews it, derives the records,
// writes the import tables and the archival dump, and updates the metrics.
package exporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	infobloxconfig "isc.org/dhcp2ipam/appcfg/infoblox"
	"isc.org/dhcp2ipam/collector"
	"isc.org/dhcp2ipam/configreview"
	"isc.org/dhcp2ipam/dumper"
	"isc.org/dhcp2ipam/metrics"
	"isc.org/dhcp2ipam/tabular"
	"isc.org/dhcp2ipam/transform"
)

// Outcome of a single server export.
type ServerResult struct {
	Server          string
	Records         *transform.Records
	Review          *configreview.ReviewResult
	RetrievalErrors []*collector.RetrievalError
	// Paths of the written files.
	Files []string
}

// Runs the export pipeline against the retrieval source.
type Exporter struct {
	source     collector.Source
	settings   Settings
	dispatcher configreview.Dispatcher
	writer     *tabular.Writer
	metrics    *metrics.Metrics
}

// Creates the exporter. It returns an error if the settings are invalid
// or an unknown checker is disabled.
func NewExporter(source collector.Source, settings *Settings) (*Exporter, error) {
	if source == nil {
		return nil, errors.New("retrieval source must be specified")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	dispatcher := configreview.NewDispatcher()
	configreview.RegisterDefaultCheckers(dispatcher)
	for _, checkerName := range settings.DisabledCheckers {
		if err := dispatcher.SetCheckerState(checkerName, configreview.CheckerStateDisabled); err != nil {
			return nil, err
		}
	}
	return &Exporter{
		source:     source,
		settings:   *settings,
		dispatcher: dispatcher,
		writer:     tabular.NewWriter(settings.Delimiter, settings.Encoding),
		metrics:    metrics.NewMetrics(),
	}, nil
}

// Returns the metrics of the run.
func (e *Exporter) GetMetrics() *metrics.Metrics {
	return e.metrics
}

// Checks the connectivity with all servers before any configuration is
// fetched. It returns an error wrapping collector.ErrServerUnreachable for
// the first unreachable server.
func (e *Exporter) checkConnectivity(ctx context.Context, serverNames []string) error {
	for _, name := range serverNames {
		if err := collector.CheckConnectivity(ctx, e.source, name); err != nil {
			e.metrics.AddUnreachableServer()
			return err
		}
	}
	return nil
}

// Exports the servers one by one. The unreachable server aborts the run
// before any configuration is fetched. The partial retrieval failures and
// the review issues are reported as warnings and never abort the run. The
// metrics file is written even if the run fails.
func (e *Exporter) Export(ctx context.Context, serverNames []string) (results []*ServerResult, err error) {
	defer func() {
		if metricsErr := e.writeMetrics(); metricsErr != nil && err == nil {
			err = metricsErr
		}
	}()

	if len(serverNames) == 0 {
		return nil, errors.New("no servers to export")
	}
	if err = e.checkConnectivity(ctx, serverNames); err != nil {
		return nil, err
	}
	for _, name := range serverNames {
		result, err := e.exportServer(ctx, name, true)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Exports a single server. The connectivity is checked first.
func (e *Exporter) ExportServer(ctx context.Context, serverName string) (*ServerResult, error) {
	return e.exportServer(ctx, serverName, false)
}

// Exports a single server. The reachable flag skips the connectivity check
// of the server already pinged by the run.
func (e *Exporter) exportServer(ctx context.Context, serverName string, reachable bool) (*ServerResult, error) {
	logger := log.WithField("server", serverName)

	result, err := e.collect(ctx, serverName, reachable)
	if err != nil {
		return nil, err
	}

	result.Records = transform.Transform(result.collected.Server, e.settings.Transform)

	for _, schema := range infobloxconfig.GetSchemas() {
		path := e.getOutputPath(serverName, schema.GetTableName()+".csv")
		if err := e.writer.WriteFile(path, schema, result.Records.GetRecords(schema)); err != nil {
			return nil, err
		}
		logger.WithField("path", path).Infof("Wrote the %s table", schema)
		result.Files = append(result.Files, path)
	}

	if !e.settings.NoArchive {
		path := e.getOutputPath(serverName, "dump.tar.gz")
		err := dumper.DumpServerToFile(path, &dumper.Contents{
			Server:          result.collected.Server,
			RetrievalErrors: result.RetrievalErrors,
			Review:          result.Review,
			Records:         result.Records,
			TableWriter:     e.writer,
		})
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}

	e.updateMetrics(&result.ServerResult)
	logger.WithFields(log.Fields{
		"networks":         len(result.Records.Networks),
		"ranges":           len(result.Records.Ranges),
		"fixed_addresses":  len(result.Records.FixedAddresses),
		"retrieval_errors": len(result.RetrievalErrors),
		"review_issues":    result.Review.GetIssuesCount(),
	}).Info("Exported the server")
	return &result.ServerResult, nil
}

// Fetches and reviews the configuration of the servers without writing any
// files.
func (e *Exporter) Review(ctx context.Context, serverNames []string) ([]*ServerResult, error) {
	if len(serverNames) == 0 {
		return nil, errors.New("no servers to review")
	}
	if err := e.checkConnectivity(ctx, serverNames); err != nil {
		return nil, err
	}
	var results []*ServerResult
	for _, name := range serverNames {
		result, err := e.collect(ctx, name, true)
		if err != nil {
			return results, err
		}
		results = append(results, &result.ServerResult)
	}
	return results, nil
}

// Server result with the collected hierarchy.
type collectedResult struct {
	ServerResult
	collected *collector.Result
}

// Fetches and reviews the configuration of the server. The connectivity
// is checked unless the server is known to be reachable.
func (e *Exporter) collect(ctx context.Context, serverName string, reachable bool) (*collectedResult, error) {
	collect := collector.Collect
	if reachable {
		collect = collector.CollectReachable
	}
	collected, err := collect(ctx, e.source, serverName)
	if err != nil {
		if errors.Is(err, collector.ErrServerUnreachable) {
			e.metrics.AddUnreachableServer()
		}
		return nil, err
	}
	review, err := e.dispatcher.Review(collected.Server)
	if err != nil {
		return nil, err
	}
	return &collectedResult{
		ServerResult: ServerResult{
			Server:          serverName,
			Review:          review,
			RetrievalErrors: collected.Errors,
		},
		collected: collected,
	}, nil
}

// Sets the metrics of the exported server.
func (e *Exporter) updateMetrics(result *ServerResult) {
	stats := &metrics.ServerStats{
		Server:          result.Server,
		Scopes:          len(result.Records.Networks),
		Reservations:    len(result.Records.FixedAddresses),
		Records:         map[string]int{},
		RetrievalErrors: map[string]int{},
		ReviewIssues:    result.Review.GetIssuesCount(),
	}
	for _, schema := range infobloxconfig.GetSchemas() {
		stats.Records[string(schema)] = len(result.Records.GetRecords(schema))
	}
	for _, retrievalErr := range result.RetrievalErrors {
		stats.RetrievalErrors[retrievalErr.Collection]++
	}
	e.metrics.Update(stats)
}

// Writes the metrics file if it is configured.
func (e *Exporter) writeMetrics() error {
	if e.settings.MetricsFile == "" {
		return nil
	}
	if err := e.metrics.WriteToFile(e.settings.MetricsFile); err != nil {
		return err
	}
	log.WithField("path", e.settings.MetricsFile).Info("Wrote the metrics")
	return nil
}

// Returns the path of the output file of the server. The characters not
// allowed in the file names are replaced.
func (e *Exporter) getOutputPath(serverName, suffix string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(serverName))
	return filepath.Join(e.settings.OutputDirectory, fmt.Sprintf("%s_%s", name, suffix))
}
