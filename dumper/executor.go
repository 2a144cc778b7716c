package dumper

import (
	"time"

	fqdn "github.com/Showmax/go-fqdn"
	log "github.com/sirupsen/logrus"
	dhcp2ipam "isc.org/dhcp2ipam"
	"isc.org/dhcp2ipam/dumper/dump"
	storkutil "isc.org/dhcp2ipam/util"
)

// Summary of the dump process execution.
type executionSummary struct {
	Timestamp time.Time
	Steps     []*executionSummaryStep
}

// Single dump execution entry. It contains the dump object and related
// error object (or nil if no error occurs).
type executionSummaryStep struct {
	Dump  dump.Dump
	Error error
}

// Simplified representation of the summary to use in the dump.
type executionSummarySimplified struct {
	Timestamp string                            `json:"timestamp"`
	Host      string                            `json:"host"`
	Version   string                            `json:"version"`
	Steps     []*executionSummaryStepSimplified `json:"steps"`
}

// Simplified representation of the summary step to use in the dump.
type executionSummaryStepSimplified struct {
	Name      string   `json:"name"`
	Error     string   `json:"error,omitempty"`
	Status    string   `json:"status"`
	Artifacts []string `json:"artifacts"`
}

func newExecutionSummary(steps ...*executionSummaryStep) *executionSummary {
	return &executionSummary{
		Timestamp: storkutil.UTCNow(),
		Steps:     steps,
	}
}

// Extract only successfully finished dumps. The dump has a success
// status if no error occurs.
func (s *executionSummary) GetSuccessfulDumps() []dump.Dump {
	dumps := make([]dump.Dump, 0)
	for _, step := range s.Steps {
		if step.isSuccess() {
			dumps = append(dumps, step.Dump)
		}
	}
	return dumps
}

// Simplify the execution summary to the serializable form.
func (s *executionSummary) Simplify() *executionSummarySimplified {
	steps := []*executionSummaryStepSimplified{}
	for _, source := range s.Steps {
		steps = append(steps, source.Simplify())
	}

	return &executionSummarySimplified{
		Timestamp: s.Timestamp.Format(time.RFC3339),
		Host:      getHostname(),
		Version:   dhcp2ipam.Version,
		Steps:     steps,
	}
}

// Append summary dump to the steps.
func (s *executionSummary) appendSummaryDump() {
	dumpSummaryArtifact := dump.NewBasicStructArtifact(
		"executed-steps", nil,
	)

	dumpSummary := dump.NewBasicDump(
		"summary",
		dumpSummaryArtifact,
	)

	s.Steps = append(s.Steps, newExecutionSummaryStep(dumpSummary, nil))
	dumpSummaryArtifact.SetStruct(s.Simplify())
}

// Construct a new execution summary step instance.
func newExecutionSummaryStep(dump dump.Dump, err error) *executionSummaryStep {
	return &executionSummaryStep{
		Dump:  dump,
		Error: err,
	}
}

// Specifies that has no error.
func (s *executionSummaryStep) isSuccess() bool {
	return s.Error == nil
}

// Simplify the execution summary step to the serializable form.
func (s *executionSummaryStep) Simplify() *executionSummaryStepSimplified {
	artifactNames := []string{}
	for i := 0; i < s.Dump.GetArtifactsNumber(); i++ {
		artifactNames = append(artifactNames, s.Dump.GetArtifact(i).GetName())
	}

	simplified := &executionSummaryStepSimplified{
		Name:      s.Dump.GetName(),
		Artifacts: artifactNames,
		Status:    "SUCCESS",
	}
	if s.Error != nil {
		simplified.Status = "FAIL"
		simplified.Error = s.Error.Error()
	}
	return simplified
}

// Returns the fully qualified name of the host running the export. It
// falls back to an empty string if the name cannot be determined.
func getHostname() string {
	hostname, err := fqdn.FqdnHostname()
	if err != nil {
		log.WithError(err).Debug("Cannot determine the host FQDN")
		return ""
	}
	return hostname
}

// Execute the dump process. Besides the provided dumps the
// result will contain one more dump with the dump summary.
func executeDumps(dumps []dump.Dump) *executionSummary {
	summary := newExecutionSummary()

	for _, d := range dumps {
		err := d.Execute()
		if err != nil {
			log.WithField("dump", d.GetName()).WithError(err).Warn("Dump failed")
		}
		summary.Steps = append(summary.Steps, newExecutionSummaryStep(d, err))
	}

	summary.appendSummaryDump()

	return summary
}
