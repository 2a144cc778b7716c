package dump

import (
	"github.com/pkg/errors"
	"isc.org/dhcp2ipam/configreview"
)

// Dumps the configuration review reports.
type ReviewDump struct {
	BasicDump
	result *configreview.ReviewResult
}

// Constructs the review dump.
func NewReviewDump(result *configreview.ReviewResult) *ReviewDump {
	return &ReviewDump{
		*NewBasicDump("review"),
		result,
	}
}

// Appends the review result. It fails if the review was not performed.
func (d *ReviewDump) Execute() error {
	if d.result == nil {
		return errors.New("configuration review was not performed")
	}
	d.AppendArtifact(NewBasicStructArtifact("reports", d.result))
	return nil
}
