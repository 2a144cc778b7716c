package configreview

import (
	"strings"

	pkgerrors "github.com/pkg/errors"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
)

// Represents a single config review report. It contains a description of
// one issue found during the review of a server configuration. The
// refScopes and refReservations slices contain the identifiers of the
// scopes and the reservations the issue relates to. Each entity can be
// referenced at most once.
type Report struct {
	content         *string
	server          string
	refScopes       []string
	refReservations []string
}

// Indicates that the report contains a found issue.
func (r *Report) IsIssueFound() bool {
	return r.content != nil
}

// Returns the issue description.
func (r *Report) GetContent() string {
	if r.content == nil {
		return ""
	}
	return *r.content
}

// Returns the identifiers of the referenced scopes.
func (r *Report) GetRefScopes() []string {
	return r.refScopes
}

// Returns the addresses of the referenced reservations.
func (r *Report) GetRefReservations() []string {
	return r.refReservations
}

// Represents an intermediate report which hasn't been validated yet.
type IntermediateReport Report

// Create new report. The report is associated with the subject server and
// includes an issue description. Additional functions can be called for
// this instance to add supplementary information to this report. The
// report must not be used until create() function is called which sanity
// checks the report contents. An example usage:
//
//	report, err := NewReport(ctx, "some issue in scopes").
//					referencingScope(scope1).
//					referencingScope(scope2).
//					create()
func NewReport(ctx *ReviewContext, content string) *IntermediateReport {
	content = strings.TrimSpace(content)
	return &IntermediateReport{
		content: &content,
		server:  ctx.subjectServer.Name,
	}
}

// Creates a new empty report. This report has nil content that indicates a
// given checker found no issues. The checkers don't create this report
// directly. The empty report is created internally by the dispatcher.
func newEmptyReport(ctx *ReviewContext) *Report {
	return &Report{
		content:         nil,
		server:          ctx.subjectServer.Name,
		refScopes:       []string{},
		refReservations: []string{},
	}
}

// Associates a report with a scope.
func (r *IntermediateReport) referencingScope(scope *dhcpmodel.Scope) *IntermediateReport {
	r.refScopes = append(r.refScopes, scope.ID)
	return r
}

// Associates a report with a reservation.
func (r *IntermediateReport) referencingReservation(reservation *dhcpmodel.Reservation) *IntermediateReport {
	r.refReservations = append(r.refReservations, reservation.IPAddress)
	return r
}

// Validates the report contents and return an instance of the final
// report or an error. It should never report an error if the checkers
// generating the reports are implemented properly.
func (r *IntermediateReport) create() (*Report, error) {
	if r.content == nil || len(*r.content) == 0 {
		return nil, pkgerrors.New("config review report must not be blank")
	}

	if r.server == "" {
		return nil, pkgerrors.New("config review report must be associated with a named server")
	}

	if err := checkUnique(r.refScopes, "scope"); err != nil {
		return nil, err
	}
	if err := checkUnique(r.refReservations, "reservation"); err != nil {
		return nil, err
	}

	rc := &Report{
		content:         r.content,
		server:          r.server,
		refScopes:       r.refScopes,
		refReservations: r.refReservations,
	}
	if rc.refScopes == nil {
		rc.refScopes = []string{}
	}
	if rc.refReservations == nil {
		rc.refReservations = []string{}
	}
	return rc, nil
}

// Ensures that each entity is referenced at most once and it has a
// non-empty identifier.
func checkUnique(ids []string, kind string) error {
	present := make(map[string]bool)
	for _, id := range ids {
		if id == "" {
			return pkgerrors.Errorf("config review report must not reference a %s with an empty identifier", kind)
		}
		if present[id] {
			return pkgerrors.Errorf("config review report must not reference the same %s %s twice", kind, id)
		}
		present[id] = true
	}
	return nil
}
