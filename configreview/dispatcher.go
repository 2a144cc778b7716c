// Package configreview reviews the retrieved server configuration for the
// issues that may cause the import to fail or produce unexpected results.
// The review never modifies the configuration and never aborts the export.
// The found issues are logged as warnings and archived.
package configreview

import (
	"sort"

	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
)

// A report tagged with the name of the checker which produced it.
type taggedReport struct {
	checkerName string
	report      *Report
}

// Review context is valid throughout a review of a server configuration.
// It holds the reviewed server and the reports output by the checkers
// so far.
type ReviewContext struct {
	subjectServer *dhcpmodel.Server
	reports       []taggedReport
}

// Creates new review context instance.
func newReviewContext(server *dhcpmodel.Server) *ReviewContext {
	return &ReviewContext{
		subjectServer: server,
	}
}

// Returns a number of the generated reports.
func (c *ReviewContext) getReportsCount() int {
	return len(c.reports)
}

// Returns a number of the reports that found the issues.
func (c *ReviewContext) getIssuesCount() int {
	issuesCount := 0
	for _, report := range c.reports {
		if report.report.IsIssueFound() {
			issuesCount++
		}
	}
	return issuesCount
}

// Serializable form of a report that found an issue.
type ReviewReport struct {
	Checker      string   `json:"checker"`
	Server       string   `json:"server"`
	Content      string   `json:"content"`
	Scopes       []string `json:"scopes,omitempty"`
	Reservations []string `json:"reservations,omitempty"`
}

// Outcome of the server configuration review.
type ReviewResult struct {
	// Names of the checkers that were run.
	Checkers []string `json:"checkers"`
	// Reports of the found issues.
	Reports []*ReviewReport `json:"reports"`
}

// Returns the number of the found issues. It is safe to call on a nil
// result.
func (r *ReviewResult) GetIssuesCount() int {
	if r == nil {
		return 0
	}
	return len(r.Reports)
}

// Describes a registered checker.
type CheckerMetadata struct {
	Name    string
	Enabled bool
}

// Dispatcher running the registered checkers against a server
// configuration.
type Dispatcher interface {
	// Registers a new checker. A checker registered under the same
	// name replaces the previous one.
	RegisterChecker(checkerName string, checkFn func(*ReviewContext) (*Report, error))
	// Unregisters the checker. It returns false if the checker was not
	// registered.
	UnregisterChecker(checkerName string) bool
	// Returns the metadata of the registered checkers sorted by name.
	GetCheckersMetadata() []*CheckerMetadata
	// Enables or disables the checker. It returns an error for an
	// unknown checker.
	SetCheckerState(checkerName string, state CheckerState) error
	// Runs the enabled checkers against the server configuration.
	Review(server *dhcpmodel.Server) (*ReviewResult, error)
}

// Implementation of the Dispatcher interface.
type dispatcherImpl struct {
	checkers          []*checker
	checkerController checkerController
}

var _ Dispatcher = (*dispatcherImpl)(nil)

// Creates a new dispatcher instance without the checkers.
func NewDispatcher() Dispatcher {
	return &dispatcherImpl{
		checkerController: newCheckerController(),
	}
}

// Registers a new checker.
func (d *dispatcherImpl) RegisterChecker(checkerName string, checkFn func(*ReviewContext) (*Report, error)) {
	for _, c := range d.checkers {
		if c.name == checkerName {
			c.checkFn = checkFn
			return
		}
	}
	d.checkers = append(d.checkers, &checker{
		name:    checkerName,
		checkFn: checkFn,
	})
}

// Unregisters the checker.
func (d *dispatcherImpl) UnregisterChecker(checkerName string) bool {
	for i, c := range d.checkers {
		if c.name == checkerName {
			d.checkers = append(d.checkers[:i], d.checkers[i+1:]...)
			return true
		}
	}
	return false
}

// Returns the metadata of the registered checkers sorted by name.
func (d *dispatcherImpl) GetCheckersMetadata() []*CheckerMetadata {
	var metadata []*CheckerMetadata
	for _, c := range d.checkers {
		metadata = append(metadata, &CheckerMetadata{
			Name:    c.name,
			Enabled: d.checkerController.isCheckerEnabled(c.name),
		})
	}
	sort.Slice(metadata, func(i, j int) bool {
		return metadata[i].Name < metadata[j].Name
	})
	return metadata
}

// Enables or disables the checker.
func (d *dispatcherImpl) SetCheckerState(checkerName string, state CheckerState) error {
	for _, c := range d.checkers {
		if c.name == checkerName {
			return d.checkerController.setGlobalState(checkerName, state)
		}
	}
	return pkgerrors.Errorf("config checker %s not found", checkerName)
}

// Runs the enabled checkers in the registration order. The checker error
// is logged and does not stop the review.
func (d *dispatcherImpl) Review(server *dhcpmodel.Server) (*ReviewResult, error) {
	if server == nil {
		return nil, pkgerrors.New("cannot review a nil server")
	}
	ctx := newReviewContext(server)
	result := &ReviewResult{
		Checkers: []string{},
		Reports:  []*ReviewReport{},
	}
	for _, c := range d.checkers {
		if !d.checkerController.isCheckerEnabled(c.name) {
			continue
		}
		result.Checkers = append(result.Checkers, c.name)
		report, err := c.checkFn(ctx)
		if err != nil {
			log.WithFields(log.Fields{
				"server":  server.Name,
				"checker": c.name,
			}).WithError(err).Error("Config checker failed")
			continue
		}
		if report == nil {
			report = newEmptyReport(ctx)
		}
		ctx.reports = append(ctx.reports, taggedReport{
			checkerName: c.name,
			report:      report,
		})
	}

	for _, tagged := range ctx.reports {
		if !tagged.report.IsIssueFound() {
			continue
		}
		log.WithFields(log.Fields{
			"server":  server.Name,
			"checker": tagged.checkerName,
		}).Warn(tagged.report.GetContent())
		result.Reports = append(result.Reports, &ReviewReport{
			Checker:      tagged.checkerName,
			Server:       tagged.report.server,
			Content:      tagged.report.GetContent(),
			Scopes:       tagged.report.GetRefScopes(),
			Reservations: tagged.report.GetRefReservations(),
		})
	}

	log.WithFields(log.Fields{
		"server":  server.Name,
		"reports": ctx.getReportsCount(),
		"issues":  ctx.getIssuesCount(),
	}).Info("Finished the configuration review")
	return result, nil
}

// Registers all available checkers.
func RegisterDefaultCheckers(dispatcher Dispatcher) {
	dispatcher.RegisterChecker("hw_address_format", hwAddressFormat)
	dispatcher.RegisterChecker("exclusion_in_range", exclusionsInRange)
	dispatcher.RegisterChecker("reservation_in_subnet", reservationsInSubnet)
	dispatcher.RegisterChecker("domain_name_format", domainNameFormat)
	dispatcher.RegisterChecker("router_address_format", routerAddressFormat)
	dispatcher.RegisterChecker("dns_server_address_format", dnsServerAddressFormat)
}
