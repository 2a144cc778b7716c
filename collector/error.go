package collector

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Names of the collections fetched from the source.
const (
	CollectionServerOptions      = "server_options"
	CollectionScopes             = "scopes"
	CollectionExclusionRanges    = "exclusion_ranges"
	CollectionReservations       = "reservations"
	CollectionScopeOptions       = "scope_options"
	CollectionReservationOptions = "reservation_options"
	CollectionDNSSettings        = "dns_settings"
)

// Returned when the server does not respond to the connectivity check.
// It is the only error aborting the export of a server.
var ErrServerUnreachable = errors.New("DHCP server is unreachable")

// Describes a failure to fetch a single collection. The collection is
// treated as empty and the export continues.
type RetrievalError struct {
	Collection  string
	Server      string
	Scope       string
	Reservation string
	Cause       error
}

// Creates a retrieval error.
func NewRetrievalError(collection, server, scope, reservation string, cause error) *RetrievalError {
	return &RetrievalError{
		Collection:  collection,
		Server:      server,
		Scope:       scope,
		Reservation: reservation,
		Cause:       cause,
	}
}

// Returns the error message including the location of the failed
// collection.
func (e *RetrievalError) Error() string {
	location := []string{fmt.Sprintf("server %s", e.Server)}
	if e.Scope != "" {
		location = append(location, fmt.Sprintf("scope %s", e.Scope))
	}
	if e.Reservation != "" {
		location = append(location, fmt.Sprintf("reservation %s", e.Reservation))
	}
	message := fmt.Sprintf("failed to fetch %s for %s", e.Collection, strings.Join(location, ", "))
	if e.Cause != nil {
		message = fmt.Sprintf("%s: %s", message, e.Cause)
	}
	return message
}

// Returns the cause of the error.
func (e *RetrievalError) Unwrap() error {
	return e.Cause
}

// Serializes the error for the archival dump.
func (e *RetrievalError) MarshalJSON() ([]byte, error) {
	cause := ""
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	serial, err := json.Marshal(struct {
		Collection  string `json:"collection"`
		Server      string `json:"server"`
		Scope       string `json:"scope,omitempty"`
		Reservation string `json:"reservation,omitempty"`
		Error       string `json:"error"`
	}{
		Collection:  e.Collection,
		Server:      e.Server,
		Scope:       e.Scope,
		Reservation: e.Reservation,
		Error:       cause,
	})
	return serial, errors.Wrap(err, "failed to marshal the retrieval error")
}
