package dump

import "isc.org/dhcp2ipam/collector"

// Dumps the failures of the individual collections encountered while
// fetching the server configuration.
type RetrievalErrorsDump struct {
	BasicDump
	errors []*collector.RetrievalError
}

// Constructs the retrieval errors dump.
func NewRetrievalErrorsDump(retrievalErrors []*collector.RetrievalError) *RetrievalErrorsDump {
	return &RetrievalErrorsDump{
		*NewBasicDump("retrieval"),
		retrievalErrors,
	}
}

// Appends the list of the errors. The list is empty if the configuration
// was fetched completely.
func (d *RetrievalErrorsDump) Execute() error {
	retrievalErrors := d.errors
	if retrievalErrors == nil {
		retrievalErrors = []*collector.RetrievalError{}
	}
	d.AppendArtifact(NewBasicStructArtifact("errors", retrievalErrors))
	return nil
}
