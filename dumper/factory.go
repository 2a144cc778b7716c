package dumper

import (
	"isc.org/dhcp2ipam/dumper/dump"
)

// Initialize (construct) the dump instances.
type factory struct {
	contents *Contents
}

func newFactory(contents *Contents) factory {
	return factory{
		contents: contents,
	}
}

// Construct all supported dumps. The tables are dumped only if the writer
// rendering them is specified.
func (f *factory) All() []dump.Dump {
	dumps := []dump.Dump{
		dump.NewServerHierarchyDump(f.contents.Server),
		dump.NewRetrievalErrorsDump(f.contents.RetrievalErrors),
		dump.NewReviewDump(f.contents.Review),
	}
	if f.contents.TableWriter != nil {
		dumps = append(dumps, dump.NewTablesDump(f.contents.Records, f.contents.TableWriter))
	}
	return dumps
}
