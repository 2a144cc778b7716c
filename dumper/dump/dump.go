// Package dump defines the units of the archival dump. A dump produces the
// artifacts which are saved in the archive by the dumper.
package dump

// Dump - single unit of the dump process.
// It may contain multiple result artifacts
// collected.
type Dump interface {
	// The name of the dump. It must return valid name
	// before execution and after failed execution.
	GetName() string
	// This function executes the dump and
	// produces the artifacts. Returns error
	// when the dump execution failed.
	// Prefer to call this once per instance.
	Execute() error

	// Returns number of produced artifacts.
	GetArtifactsNumber() int
	// Returns the artifact instance at specific position.
	// It may panic if the argument is less then 0 or
	// greater or equals to the artifacts number.
	GetArtifact(int) Artifact
}

// The portion of data collected during the dump.
type Artifact interface {
	// Returns the artifact name.
	GetName() string
	// Returns an expected artifact extension.
	GetExtension() string
}

// The artifact that contains a serializable Go structure.
type StructArtifact interface {
	Artifact
	// Returns plain Go object. It must be serializable.
	GetStruct() any
}

// The artifact that contains raw bytes (e.g. a rendered table).
type BinaryArtifact interface {
	Artifact
	// Returns binary representation of the artifact.
	GetBinary() []byte
}
