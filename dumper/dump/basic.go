package dump

// Dump with a fixed name collecting its artifacts in a slice. The dumps
// embed it and override Execute to produce the artifacts.
type BasicDump struct {
	name      string
	artifacts []Artifact
}

// Creates the dump. The trivial dumps pass their artifacts here, the others
// append them during the execution.
func NewBasicDump(name string, artifacts ...Artifact) *BasicDump {
	return &BasicDump{name: name, artifacts: artifacts}
}

func (d *BasicDump) GetName() string {
	return d.name
}

func (d *BasicDump) GetArtifactsNumber() int {
	return len(d.artifacts)
}

func (d *BasicDump) GetArtifact(i int) Artifact {
	return d.artifacts[i]
}

// Adds the artifact produced by the execution.
func (d *BasicDump) AppendArtifact(artifact Artifact) {
	d.artifacts = append(d.artifacts, artifact)
}

// Produces nothing.
func (d *BasicDump) Execute() error {
	return nil
}

// Name and file extension shared by the artifacts.
type artifactName struct {
	name      string
	extension string
}

func (a artifactName) GetName() string {
	return a.name
}

func (a artifactName) GetExtension() string {
	return a.extension
}

// Artifact holding a Go value saved as a JSON file.
type BasicStructArtifact struct {
	artifactName
	content any
}

var _ StructArtifact = (*BasicStructArtifact)(nil)

// Creates the artifact with the ".json" extension.
func NewBasicStructArtifact(name string, content any) *BasicStructArtifact {
	return &BasicStructArtifact{
		artifactName: artifactName{name: name, extension: ".json"},
		content:      content,
	}
}

func (a *BasicStructArtifact) GetStruct() any {
	return a.content
}

// Replaces the content. The summary artifact is created before its content
// is known.
func (a *BasicStructArtifact) SetStruct(content any) {
	a.content = content
}

// Artifact holding the file content as is.
type BasicBinaryArtifact struct {
	artifactName
	content []byte
}

var _ BinaryArtifact = (*BasicBinaryArtifact)(nil)

// Creates the artifact with the raw content and the given extension.
func NewBasicBinaryArtifact(name, extension string, content []byte) *BasicBinaryArtifact {
	return &BasicBinaryArtifact{
		artifactName: artifactName{name: name, extension: extension},
		content:      content,
	}
}

func (a *BasicBinaryArtifact) GetBinary() []byte {
	return a.content
}
