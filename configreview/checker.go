package configreview

// Represents a configuration checker. It includes a checker name and the
// pointer to the function implementing the checker.
type checker struct {
	name    string
	checkFn func(*ReviewContext) (*Report, error)
}
