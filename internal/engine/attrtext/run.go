package attrtext

import "fmt"

// Run is a maximal span of text sharing one attribute set.
// Start is inclusive, End is exclusive, both measured in characters.
type Run struct {
	Start int
	End   int
	Attrs AttrSet
}

// Len returns the length of the run in characters.
func (r Run) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the run covers no characters.
func (r Run) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains returns true if the given offset falls within the run.
func (r Run) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if the run intersects [start, end).
func (r Run) Overlaps(start, end int) bool {
	return r.Start < end && start < r.End
}

// String returns a human-readable representation of the run.
func (r Run) String() string {
	return fmt.Sprintf("[%d:%d)%s", r.Start, r.End, r.Attrs.String())
}
