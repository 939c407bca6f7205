package attrtext

import "fmt"

// Text is an immutable attributed string: an ordered sequence of characters
// plus a run partition. Runs are non-overlapping, sorted by start offset,
// and their union exactly covers [0, Len()) with no gaps; an empty Text has
// zero runs. Every operation returns a new Text with the invariant
// re-established, so values are safe to share.
type Text struct {
	runes []rune
	runs  []Run
}

// Empty returns an empty attributed string.
func Empty() Text {
	return Text{}
}

// FromString creates an attributed string where every character carries the
// given attribute set.
func FromString(s string, attrs AttrSet) Text {
	runes := []rune(s)
	if len(runes) == 0 {
		return Text{}
	}
	return Text{
		runes: runes,
		runs:  []Run{{Start: 0, End: len(runes), Attrs: attrs.Clone()}},
	}
}

// Len returns the length in characters.
func (t Text) Len() int {
	return len(t.runes)
}

// IsEmpty returns true if the text contains no characters.
func (t Text) IsEmpty() bool {
	return len(t.runes) == 0
}

// String returns the plain text content.
func (t Text) String() string {
	return string(t.runes)
}

// Runs returns a copy of the run partition.
func (t Text) Runs() []Run {
	out := make([]Run, len(t.runs))
	copy(out, t.runs)
	return out
}

// RunCount returns the number of runs.
func (t Text) RunCount() int {
	return len(t.runs)
}

// AttrsAt returns the attribute set covering the character at the given
// offset, or nil if the offset is out of range.
func (t Text) AttrsAt(offset int) AttrSet {
	for _, r := range t.runs {
		if r.Contains(offset) {
			return r.Attrs.Clone()
		}
	}
	return nil
}

// Slice returns the attributed substring covering [start, end).
// Bounds are clamped to the text.
func (t Text) Slice(start, end int) Text {
	if start < 0 {
		start = 0
	}
	if end > len(t.runes) {
		end = len(t.runes)
	}
	if start >= end {
		return Text{}
	}

	runes := make([]rune, end-start)
	copy(runes, t.runes[start:end])

	var runs []Run
	for _, r := range t.runs {
		if !r.Overlaps(start, end) {
			continue
		}
		rs := r.Start
		if rs < start {
			rs = start
		}
		re := r.End
		if re > end {
			re = end
		}
		runs = append(runs, Run{Start: rs - start, End: re - start, Attrs: r.Attrs.Clone()})
	}

	out := Text{runes: runes, runs: runs}
	out.normalize()
	return out
}

// Replace returns a new Text with [start, end) replaced by repl.
// Bounds must satisfy 0 <= start <= end <= Len(); callers are expected to
// clip before calling.
func (t Text) Replace(start, end int, repl Text) Text {
	if start < 0 || start > end || end > len(t.runes) {
		return t
	}

	runes := make([]rune, 0, len(t.runes)-(end-start)+len(repl.runes))
	runes = append(runes, t.runes[:start]...)
	runes = append(runes, repl.runes...)
	runes = append(runes, t.runes[end:]...)

	delta := len(repl.runes) - (end - start)

	var runs []Run
	for _, r := range t.runs {
		if r.End <= start {
			runs = append(runs, Run{Start: r.Start, End: r.End, Attrs: r.Attrs.Clone()})
			continue
		}
		if r.Start < start {
			runs = append(runs, Run{Start: r.Start, End: start, Attrs: r.Attrs.Clone()})
		}
	}
	for _, r := range repl.runs {
		runs = append(runs, Run{Start: r.Start + start, End: r.End + start, Attrs: r.Attrs.Clone()})
	}
	for _, r := range t.runs {
		if r.Start >= end {
			runs = append(runs, Run{Start: r.Start + delta, End: r.End + delta, Attrs: r.Attrs.Clone()})
			continue
		}
		if r.End > end {
			runs = append(runs, Run{Start: end + delta, End: r.End + delta, Attrs: r.Attrs.Clone()})
		}
	}

	out := Text{runes: runes, runs: runs}
	out.normalize()
	return out
}

// Insert returns a new Text with other inserted at the given offset.
// The offset is clamped to [0, Len()].
func (t Text) Insert(offset int, other Text) Text {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.runes) {
		offset = len(t.runes)
	}
	return t.Replace(offset, offset, other)
}

// Delete returns a new Text with [start, end) removed.
func (t Text) Delete(start, end int) Text {
	return t.Replace(start, end, Text{})
}

// Append returns a new Text with other appended.
func (t Text) Append(other Text) Text {
	return t.Replace(len(t.runes), len(t.runes), other)
}

// StripAttr returns a new Text with the named attribute removed from every
// run overlapping [start, end). Bounds are clamped to the text.
func (t Text) StripAttr(start, end int, name string) Text {
	if start < 0 {
		start = 0
	}
	if end > len(t.runes) {
		end = len(t.runes)
	}
	if start >= end {
		return t
	}

	runes := make([]rune, len(t.runes))
	copy(runes, t.runes)

	var runs []Run
	for _, r := range t.runs {
		if !r.Overlaps(start, end) || !r.Attrs.Has(name) {
			runs = append(runs, Run{Start: r.Start, End: r.End, Attrs: r.Attrs.Clone()})
			continue
		}
		if r.Start < start {
			runs = append(runs, Run{Start: r.Start, End: start, Attrs: r.Attrs.Clone()})
		}
		ss := r.Start
		if ss < start {
			ss = start
		}
		se := r.End
		if se > end {
			se = end
		}
		runs = append(runs, Run{Start: ss, End: se, Attrs: r.Attrs.Without(name)})
		if r.End > end {
			runs = append(runs, Run{Start: end, End: r.End, Attrs: r.Attrs.Clone()})
		}
	}

	out := Text{runes: runes, runs: runs}
	out.normalize()
	return out
}

// normalize drops empty runs and coalesces adjacent runs with identical
// attribute sets. Runs are assumed to arrive sorted and contiguous, which
// every constructor in this package guarantees.
func (t *Text) normalize() {
	if len(t.runes) == 0 {
		t.runs = nil
		return
	}

	merged := t.runs[:0]
	for _, r := range t.runs {
		if r.IsEmpty() {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].End == r.Start && merged[n-1].Attrs.Equal(r.Attrs) {
			merged[n-1].End = r.End
			continue
		}
		merged = append(merged, r)
	}
	t.runs = merged
}

// validate checks the run partition invariant. It is used by tests.
func (t Text) validate() error {
	if len(t.runes) == 0 {
		if len(t.runs) != 0 {
			return fmt.Errorf("empty text has %d runs", len(t.runs))
		}
		return nil
	}
	if len(t.runs) == 0 {
		return fmt.Errorf("non-empty text has no runs")
	}
	if t.runs[0].Start != 0 {
		return fmt.Errorf("first run starts at %d, want 0", t.runs[0].Start)
	}
	for i, r := range t.runs {
		if r.IsEmpty() {
			return fmt.Errorf("run %d is empty: %s", i, r)
		}
		if i > 0 && t.runs[i-1].End != r.Start {
			return fmt.Errorf("gap or overlap between run %d and %d", i-1, i)
		}
	}
	if last := t.runs[len(t.runs)-1]; last.End != len(t.runes) {
		return fmt.Errorf("last run ends at %d, want %d", last.End, len(t.runes))
	}
	return nil
}
