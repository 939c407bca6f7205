package attrtext

import (
	"math/rand"
	"testing"
)

func bold() AttrSet {
	return AttrSet{"bold": BoolValue(true)}
}

func TestFromString(t *testing.T) {
	txt := FromString("hello", bold())

	if txt.Len() != 5 {
		t.Errorf("expected length 5, got %d", txt.Len())
	}
	if txt.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", txt.String())
	}
	if txt.RunCount() != 1 {
		t.Errorf("expected 1 run, got %d", txt.RunCount())
	}
	if err := txt.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestEmptyTextHasNoRuns(t *testing.T) {
	txt := Empty()

	if !txt.IsEmpty() {
		t.Error("expected empty text")
	}
	if txt.RunCount() != 0 {
		t.Errorf("expected 0 runs, got %d", txt.RunCount())
	}
	if err := txt.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestFromStringEmpty(t *testing.T) {
	txt := FromString("", bold())

	if txt.RunCount() != 0 {
		t.Errorf("empty text should have 0 runs, got %d", txt.RunCount())
	}
}

func TestReplaceMiddle(t *testing.T) {
	txt := FromString("abcdef", nil)
	repl := FromString("XY", bold())

	out := txt.Replace(2, 4, repl)

	if out.String() != "abXYef" {
		t.Errorf("expected %q, got %q", "abXYef", out.String())
	}
	if out.RunCount() != 3 {
		t.Errorf("expected 3 runs, got %d", out.RunCount())
	}
	if err := out.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestReplaceDoesNotMutateReceiver(t *testing.T) {
	txt := FromString("abcdef", nil)
	_ = txt.Replace(0, 6, FromString("Z", bold()))

	if txt.String() != "abcdef" {
		t.Errorf("receiver mutated: %q", txt.String())
	}
	if err := txt.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestDeleteAllLeavesZeroRuns(t *testing.T) {
	txt := FromString("abc", bold())

	out := txt.Delete(0, 3)

	if !out.IsEmpty() {
		t.Errorf("expected empty text, got %q", out.String())
	}
	if out.RunCount() != 0 {
		t.Errorf("expected 0 runs, got %d", out.RunCount())
	}
}

func TestDeleteCoalescesIdenticalNeighbors(t *testing.T) {
	// "aaBBcc" where the middle has distinct attributes; deleting the middle
	// should coalesce the identical outer runs into one.
	txt := FromString("aa", nil).
		Append(FromString("BB", bold())).
		Append(FromString("cc", nil))

	out := txt.Delete(2, 4)

	if out.String() != "aacc" {
		t.Errorf("expected %q, got %q", "aacc", out.String())
	}
	if out.RunCount() != 1 {
		t.Errorf("expected 1 coalesced run, got %d", out.RunCount())
	}
	if err := out.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestSlice(t *testing.T) {
	txt := FromString("aa", nil).Append(FromString("bb", bold()))

	out := txt.Slice(1, 3)

	if out.String() != "ab" {
		t.Errorf("expected %q, got %q", "ab", out.String())
	}
	if out.RunCount() != 2 {
		t.Errorf("expected 2 runs, got %d", out.RunCount())
	}
	if err := out.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestSliceClampsBounds(t *testing.T) {
	txt := FromString("abc", nil)

	out := txt.Slice(-2, 100)

	if out.String() != "abc" {
		t.Errorf("expected %q, got %q", "abc", out.String())
	}
}

func TestAttrsAt(t *testing.T) {
	txt := FromString("ab", nil).Append(FromString("cd", bold()))

	if attrs := txt.AttrsAt(0); attrs.Has("bold") {
		t.Error("offset 0 should not be bold")
	}
	if attrs := txt.AttrsAt(3); !attrs.Has("bold") {
		t.Error("offset 3 should be bold")
	}
	if attrs := txt.AttrsAt(10); attrs != nil {
		t.Errorf("out-of-range offset should yield nil, got %v", attrs)
	}
}

func TestStripAttr(t *testing.T) {
	txt := FromString("abcd", bold())

	out := txt.StripAttr(1, 3, "bold")

	if out.String() != "abcd" {
		t.Errorf("text changed: %q", out.String())
	}
	if out.AttrsAt(0).Has("bold") != true {
		t.Error("offset 0 should keep bold")
	}
	if out.AttrsAt(1).Has("bold") {
		t.Error("offset 1 should have bold stripped")
	}
	if out.AttrsAt(2).Has("bold") {
		t.Error("offset 2 should have bold stripped")
	}
	if !out.AttrsAt(3).Has("bold") {
		t.Error("offset 3 should keep bold")
	}
	if err := out.validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestStripAttrAbsentNameIsNoOp(t *testing.T) {
	txt := FromString("ab", bold())

	out := txt.StripAttr(0, 2, "italic")

	if out.RunCount() != 1 {
		t.Errorf("expected 1 run, got %d", out.RunCount())
	}
	if !out.AttrsAt(0).Has("bold") {
		t.Error("bold should survive stripping an absent attribute")
	}
}

func TestAttachmentRoundTrip(t *testing.T) {
	att := &Attachment{Kind: "image", Data: "photo.png"}
	txt := ForAttachment(att, bold())

	if txt.Len() != 1 {
		t.Errorf("attachment should occupy 1 position, got %d", txt.Len())
	}
	got, ok := txt.AttachmentAt(0)
	if !ok {
		t.Fatal("expected attachment at offset 0")
	}
	if got != att {
		t.Error("attachment identity lost")
	}
	if !txt.AttrsAt(0).Has("bold") {
		t.Error("attachment should carry the base attributes")
	}
}

func TestAttachmentAtPlainText(t *testing.T) {
	txt := FromString("abc", nil)

	if _, ok := txt.AttachmentAt(1); ok {
		t.Error("plain text should not report an attachment")
	}
}

// TestInvariantUnderRandomEdits applies a long random sequence of insert,
// delete, replace, and strip operations and checks the run partition
// invariant after each step.
func TestInvariantUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	attrs := []AttrSet{nil, bold(), {"fg": StringValue("red")}, {"n": IntValue(7)}}
	txt := FromString("seed text", nil)

	for i := 0; i < 500; i++ {
		n := txt.Len()
		switch rng.Intn(4) {
		case 0:
			at := rng.Intn(n + 1)
			txt = txt.Insert(at, FromString("ab", attrs[rng.Intn(len(attrs))]))
		case 1:
			if n == 0 {
				continue
			}
			start := rng.Intn(n)
			end := start + rng.Intn(n-start+1)
			txt = txt.Delete(start, end)
		case 2:
			start := rng.Intn(n + 1)
			end := start + rng.Intn(n-start+1)
			txt = txt.Replace(start, end, FromString("xyz", attrs[rng.Intn(len(attrs))]))
		case 3:
			start := rng.Intn(n + 1)
			end := start + rng.Intn(n-start+1)
			txt = txt.StripAttr(start, end, "bold")
		}

		if err := txt.validate(); err != nil {
			t.Fatalf("step %d: invariant violated: %v", i, err)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !StringValue("a").Equal(StringValue("a")) {
		t.Error("equal strings should compare equal")
	}
	if StringValue("a").Equal(IntValue(1)) {
		t.Error("different kinds should not compare equal")
	}
	h := &Attachment{}
	if !HandleValue(h).Equal(HandleValue(h)) {
		t.Error("same handle should compare equal")
	}
	if HandleValue(h).Equal(HandleValue(&Attachment{})) {
		t.Error("distinct handles should not compare equal")
	}
}

func TestAttrSetMergeOverlayWins(t *testing.T) {
	base := AttrSet{"a": IntValue(1), "b": IntValue(2)}
	overlay := AttrSet{"b": IntValue(3)}

	out := base.Merge(overlay)

	if out["a"].Int() != 1 {
		t.Errorf("expected a=1, got %v", out["a"])
	}
	if out["b"].Int() != 3 {
		t.Errorf("expected overlay to win for b, got %v", out["b"])
	}
}
