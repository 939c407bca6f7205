package engine

import (
	"strings"
	"testing"

	"github.com/dshills/inkwell/internal/engine/attrtext"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/engine/typing"
)

func newEngine(content string) *Engine {
	buf := buffer.NewFromText(attrtext.FromString(content, nil))
	return New(buf, typing.New())
}

func upper(t attrtext.Text) attrtext.Text {
	out := attrtext.Empty()
	for _, r := range t.Runs() {
		span := t.Slice(r.Start, r.End)
		out = out.Append(attrtext.FromString(strings.ToUpper(span.String()), t.AttrsAt(r.Start)))
	}
	return out
}

func TestTransformSelectedText(t *testing.T) {
	e := newEngine("hello world")
	e.Buffer().SetSelection(buffer.NewSelection(0, 5))

	e.TransformSelectedText(upper)

	if got := e.Buffer().String(); got != "HELLO world" {
		t.Errorf("expected %q, got %q", "HELLO world", got)
	}
}

func TestTransformSelectedTextEmptySelectionIsNoOp(t *testing.T) {
	e := newEngine("hello")
	e.Buffer().SetSelection(buffer.NewCursorSelection(2))

	e.TransformSelectedText(upper)

	if got := e.Buffer().String(); got != "hello" {
		t.Errorf("empty selection should be a no-op, got %q", got)
	}
}

func TestTransformSelectedTextUpdatesSelection(t *testing.T) {
	e := newEngine("abc def")
	e.Buffer().SetSelection(buffer.NewSelection(4, 7))

	e.TransformSelectedText(func(attrtext.Text) attrtext.Text {
		return attrtext.FromString("defdef", nil)
	})

	sel := e.Buffer().Selection().Range()
	if sel.Start != 4 || sel.End != 10 {
		t.Errorf("expected selection [4:10) covering the replacement, got %s", sel)
	}
}

func TestTransformTextAtRangeFullyBeyondIsNoOp(t *testing.T) {
	e := newEngine("abcdef")

	e.TransformTextAtRange(buffer.NewRange(10, 15), upper)

	if got := e.Buffer().String(); got != "abcdef" {
		t.Errorf("range beyond buffer should be a no-op, got %q", got)
	}
}

func TestTransformTextAtRangePartlyBeyondClips(t *testing.T) {
	e := newEngine("abcdef")

	e.TransformTextAtRange(buffer.NewRange(4, 20), upper)

	if got := e.Buffer().String(); got != "abcdEF" {
		t.Errorf("expected only the in-bounds portion transformed, got %q", got)
	}
}

func TestTransformTextAtRangeReceivesRangedText(t *testing.T) {
	e := newEngine("abcdef")
	var seen string

	e.TransformTextAtRange(buffer.NewRange(1, 4), func(in attrtext.Text) attrtext.Text {
		seen = in.String()
		return in
	})

	if seen != "bcd" {
		t.Errorf("transformer should see %q, got %q", "bcd", seen)
	}
}

func TestInsertPlainTextTaggedWithTypingAttributes(t *testing.T) {
	e := newEngine("xy")
	e.Typing().Activate("bold", attrtext.BoolValue(true))

	e.InsertPlainText("!", 1)

	if got := e.Buffer().String(); got != "x!y" {
		t.Errorf("expected %q, got %q", "x!y", got)
	}
	if !e.Buffer().Text().AttrsAt(1).Has("bold") {
		t.Error("inserted text should carry the active attribute")
	}
}

func TestInsertPlainTextLocationClamped(t *testing.T) {
	e := newEngine("ab")

	e.InsertPlainText("Z", 100)

	if got := e.Buffer().String(); got != "abZ" {
		t.Errorf("expected insert clamped to end, got %q", got)
	}
}

func TestInsertAttributedTextKeepsOwnAttributes(t *testing.T) {
	e := newEngine("")
	e.Typing().Activate("bold", attrtext.BoolValue(true))

	e.InsertAttributedText(attrtext.FromString("a", attrtext.AttrSet{"fg": attrtext.StringValue("red")}), 0)

	attrs := e.Buffer().Text().AttrsAt(0)
	if attrs.Has("bold") {
		t.Error("attributed insert should ignore the activation stack")
	}
	if !attrs.Has("fg") {
		t.Error("attributed insert should keep its own attributes")
	}
}

func TestInsertAttachmentOccupiesOnePosition(t *testing.T) {
	e := newEngine("ab")

	e.InsertAttachment(&attrtext.Attachment{Kind: "image"}, 1)

	if e.Buffer().Len() != 3 {
		t.Errorf("expected length 3, got %d", e.Buffer().Len())
	}
	if _, ok := e.Buffer().Text().AttachmentAt(1); !ok {
		t.Error("expected attachment at offset 1")
	}
}

func TestRemoveTextForRangeClipsExample(t *testing.T) {
	// A range running past the end truncates to the document tail.
	e := newEngine("abcdef")

	e.RemoveTextForRange(buffer.NewRange(4, 14))

	if got := e.Buffer().String(); got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
}

func TestRemoveTextForRangeStartAtEndIsNoOp(t *testing.T) {
	e := newEngine("abc")

	e.RemoveTextForRange(buffer.NewRange(3, 10))

	if got := e.Buffer().String(); got != "abc" {
		t.Errorf("expected no-op, got %q", got)
	}
}

func TestRemoveTextForRangeStartBeyondIsNoOp(t *testing.T) {
	e := newEngine("abc")

	e.RemoveTextForRange(buffer.NewRange(7, 9))

	if got := e.Buffer().String(); got != "abc" {
		t.Errorf("expected no-op, got %q", got)
	}
}

func TestActivationRoundTripLeavesNoResidue(t *testing.T) {
	e := newEngine("")
	e.Typing().Activate("x", attrtext.IntValue(1))
	e.Typing().Deactivate("x")

	e.InsertPlainText("abc", 0)

	attrs := e.Buffer().Text().AttrsAt(0)
	if attrs.Has("x") {
		t.Error("deactivated attribute should leave no residue on inserted text")
	}
	if !attrs.Equal(e.Typing().Base()) {
		t.Errorf("inserted attrs should equal base typing attrs, got %v", attrs)
	}
}

func TestStripAttribute(t *testing.T) {
	e := newEngine("")
	e.InsertAttributedText(attrtext.FromString("abcd", attrtext.AttrSet{"bold": attrtext.BoolValue(true)}), 0)

	e.StripAttribute(buffer.NewRange(1, 3), "bold")

	txt := e.Buffer().Text()
	if txt.AttrsAt(1).Has("bold") || txt.AttrsAt(2).Has("bold") {
		t.Error("bold should be stripped inside the range")
	}
	if !txt.AttrsAt(0).Has("bold") || !txt.AttrsAt(3).Has("bold") {
		t.Error("bold should survive outside the range")
	}
}

func TestStripAttributeDoesNotTouchActivationStack(t *testing.T) {
	e := newEngine("abc")
	e.Typing().Activate("bold", attrtext.BoolValue(true))

	e.StripAttribute(buffer.NewRange(0, 3), "bold")

	if !e.Typing().IsActive("bold") {
		t.Error("stripping from text must not deactivate the attribute")
	}
}

func TestChangeFuncObservesMutations(t *testing.T) {
	var changes []Change
	buf := buffer.NewFromText(attrtext.FromString("abc", nil))
	e := New(buf, typing.New(), WithChangeFunc(func(c Change) {
		changes = append(changes, c)
	}))

	e.InsertPlainText("x", 0)
	e.RemoveTextForRange(buffer.NewRange(0, 1))

	if len(changes) != 2 {
		t.Fatalf("expected 2 change notifications, got %d", len(changes))
	}
	if changes[0].NewRange.Len() != 1 {
		t.Errorf("insert should report a 1-char new range, got %s", changes[0].NewRange)
	}
	if changes[1].NewRange.Len() != 0 {
		t.Errorf("delete should report an empty new range, got %s", changes[1].NewRange)
	}
}

func TestOperationsPreserveRunInvariant(t *testing.T) {
	e := newEngine("hello world")
	e.Typing().Activate("bold", attrtext.BoolValue(true))

	e.InsertPlainText("X", 5)
	e.Typing().Deactivate("bold")
	e.InsertPlainText("Y", 0)
	e.RemoveTextForRange(buffer.NewRange(2, 4))
	e.TransformTextAtRange(buffer.NewRange(0, 3), upper)

	// The exported surface cannot violate the partition, but verify the
	// coalesced shape is sane: runs cover the text exactly.
	txt := e.Buffer().Text()
	total := 0
	for _, r := range txt.Runs() {
		total += r.Len()
	}
	if total != txt.Len() {
		t.Errorf("runs cover %d of %d characters", total, txt.Len())
	}
}
