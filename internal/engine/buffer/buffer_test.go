package buffer

import (
	"testing"

	"github.com/dshills/inkwell/internal/engine/attrtext"
	"github.com/dshills/inkwell/internal/geom"
)

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if !b.Selection().IsEmpty() {
		t.Error("new buffer should have an empty selection")
	}
}

func TestSetSelectionClamps(t *testing.T) {
	b := NewFromText(attrtext.FromString("hello", nil))

	b.SetSelection(NewSelection(-3, 100))

	sel := b.Selection()
	if sel.Anchor != 0 || sel.Head != 5 {
		t.Errorf("expected selection clamped to (0,5), got %s", sel)
	}
}

func TestReplaceUpdatesTextAndClampsSelection(t *testing.T) {
	b := NewFromText(attrtext.FromString("abcdef", nil))
	b.SetSelection(NewSelection(6, 6))

	r := b.Replace(2, 6, attrtext.FromString("X", nil))

	if b.String() != "abX" {
		t.Errorf("expected %q, got %q", "abX", b.String())
	}
	if r.Start != 2 || r.End != 3 {
		t.Errorf("expected replacement range [2:3), got %s", r)
	}
	if b.Selection().Head != 3 {
		t.Errorf("selection should be clamped to 3, got %d", b.Selection().Head)
	}
}

func TestReplaceOutOfBoundsIsNoOp(t *testing.T) {
	b := NewFromText(attrtext.FromString("abc", nil))

	b.Replace(2, 10, attrtext.FromString("X", nil))

	if b.String() != "abc" {
		t.Errorf("out-of-bounds replace should not change the buffer, got %q", b.String())
	}
}

func TestSelectedText(t *testing.T) {
	b := NewFromText(attrtext.FromString("hello world", nil))
	b.SetSelection(NewSelection(6, 11))

	if got := b.SelectedText().String(); got != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
}

func TestSelectedTextBackwardSelection(t *testing.T) {
	b := NewFromText(attrtext.FromString("hello", nil))
	b.SetSelection(NewSelection(4, 1))

	if got := b.SelectedText().String(); got != "ell" {
		t.Errorf("expected %q, got %q", "ell", got)
	}
}

func TestScrollOffset(t *testing.T) {
	b := New()

	b.SetScrollOffset(geom.Offset{X: 0, Y: 42})

	if got := b.ScrollOffset(); got.Y != 42 {
		t.Errorf("expected scroll offset 42, got %v", got)
	}
}

func TestSelectionRangeNormalizes(t *testing.T) {
	sel := NewSelection(7, 3)

	r := sel.Range()
	if r.Start != 3 || r.End != 7 {
		t.Errorf("expected [3:7), got %s", r)
	}
}
