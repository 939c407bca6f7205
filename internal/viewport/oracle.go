package viewport

import (
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/geom"
)

// FixedLineOracle is a layout oracle for hosts without a real layout
// engine: a monospaced grid where every line has the same height and every
// character the same width. Lines are delimited by newline characters in
// the buffer.
type FixedLineOracle struct {
	Buf        *buffer.Buffer
	LineHeight float64
	CharWidth  float64
}

// NewFixedLineOracle creates an oracle over the given buffer.
func NewFixedLineOracle(buf *buffer.Buffer, lineHeight, charWidth float64) *FixedLineOracle {
	return &FixedLineOracle{Buf: buf, LineHeight: lineHeight, CharWidth: charWidth}
}

// LineContaining returns the range of the line holding the given offset,
// excluding the trailing newline.
func (o *FixedLineOracle) LineContaining(offset int) buffer.Range {
	runes := []rune(o.Buf.String())
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	start := offset
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return buffer.NewRange(start, end)
}

// RectForRange returns the bounding rectangle of the range on the grid.
// A range spanning multiple lines is as tall as the lines it covers.
func (o *FixedLineOracle) RectForRange(r buffer.Range) geom.Rect {
	runes := []rune(o.Buf.String())
	startLine, startCol := o.locate(runes, r.Start)
	endLine, endCol := o.locate(runes, r.End)

	x := float64(startCol) * o.CharWidth
	y := float64(startLine) * o.LineHeight
	h := float64(endLine-startLine+1) * o.LineHeight

	var w float64
	if startLine == endLine {
		w = float64(endCol-startCol) * o.CharWidth
	} else {
		w = o.widestLine(runes, r) * o.CharWidth
		x = 0
	}
	return geom.Rect{X: x, Y: y, W: w, H: h}
}

// locate returns the 0-indexed line and column of an offset.
func (o *FixedLineOracle) locate(runes []rune, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// widestLine returns the length of the longest line segment inside r.
func (o *FixedLineOracle) widestLine(runes []rune, r buffer.Range) float64 {
	widest, current := 0, 0
	for i := r.Start; i < r.End && i < len(runes); i++ {
		if runes[i] == '\n' {
			if current > widest {
				widest = current
			}
			current = 0
			continue
		}
		current++
	}
	if current > widest {
		widest = current
	}
	return float64(widest)
}
