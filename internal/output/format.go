// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/staranto/hexdiff/internal/differ"
)

// ValidBytesPerLine lists the accepted line widths in bytes.
var ValidBytesPerLine = []int{2, 4, 8, 16, 32, 64}

// absentToken stands in for a byte past the end of the shorter input.
const absentToken = "  "

// ValidateBytesPerLine returns an error unless n is one of ValidBytesPerLine.
func ValidateBytesPerLine(n int) error {
	for _, v := range ValidBytesPerLine {
		if v == n {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", ValidBytesPerLine)
}

// Line is one rendered chunk. Left is already padded to the column width so
// Right starts at the same display column on every line.
type Line struct {
	Offset    int
	Left      string
	Right     string
	Differing int
}

// String renders the line as "OFFSET LEFT RIGHT".
func (l Line) String() string {
	return fmt.Sprintf("%08X %s %s", l.Offset, l.Left, l.Right)
}

// Formatter renders chunks of two aligned sequences.
type Formatter struct {
	BytesPerLine int
	Marker       Marker
}

// NewFormatter validates bytesPerLine and returns a Formatter. A nil marker
// means plain marking.
func NewFormatter(bytesPerLine int, marker Marker) (*Formatter, error) {
	if err := ValidateBytesPerLine(bytesPerLine); err != nil {
		return nil, fmt.Errorf("invalid bytes per line %d: %w", bytesPerLine, err)
	}
	if marker == nil {
		marker = PlainMarker{}
	}
	return &Formatter{BytesPerLine: bytesPerLine, Marker: marker}, nil
}

// ColumnWidth is the display width reserved for the left column. With a
// marker that adds no visible width this is BytesPerLine * 3.
func (f *Formatter) ColumnWidth() int {
	cell := lipgloss.Width(f.Marker.Same("00"))
	return f.BytesPerLine * (cell + 1)
}

// LineCount returns the number of chunks needed to cover n positions.
func (f *Formatter) LineCount(n int) int {
	return (n + f.BytesPerLine - 1) / f.BytesPerLine
}

// Format renders the chunk of a and b starting at offset. Positions at or
// beyond the aligned length are left out, so the final chunk may be short.
func (f *Formatter) Format(a, b differ.Sequence, offset int) Line {
	end := min(offset+f.BytesPerLine, max(a.Len(), b.Len()))

	line := Line{Offset: offset}
	left := make([]string, 0, f.BytesPerLine)
	right := make([]string, 0, f.BytesPerLine)

	for i := offset; i < end; i++ {
		ta, tb := token(a, i), token(b, i)
		if ta == tb {
			left = append(left, f.Marker.Same(ta))
			right = append(right, f.Marker.Same(tb))
			continue
		}
		line.Differing++
		left = append(left, f.Marker.Removed(ta))
		right = append(right, f.Marker.Added(tb))
	}

	line.Left = pad(strings.Join(left, " "), f.ColumnWidth())
	line.Right = strings.Join(right, " ")
	return line
}

// token formats position i of s as two uppercase hex digits, or blanks when
// the position is absent.
func token(s differ.Sequence, i int) string {
	v, ok := s.At(i)
	if !ok {
		return absentToken
	}
	return fmt.Sprintf("%02X", v)
}

// pad appends spaces until the mark-stripped width of s reaches width.
func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
