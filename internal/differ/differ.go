// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Sequence is an immutable run of optional bytes. Positions at or past the end
// of the backing data, but before Len, are absent.
type Sequence struct {
	data   []byte
	length int
}

// Len returns the aligned length of the sequence.
func (s Sequence) Len() int {
	return s.length
}

// At returns the byte at position i and whether it is present.
func (s Sequence) At(i int) (byte, bool) {
	if i < 0 || i >= len(s.data) || i >= s.length {
		return 0, false
	}
	return s.data[i], true
}

// Size returns the number of present bytes.
func (s Sequence) Size() int {
	return len(s.data)
}

// Align extends a and b logically to the longer of the two. Neither input is
// copied or mutated.
func Align(a, b []byte) (Sequence, Sequence) {
	n := max(len(a), len(b))
	return Sequence{data: a, length: n}, Sequence{data: b, length: n}
}

// Stats summarizes a positional comparison.
type Stats struct {
	SizeA     int
	SizeB     int
	Length    int
	Differing int
	// FirstDiff is the offset of the first differing position, or -1.
	FirstDiff int
}

// Identical reports whether no position differs.
func (s Stats) Identical() bool {
	return s.Differing == 0
}

// Compare counts differing positions in two aligned sequences. An absent byte
// facing a present one counts as a difference.
func Compare(a, b Sequence) Stats {
	st := Stats{
		SizeA:     a.Size(),
		SizeB:     b.Size(),
		Length:    max(a.Len(), b.Len()),
		FirstDiff: -1,
	}
	for i := 0; i < st.Length; i++ {
		if Differs(a, b, i) {
			if st.FirstDiff < 0 {
				st.FirstDiff = i
			}
			st.Differing++
		}
	}
	return st
}

// Differs reports whether position i holds different values in a and b.
func Differs(a, b Sequence, i int) bool {
	x, okA := a.At(i)
	y, okB := b.At(i)
	return okA != okB || x != y
}
