package linebreak

import (
	"sort"
	"unicode/utf8"
)

// TextState holds everything the matcher needs about one piece of text: its
// decoded code points, their resolved Line_Break classes, the combining-
// sequence-collapsed view used by LB9/LB10, and the byte-offset bookkeeping
// that lets [Checker.IsBreakAt] translate a code-unit position into a
// code-point index.
//
// Go strings are UTF-8 byte sequences rather than UTF-16 code-unit
// sequences, so the "surrogate pair" bookkeeping of spec.md §4.4 is
// generalised here from "a position between a UTF-16 high and low
// surrogate" to its natural Go analogue: "a byte offset that falls inside
// the multi-byte UTF-8 encoding of one code point". Both say the same
// thing — a break position must always land on a code-point boundary —
// just against a different host encoding. See DESIGN.md.
type TextState struct {
	text string

	codepoints []rune
	classes    []LineBreakClass
	gc         []GeneralCategory

	// byteOffsets[i] is the byte offset of codepoint i; byteOffsets[n] is
	// len(text). Sorted and used to translate a byte position into a
	// code-point index via binary search.
	byteOffsets []int

	// Combining-sequence-collapsed view (LB9 absorption, LB10
	// reclassification), computed once per set_text.
	codepointsWoCS []rune
	classesWoCS    []LineBreakClass
	gcWoCS         []GeneralCategory

	// offsetsCombiningSeqs[i] is the number of code points removed from
	// the original sequence by index i; length n+1.
	offsetsCombiningSeqs []int

	// absorbed[i] is true when original codepoint i is a CM/ZWJ that LB9
	// folded into the preceding base, i.e. the boundary immediately
	// before it sits inside a combining character sequence and can never
	// be broken. Length n.
	absorbed []bool

	// applyOffset selects the combining-sequence view when true. It is
	// always false except during the body of a single IsBreakAt call.
	applyOffset bool
}

// NewTextState decodes text and resolves its Line_Break classes using
// table and resolve, then precomputes the combining-sequence view.
func NewTextState(text string, table *ClassTable, resolve ResolutionCriterion) *TextState {
	if resolve == nil {
		resolve = DefaultResolution
	}

	n := utf8.RuneCountInString(text)
	ts := &TextState{
		text:        text,
		codepoints:  make([]rune, 0, n),
		classes:     make([]LineBreakClass, 0, n),
		gc:          make([]GeneralCategory, 0, n),
		byteOffsets: make([]int, 0, n+1),
	}

	for i, r := range text {
		ts.byteOffsets = append(ts.byteOffsets, i)
		raw, gc := table.Lookup(r)
		ts.codepoints = append(ts.codepoints, r)
		ts.classes = append(ts.classes, resolve(raw, gc))
		ts.gc = append(ts.gc, gc)
	}
	ts.byteOffsets = append(ts.byteOffsets, len(text))

	ts.buildCombiningSequenceView()
	return ts
}

// Text returns the original input text.
func (ts *TextState) Text() string { return ts.text }

// CodePoints returns the decoded code-point sequence of the original
// (non-transformed) view.
func (ts *TextState) CodePoints() []rune { return ts.codepoints }

// buildCombiningSequenceView implements spec.md §4.3 (LB9/LB10): scan the
// resolved-class array once, absorbing CM/ZWJ into the preceding base
// (LB9) unless there is no preceding base to absorb into, in which case
// the CM/ZWJ is reclassified as if it were AL/Lu/Narrow/Not-ExtPict (LB10)
// by substituting the literal code point U+0041 ("A"), whose real table
// properties already are Lu/Narrow/not-Extended_Pictographic.
func (ts *TextState) buildCombiningSequenceView() {
	n := len(ts.classes)
	ts.codepointsWoCS = make([]rune, 0, n)
	ts.classesWoCS = make([]LineBreakClass, 0, n)
	ts.gcWoCS = make([]GeneralCategory, 0, n)
	ts.offsetsCombiningSeqs = make([]int, 0, n+1)
	ts.absorbed = make([]bool, n)

	offset := 0
	var prevClass LineBreakClass
	havePrev := false
	for i := 0; i < n; i++ {
		ts.offsetsCombiningSeqs = append(ts.offsetsCombiningSeqs, offset)
		class := ts.classes[i]
		if class == CM || class == ZWJ {
			noPrecedingBase := !havePrev || prevClass == SP || prevClass == BK || prevClass == CR || prevClass == LF || prevClass == NL || prevClass == ZW
			if noPrecedingBase {
				ts.codepointsWoCS = append(ts.codepointsWoCS, 'A')
				ts.classesWoCS = append(ts.classesWoCS, AL)
				ts.gcWoCS = append(ts.gcWoCS, "Lu")
				prevClass = AL
				havePrev = true
				continue
			}
			ts.absorbed[i] = true
			offset++
			continue
		}
		ts.codepointsWoCS = append(ts.codepointsWoCS, ts.codepoints[i])
		ts.classesWoCS = append(ts.classesWoCS, class)
		ts.gcWoCS = append(ts.gcWoCS, ts.gc[i])
		prevClass = class
		havePrev = true
	}
	ts.offsetsCombiningSeqs = append(ts.offsetsCombiningSeqs, offset)
}

// isByteBoundary reports whether byte offset pos lies on a code-point
// boundary (the start of a UTF-8 encoding, or one past the end of the
// text). A non-boundary offset is the Go analogue of "strictly between
// the two code units of a surrogate pair": always FORBIDDEN.
func (ts *TextState) isByteBoundary(pos int) bool {
	if pos == 0 || pos == len(ts.text) {
		return true
	}
	if pos < 0 || pos > len(ts.text) {
		return false
	}
	return utf8.RuneStart(ts.text[pos])
}

// codepointIndex translates a byte offset that is known to be a boundary
// into its code-point index via binary search over byteOffsets.
func (ts *TextState) codepointIndex(pos int) int {
	return sort.Search(len(ts.byteOffsets), func(i int) bool { return ts.byteOffsets[i] >= pos })
}

// interiorToCombiningSequence reports whether the boundary immediately
// before original codepoint index i sits inside a combining character
// sequence (LB9): i.e. codepoint i was absorbed into the base at i-1
// rather than starting a cluster of its own.
func (ts *TextState) interiorToCombiningSequence(i int) bool {
	return i >= 0 && i < len(ts.absorbed) && ts.absorbed[i]
}

// n returns the number of code points in the active view.
func (ts *TextState) n() int {
	if ts.applyOffset {
		return len(ts.classesWoCS)
	}
	return len(ts.classes)
}

func (ts *TextState) classAt(i int) (LineBreakClass, bool) {
	if ts.applyOffset {
		if i < 0 || i >= len(ts.classesWoCS) {
			return "", false
		}
		return ts.classesWoCS[i], true
	}
	if i < 0 || i >= len(ts.classes) {
		return "", false
	}
	return ts.classes[i], true
}

func (ts *TextState) codepointAt(i int) (rune, bool) {
	if ts.applyOffset {
		if i < 0 || i >= len(ts.codepointsWoCS) {
			return 0, false
		}
		return ts.codepointsWoCS[i], true
	}
	if i < 0 || i >= len(ts.codepoints) {
		return 0, false
	}
	return ts.codepoints[i], true
}

func (ts *TextState) gcAt(i int) (GeneralCategory, bool) {
	if ts.applyOffset {
		if i < 0 || i >= len(ts.gcWoCS) {
			return "", false
		}
		return ts.gcWoCS[i], true
	}
	if i < 0 || i >= len(ts.gc) {
		return "", false
	}
	return ts.gc[i], true
}
