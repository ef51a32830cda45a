package linebreak

// Segment is one line segment produced by [Checker.Iterate]: the text
// between the previous break opportunity (or the start of text) and
// the one at Index, together with the kind of break that ends it
// (BreakAt).
// Index is the byte position of that break; the last segment's Index
// equals the length of the original text (spec.md §8 property 8).
type Segment struct {
	Index   int
	Text    string
	BreakAt BreakType
}

// SegmentIterator walks the text installed in a [Checker] one line
// segment at a time, in the style of the teacher's FirstLineSegment /
// FirstLineSegmentContext loop: each call to Next advances past exactly
// one break opportunity and returns the text up to it, so that
// concatenating every returned segment's Text reconstructs the
// original string exactly (spec.md §8 property 5).
type SegmentIterator struct {
	checker *Checker
	ts      *TextState
	text    string
	pos     int
	done    bool
}

// Iterate returns a [SegmentIterator] over the Checker's currently
// installed text. Calling [Checker.SetText] after creating an iterator
// does not affect it; the iterator captures the text at creation time.
func (c *Checker) Iterate() *SegmentIterator {
	text := c.Text()
	ts := NewTextState(text, c.classes, c.resolve)
	return &SegmentIterator{checker: c, ts: ts, text: text}
}

// Next returns the next segment, advancing the iterator. ok is false
// once the entire text has been consumed.
func (it *SegmentIterator) Next() (seg Segment, ok bool) {
	if it.done {
		return Segment{}, false
	}
	if it.pos >= len(it.text) {
		it.done = true
		return Segment{}, false
	}

	start := it.pos
	for p := start + 1; p <= len(it.text); p++ {
		if !it.ts.isByteBoundary(p) {
			continue
		}
		bt, err := it.checker.isBreakAtText(it.ts, p)
		if err != nil {
			it.done = true
			return Segment{}, false
		}
		if bt == ALLOWED || bt == MANDATORY || p == len(it.text) {
			it.pos = p
			if p >= len(it.text) {
				it.done = true
			}
			return Segment{Index: p, Text: it.text[start:p], BreakAt: bt}, true
		}
	}

	it.done = true
	return Segment{Index: len(it.text), Text: it.text[start:], BreakAt: MANDATORY}, true
}

// Segments collects every segment of the Checker's installed text by
// draining a [SegmentIterator]. Convenient for tests and small inputs;
// large texts should drive [SegmentIterator.Next] directly.
func (c *Checker) Segments() []Segment {
	it := c.Iterate()
	var segs []Segment
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		segs = append(segs, seg)
	}
	return segs
}
