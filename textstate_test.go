package linebreak

import "testing"

const eAcute = 0x00E9  // precomposed LATIN SMALL LETTER E WITH ACUTE
const combAcute = 0x0301 // COMBINING ACUTE ACCENT

func TestNewTextStateDecodesASCII(t *testing.T) {
	classes, err := LoadClassTable("v17")
	if err != nil {
		t.Fatalf("LoadClassTable: %v", err)
	}
	ts := NewTextState("Hello", classes, DefaultResolution)
	if got := string(ts.CodePoints()); got != "Hello" {
		t.Errorf("CodePoints() = %q, want %q", got, "Hello")
	}
	for i, want := range []LineBreakClass{AL, AL, AL, AL, AL} {
		if c, _ := ts.classAt(i); c != want {
			t.Errorf("classAt(%d) = %s, want %s", i, c, want)
		}
	}
}

func TestCombiningSequenceAbsorption(t *testing.T) {
	classes, err := LoadClassTable("v17")
	if err != nil {
		t.Fatalf("LoadClassTable: %v", err)
	}
	// "e" + U+0301 (combining acute accent): the CM should be absorbed
	// into the preceding base, shrinking the transformed view by one.
	ts := NewTextState(string([]rune{'e', combAcute}), classes, DefaultResolution)
	if len(ts.classesWoCS) != 1 {
		t.Fatalf("classesWoCS has %d entries, want 1", len(ts.classesWoCS))
	}
	if ts.classesWoCS[0] != AL {
		t.Errorf("classesWoCS[0] = %s, want AL", ts.classesWoCS[0])
	}
	if ts.offsetsCombiningSeqs[2] != 1 {
		t.Errorf("offsetsCombiningSeqs[2] = %d, want 1", ts.offsetsCombiningSeqs[2])
	}
}

func TestCombiningSequenceOrphanReclassification(t *testing.T) {
	classes, err := LoadClassTable("v17")
	if err != nil {
		t.Fatalf("LoadClassTable: %v", err)
	}
	// A CM with no preceding base (text starts with a combining mark)
	// reclassifies as AL rather than being absorbed or dropped.
	ts := NewTextState(string([]rune{combAcute, 'x'}), classes, DefaultResolution)
	if len(ts.classesWoCS) != 2 {
		t.Fatalf("classesWoCS has %d entries, want 2", len(ts.classesWoCS))
	}
	if ts.classesWoCS[0] != AL {
		t.Errorf("classesWoCS[0] = %s, want AL", ts.classesWoCS[0])
	}
	if ts.codepointsWoCS[0] != 'A' {
		t.Errorf("codepointsWoCS[0] = %q, want 'A'", ts.codepointsWoCS[0])
	}
}

func TestIsByteBoundary(t *testing.T) {
	classes, err := LoadClassTable("v17")
	if err != nil {
		t.Fatalf("LoadClassTable: %v", err)
	}
	// U+00E9 encodes as two UTF-8 bytes; byte offset 1 is inside it.
	ts := NewTextState(string([]rune{eAcute}), classes, DefaultResolution)
	if ts.isByteBoundary(1) {
		t.Error("offset 1 should not be a boundary inside a 2-byte encoding")
	}
	if !ts.isByteBoundary(0) || !ts.isByteBoundary(2) {
		t.Error("offsets 0 and 2 should be boundaries")
	}
}

func TestCodepointIndex(t *testing.T) {
	classes, err := LoadClassTable("v17")
	if err != nil {
		t.Fatalf("LoadClassTable: %v", err)
	}
	ts := NewTextState(string([]rune{'a', eAcute, ' ', 'b'}), classes, DefaultResolution)
	// bytes: a(1) U+00E9(2) space(1) b(1) -> byte offsets 0,1,3,4,5
	if got := ts.codepointIndex(0); got != 0 {
		t.Errorf("codepointIndex(0) = %d, want 0", got)
	}
	if got := ts.codepointIndex(3); got != 2 {
		t.Errorf("codepointIndex(3) = %d, want 2", got)
	}
	if got := ts.codepointIndex(5); got != 4 {
		t.Errorf("codepointIndex(5) = %d, want 4", got)
	}
}
