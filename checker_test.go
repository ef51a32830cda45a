package linebreak

import "testing"

func TestNewCheckerDefaults(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	if c.Text() != "" {
		t.Errorf("Text() = %q before SetText, want empty", c.Text())
	}
}

func TestWithRuleSetV16AlsoSelectsV16ClassTable(t *testing.T) {
	c, err := NewChecker(WithRuleSet(RuleSetV16))
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	want, err := LoadClassTable("v16")
	if err != nil {
		t.Fatalf("LoadClassTable(v16): %v", err)
	}
	if c.classes != want {
		t.Error("WithRuleSet(RuleSetV16) did not also switch the default class table to v16")
	}
}

func TestNewCheckerUnknownRuleSet(t *testing.T) {
	if _, err := NewChecker(WithRuleSet("v99")); err == nil {
		t.Fatal("expected error for unknown rule set")
	}
}

func TestIsBreakAtRequiresText(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	if _, err := c.IsBreakAt(0); err == nil {
		t.Fatal("expected error when no text installed")
	}
}

func TestIsBreakAtOutOfRange(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("ab")
	if _, err := c.IsBreakAt(-1); err == nil {
		t.Error("expected error for negative position")
	}
	if _, err := c.IsBreakAt(3); err == nil {
		t.Error("expected error for position past end of text")
	}
}

func TestIsBreakAtSpaceAllowsBreak(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("ab cd")
	// "ab cd": positions are a(0) b(1) sp(2) c(3) d(4). The break after
	// the space at byte offset 3 is allowed (LB18); the position before
	// it, inside "ab", is forbidden between two AL code points (LB28 keeps
	// adjacent letters together).
	bt, err := c.IsBreakAt(3)
	if err != nil {
		t.Fatalf("IsBreakAt(3): %v", err)
	}
	if bt != ALLOWED {
		t.Errorf("IsBreakAt(3) = %s, want ALLOWED", bt)
	}
	bt, err = c.IsBreakAt(1)
	if err != nil {
		t.Fatalf("IsBreakAt(1): %v", err)
	}
	if bt != FORBIDDEN {
		t.Errorf("IsBreakAt(1) = %s, want FORBIDDEN", bt)
	}
}

func TestIsBreakAtLineFeedIsMandatory(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("a\nb")
	bt, err := c.IsBreakAt(2)
	if err != nil {
		t.Fatalf("IsBreakAt(2): %v", err)
	}
	if bt != MANDATORY {
		t.Errorf("IsBreakAt(2) = %s, want MANDATORY", bt)
	}
}

func TestIsBreakAtCRLFStaysTogether(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("a\r\nb")
	// Position between CR and LF (byte offset 2) must never break
	// (LB5a); the mandatory break lands after the LF (byte offset 3).
	bt, err := c.IsBreakAt(2)
	if err != nil {
		t.Fatalf("IsBreakAt(2): %v", err)
	}
	if bt != FORBIDDEN {
		t.Errorf("IsBreakAt(2) = %s, want FORBIDDEN", bt)
	}
	bt, err = c.IsBreakAt(3)
	if err != nil {
		t.Fatalf("IsBreakAt(3): %v", err)
	}
	if bt != MANDATORY {
		t.Errorf("IsBreakAt(3) = %s, want MANDATORY", bt)
	}
}

func TestIsBreakAtStartOfTextForbidden(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("ab")
	bt, err := c.IsBreakAt(0)
	if err != nil {
		t.Fatalf("IsBreakAt(0): %v", err)
	}
	if bt != FORBIDDEN {
		t.Errorf("IsBreakAt(0) = %s, want FORBIDDEN (LB2)", bt)
	}
}

func TestIsBreakAtEmptyTextIsMandatory(t *testing.T) {
	// spec.md §8 property 3 states IsBreakAt(0) is FORBIDDEN only for
	// non-empty text; for empty text, position 0 is also text_length, so
	// the unconditional "IsBreakAt(text_length) is MANDATORY" property
	// applies instead.
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("")
	bt, err := c.IsBreakAt(0)
	if err != nil {
		t.Fatalf("IsBreakAt(0): %v", err)
	}
	if bt != MANDATORY {
		t.Errorf("IsBreakAt(0) on empty text = %s, want MANDATORY (LB3)", bt)
	}
}

func TestIsBreakAtIdempotent(t *testing.T) {
	// Calling SetText twice with the same string must produce identical
	// verdicts at every position (spec.md §8 property 6).
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	text := "ab cd, ef."
	c.SetText(text)
	var first []BreakType
	for p := 0; p <= len(text); p++ {
		bt, err := c.IsBreakAt(p)
		if err != nil {
			t.Fatalf("IsBreakAt(%d): %v", p, err)
		}
		first = append(first, bt)
	}
	c.SetText(text)
	for p := 0; p <= len(text); p++ {
		bt, err := c.IsBreakAt(p)
		if err != nil {
			t.Fatalf("IsBreakAt(%d) on second pass: %v", p, err)
		}
		if bt != first[p] {
			t.Errorf("position %d: first pass %s, second pass %s", p, first[p], bt)
		}
	}
}

func TestIsBreakAtRegionalIndicatorParity(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	// Two flag sequences back to back: four regional indicators. The
	// only allowed split is between the pairs (LB30a keeps an odd count
	// of preceding RIs together with the next one).
	text := string([]rune{0x1F1FA, 0x1F1F8, 0x1F1EC, 0x1F1E7}) // US, GB
	c.SetText(text)
	mid := 8 // byte offset between the two flag pairs (each RI is 4 bytes)
	bt, err := c.IsBreakAt(mid)
	if err != nil {
		t.Fatalf("IsBreakAt(%d): %v", mid, err)
	}
	if bt != ALLOWED {
		t.Errorf("IsBreakAt(%d) = %s, want ALLOWED (between the two flags)", mid, bt)
	}
	withinFirstPair := 4
	bt, err = c.IsBreakAt(withinFirstPair)
	if err != nil {
		t.Fatalf("IsBreakAt(%d): %v", withinFirstPair, err)
	}
	if bt != FORBIDDEN {
		t.Errorf("IsBreakAt(%d) = %s, want FORBIDDEN (inside one flag)", withinFirstPair, bt)
	}
}

func TestIsBreakAtCombiningMarkNeverBreaksBeforeIt(t *testing.T) {
	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText(string([]rune{'e', 0x0301, ' ', 'x'}))
	bt, err := c.IsBreakAt(1) // between 'e' and the combining mark
	if err != nil {
		t.Fatalf("IsBreakAt(1): %v", err)
	}
	if bt != FORBIDDEN {
		t.Errorf("IsBreakAt(1) = %s, want FORBIDDEN (LB9 combining sequence)", bt)
	}
}

func TestWithResolutionCriterionOverride(t *testing.T) {
	calls := 0
	custom := func(raw LineBreakClass, gc GeneralCategory) LineBreakClass {
		calls++
		return DefaultResolution(raw, gc)
	}
	c, err := NewChecker(WithResolutionCriterion(custom))
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	c.SetText("hi")
	if calls == 0 {
		t.Error("custom resolution criterion was never invoked")
	}
}
