package linebreak

import (
	"bufio"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

//go:embed testdata/LineBreakTest-trimmed.txt
var conformanceFixture embed.FS

// parseConformanceLine mirrors cmd/lbconform's parseTestLine: it decodes
// one UCD-format conformance line into the text it encodes and, for
// every byte offset between two encoded code points, whether a break is
// expected there.
func parseConformanceLine(line string) (text string, wantBreak map[int]bool, err error) {
	fields := strings.Fields(line)
	var sb strings.Builder
	wantBreak = make(map[int]bool)
	for _, f := range fields {
		switch f {
		case "÷":
			wantBreak[sb.Len()] = true
		case "×":
			wantBreak[sb.Len()] = false
		default:
			v, perr := strconv.ParseInt(f, 16, 32)
			if perr != nil {
				return "", nil, fmt.Errorf("unrecognised token %q", f)
			}
			sb.WriteRune(rune(v))
		}
	}
	text = sb.String()
	delete(wantBreak, 0)
	delete(wantBreak, len(text))
	return text, wantBreak, nil
}

func TestConformanceFixture(t *testing.T) {
	raw, err := conformanceFixture.ReadFile("testdata/LineBreakTest-trimmed.txt")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	c, err := NewChecker()
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	cases := 0
	scanner := bufio.NewScanner(strings.NewReader(string(raw)))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		text, wantBreak, perr := parseConformanceLine(line)
		if perr != nil {
			t.Fatalf("line %d: %v", lineNum, perr)
		}

		cases++
		c.SetText(text)
		for pos, want := range wantBreak {
			got, err := c.IsBreakAt(pos)
			if err != nil {
				t.Fatalf("line %d: IsBreakAt(%d) on %q: %v", lineNum, pos, text, err)
			}
			gotBreak := got == MANDATORY || got == ALLOWED
			if gotBreak != want {
				t.Errorf("line %d: %q at byte %d: want break=%v, got %s", lineNum, text, pos, want, got)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanning fixture: %v", err)
	}
	if cases == 0 {
		t.Fatal("fixture produced no test cases")
	}
}
