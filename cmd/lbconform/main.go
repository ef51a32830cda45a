// Command lbconform runs this module's Checker against the Unicode
// line-breaking conformance test file (LineBreakTest.txt from the UCD)
// and reports pass/fail counts, grounding the library's behaviour
// against the reference data set rather than only the package's own
// unit tests.
//
// Usage:
//
//	go run ./cmd/lbconform -file LineBreakTest.txt [-rules v17]
//
// Each test line has the shape:
//
//	÷ 0041 × 0308 ÷ 0020 ÷	# comment
//
// alternating a verdict (÷ ALLOWED, × FORBIDDEN, or × with the line's
// implicit leading/trailing ÷ standing for a MANDATORY-or-ALLOWED
// boundary the conformance file does not distinguish at sot/eot) and a
// hex code point. A test passes when the library's verdict at every
// internal boundary agrees on breakable-or-not: ÷ means
// MANDATORY|ALLOWED, × means FORBIDDEN.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/scalecode-solutions/linebreak"
)

func main() {
	log.SetPrefix("lbconform: ")
	log.SetFlags(0)

	file := flag.String("file", "", "path to LineBreakTest.txt")
	rules := flag.String("rules", "v17", "rule set: v16 or v17")
	verbose := flag.Bool("v", false, "print every failing line")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	rs := linebreak.RuleSetV17
	if *rules == "v16" {
		rs = linebreak.RuleSetV16
	}
	checker, err := linebreak.NewChecker(linebreak.WithRuleSet(rs))
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	total, failed := 0, 0
	scanner := bufio.NewScanner(f)
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

		text, wantBreak, err := parseTestLine(line)
		if err != nil {
			log.Printf("line %d: %v", lineNum, err)
			continue
		}

		total++
		checker.SetText(text)
		ok := true
		for pos, want := range wantBreak {
			got, err := checker.IsBreakAt(pos)
			if err != nil {
				log.Printf("line %d: IsBreakAt(%d): %v", lineNum, pos, err)
				ok = false
				break
			}
			gotBreak := got == linebreak.MANDATORY || got == linebreak.ALLOWED
			if gotBreak != want {
				ok = false
				if *verbose {
					fmt.Printf("line %d: mismatch at byte %d: want break=%v got=%v (%q)\n", lineNum, pos, want, got, text)
				}
				break
			}
		}
		if !ok {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d/%d passed\n", total-failed, total)
	if failed > 0 {
		os.Exit(1)
	}
}

// parseTestLine decodes one conformance line into the text it encodes
// and, for every byte offset that is a boundary between two encoded
// code points, whether that boundary is expected to be breakable.
func parseTestLine(line string) (text string, wantBreak map[int]bool, err error) {
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
