package linebreak

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenKind enumerates the lexical categories of the rule mini-language
// (spec.md §4.1). Recognition priority when scanning: verdict symbols,
// keywords, modifiers, brackets, the alternation marker (which is dropped
// — it is the default join inside a set), code-point literals, gc(..)
// literals, then a bare class identifier.
type tokenKind int

const (
	tokVerdict tokenKind = iota
	tokAny
	tokSot
	tokEot
	tokEastAsian
	tokExtPict
	tokModNot
	tokModAnd
	tokModAndNot
	tokModStar
	tokOpenSet
	tokCloseSet
	tokOpenSeq
	tokCloseSeq
	tokAlt
	tokCodepoint
	tokGC
	tokClass
)

type token struct {
	kind tokenKind
	text string // raw token text
	cp   rune   // decoded code point, for tokCodepoint
	gc   GeneralCategory
	verdict BreakType
}

var (
	classPattern = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)
	gcPattern    = regexp.MustCompile(`^gc\(([A-Za-z]{2})\)$`)
	cpPattern    = regexp.MustCompile(`^\\u([0-9A-Fa-f]{4,6})$`)
)

// scan tokenizes a single rule's pattern string (the whitespace-separated
// form described in spec.md §4.1).
func scan(raw string) ([]token, error) {
	fields := strings.Fields(raw)
	tokens := make([]token, 0, len(fields))
	for _, f := range fields {
		tok, err := scanOne(f)
		if err != nil {
			return nil, &ParseError{Rule: raw, Token: f, Msg: err.Error()}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func scanOne(f string) (token, error) {
	switch f {
	case "×":
		return token{kind: tokVerdict, text: f, verdict: FORBIDDEN}, nil
	case "!":
		return token{kind: tokVerdict, text: f, verdict: MANDATORY}, nil
	case "÷":
		return token{kind: tokVerdict, text: f, verdict: ALLOWED}, nil
	case "any":
		return token{kind: tokAny, text: f}, nil
	case "sot":
		return token{kind: tokSot, text: f}, nil
	case "eot":
		return token{kind: tokEot, text: f}, nil
	case "eastasian":
		return token{kind: tokEastAsian, text: f}, nil
	case "extpict":
		return token{kind: tokExtPict, text: f}, nil
	case "^":
		return token{kind: tokModNot, text: f}, nil
	case "&":
		return token{kind: tokModAnd, text: f}, nil
	case "-":
		return token{kind: tokModAndNot, text: f}, nil
	case "*":
		return token{kind: tokModStar, text: f}, nil
	case "(":
		return token{kind: tokOpenSet, text: f}, nil
	case ")":
		return token{kind: tokCloseSet, text: f}, nil
	case "[":
		return token{kind: tokOpenSeq, text: f}, nil
	case "]":
		return token{kind: tokCloseSeq, text: f}, nil
	case "|":
		return token{kind: tokAlt, text: f}, nil
	}
	if m := cpPattern.FindStringSubmatch(f); m != nil {
		v, err := strconv.ParseInt(m[1], 16, 32)
		if err != nil {
			return token{}, err
		}
		return token{kind: tokCodepoint, text: f, cp: rune(v)}, nil
	}
	if m := gcPattern.FindStringSubmatch(f); m != nil {
		return token{kind: tokGC, text: f, gc: GeneralCategory(m[1])}, nil
	}
	if classPattern.MatchString(f) {
		return token{kind: tokClass, text: f}, nil
	}
	return token{}, errUnrecognizedToken
}

var errUnrecognizedToken = errString("unrecognized token")

type errString string

func (e errString) Error() string { return string(e) }

// parseRuleString parses a single rule's raw pattern string into a before
// pattern and after pattern, per spec.md §4.1's construction algorithm:
// tokens accumulate into `current` (initially rule.before's content),
// the verdict token switches `current` to the after side and records the
// result, `(`/`[` push a set/sequence onto an explicit container stack and
// the matching closer pops it.
func parseRuleString(raw string) (before, after *pattern, result BreakType, err error) {
	tokens, err := scan(raw)
	if err != nil {
		return nil, nil, 0, err
	}

	// The top-level before/after container is a sequence: bare
	// space-separated tokens at the top of a rule (not inside an
	// explicit "(...)" set) are read the same way official UAX #14
	// notation reads them — each one immediately follows the last.
	// "(...)" still opens an unordered set; "[...]" is available for
	// explicit sequence grouping nested inside a set.
	beforeRoot := &pattern{kind: kindSequence}
	afterRoot := &pattern{kind: kindSequence}
	var stack []*pattern
	current := beforeRoot
	stack = append(stack, beforeRoot)
	sawVerdict := false

	push := func(p *pattern) {
		current.children = append(current.children, p)
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokVerdict:
			if sawVerdict {
				return nil, nil, 0, &ParseError{Rule: raw, Msg: "more than one verdict symbol"}
			}
			if len(stack) != 1 {
				return nil, nil, 0, &ParseError{Rule: raw, Msg: "unbalanced bracket"}
			}
			sawVerdict = true
			result = tok.verdict
			stack = stack[:1]
			stack[0] = afterRoot
			current = afterRoot
		case tokAny:
			push(&pattern{kind: kindBase, base: baseAny})
		case tokSot:
			push(&pattern{kind: kindBase, base: baseSot})
		case tokEot:
			push(&pattern{kind: kindBase, base: baseEot})
		case tokEastAsian:
			push(&pattern{kind: kindEastAsian})
		case tokExtPict:
			push(&pattern{kind: kindExtPict})
		case tokModNot:
			push(&pattern{kind: kindModifier, modifier: modNot})
		case tokModAnd:
			push(&pattern{kind: kindModifier, modifier: modAnd})
		case tokModAndNot:
			push(&pattern{kind: kindModifier, modifier: modAndNot})
		case tokModStar:
			push(&pattern{kind: kindModifier, modifier: modStar})
		case tokOpenSet:
			n := &pattern{kind: kindSet}
			push(n)
			stack = append(stack, n)
			current = n
		case tokOpenSeq:
			n := &pattern{kind: kindSequence}
			push(n)
			stack = append(stack, n)
			current = n
		case tokCloseSet:
			if len(stack) < 2 || current.kind != kindSet {
				return nil, nil, 0, &ParseError{Rule: raw, Msg: "unbalanced )"}
			}
			stack = stack[:len(stack)-1]
			current = stack[len(stack)-1]
		case tokCloseSeq:
			if len(stack) < 2 || current.kind != kindSequence {
				return nil, nil, 0, &ParseError{Rule: raw, Msg: "unbalanced ]"}
			}
			stack = stack[:len(stack)-1]
			current = stack[len(stack)-1]
		case tokAlt:
			// The alternation marker is the default join inside a set;
			// it carries no structure of its own.
		case tokCodepoint:
			push(&pattern{kind: kindCodepoint, cp: tok.cp})
		case tokGC:
			push(&pattern{kind: kindGC, gc: tok.gc})
		case tokClass:
			push(&pattern{kind: kindClass, class: LineBreakClass(tok.text)})
		}
	}

	if len(stack) != 1 {
		return nil, nil, 0, &ParseError{Rule: raw, Msg: "unbalanced bracket"}
	}
	if !sawVerdict {
		return nil, nil, 0, &ParseError{Rule: raw, Msg: "missing verdict symbol"}
	}
	if len(beforeRoot.children) == 0 || len(afterRoot.children) == 0 {
		return nil, nil, 0, &ParseError{Rule: raw, Msg: "empty before- or after-side"}
	}
	if err := checkModifierOperands(beforeRoot); err != nil {
		return nil, nil, 0, &ParseError{Rule: raw, Msg: err.Error()}
	}
	if err := checkModifierOperands(afterRoot); err != nil {
		return nil, nil, 0, &ParseError{Rule: raw, Msg: err.Error()}
	}

	return flatten(beforeRoot), flatten(afterRoot), result, nil
}

// checkModifierOperands rejects a ^, *, &, or - with no following
// sibling to operate on, the shape that would otherwise only surface
// later as an index-out-of-range panic inside evalContainer.
func checkModifierOperands(p *pattern) error {
	for i, c := range p.children {
		if c.kind == kindModifier && i+1 >= len(p.children) {
			return errString("modifier has no following operand")
		}
		if err := checkModifierOperands(c); err != nil {
			return err
		}
	}
	return nil
}

// reverseBefore reorders a before-side tree so traversal proceeds outward
// from the break point: spec.md §3 requires the result to be "stored in
// traversal order starting from the position immediately to the left of
// the break".
//
// Only sequences carry positional meaning (their children are matched at
// consecutive, stepped indices); a set's children are all tested at the
// *same* index, so reordering a set would change nothing but its
// short-circuit order, which spec.md never asks for. reverseBefore
// therefore only reorders sequence children, recursing into (but not
// reordering) any nested set.
//
// A unary modifier (^, *) and the operand immediately following it are
// kept together as one unit before the reversal, so reversing unit order
// — rather than reversing the flat child slice — automatically preserves
// "modifier immediately precedes its operand" without any later repair
// pass.
func reverseBefore(p *pattern) *pattern {
	if p == nil {
		return p
	}
	switch p.kind {
	case kindSequence:
		units := groupUnits(p.children)
		for _, u := range units {
			for i, c := range u {
				u[i] = reverseBefore(c)
			}
		}
		for i, j := 0, len(units)-1; i < j; i, j = i+1, j-1 {
			units[i], units[j] = units[j], units[i]
		}
		children := make([]*pattern, 0, len(p.children))
		for _, u := range units {
			children = append(children, u...)
		}
		p.children = children
	case kindSet:
		for i, c := range p.children {
			p.children[i] = reverseBefore(c)
		}
	}
	return p
}

// groupUnits partitions a sequence's children into units: a unary
// modifier plus its immediately following operand count as one unit, any
// other child is a unit of its own.
func groupUnits(children []*pattern) [][]*pattern {
	var units [][]*pattern
	for i := 0; i < len(children); i++ {
		c := children[i]
		if c.kind == kindModifier && (c.modifier == modNot || c.modifier == modStar) && i+1 < len(children) {
			units = append(units, []*pattern{c, children[i+1]})
			i++
			continue
		}
		units = append(units, []*pattern{c})
	}
	return units
}

// RuleSource is one entry of the ordered list consumed by [ParseRules]:
// a rule's raw pattern string plus its optional name and side effect.
type RuleSource struct {
	Pattern    string
	Name       string
	SideEffect sideEffectKind
}

// ParseRules parses an ordered list of raw rules (spec.md §4.1) into the
// rule list a [Checker] evaluates. Parse errors are fatal and returned
// immediately; construction does not proceed past the first malformed
// rule.
func ParseRules(sources []RuleSource) ([]*rule, error) {
	rules := make([]*rule, 0, len(sources))
	for _, src := range sources {
		before, after, result, err := parseRuleString(src.Pattern)
		if err != nil {
			return nil, err
		}
		before = reverseBefore(before)
		rules = append(rules, &rule{
			name:       src.Name,
			before:     before,
			after:      after,
			result:     result,
			sideEffect: src.SideEffect,
		})
	}
	return rules, nil
}
