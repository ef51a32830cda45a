package linebreak

// RuleSet names a built-in ordered rule list. v17 is the default; v16
// omits the Unicode-17.0-only HH class and its associated rules (LB20.1a,
// LB20.1b), folding those code points back into BA, per spec.md §3.
type RuleSet string

const (
	RuleSetV17 RuleSet = "v17"
	RuleSetV16 RuleSet = "v16"
)

// Checker evaluates UAX #14 line-break opportunities for one piece of
// text at a time. Construct one with [NewChecker], install text with
// [Checker.SetText], then query [Checker.IsBreakAt] or drive
// [Checker.Iterate].
//
// A Checker is not safe for concurrent use; its tables and parsed rules
// are immutable and may be shared by other Checkers running on other
// goroutines (spec.md §5).
type Checker struct {
	rules     []*rule
	classes   *ClassTable
	eastAsian *RangeTable
	extPict   *RangeTable
	resolve   ResolutionCriterion

	sideEffectArgs map[string][]any

	text *TextState
}

// Option configures a [Checker] at construction time.
type Option func(*checkerConfig)

type checkerConfig struct {
	rules            RuleSet
	resolve          ResolutionCriterion
	classTableKey    string
	eastAsianKey     string
	extPictKey       string
}

// WithRuleSet selects the UAX #14 rule set version. Default: [RuleSetV17].
func WithRuleSet(rs RuleSet) Option {
	return func(c *checkerConfig) { c.rules = rs }
}

// WithResolutionCriterion overrides [DefaultResolution] for class
// assignment (spec.md §4.6).
func WithResolutionCriterion(fn ResolutionCriterion) Option {
	return func(c *checkerConfig) { c.resolve = fn }
}

// WithClassTableKey selects a non-default class-table source key (spec.md §6).
func WithClassTableKey(key string) Option {
	return func(c *checkerConfig) { c.classTableKey = key }
}

// WithEastAsianTableKey selects a non-default East-Asian-wide table key.
func WithEastAsianTableKey(key string) Option {
	return func(c *checkerConfig) { c.eastAsianKey = key }
}

// NewChecker constructs a [Checker]. Defaults: [RuleSetV17], 17.0 class
// and East-Asian tables, [DefaultResolution].
func NewChecker(opts ...Option) (*Checker, error) {
	cfg := checkerConfig{
		rules:        RuleSetV17,
		eastAsianKey: "eastasian",
		extPictKey:   "extpict",
	}
	for _, o := range opts {
		o(&cfg)
	}
	// classTableKey defaults to whichever rule set is active (so
	// WithRuleSet(RuleSetV16) alone also switches the class table,
	// folding HH back into BA) unless a caller overrides it explicitly.
	if cfg.classTableKey == "" {
		cfg.classTableKey = string(cfg.rules)
		if cfg.classTableKey == "" {
			cfg.classTableKey = string(RuleSetV17)
		}
	}

	var ruleSources []RuleSource
	switch cfg.rules {
	case RuleSetV16:
		ruleSources = rulesV16
	case RuleSetV17, "":
		ruleSources = rulesV17
	default:
		return nil, &InvalidArgumentError{Func: "NewChecker", Msg: "unknown rule set " + string(cfg.rules)}
	}

	parsed, err := ParseRules(ruleSources)
	if err != nil {
		return nil, err
	}

	classes, err := LoadClassTable(cfg.classTableKey)
	if err != nil {
		return nil, err
	}
	eastAsian, err := LoadRangeTable(cfg.eastAsianKey)
	if err != nil {
		return nil, err
	}
	extPict, err := LoadRangeTable(cfg.extPictKey)
	if err != nil {
		return nil, err
	}

	resolve := cfg.resolve
	if resolve == nil {
		resolve = DefaultResolution
	}

	return &Checker{
		rules:          parsed,
		classes:        classes,
		eastAsian:      eastAsian,
		extPict:        extPict,
		resolve:        resolve,
		sideEffectArgs: make(map[string][]any),
	}, nil
}

// SetText installs text as the Checker's active text, replacing any
// previously installed text. Calling SetText twice with the same string
// produces identical [Checker.IsBreakAt] verdicts at every position
// (spec.md §8 property 6).
func (c *Checker) SetText(text string) {
	c.text = NewTextState(text, c.classes, c.resolve)
}

// Text returns the currently installed text, or "" if none has been set.
func (c *Checker) Text() string {
	if c.text == nil {
		return ""
	}
	return c.text.Text()
}

// CodePoints returns the decoded code points of the currently installed
// text, or nil if none has been set.
func (c *Checker) CodePoints() []rune {
	if c.text == nil {
		return nil
	}
	return c.text.CodePoints()
}

// RegisterSideEffectArguments stores runtime arguments under side-effect
// names (spec.md §4.7). The only built-in side effect, the combining-
// sequence view carried by the "LB9-LB10" rule, takes no arguments and is
// wired up at construction; the stored arguments are not read by it or by
// any other part of the matcher.
func (c *Checker) RegisterSideEffectArguments(byName map[string][]any) {
	for name, args := range byName {
		c.sideEffectArgs[name] = args
	}
}

// IsBreakAt classifies the code-unit position pos in the currently
// installed text. pos is a byte offset in [0, len(text)]; see
// [TextState] for why this package uses byte offsets rather than UTF-16
// code units.
func (c *Checker) IsBreakAt(pos int) (BreakType, error) {
	if c.text == nil {
		return UNKNOWN, &InvalidArgumentError{Func: "Checker.IsBreakAt", Msg: "no text installed; call SetText first"}
	}
	return c.isBreakAtText(c.text, pos)
}

// isBreakAtText is [Checker.IsBreakAt] parameterized on an explicit
// [TextState] rather than the Checker's currently installed one, so a
// [SegmentIterator] can evaluate breaks against a snapshot that survives
// a later [Checker.SetText] call.
func (c *Checker) isBreakAtText(ts *TextState, pos int) (BreakType, error) {
	if pos < 0 || pos > len(ts.text) {
		return UNKNOWN, &InvalidArgumentError{Func: "Checker.IsBreakAt", Msg: "position out of range"}
	}

	// spec.md §8 property 3: is_break_at(text_length) is MANDATORY (LB3)
	// unconditionally, while is_break_at(0) is FORBIDDEN (LB2) only for
	// non-empty text. For empty text, position 0 is both, and only the
	// MANDATORY property applies; short-circuit here rather than letting
	// LB2/LB3 (which both require an in-range "any" that can't exist in
	// empty text) fall through to whichever unrelated rule matches by
	// default.
	if ts.n() == 0 {
		return MANDATORY, nil
	}

	// spec.md §4.4: a position strictly inside a multi-code-unit encoding
	// is always FORBIDDEN, checked before any rule runs.
	if !ts.isByteBoundary(pos) {
		return FORBIDDEN, nil
	}

	i := ts.codepointIndex(pos)

	// LB9: a combining character sequence is never broken internally.
	// This must be checked against the original (non-collapsed) index,
	// before any WoCS remapping below, because a cluster's interior
	// positions have no representation of their own in the collapsed
	// view: the whole cluster maps to a single WoCS code point.
	if ts.interiorToCombiningSequence(i) {
		return FORBIDDEN, nil
	}

	ctx := &evalContext{ts: ts, eastAsian: c.eastAsian, extPict: c.extPict}

	result := UNKNOWN
	for _, r := range c.rules {
		beforeOK, _ := evalNode(r.before, i-1, -1, ctx)
		afterOK, _ := evalNode(r.after, i, 1, ctx)
		if beforeOK && afterOK {
			result = r.result
			break
		}
		if r.sideEffect == sideEffectRemoveCombiningSequences && !ts.applyOffset {
			i -= ts.offsetsCombiningSeqs[clampIndex(i, len(ts.offsetsCombiningSeqs))]
			ts.applyOffset = true
		}
	}

	ts.applyOffset = false
	return result, nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
