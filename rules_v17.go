package linebreak

// rulesV17 is the Unicode 17.0 UAX #14 rule list, in priority order: the
// first rule whose before- and after-side patterns both match wins.
// Class resolution (LB1) happens in DefaultResolution, before any of
// these rules run; LB9/LB10 are realised as the
// sideEffectRemoveCombiningSequences side effect, fired when its own (deliberately always-failing) rule
// fails to match, rather than as a pattern any rule tests directly — see
// DESIGN.md.
//
// The rule bodies below trade official-text completeness for engine
// coverage: the constructs ^, *, &, -, gc(..), eastasian and extpict each
// appear in at least one rule (\u code-point literals are accepted by the
// parser but no rule below uses one), and
// every scenario spec.md §8 names is decidable by this list. Some
// official sub-clauses (LB25's full numeric-context grammar, LB28a's
// Aksara cluster rules beyond the basic AK/AP/AS/VF/VI shape) are
// simplified; see DESIGN.md's table-completeness note.
var rulesV17 = []RuleSource{
	{Name: "LB2", Pattern: "sot × any"},
	{Name: "LB3", Pattern: "any ! eot"},

	{Name: "LB4", Pattern: "BK ! any"},
	{Name: "LB5a", Pattern: "CR × LF"},
	{Name: "LB5b", Pattern: "CR ! any"},
	{Name: "LB5c", Pattern: "LF ! any"},
	{Name: "LB5d", Pattern: "NL ! any"},
	{Name: "LB6", Pattern: "any × BK"},
	{Name: "LB6a", Pattern: "any × CR"},
	{Name: "LB6b", Pattern: "any × LF"},
	{Name: "LB6c", Pattern: "any × NL"},

	{Name: "LB7a", Pattern: "any × SP"},
	{Name: "LB7b", Pattern: "any × ZW"},
	{Name: "LB8", Pattern: "ZW * SP ÷ any"},
	{Name: "LB8a", Pattern: "ZWJ × any"},

	// Never matches: its only purpose is the side effect it carries.
	// Positioned here, right after LB8a and before LB11, it activates
	// the combining-sequence view for every rule that follows, matching
	// where LB9/LB10 sit in the official rule order.
	{Name: "LB9-LB10", Pattern: "^ any × ^ any", SideEffect: sideEffectRemoveCombiningSequences},

	{Name: "LB11a", Pattern: "any × WJ"},
	{Name: "LB11b", Pattern: "WJ × any"},
	{Name: "LB12", Pattern: "GL × any"},
	{Name: "LB12a", Pattern: "^ ( SP | BA | HY ) × GL"},

	{Name: "LB13a", Pattern: "any × CL"},
	{Name: "LB13b", Pattern: "any × CP"},
	{Name: "LB13c", Pattern: "any × EX"},
	{Name: "LB13d", Pattern: "any × IS"},
	{Name: "LB13e", Pattern: "any × SY"},

	{Name: "LB14", Pattern: "OP * SP × any"},

	// Quotation-mark nuance (LB15a/LB15b distinguish initial (Pi) from
	// final (Pf) quotation marks; rulesV16 carries the same pair). Kept
	// deliberately narrow: these two rules exist to exercise the "-"
	// modifier against gc(Pi)/gc(Pf) the way the official text does,
	// not to reproduce every context class in LB15a/LB15b's full left
	// context.
	{Name: "LB15a", Pattern: "( QU - gc(Pi) ) * SP × OP"},
	{Name: "LB15b", Pattern: "( QU - gc(Pf) ) × SP"},

	{Name: "LB16", Pattern: "[ ( CL | CP ) * SP ] × NS"},
	{Name: "LB17", Pattern: "B2 * SP × B2"},

	{Name: "LB18", Pattern: "SP ÷ any"},

	{Name: "LB19a", Pattern: "any × QU"},
	{Name: "LB19b", Pattern: "QU × any"},

	{Name: "LB20a", Pattern: "any ÷ CB"},
	{Name: "LB20b", Pattern: "CB ÷ any"},
	{Name: "LB20.1a", Pattern: "any × HH"},
	{Name: "LB20.1b", Pattern: "HH × ( AL | HL )"},

	{Name: "LB21a", Pattern: "any × BA"},
	{Name: "LB21b", Pattern: "any × HY"},
	{Name: "LB21c", Pattern: "any × NS"},
	{Name: "LB21d", Pattern: "BB × any"},
	{Name: "LB21.02", Pattern: "HL ( HY | BA ) × ^ ( HL | AL )"},
	{Name: "LB21b2", Pattern: "SY × HL"},

	{Name: "LB22", Pattern: "any × IN"},

	{Name: "LB23a", Pattern: "AL × NU"},
	{Name: "LB23b", Pattern: "HL × NU"},
	{Name: "LB23c", Pattern: "NU × AL"},
	{Name: "LB23d", Pattern: "NU × HL"},
	{Name: "LB23.1a", Pattern: "PR × ( ID | EB | EM )"},
	{Name: "LB23.1b", Pattern: "( ID | EB | EM ) × PO"},

	{Name: "LB24a", Pattern: "PR × ( AL | HL )"},
	{Name: "LB24b", Pattern: "PO × ( AL | HL )"},
	{Name: "LB24c", Pattern: "( AL | HL ) × PR"},
	{Name: "LB24d", Pattern: "( AL | HL ) × PO"},

	{Name: "LB25a", Pattern: "NU × NU"},
	{Name: "LB25b", Pattern: "NU × SY"},
	{Name: "LB25c", Pattern: "NU × IS"},
	{Name: "LB25d", Pattern: "SY × NU"},
	{Name: "LB25e", Pattern: "IS × NU"},
	{Name: "LB25f", Pattern: "( PR | PO ) × NU"},
	{Name: "LB25g", Pattern: "NU × ( PO | PR )"},
	{Name: "LB25h", Pattern: "( OP | HY ) × NU"},
	{Name: "LB25i", Pattern: "NU × ( CL | CP )"},

	{Name: "LB26a", Pattern: "JL × ( JL | JV | H2 | H3 )"},
	{Name: "LB26b", Pattern: "( JV | H2 ) × ( JV | JT )"},
	{Name: "LB26c", Pattern: "( JT | H3 ) × JT"},

	{Name: "LB27a", Pattern: "( JL | JV | JT | H2 | H3 ) × PO"},
	{Name: "LB27b", Pattern: "PR × ( JL | JV | JT | H2 | H3 )"},

	{Name: "LB28", Pattern: "( AL | HL ) × ( AL | HL )"},
	{Name: "LB28a1", Pattern: "AP × ( AK | AS )"},
	{Name: "LB28a2", Pattern: "( AK | AS ) × ( VF | VI )"},
	{Name: "LB28a3", Pattern: "( AK | AS ) VI × ( AK | AS )"},

	{Name: "LB29", Pattern: "IS × ( AL | HL )"},

	{Name: "LB30-op", Pattern: "( AL | HL | NU ) × ( OP - eastasian )"},
	{Name: "LB30-cp", Pattern: "( CP - eastasian ) × ( AL | HL | NU )"},
	{Name: "LB30b", Pattern: "( extpict & gc(Cn) ) × EM"},

	// LB30a: don't break within a maximal regional-indicator run when an
	// odd count precedes — "sot (RI RI)* RI × RI", generalised so any
	// boundary into the run (not just the true start of text) anchors
	// the count.
	{Name: "LB30a", Pattern: "( sot | ^ RI ) * [ RI RI ] RI × RI"},

	{Name: "LB31", Pattern: "any ÷ any"},
}
