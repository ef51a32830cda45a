package linebreak

// rulesV16 is the Unicode 16.0 rule list: identical to rulesV17 except
// for the code points Unicode 17.0 split out into the new HH class
// (U+2010 and similar unambiguous hyphens). In 16.0 those code points
// resolve to BA via the v16 class table (see data/classes_v16.json), so
// LB20.1a/LB20.1b's HH-specific clauses have no counterpart here;
// LB21-hh-fallback exercises the same "don't break after a hyphen glyph
// that isn't East-Asian-wide" shape using BA directly instead.
var rulesV16 = []RuleSource{
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

	{Name: "LB15a", Pattern: "( QU - gc(Pi) ) * SP × OP"},
	{Name: "LB15b", Pattern: "( QU - gc(Pf) ) × SP"},

	{Name: "LB16", Pattern: "[ ( CL | CP ) * SP ] × NS"},
	{Name: "LB17", Pattern: "B2 * SP × B2"},

	{Name: "LB18", Pattern: "SP ÷ any"},

	{Name: "LB19a", Pattern: "any × QU"},
	{Name: "LB19b", Pattern: "QU × any"},

	{Name: "LB20a", Pattern: "any ÷ CB"},
	{Name: "LB20b", Pattern: "CB ÷ any"},

	{Name: "LB21a", Pattern: "any × BA"},
	{Name: "LB21b", Pattern: "any × HY"},
	{Name: "LB21c", Pattern: "any × NS"},
	{Name: "LB21d", Pattern: "BB × any"},
	{Name: "LB21.02", Pattern: "HL ( HY | BA ) × ^ ( HL | AL )"},
	{Name: "LB21-hh-fallback", Pattern: "( BA - eastasian ) × ( AL | HL )"},
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

	{Name: "LB30a", Pattern: "( sot | ^ RI ) * [ RI RI ] RI × RI"},

	{Name: "LB31", Pattern: "any ÷ any"},
}
