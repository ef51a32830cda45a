package linebreak

// patternKind tags the variant a [pattern] node holds. Matching is an
// exhaustive switch over this tag (see evalNode in matcher.go) rather than
// a runtime type assertion, the same "flatten to {tag, payload}" shape the
// rest of this package's tables use.
type patternKind int

const (
	kindBase patternKind = iota
	kindClass
	kindGC
	kindCodepoint
	kindEastAsian
	kindExtPict
	kindModifier
	kindSet
	kindSequence
)

// baseKind distinguishes the three zero-payload base patterns.
type baseKind int

const (
	baseAny baseKind = iota
	baseSot
	baseEot
)

// modifierKind distinguishes the four pattern modifiers. ^ and * are
// unary and always precede their operand; & and - are binary and only
// ever appear as a child of a [kindSet], immediately following the
// pattern they combine with the preceding sibling's result.
type modifierKind int

const (
	modNot   modifierKind = iota // ^
	modAnd                       // &
	modAndNot                    // -
	modStar                      // *
)

// pattern is one node of a parsed rule's before- or after-side tree. Only
// one of the payload fields is meaningful, selected by kind.
type pattern struct {
	kind patternKind

	base     baseKind
	class    LineBreakClass
	gc       GeneralCategory
	cp       rune
	modifier modifierKind

	// children holds the ordered contents of a kindSet or kindSequence
	// node. A kindModifier node has no children: its operand is its next
	// sibling in the enclosing container.
	children []*pattern
}

// sideEffectKind names the side effect a rule carries, if any. The matcher
// fires it when the rule fails to match (see Checker.isBreakAtText).
type sideEffectKind int

const (
	sideEffectNone sideEffectKind = iota
	sideEffectRemoveCombiningSequences
)

// rule is one entry of a parsed rule set, in declaration order. before is
// stored post-reversal (see reverseBefore in parser.go): traversal order
// starts immediately to the left of the candidate break position.
type rule struct {
	name       string
	before     *pattern
	after      *pattern
	result     BreakType
	sideEffect sideEffectKind
}

// flatten collapses a sequence/set whose sole child is another node of the
// same kind into that child, recursively. This realises spec.md's
// canonicalisation invariant: "a sequence whose sole child is another
// sequence is flattened to that child's content (and likewise for set)".
func flatten(p *pattern) *pattern {
	if p == nil {
		return p
	}
	for i, c := range p.children {
		p.children[i] = flatten(c)
	}
	if (p.kind == kindSequence || p.kind == kindSet) && len(p.children) == 1 {
		only := p.children[0]
		if only.kind == p.kind {
			return only
		}
	}
	return p
}
