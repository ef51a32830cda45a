package linebreak

// evalContext bundles everything a pattern evaluation needs besides the
// pattern tree itself: the active text view and the two auxiliary range
// tables (East-Asian-wide, Extended_Pictographic) that spec.md keeps out
// of the compact class-table format.
type evalContext struct {
	ts        *TextState
	eastAsian *RangeTable
	extPict   *RangeTable
}

// evalNode is the `consume` function of spec.md §4.5: it evaluates a
// single pattern node at code-point index i, stepping by step (+1 after
// the break, -1 before it) for any container whose children occupy
// consecutive positions. It returns whether the node matched and the
// index the caller should continue from.
func evalNode(p *pattern, i, step int, ctx *evalContext) (ok bool, next int) {
	switch p.kind {
	case kindBase:
		switch p.base {
		case baseAny:
			if i < 0 || i >= ctx.ts.n() {
				return false, i
			}
			return true, i + step
		case baseSot:
			return i < 0, i
		case baseEot:
			return i == ctx.ts.n(), i
		}
		panicInvariant("evalNode", "unknown base kind")
		return false, i
	case kindClass:
		c, inRange := ctx.ts.classAt(i)
		if inRange && c == p.class {
			return true, i + step
		}
		return false, i
	case kindGC:
		gc, inRange := ctx.ts.gcAt(i)
		if inRange && gc == p.gc {
			return true, i + step
		}
		return false, i
	case kindCodepoint:
		cp, inRange := ctx.ts.codepointAt(i)
		if inRange && cp == p.cp {
			return true, i + step
		}
		return false, i
	case kindEastAsian:
		cp, inRange := ctx.ts.codepointAt(i)
		if inRange && ctx.eastAsian.Contains(cp) {
			return true, i + step
		}
		return false, i
	case kindExtPict:
		cp, inRange := ctx.ts.codepointAt(i)
		if inRange && ctx.extPict.Contains(cp) {
			return true, i + step
		}
		return false, i
	case kindSet:
		return evalContainer(p.children, i, step, ctx, true)
	case kindSequence:
		return evalContainer(p.children, i, step, ctx, false)
	default:
		panicInvariant("evalNode", "unknown pattern kind")
		return false, i
	}
}

// evalContainer implements the set- and sequence-walking rules of
// spec.md §4.5.
//
// Sequence: every non-modifier child must match in order; a plain match
// advances the index by step before the next child, a "*" operand
// advances repeatedly and always "succeeds", a "^" operand's negated
// result must itself be true to continue. All children inspect the same
// evolving index; a sequence never short-circuits to true early.
//
// Set: children are evaluated left to right at the *same* index (sets
// never advance it). A plain child whose result is true returns true
// immediately — unless the next child is a binary modifier ("&" or "-"),
// in which case that combination is evaluated as one step before the
// short-circuit test applies. "^" negates the following sibling; "*"
// repeats it, starting from the set's own index.
func evalContainer(children []*pattern, i, step int, ctx *evalContext, isSet bool) (bool, int) {
	cur := i
	idx := 0
	var prevResult bool
	for idx < len(children) {
		c := children[idx]
		if c.kind == kindModifier {
			switch c.modifier {
			case modNot:
				operand := children[idx+1]
				r0, _ := evalNode(operand, cur, step, ctx)
				r := !r0
				idx += 2
				if isSet {
					if r {
						return true, cur
					}
					prevResult = r
					continue
				}
				if !r {
					return false, cur
				}
				cur += step
				continue
			case modStar:
				// The operand may itself be a multi-element sequence (a
				// fixed-width "unit" repeated, e.g. a pair of regional
				// indicators for LB30a's parity check), so each iteration
				// picks up wherever the operand's own evaluation left off
				// rather than assuming a single-position advance.
				operand := children[idx+1]
				for {
					r, nxt := evalNode(operand, cur, step, ctx)
					if !r || nxt == cur {
						break
					}
					cur = nxt
				}
				idx += 2
				if isSet {
					return true, cur
				}
				continue
			case modAnd, modAndNot:
				if !isSet {
					panicInvariant("evalContainer", "binary modifier outside a set")
				}
				operand := children[idx+1]
				r, _ := evalNode(operand, cur, step, ctx)
				if c.modifier == modAndNot {
					r = !r
				}
				combined := prevResult && r
				idx += 2
				if combined {
					return true, cur
				}
				prevResult = combined
				continue
			default:
				panicInvariant("evalContainer", "unknown modifier kind")
			}
		}

		r, nxt := evalNode(c, cur, step, ctx)
		if isSet {
			if idx+1 < len(children) && children[idx+1].kind == kindModifier &&
				(children[idx+1].modifier == modAnd || children[idx+1].modifier == modAndNot) {
				prevResult = r
				idx++
				continue
			}
			if r {
				return true, cur
			}
			prevResult = r
			idx++
			continue
		}

		if !r {
			return false, cur
		}
		cur = nxt
		idx++
	}
	if isSet {
		return false, cur
	}
	return true, cur
}
