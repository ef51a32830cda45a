/*
Package linebreak implements Unicode line breaking (word wrapping) as
specified by Unicode Standard Annex #14 (https://unicode.org/reports/tr14/),
built around a declarative rule engine rather than a hardcoded rule table.

This package implements the Unicode Standard Annex #14 rule sets of
versions 16.0 and 17.0, selectable per [Checker] via [WithRuleSet]. Some
official sub-clauses are simplified in these rule lists, and the embedded
class tables cover only a subset of code points (see Class Tables), so
results do not match the official conformance files in every case.

# Overview

Using this package, you can:
  - Classify every position in a string as FORBIDDEN, MANDATORY, ALLOWED,
    or UNKNOWN to break a line at
  - Walk a string one line segment at a time
  - Load the embedded Line_Break class tables, or select other embedded
    tables by key

This is essential for word-wrapping internationalized text, especially
around emoji sequences, combining characters, Hangul syllables, East
Asian wide punctuation, and Indic Aksara clusters.

# Getting Started

Construct a [Checker] with [NewChecker], install text with
[Checker.SetText], then either:
  - Query a specific position with [Checker.IsBreakAt]
  - Walk the whole string with [Checker.Iterate] or [Checker.Segments]

# Rule Engine

Unlike a hardcoded line-break state machine, this package compiles UAX
#14's rules from a small declarative pattern language (see [RuleSource]
and [ParseRules]) into a tree the matcher walks outward from each
candidate break position — one rule's before-pattern leftward, its
after-pattern rightward. Rule sets ([rulesV16], [rulesV17]) are plain
Go data, not code, so extending or overriding rules does not require
touching the matcher.

# Combining Sequences

LB9 and LB10 fold combining marks and zero-width joiners into the
preceding base character before the bulk of the rule set ever runs.
This package realises that fold as a side effect attached to a rule
that never itself matches, fired the first time it is evaluated for a
given position — see textstate.go's buildCombiningSequenceView and
checker.go's IsBreakAt.

# Class Tables

Line_Break class and General_Category data ships as compact embedded
JSON (see tables.go), covering the code points this package's rule set
and tests exercise directly. [LoadClassTable] and [LoadRangeTable]
memoise parsed tables process-wide; [RegisterClassTable] and
[RegisterRangeTable] install an already loaded table under another key.
Tables have no exported constructor, so a table generated from the full
Unicode Character Database by cmd/gentables is used by writing its JSON
file under data/ and rebuilding.

# Concurrency

A [Checker] is not safe for concurrent use on the same text — SetText
and IsBreakAt share mutable state. Tables and parsed rules are
immutable once built and may be shared by any number of Checkers
running on different goroutines.
*/
package linebreak
