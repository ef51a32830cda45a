package linebreak

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed data/*.json
var seedData embed.FS

// classRangeJSON is one entry of the compact class-table format (spec.md
// §6): either [start] (a single code point) or [start, stop) with stop
// exclusive.
type classRangeJSON []int64

// classTableJSON is the on-disk shape: Line_Break class abbreviation →
// General_Category → list of ranges.
type classTableJSON map[string]map[string][]classRangeJSON

// eastAsianTableJSON is a flat list of [start, stop) ranges.
type eastAsianTableJSON []classRangeJSON

// classEntry is one expanded, sorted range in a [ClassTable].
type classEntry struct {
	start, stop rune // [start, stop)
	class       LineBreakClass
	gc          GeneralCategory
}

// ClassTable is a read-only lookup from code point to (Line_Break class,
// General_Category), built once from the compact JSON format and shared
// between every [Checker] that references the same table key.
type ClassTable struct {
	entries []classEntry
}

// Lookup returns the Line_Break class and General_Category of r. Code
// points the table has no entry for resolve as (XX, Cn) — the data-error
// case of spec.md §7, which degrades gracefully rather than failing.
func (t *ClassTable) Lookup(r rune) (LineBreakClass, GeneralCategory) {
	// Fast path, matching the ASCII shortcut the teacher's
	// propertyLineBreak uses in properties.go.
	switch {
	case r >= 'a' && r <= 'z':
		return AL, "Ll"
	case r >= 'A' && r <= 'Z':
		return AL, "Lu"
	case r >= '0' && r <= '9':
		return NU, "Nd"
	}
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].stop > r })
	if i < len(t.entries) && t.entries[i].start <= r {
		return t.entries[i].class, t.entries[i].gc
	}
	return XX, GCCn
}

// RangeTable is a read-only membership set over code-point ranges, used
// for the East-Asian-wide table and the Extended_Pictographic table.
type RangeTable struct {
	ranges [][2]rune // each [start, stop)
}

// Contains reports whether r falls within any range of t.
func (t *RangeTable) Contains(r rune) bool {
	i := sort.Search(len(t.ranges), func(i int) bool { return t.ranges[i][1] > r })
	return i < len(t.ranges) && t.ranges[i][0] <= r
}

func expandClassRange(cr classRangeJSON) (start, stop rune, err error) {
	switch len(cr) {
	case 1:
		return rune(cr[0]), rune(cr[0]) + 1, nil
	case 2:
		return rune(cr[0]), rune(cr[1]), nil
	default:
		return 0, 0, fmt.Errorf("range must have 1 or 2 elements, got %d", len(cr))
	}
}

func parseClassTable(raw []byte) (*ClassTable, error) {
	var doc classTableJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	var entries []classEntry
	for class, byGC := range doc {
		for gc, ranges := range byGC {
			for _, cr := range ranges {
				start, stop, err := expandClassRange(cr)
				if err != nil {
					return nil, err
				}
				entries = append(entries, classEntry{start: start, stop: stop, class: LineBreakClass(class), gc: GeneralCategory(gc)})
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].start < entries[j].start })
	return &ClassTable{entries: entries}, nil
}

func parseRangeTable(raw []byte) (*RangeTable, error) {
	var doc eastAsianTableJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	ranges := make([][2]rune, 0, len(doc))
	for _, cr := range doc {
		start, stop, err := expandClassRange(cr)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, [2]rune{start, stop})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
	return &RangeTable{ranges: ranges}, nil
}

// tableCache memoises loaded tables by source key (spec.md §5, §9): a
// process-wide cache keyed by the table's identifier, since tables are
// immutable once parsed and safely shared across every [Checker].
type tableCache struct {
	mu           sync.Mutex
	classTables  map[string]*ClassTable
	rangeTables  map[string]*RangeTable
}

var globalTables = &tableCache{
	classTables: make(map[string]*ClassTable),
	rangeTables: make(map[string]*RangeTable),
}

// LoadClassTable loads (or returns the memoised) [ClassTable] for key.
// Built-in keys "v16" and "v17" read the embedded seed data; any other
// key is looked up the same way, so a caller-supplied table produced by
// cmd/gentables can be wired in by placing it alongside the embedded
// files and building with a matching key, or by calling
// [RegisterClassTable] directly.
func LoadClassTable(key string) (*ClassTable, error) {
	globalTables.mu.Lock()
	defer globalTables.mu.Unlock()
	if t, ok := globalTables.classTables[key]; ok {
		return t, nil
	}
	raw, err := seedData.ReadFile("data/classes_" + key + ".json")
	if err != nil {
		return nil, fmt.Errorf("linebreak: unknown class table key %q: %w", key, err)
	}
	t, err := parseClassTable(raw)
	if err != nil {
		return nil, err
	}
	globalTables.classTables[key] = t
	return t, nil
}

// LoadRangeTable loads (or returns the memoised) [RangeTable] for key
// (used for the East-Asian-wide and Extended_Pictographic sets).
func LoadRangeTable(key string) (*RangeTable, error) {
	globalTables.mu.Lock()
	defer globalTables.mu.Unlock()
	if t, ok := globalTables.rangeTables[key]; ok {
		return t, nil
	}
	raw, err := seedData.ReadFile("data/" + key + ".json")
	if err != nil {
		return nil, fmt.Errorf("linebreak: unknown range table key %q: %w", key, err)
	}
	t, err := parseRangeTable(raw)
	if err != nil {
		return nil, err
	}
	globalTables.rangeTables[key] = t
	return t, nil
}

// RegisterClassTable installs t under key, so later [LoadClassTable] calls
// for key return t instead of reading embedded seed data. ClassTable has
// no exported constructor: t is a table obtained from [LoadClassTable].
// Intended for process startup, before any [NewChecker] call reads key.
func RegisterClassTable(key string, t *ClassTable) {
	globalTables.mu.Lock()
	defer globalTables.mu.Unlock()
	globalTables.classTables[key] = t
}

// RegisterRangeTable is the [RangeTable] analogue of [RegisterClassTable].
func RegisterRangeTable(key string, t *RangeTable) {
	globalTables.mu.Lock()
	defer globalTables.mu.Unlock()
	globalTables.rangeTables[key] = t
}
