package tree

import (
	"fmt"
	"regexp"

	"github.com/atomicstack/outline-popup-control/internal/hierarchy"
)

// PrimaryField is the field a filter pattern is matched against.
const PrimaryField = "about"

// FilterError reports a filter pattern that does not compile. A flatten
// pass that returns it has produced nothing; the caller decides how to
// degrade.
type FilterError struct {
	Pattern string
	Err     error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %v", e.Pattern, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// Flatten walks the top-level nodes depth-first, pre-order, and produces
// the ordered row list for display plus the lookup table for the next pass.
// Bindings in prev are reused by node name so expand state and buffered
// edits survive rebuilds; nodes seen for the first time start collapsed.
//
// Without a pattern a node's children are visited only while its row is
// expanded. With a pattern the whole tree is searched and only matching
// rows are kept, at whatever depth they occur. Collapse state is ignored
// so matches buried under collapsed ancestors still surface.
func Flatten(roots []hierarchy.Node, pattern string, prev map[string]*Row) ([]*Row, map[string]*Row, error) {
	var re *regexp.Regexp
	if pattern != "" {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, nil, &FilterError{Pattern: pattern, Err: err}
		}
		re = compiled
	}

	rows := make([]*Row, 0, len(prev))
	index := make(map[string]*Row, len(prev))
	// A filtered pass shows a subset, it does not redefine the tree: the
	// whole carry-over table rides along so expand state and buffered edits
	// on hidden rows reappear intact once the filter is cleared. Unfiltered
	// passes rebuild the table from what is reachable, dropping bindings
	// for nodes that no longer exist.
	if re != nil {
		for name, row := range prev {
			index[name] = row
		}
	}

	push := func(node hierarchy.Node, depth int) *Row {
		name := node.Name()
		row, ok := prev[name]
		if !ok {
			row = NewRow(node, depth, len(rows))
		}
		row.Node = node
		row.Depth = depth
		row.Index = len(rows)
		rows = append(rows, row)
		index[name] = row
		return row
	}

	var walk func(node hierarchy.Node, depth int)
	walk = func(node hierarchy.Node, depth int) {
		if re != nil {
			if value, err := node.Field(PrimaryField); err == nil && re.MatchString(value) {
				push(node, depth)
			}
			for _, child := range node.Children() {
				walk(child, depth+1)
			}
			return
		}
		row := push(node, depth)
		if row.Expanded {
			for _, child := range node.Children() {
				walk(child, depth+1)
			}
		}
	}

	for _, node := range roots {
		walk(node, 0)
	}
	return rows, index, nil
}
