package tree

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SortMenu is the auxiliary selector shown over the tree while choosing a
// sort attribute. It consumes every key until it reports completion.
type SortMenu struct {
	Options []string
	Cursor  int
	Visible bool
}

// NewSortMenu builds a menu over the given attribute names.
func NewSortMenu(options []string) *SortMenu {
	return &SortMenu{Options: append([]string(nil), options...)}
}

// HandleKey consumes one keystroke. Once the menu is finished it reports
// done=true with the chosen attribute, or an empty attribute when
// cancelled. Printable keys jump the cursor to the best-matching option.
func (s *SortMenu) HandleKey(key string) (attr string, done bool) {
	switch key {
	case "esc":
		s.Visible = false
		return "", true
	case "enter":
		s.Visible = false
		if len(s.Options) == 0 {
			return "", true
		}
		return s.Options[s.Cursor], true
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Options)-1 {
			s.Cursor++
		}
	case "home", "g":
		s.Cursor = 0
	case "end", "G":
		s.Cursor = len(s.Options) - 1
	default:
		if idx := bestOptionIndex(s.Options, key); idx >= 0 {
			s.Cursor = idx
		}
	}
	return "", false
}

// bestOptionIndex resolves a single typed rune to an option, preferring a
// prefix match and falling back to the closest fuzzy match.
func bestOptionIndex(options []string, query string) int {
	if len([]rune(query)) != 1 || len(options) == 0 {
		return -1
	}
	lower := strings.ToLower(query)
	for i, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, options)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(options) {
		return -1
	}
	return best.OriginalIndex
}
