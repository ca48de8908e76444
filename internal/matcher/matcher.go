// Package matcher resolves free-text storyline entries to media files by
// comparing the words they share.
//
// Names are normalized into token sets (lowercase, parentheses removed but
// their contents kept, split on whitespace). The score of an entry against a
// file is the number of tokens both sets contain. A file must share at least
// MinOverlap tokens with an entry to be picked, and each file is picked for
// at most one entry.
package matcher

import (
	"strings"

	"playlist-builder/internal/mediatypes"
	"playlist-builder/internal/natsort"
)

// MinOverlap is the smallest score that resolves an entry to a file.
const MinOverlap = 2

// Tokens is the normalized word set of a name.
type Tokens map[string]struct{}

var parenStripper = strings.NewReplacer("(", "", ")", "")

// Tokenize normalizes name into its token set.
// "Episode One (Uncut)" becomes {"episode", "one", "uncut"}.
func Tokenize(name string) Tokens {
	fields := strings.Fields(parenStripper.Replace(strings.ToLower(name)))
	tokens := make(Tokens, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// Overlap returns the number of tokens present in both a and b.
func Overlap(a, b Tokens) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// Candidate is a media file taking part in a match.
type Candidate struct {
	Path   string
	Tokens Tokens
}

// NewCandidate tokenizes the file name of path without its extension.
func NewCandidate(path string) Candidate {
	return Candidate{
		Path:   path,
		Tokens: Tokenize(mediatypes.BaseName(path)),
	}
}

// Result holds the outcome of matching a manifest against a set of files.
type Result struct {
	// Matched lists the selected file paths in entry order.
	Matched []string
	// Unmatched lists the entries no file was selected for.
	Unmatched []string
}

// Match resolves each entry, in order, to the not yet selected file with the
// highest score of at least MinOverlap. Among equal scores the file that
// comes first in natural order of its path wins.
func Match(entries []string, paths []string) Result {
	candidates := make([]Candidate, len(paths))
	for i, p := range natsort.Sorted(paths) {
		candidates[i] = NewCandidate(p)
	}
	selected := make([]bool, len(candidates))

	var res Result
	for _, entry := range entries {
		best := bestCandidate(Tokenize(entry), candidates, selected)
		if best < 0 {
			res.Unmatched = append(res.Unmatched, entry)
			continue
		}
		selected[best] = true
		res.Matched = append(res.Matched, candidates[best].Path)
	}
	return res
}

// bestCandidate returns the index of the best unselected candidate for tokens, or -1.
func bestCandidate(tokens Tokens, candidates []Candidate, selected []bool) int {
	best := -1
	maxScore := MinOverlap - 1
	for i, c := range candidates {
		if selected[i] {
			continue
		}
		if score := Overlap(tokens, c.Tokens); score > maxScore {
			best = i
			maxScore = score
		}
	}
	return best
}
