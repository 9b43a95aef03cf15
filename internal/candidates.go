// Package internal builds the pruned candidate index the loose-anagram
// search runs against.
package internal

import (
	"context"
	"unicode/utf8"

	"crosswarped.com/anabot/pkg/primitives"
	"crosswarped.com/anabot/wordlist"
)

// Candidate pairs a dictionary word with its charmap. The charmap is built
// bounded by the search target, so every Candidate is known to fit within
// the target at the time the set is built.
type Candidate struct {
	Word    string
	Charmap primitives.Charmap
}

type CandidateSetParams struct {
	Target        string
	TargetCharmap primitives.Charmap
	List          wordlist.Wordlist
	MinWordLength int // 0 is treated as 1
	CaseSensitive bool
}

// BuildCandidateSet scans the word list once and keeps every word that could
// take part in a loose anagram of the target: at least MinWordLength
// characters long, not the target itself, and with a character multiset that
// fits within the target's.
//
// This is the dominant pruning step: most dictionary words use a letter the
// target doesn't have, or use one too many times, and are discarded here
// before the search ever sees them. The returned set is immutable for the
// duration of a search.
func BuildCandidateSet(ctx context.Context, p CandidateSetParams) ([]Candidate, error) {
	minLength := p.MinWordLength
	if minLength <= 0 {
		minLength = 1
	}

	var candidates []Candidate
	for word := range p.List.Words() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if utf8.RuneCountInString(word) < minLength {
			continue
		}
		if word == p.Target {
			continue
		}
		cm, ok := primitives.BuildBoundedCharmap(word, p.TargetCharmap, true, p.CaseSensitive)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Word: word, Charmap: cm})
	}
	return candidates, nil
}
