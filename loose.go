package anabot

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"crosswarped.com/anabot/internal"
	"crosswarped.com/anabot/pkg/primitives"
	"crosswarped.com/anabot/wordlist"
)

// AreLooseAnagrams returns true if wordA and wordB have the same characters
// in the same amounts once spaces are removed, and are not identical. The
// two strings may have any number of spaces each: "racecar" and "arc care"
// are loose anagrams.
//
// Like AreAnagrams, this does not require the strings to be made of real
// words; AreLooseAnagramsStrict adds that check.
func AreLooseAnagrams(wordA, wordB string, caseSensitive bool) bool {
	if wordA == wordB {
		return false
	}
	a := primitives.BuildCharmap(wordA, true, caseSensitive)
	b := primitives.BuildCharmap(wordB, true, caseSensitive)
	return a.Equal(b)
}

// AreLooseAnagramsStrict is AreLooseAnagrams with the additional requirement
// that both words appear in list.
func AreLooseAnagramsStrict(wordA, wordB string, list wordlist.Wordlist, caseSensitive bool) bool {
	if !list.Contains(wordA) || !list.Contains(wordB) {
		return false
	}
	return AreLooseAnagrams(wordA, wordB, caseSensitive)
}

// searchNode is a partial phrase: the dictionary words chosen so far plus
// the sum of their charmaps. Every node's charmap fits within the target's,
// because a word is only appended after it is checked against the remaining
// capacity.
type searchNode struct {
	words []string
	cm    primitives.Charmap
}

// FindLooseAnagrams returns a sequence of every phrase of list words whose
// combined letters, spaces ignored, exactly match target's letters. Phrases
// are space-joined and a phrase textually identical to target is excluded
// (possible when target itself contains spaces).
//
// minWordLength is the minimum character length of each word used in a
// phrase; zero is treated as one.
//
// Results come back in no particular order. The sequence is lazy: work
// happens as it is pulled, and abandoning the loop (or cancelling ctx)
// releases the candidate set, the memo table and the work stack. Be mindful
// that a word with many short dictionary matches has a very large number of
// loose anagrams; collecting them all can require gigabytes of memory.
func FindLooseAnagrams(ctx context.Context, target string, list wordlist.Wordlist, minWordLength int, caseSensitive bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		targetCharmap := primitives.BuildCharmap(target, true, caseSensitive)

		candidates, err := internal.BuildCandidateSet(ctx, internal.CandidateSetParams{
			Target:        target,
			TargetCharmap: targetCharmap,
			List:          list,
			MinWordLength: minWordLength,
			CaseSensitive: caseSensitive,
		})
		if err != nil {
			return
		}

		// The work stack replaces recursion deliberately: phrase length is
		// bounded only by the target's letter count, not by any structural
		// limit, so the call stack is not a safe place for this search.
		stack := make([]searchNode, 0, len(candidates))
		for _, c := range candidates {
			stack = append(stack, searchNode{words: []string{c.Word}, cm: c.Charmap})
		}

		// memo maps a remaining-capacity charmap (by canonical key) to the
		// candidates that still fit inside it. Many distinct partial phrases
		// converge on the same remaining capacity and share one entry; this
		// sharing is what keeps the search tractable.
		memo := make(map[string][]internal.Candidate)

		for len(stack) > 0 {
			if ctx.Err() != nil {
				return
			}

			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if node.cm.Equal(targetCharmap) {
				phrase := strings.Join(node.words, " ")
				if phrase == target {
					continue
				}
				if !yield(phrase) {
					return
				}
				continue
			}

			remaining, err := targetCharmap.Minus(node.cm)
			if err != nil {
				// Unreachable: every node charmap is a sum of charmaps that
				// each fit the remaining capacity when they were added.
				panic(fmt.Sprintf("loose anagram search: %v", err))
			}

			key := remaining.Key()
			allowed, ok := memo[key]
			if !ok {
				for _, c := range candidates {
					if c.Charmap.FitsWithin(remaining) {
						allowed = append(allowed, c)
					}
				}
				memo[key] = allowed
			}

			for _, c := range allowed {
				words := make([]string, len(node.words)+1)
				copy(words, node.words)
				words[len(node.words)] = c.Word
				stack = append(stack, searchNode{words: words, cm: node.cm.Plus(c.Charmap)})
			}
		}
	}
}
