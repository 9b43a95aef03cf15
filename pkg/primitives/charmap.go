package primitives

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Charmap represents the letter composition of a word: each key is a
// character that appears in the word, each value is the number of times it
// appears.
//
// A Charmap never stores a zero or negative count; a character that would
// reach count zero is removed instead. Two words are anagram-equivalent
// exactly when their Charmaps are Equal.
type Charmap map[rune]int

// BuildCharmap counts each character of word.
//
// If ignoreSpaces is true, the space character ' ' is skipped entirely.
//
// If caseSensitive is false, every character is case-folded before counting.
// Folding one character can produce several folded characters (e.g. 'ẞ'
// folds to "ss"); each produced character is counted individually.
func BuildCharmap(word string, ignoreSpaces, caseSensitive bool) Charmap {
	cm := make(Charmap)

	if caseSensitive {
		for _, r := range word {
			if ignoreSpaces && r == ' ' {
				continue
			}
			cm[r]++
		}
		return cm
	}

	folder := cases.Fold()
	for _, r := range word {
		if ignoreSpaces && r == ' ' {
			continue
		}
		for _, folded := range folder.String(string(r)) {
			cm[folded]++
		}
	}
	return cm
}

// BuildBoundedCharmap is BuildCharmap fused with a FitsWithin check against
// capacity: it aborts and returns (nil, false) the moment the running count
// of any character exceeds capacity's count for it, or the character is
// absent from capacity.
//
// Equivalent to BuildCharmap followed by FitsWithin, without materializing
// maps that would be discarded. Most dictionary words fail this check
// against a typical target, so the early abort dominates candidate-set
// construction cost.
func BuildBoundedCharmap(word string, capacity Charmap, ignoreSpaces, caseSensitive bool) (Charmap, bool) {
	cm := make(Charmap)

	count := func(r rune) bool {
		limit, ok := capacity[r]
		if !ok {
			return false
		}
		cm[r]++
		return cm[r] <= limit
	}

	var folder cases.Caser
	if !caseSensitive {
		folder = cases.Fold()
	}

	for _, r := range word {
		if ignoreSpaces && r == ' ' {
			continue
		}
		if caseSensitive {
			if !count(r) {
				return nil, false
			}
			continue
		}
		for _, folded := range folder.String(string(r)) {
			if !count(folded) {
				return nil, false
			}
		}
	}
	return cm, true
}

// FitsWithin returns true if every character of c exists in capacity with a
// count at least as large as c's. The relation is asymmetric: c is the
// candidate, capacity is the budget it must fit inside.
func (c Charmap) FitsWithin(capacity Charmap) bool {
	if len(c) > len(capacity) {
		return false
	}
	for r, n := range c {
		if capacity[r] < n {
			return false
		}
	}
	return true
}

// Equal reports whether c and other contain exactly the same characters with
// exactly the same counts.
func (c Charmap) Equal(other Charmap) bool {
	return maps.Equal(c, other)
}

// Plus returns a new Charmap containing every character of c and other, with
// counts summed for characters present in both. Neither input is modified.
func (c Charmap) Plus(other Charmap) Charmap {
	sum := make(Charmap, len(c)+len(other))
	maps.Copy(sum, c)
	for r, n := range other {
		sum[r] += n
	}
	return sum
}

// Minus returns a new Charmap with small's counts removed from c's,
// dropping any character whose count reaches zero.
//
// small must fit within c (see FitsWithin); if it does not, Minus returns an
// error instead of underflowing.
func (c Charmap) Minus(small Charmap) (Charmap, error) {
	if !small.FitsWithin(c) {
		return nil, fmt.Errorf("cannot subtract charmap %q from %q: it does not fit", small.Key(), c.Key())
	}

	diff := make(Charmap, len(c))
	for r, n := range c {
		if rest := n - small[r]; rest > 0 {
			diff[r] = rest
		}
	}
	return diff, nil
}

// Size returns the total number of characters counted, i.e. the sum of all
// counts.
func (c Charmap) Size() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Key returns a canonical string form of c: characters in sorted order, each
// followed by its count. Two Charmaps have the same Key exactly when they
// are Equal, so the Key can index a Go map where a Charmap itself cannot.
func (c Charmap) Key() string {
	runes := make([]rune, 0, len(c))
	for r := range c {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	var b strings.Builder
	for _, r := range runes {
		b.WriteRune(r)
		b.WriteString(strconv.Itoa(c[r]))
	}
	return b.String()
}

func (c Charmap) String() string {
	return fmt.Sprintf("Charmap(%s)", c.Key())
}
