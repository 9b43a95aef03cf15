package anabot

import "iter"

// FindAnagrams returns a sequence of every permutation of word's characters
// except the original ordering. For a word of length n the sequence has
// exactly n!-1 elements; repeated characters are not deduplicated, so a word
// with a repeated letter yields the same string more than once. Words of
// length 0 or 1 yield nothing.
//
// The sequence is lazy and each `for range` over it starts fresh. Factorials
// grow very fast: collecting all permutations of even a medium-length word
// can require gigabytes of memory, so this is only suitable for short words
// or for callers that stop early.
func FindAnagrams(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		chars := []rune(word)
		n := len(chars)
		if n <= 1 {
			return
		}

		// Iterative form of Heap's algorithm: counters plays the role of the
		// per-depth loop counters of the recursive version, and i is the
		// recursion depth. Every swap produces exactly one new permutation,
		// which is yielded immediately.
		counters := make([]int, n)
		i := 1
		for i < n {
			if counters[i] < i {
				if i%2 == 0 {
					chars[0], chars[i] = chars[i], chars[0]
				} else {
					chars[counters[i]], chars[i] = chars[i], chars[counters[i]]
				}
				counters[i]++
				i = 1
				if !yield(string(chars)) {
					return
				}
			} else {
				counters[i] = 0
				i++
			}
		}
	}
}
