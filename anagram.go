// Package anabot finds and verifies anagrams.
//
// Two strings are anagrams of each other if they contain the same characters
// in the same amounts, but are not identical; a word is never an anagram of
// itself. A "proper" anagram additionally requires both strings to appear in
// a word list. A "loose" anagram compares character counts with spaces
// stripped, so a single word can have multi-word phrases as loose anagrams
// ("racecar" and "race car").
//
// The engine only manipulates character multisets; whether a string is a
// real word is delegated entirely to the supplied wordlist.Wordlist.
package anabot

import (
	"iter"

	"crosswarped.com/anabot/pkg/primitives"
	"crosswarped.com/anabot/wordlist"
)

// cachedWord pairs a word with its lazily computed charmap, so a word that
// is compared against many candidates builds its charmap at most once.
type cachedWord struct {
	word          string
	caseSensitive bool
	cm            primitives.Charmap
}

func (w *cachedWord) charmap() primitives.Charmap {
	if w.cm == nil {
		w.cm = primitives.BuildCharmap(w.word, false, w.caseSensitive)
	}
	return w.cm
}

func areAnagramsCached(a, b *cachedWord) bool {
	// The byte-length short circuit is only valid when case folding is off:
	// folding can change character counts without changing byte length.
	if a.caseSensitive && len(a.word) != len(b.word) {
		return false
	}
	if a.word == b.word {
		return false
	}
	return a.charmap().Equal(b.charmap())
}

// AreAnagrams returns true if wordA and wordB are standard anagrams: the
// same characters in the same amounts (spaces counted as characters), and
// not identical.
//
// If caseSensitive is false, characters of different case are treated as
// the same.
//
// This does not require either string to be a real word; see
// AreProperAnagrams for that.
func AreAnagrams(wordA, wordB string, caseSensitive bool) bool {
	a := &cachedWord{word: wordA, caseSensitive: caseSensitive}
	b := &cachedWord{word: wordB, caseSensitive: caseSensitive}
	return areAnagramsCached(a, b)
}

// AreProperAnagrams is AreAnagrams with the additional requirement that both
// words appear in list. It returns false if either word is missing from the
// list.
func AreProperAnagrams(wordA, wordB string, list wordlist.Wordlist, caseSensitive bool) bool {
	if !list.Contains(wordA) || !list.Contains(wordB) {
		return false
	}
	return AreAnagrams(wordA, wordB, caseSensitive)
}

// FindProperAnagrams returns a sequence of every word in list that is a
// standard anagram of word, in the list's own iteration order.
//
// It does not check whether word itself is in the list; that is the caller's
// responsibility if desired. The sequence is lazy: each word is tested as
// the sequence is pulled, and abandoning the loop stops the scan.
func FindProperAnagrams(word string, list wordlist.Wordlist, caseSensitive bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		target := &cachedWord{word: word, caseSensitive: caseSensitive}
		for next := range list.Words() {
			if areAnagramsCached(target, &cachedWord{word: next, caseSensitive: caseSensitive}) {
				if !yield(next) {
					return
				}
			}
		}
	}
}
