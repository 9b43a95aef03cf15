// Package wordlist provides word lists for the anagram engine: an in-memory
// list built from a slice, a reader or a file, the built-in default list,
// and a BigQuery-backed loader.
package wordlist

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"
)

// A Wordlist is a finite set of known words.
//
// The engine borrows a Wordlist for the lifetime of a search and never
// mutates it; implementations only need to be safe for concurrent reads.
type Wordlist interface {
	// Contains reports whether word is in the list.
	Contains(word string) bool

	// Words returns a sequence over every word in the list, in a stable
	// order. Each call starts a fresh pass from the beginning.
	Words() iter.Seq[string]
}

// List is an in-memory Wordlist.
//
// It serves both wrapping an existing slice (New) and owning words loaded
// from elsewhere (FromFile, FromReader, Default).
type List struct {
	words []string
	index map[string]struct{}
}

// New returns a List over the given words. The slice is used as-is, not
// copied; the caller must not modify it while the List is in use.
func New(words []string) *List {
	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		index[w] = struct{}{}
	}
	return &List{words: words, index: index}
}

// FromReader reads one word per line from r. Blank lines and lines starting
// with '#' are skipped; surrounding whitespace is trimmed.
func FromReader(r io.Reader) (*List, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(words), nil
}

// FromFile loads a word list from a text file with one word per line.
func FromFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}

func (l *List) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

func (l *List) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range l.words {
			if !yield(w) {
				return
			}
		}
	}
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	return len(l.words)
}
