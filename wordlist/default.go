package wordlist

import (
	_ "embed"
	"strings"
	"sync"
)

// The default word list is a small list of common English words bundled with
// the module, used when no word list file is supplied. It is nowhere near a
// full dictionary; callers that care about coverage should load their own
// list with FromFile.
//
//go:embed words.txt
var defaultWordsRaw string

var defaultOnce = sync.OnceValue(func() *List {
	lines := strings.Split(strings.TrimSpace(defaultWordsRaw), "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return New(words)
})

// Default returns the built-in word list. The underlying List is parsed once
// and shared; it must be treated as read-only.
func Default() *List {
	return defaultOnce()
}
