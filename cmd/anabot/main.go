package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"
	"runtime/pprof"
	"time"

	"crosswarped.com/anabot"
	"crosswarped.com/anabot/wordlist"
)

const (
	reasonDuplicates     = "a word cannot be an anagram of itself"
	reasonFirstNotWord   = "first provided word is not a valid word"
	reasonSecondNotWord  = "second provided word is not a valid word"
	reasonCharsDifferent = "words do not contain the same characters in the same amounts"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  anabot [flags] test WORD_A WORD_B
  anabot [flags] find WORD

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	anagramType := flag.String("type", "proper", "Type of anagrams: standard, proper, or loose")
	caseInsensitive := flag.Bool("i", false, "Ignore case when testing or finding anagrams")
	wordlistPath := flag.String("w", "", "Path to a word list file (one word per line); the built-in list is used if omitted")
	simpleOutput := flag.Bool("s", false, "Use simplified (machine readable) output")
	limit := flag.Int("limit", 100, "Maximum number of anagrams to print with find")
	minWordLength := flag.Int("min_length", 1, "Minimum sub-word length for loose anagrams")
	timeout := flag.Duration("timeout", 1*time.Minute, "Timeout for loose anagram searches")

	profile := flag.Bool("profile", false, "Profile the search")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Usage = usage
	flag.Parse()

	caseSensitive := !*caseInsensitive

	switch *anagramType {
	case "standard", "proper", "loose":
	default:
		fmt.Fprintf(os.Stderr, "Unknown anagram type %q\n", *anagramType)
		os.Exit(1)
	}

	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, "Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	// Standard anagrams never need a word list; only load one for the rest.
	var list wordlist.Wordlist
	if *anagramType != "standard" {
		if *wordlistPath != "" {
			loaded, err := wordlist.FromFile(*wordlistPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to read word list file %s: %v\n", *wordlistPath, err)
				os.Exit(1)
			}
			list = loaded
		} else {
			list = wordlist.Default()
		}
	}

	switch args[0] {
	case "test":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		runTest(args[1], args[2], *anagramType, list, caseSensitive, *simpleOutput)

	case "find":
		if len(args) != 2 {
			usage()
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		runFind(ctx, args[1], *anagramType, list, *minWordLength, caseSensitive, *limit, *simpleOutput)

	default:
		fmt.Fprintf(os.Stderr, "Unknown action %q\n", args[0])
		usage()
		os.Exit(1)
	}
}

func runTest(wordA, wordB, anagramType string, list wordlist.Wordlist, caseSensitive, simpleOutput bool) {
	var match bool
	switch anagramType {
	case "standard":
		match = anabot.AreAnagrams(wordA, wordB, caseSensitive)
	case "proper":
		match = anabot.AreProperAnagrams(wordA, wordB, list, caseSensitive)
	case "loose":
		match = anabot.AreLooseAnagramsStrict(wordA, wordB, list, caseSensitive)
	}

	if simpleOutput {
		fmt.Println(match)
		return
	}

	if match {
		fmt.Printf("%q is %s anagram of %q\n", wordA, anagramType, wordB)
		return
	}

	fmt.Printf("%q is not %s anagram of %q\n", wordA, anagramType, wordB)
	if wordA == wordB {
		fmt.Println("Reason:", reasonDuplicates)
		return
	}
	if anagramType != "standard" {
		aReal := list.Contains(wordA)
		bReal := list.Contains(wordB)
		if !aReal {
			fmt.Println("Reason:", reasonFirstNotWord)
		}
		if !bReal {
			fmt.Println("Reason:", reasonSecondNotWord)
		}
		if aReal && bReal {
			fmt.Println("Reason:", reasonCharsDifferent)
		}
		return
	}
	fmt.Println("Reason:", reasonCharsDifferent)
}

func runFind(ctx context.Context, word, anagramType string, list wordlist.Wordlist, minWordLength int, caseSensitive bool, limit int, simpleOutput bool) {
	var results iter.Seq[string]
	switch anagramType {
	case "standard":
		results = anabot.FindAnagrams(word)
	case "proper":
		results = anabot.FindProperAnagrams(word, list, caseSensitive)
	case "loose":
		results = anabot.FindLooseAnagrams(ctx, word, list, minWordLength, caseSensitive)
	}

	count := 0
	for result := range results {
		if count >= limit {
			break
		}
		fmt.Println(result)
		count++
	}

	if !simpleOutput {
		fmt.Printf("found %d %s anagrams\n", count, anagramType)
	}
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "Search timed out:", ctx.Err())
	}
}
