package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"crosswarped.com/anabot"
	"crosswarped.com/anabot/wordlist"
)

// Word scopes live in one BigQuery table per deployment.
const (
	bigQueryProject = "anabot-x"
	bigQueryDataset = "FirestoreQuery"
	bigQueryTable   = "all_words"
)

type AnagramRequest struct {
	Action        string   `json:"action"` // "test" or "find"
	AnagramType   string   `json:"anagramType"`
	WordA         string   `json:"wordA"`
	WordB         string   `json:"wordB,omitempty"`
	Words         []string `json:"words,omitempty"`
	WordScope     string   `json:"wordScope,omitempty"`
	CaseSensitive bool     `json:"caseSensitive"`
	MinWordLength int      `json:"minWordLength"`
	MaxResults    int      `json:"maxResults"`
}

type AnagramResponse struct {
	Success  bool     `json:"success"`
	Match    *bool    `json:"match,omitempty"`
	Anagrams []string `json:"anagrams,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func getList(ctx context.Context, req AnagramRequest) (wordlist.Wordlist, error) {
	words := req.Words
	if req.WordScope != "" {
		scoped, err := wordlist.LoadBigQuery(ctx, wordlist.BigQueryParams{
			Project: bigQueryProject,
			Dataset: bigQueryDataset,
			Table:   bigQueryTable,
			Scope:   req.WordScope,
		})
		if err != nil {
			return nil, fmt.Errorf("LoadBigQuery: %w", err)
		}
		fmt.Printf("Loaded %d words for scope %q\n", scoped.Len(), req.WordScope)
		if len(words) == 0 {
			return scoped, nil
		}
		for w := range scoped.Words() {
			words = append(words, w)
		}
	}

	if len(words) == 0 {
		return wordlist.Default(), nil
	}
	return wordlist.New(words), nil
}

func execute(ctx context.Context, req AnagramRequest) (AnagramResponse, error) {
	switch req.AnagramType {
	case "standard", "proper", "loose":
	default:
		return AnagramResponse{}, fmt.Errorf("anagramType must be standard, proper, or loose")
	}

	var list wordlist.Wordlist
	if req.AnagramType != "standard" {
		var err error
		if list, err = getList(ctx, req); err != nil {
			return AnagramResponse{}, err
		}
	}

	switch req.Action {
	case "test":
		if req.WordA == "" || req.WordB == "" {
			return AnagramResponse{}, fmt.Errorf("test requires wordA and wordB")
		}
		var match bool
		switch req.AnagramType {
		case "standard":
			match = anabot.AreAnagrams(req.WordA, req.WordB, req.CaseSensitive)
		case "proper":
			match = anabot.AreProperAnagrams(req.WordA, req.WordB, list, req.CaseSensitive)
		case "loose":
			match = anabot.AreLooseAnagramsStrict(req.WordA, req.WordB, list, req.CaseSensitive)
		}
		return AnagramResponse{Success: true, Match: &match}, nil

	case "find":
		if req.WordA == "" {
			return AnagramResponse{}, fmt.Errorf("find requires wordA")
		}
		maxResults := req.MaxResults
		if maxResults <= 0 {
			maxResults = 100
		}
		if maxResults > 10000 {
			return AnagramResponse{}, fmt.Errorf("maxResults must be at most 10000")
		}

		// Leave room before the platform deadline to encode the response.
		timeout := 1 * time.Minute
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline) - 5*time.Second
			fmt.Printf("Setting timeout to %v\n", timeout)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		var anagrams []string
		collect := func(result string) bool {
			anagrams = append(anagrams, result)
			return len(anagrams) < maxResults
		}

		switch req.AnagramType {
		case "standard":
			for result := range anabot.FindAnagrams(req.WordA) {
				if ctx.Err() != nil || !collect(result) {
					break
				}
			}
		case "proper":
			for result := range anabot.FindProperAnagrams(req.WordA, list, req.CaseSensitive) {
				if ctx.Err() != nil || !collect(result) {
					break
				}
			}
		case "loose":
			for result := range anabot.FindLooseAnagrams(ctx, req.WordA, list, req.MinWordLength, req.CaseSensitive) {
				if !collect(result) {
					break
				}
			}
		}
		return AnagramResponse{Success: true, Anagrams: anagrams}, ctx.Err()

	default:
		return AnagramResponse{}, fmt.Errorf("action must be test or find")
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func handleAnagrams(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req AnagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AnagramResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	response, err := execute(r.Context(), req)
	response.Success = err == nil
	if err != nil {
		response.Error = err.Error()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/anagrams", handleAnagrams)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
