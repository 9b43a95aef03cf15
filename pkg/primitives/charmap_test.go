package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildCharmap(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		ignoreSpaces  bool
		caseSensitive bool
		want          Charmap
	}{
		{
			name:          "simple word",
			word:          "race",
			caseSensitive: true,
			want:          Charmap{'r': 1, 'a': 1, 'c': 1, 'e': 1},
		},
		{
			name:          "repeated letters",
			word:          "racecar",
			caseSensitive: true,
			want:          Charmap{'r': 2, 'a': 2, 'c': 2, 'e': 1},
		},
		{
			name:          "spaces counted by default",
			word:          "race car",
			caseSensitive: true,
			want:          Charmap{'r': 2, 'a': 2, 'c': 2, 'e': 1, ' ': 1},
		},
		{
			name:          "spaces ignored",
			word:          "race car",
			ignoreSpaces:  true,
			caseSensitive: true,
			want:          Charmap{'r': 2, 'a': 2, 'c': 2, 'e': 1},
		},
		{
			name:          "case sensitive keeps cases distinct",
			word:          "Aa",
			caseSensitive: true,
			want:          Charmap{'A': 1, 'a': 1},
		},
		{
			name: "case insensitive folds",
			word: "Aa",
			want: Charmap{'a': 2},
		},
		{
			name: "folding can expand one character into several",
			word: "ẞ", // capital sharp s folds to "ss"
			want: Charmap{'s': 2},
		},
		{
			name:          "empty word",
			word:          "",
			caseSensitive: true,
			want:          Charmap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCharmap(tt.word, tt.ignoreSpaces, tt.caseSensitive)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildCharmap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildBoundedCharmap(t *testing.T) {
	capacity := BuildCharmap("racecar", true, true)

	tests := []struct {
		name   string
		word   string
		wantOK bool
	}{
		{"fits exactly", "racecar", true},
		{"fits with room to spare", "race", true},
		{"letter absent from capacity", "cow", false},
		{"letter overused", "rrr", false}, // three r's, capacity has two
		{"empty word fits", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BuildBoundedCharmap(tt.word, capacity, true, true)
			if ok != tt.wantOK {
				t.Fatalf("BuildBoundedCharmap() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}

			// The fused form must agree with build-then-check.
			want := BuildCharmap(tt.word, true, true)
			if !want.FitsWithin(capacity) {
				t.Fatalf("test fixture %q does not fit capacity", tt.word)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("BuildBoundedCharmap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFitsWithin(t *testing.T) {
	tests := []struct {
		name  string
		small string
		big   string
		want  bool
	}{
		{"word fits itself", "tears", "tears", true},
		{"subset fits", "car", "racecar", true},
		{"missing letter does not fit", "cow", "racecar", false},
		{"overused letter does not fit", "rrr", "racecar", false},
		{"empty fits anything", "", "racecar", true},
		{"nothing but empty fits empty", "a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			small := BuildCharmap(tt.small, true, true)
			big := BuildCharmap(tt.big, true, true)
			if got := small.FitsWithin(big); got != tt.want {
				t.Errorf("FitsWithin() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("every charmap fits itself", func(t *testing.T) {
		for _, word := range []string{"", "a", "racecar", "hello world"} {
			m := BuildCharmap(word, false, true)
			if !m.FitsWithin(m) {
				t.Errorf("FitsWithin(self) = false for %q", word)
			}
		}
	})
}

func TestPlus(t *testing.T) {
	a := BuildCharmap("race", true, true)
	b := BuildCharmap("car", true, true)

	got := a.Plus(b)
	want := BuildCharmap("racecar", true, true)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Plus() mismatch (-want +got):\n%s", diff)
	}

	// Inputs must not be modified.
	if diff := cmp.Diff(BuildCharmap("race", true, true), a); diff != "" {
		t.Errorf("Plus() modified its receiver:\n%s", diff)
	}
	if diff := cmp.Diff(BuildCharmap("car", true, true), b); diff != "" {
		t.Errorf("Plus() modified its argument:\n%s", diff)
	}
}

func TestMinus(t *testing.T) {
	t.Run("removes counts and drops zero entries", func(t *testing.T) {
		big := BuildCharmap("racecar", true, true)
		small := BuildCharmap("car", true, true)

		got, err := big.Minus(small)
		if err != nil {
			t.Fatalf("Minus() error = %v", err)
		}
		want := BuildCharmap("race", true, true)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Minus() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("subtracting a charmap from itself yields empty", func(t *testing.T) {
		m := BuildCharmap("tears", true, true)
		got, err := m.Minus(m)
		if err != nil {
			t.Fatalf("Minus() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Minus(self) = %v, want empty", got)
		}
	})

	t.Run("errors when the subtrahend does not fit", func(t *testing.T) {
		big := BuildCharmap("race", true, true)
		small := BuildCharmap("cow", true, true)
		if _, err := big.Minus(small); err == nil {
			t.Error("Minus() error = nil, want precondition error")
		}
	})
}

func TestKey(t *testing.T) {
	a := BuildCharmap("race", true, true)
	b := BuildCharmap("care", true, true)
	c := BuildCharmap("cow", true, true)

	if a.Key() != b.Key() {
		t.Errorf("Key() differs for equal charmaps: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("Key() = %q for both %q and %q", a.Key(), "race", "cow")
	}
	if BuildCharmap("", true, true).Key() != "" {
		t.Errorf("Key() of empty charmap = %q, want empty string", BuildCharmap("", true, true).Key())
	}

	// Counts must be part of the key: "aab" and "abb" share letters.
	if BuildCharmap("aab", true, true).Key() == BuildCharmap("abb", true, true).Key() {
		t.Error("Key() ignored counts")
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"racecar", 7},
	}
	for _, tt := range tests {
		if got := BuildCharmap(tt.word, true, true).Size(); got != tt.want {
			t.Errorf("Size(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}
