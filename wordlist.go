package easywallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// WordlistSize is the number of words a BIP-39 wordlist must contain; each
// word encodes 11 bits.
const WordlistSize = 2048

// Wordlist is the lookup capability consumed by Mnemonic. Implementations
// are read-only tables of exactly WordlistSize entries.
type Wordlist interface {
	// Word returns the word at the given index.
	Word(index int) (string, bool)

	// Index returns the index of the given word.
	Index(word string) (int, bool)
}

type sliceWordlist struct {
	words []string
	index map[string]int
}

// NewWordlist creates a Wordlist from a slice of exactly WordlistSize
// distinct words.
func NewWordlist(words []string) (Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("%w: wordlist must have %d words, got %d",
			ErrInvalidLength, WordlistSize, len(words))
	}
	// Index by the NFKD form so that lookups match however the caller's
	// input was composed.
	index := make(map[string]int, len(words))
	for i, word := range words {
		normalized := norm.NFKD.String(word)
		if _, ok := index[normalized]; ok {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrInvalidWord, word)
		}
		index[normalized] = i
	}
	return &sliceWordlist{words: words, index: index}, nil
}

func (wl *sliceWordlist) Word(index int) (string, bool) {
	if index < 0 || index >= len(wl.words) {
		return "", false
	}
	return wl.words[index], true
}

func (wl *sliceWordlist) Index(word string) (int, bool) {
	i, ok := wl.index[norm.NFKD.String(word)]
	return i, ok
}

func mustWordlist(words []string) Wordlist {
	wl, err := NewWordlist(words)
	if err != nil {
		panic(err)
	}
	return wl
}

// The standard BIP-39 language tables.
var (
	English            = mustWordlist(wordlists.English)
	Japanese           = mustWordlist(wordlists.Japanese)
	Korean             = mustWordlist(wordlists.Korean)
	Spanish            = mustWordlist(wordlists.Spanish)
	French             = mustWordlist(wordlists.French)
	Italian            = mustWordlist(wordlists.Italian)
	ChineseSimplified  = mustWordlist(wordlists.ChineseSimplified)
	ChineseTraditional = mustWordlist(wordlists.ChineseTraditional)
)
