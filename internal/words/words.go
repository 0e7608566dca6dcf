// internal/words/words.go
//
// Dictionary management for the solver.
//
// Responsibilities:
//   - Load the dictionary from a file (WORDS_FILE) or fall back to the
//     embedded default list.
//   - Normalize entries (trim, lowercase) and validate them: letters only,
//     one fixed length for every word.
//   - Keep dictionary order, since it is the last tie-break between guesses.
//
// Constraints:
//   • A Dictionary is immutable once built; callers get copies of its slices.
//   • Duplicate entries are dropped, keeping the first occurrence.
//   • An empty dictionary is an error (ErrEmptyDictionary).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// DefaultLength is the standard word length.
const DefaultLength = 5

var (
	ErrEmptyDictionary   = errors.New("words: dictionary is empty")
	ErrInvalidWordLength = errors.New("words: invalid word length")
	ErrInvalidWord       = errors.New("words: word must contain letters only")
)

// Dictionary is an ordered, duplicate-free list of words of one length.
type Dictionary struct {
	words  []string
	index  map[string]int
	length int
}

// New validates list and builds a Dictionary whose words are all length
// letters long. Length is counted in runes.
func New(list []string, length int) (Dictionary, error) {
	if length <= 0 {
		return Dictionary{}, fmt.Errorf("%w: length %d", ErrInvalidWordLength, length)
	}
	d := Dictionary{
		words:  make([]string, 0, len(list)),
		index:  make(map[string]int, len(list)),
		length: length,
	}
	for i, raw := range list {
		w := Normalize(raw)
		if err := CheckWord(w, length); err != nil {
			return Dictionary{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return Dictionary{}, ErrEmptyDictionary
	}
	return d, nil
}

// Load reads a dictionary from path, or the embedded default list when path
// is empty.
func Load(path string, length int) (Dictionary, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.DefaultWords()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return Dictionary{}, err
	}
	return New(list, length)
}

// readWordFile loads one word per line, skipping blank lines and # comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Normalize trims and lowercases a word.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// CheckWord reports whether w is a valid word of the given length.
func CheckWord(w string, length int) error {
	if n := utf8.RuneCountInString(w); n != length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidWordLength, w, n, length)
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
	}
	return nil
}

// Words returns a copy of the words in dictionary order.
func (d Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

// Len is the number of words.
func (d Dictionary) Len() int { return len(d.words) }

// WordLength is the fixed length of every word.
func (d Dictionary) WordLength() int { return d.length }

// At returns the i-th word.
func (d Dictionary) At(i int) string { return d.words[i] }

// Index returns the dictionary position of w, or -1.
func (d Dictionary) Index(w string) int {
	if i, ok := d.index[Normalize(w)]; ok {
		return i
	}
	return -1
}

// Contains reports whether w is in the dictionary.
func (d Dictionary) Contains(w string) bool { return d.Index(w) >= 0 }
