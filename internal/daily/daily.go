// Package daily picks secrets: a deterministic word of the day and seeded
// samples for batch runs.
package daily

import (
	"encoding/binary"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date: a BLAKE2b-256 MAC of
// the date key under salt, first 8 bytes big-endian, modulo n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		// 32-byte keys are always accepted.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Secret returns the word of the day and its dictionary index.
func Secret(dict words.Dictionary, date time.Time, salt string) (string, int) {
	i := WordIndex(date, salt, dict.Len())
	if dict.Len() == 0 {
		return "", 0
	}
	return dict.At(i), i
}

// Sample returns n distinct words drawn with a PRNG seeded by seed. The same
// seed and dictionary always give the same sample. n is clamped to the
// dictionary size; n <= 0 yields nil.
func Sample(dict words.Dictionary, seed uint64, n int) []string {
	if n <= 0 || dict.Len() == 0 {
		return nil
	}
	if n > dict.Len() {
		n = dict.Len()
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	perm := r.Perm(dict.Len())
	out := make([]string, n)
	for i := range out {
		out[i] = dict.At(perm[i])
	}
	return out
}
