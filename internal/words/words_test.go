package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDedupes(t *testing.T) {
	d, err := New([]string{" Cigar", "rebut", "CIGAR", "humph"}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"cigar", "rebut", "humph"}, d.Words())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 5, d.WordLength())
	assert.Equal(t, 1, d.Index("REBUT"))
	assert.Equal(t, -1, d.Index("onset"))
	assert.True(t, d.Contains("humph"))
	assert.Equal(t, "humph", d.At(2))
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name   string
		list   []string
		length int
		want   error
	}{
		{"empty", nil, 5, ErrEmptyDictionary},
		{"empty slice", []string{}, 5, ErrEmptyDictionary},
		{"short word", []string{"cigar", "cat"}, 5, ErrInvalidWordLength},
		{"long word", []string{"cigars"}, 5, ErrInvalidWordLength},
		{"digits", []string{"ab1de"}, 5, ErrInvalidWord},
		{"zero length", []string{"cigar"}, 0, ErrInvalidWordLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.list, tc.length)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	d, err := New([]string{"cigar", "rebut"}, 5)
	require.NoError(t, err)

	w := d.Words()
	w[0] = "zzzzz"
	assert.Equal(t, "cigar", d.At(0))
}

func TestCheckWordCountsRunes(t *testing.T) {
	assert.NoError(t, CheckWord("ätsch", 5))
	assert.ErrorIs(t, CheckWord("ätsc", 5), ErrInvalidWordLength)
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("", DefaultLength)
	require.NoError(t, err)

	assert.Equal(t, "cigar", d.At(0))
	assert.True(t, d.Contains("onset"))
	assert.True(t, d.Contains("adieu"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\n\nonset\nAUDIO\n"), 0o644))

	d, err := Load(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"onset", "audio"}, d.Words())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 5)
	assert.Error(t, err)
}
