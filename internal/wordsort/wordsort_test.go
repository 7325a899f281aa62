package wordsort_test

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabulate/internal/wordsort"
)

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestSort(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"mixed whitespace": {input: "pear apple\n\tbanana  cherry\n", want: []string{"apple", "banana", "cherry", "pear"}},
		"uppercase first":  {input: "b A a B", want: []string{"A", "B", "a", "b"}},
		"duplicates kept":  {input: "x y x", want: []string{"x", "x", "y"}},
		"empty":            {input: " \n\t", want: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := wordsort.Sort(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortTokenTooLong(t *testing.T) {
	t.Parallel()
	_, err := wordsort.Sort(strings.NewReader(strings.Repeat("x", wordsort.MaxTokenSize+1)))
	require.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, wordsort.Write(&buf, []string{"a", "b", "c"}))
	assert.Equal(t, "a\nb\nc", buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	err := wordsort.Write(&errWriter{}, []string{"a"})
	require.ErrorIs(t, err, errWriteFailed)
}

func TestSortFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "words.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("delta alpha\ncharlie bravo"), 0o644))

	n, err := wordsort.SortFile(in, out)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbravo\ncharlie\ndelta", string(got))
}

func TestSortFileErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(in, []byte("b a"), 0o644))

	tests := map[string]struct {
		in     string
		out    string
		target error
	}{
		"missing input": {
			in:     filepath.Join(dir, "nope.txt"),
			out:    filepath.Join(dir, "out.txt"),
			target: wordsort.ErrInputNotFound,
		},
		"missing output dir": {
			in:     in,
			out:    filepath.Join(dir, "no", "such", "dir", "out.txt"),
			target: wordsort.ErrOutputDir,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := wordsort.SortFile(tt.in, tt.out)
			require.ErrorIs(t, err, tt.target)
		})
	}
}
