// Package wordsort sorts the whitespace-delimited words of a file.
package wordsort

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// DefaultOutput is the output file used when none is named.
const DefaultOutput = "sorted"

// MaxTokenSize is the longest word, in bytes, that Sort accepts. Longer
// words fail with [bufio.ErrTooLong].
const MaxTokenSize = 16 * 1024 * 1024

// Sentinel errors for programmatic error handling.
var (
	ErrInputNotFound    = errors.New("input file not found")
	ErrOutputPermission = errors.New("lack permission to open output file")
	ErrOutputDir        = errors.New("cannot open output, probably no such directory")
)

// Sort reads r and returns its words in ascending byte order. A word longer
// than [MaxTokenSize] is an error.
func Sort(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	slices.Sort(words)
	return words, nil
}

// Write writes words one per line with no trailing newline.
func Write(w io.Writer, words []string) error {
	_, err := io.WriteString(w, strings.Join(words, "\n"))
	return err
}

// SortFile sorts the words of in and writes them to out, or to
// [DefaultOutput] when out is empty. It returns the number of words written.
func SortFile(in, out string) (int, error) {
	if out == "" {
		out = DefaultOutput
	}

	f, err := os.Open(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}
		return 0, err
	}
	words, err := Sort(f)
	f.Close()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", in, err)
	}

	dst, err := os.Create(out)
	switch {
	case errors.Is(err, fs.ErrPermission):
		return 0, fmt.Errorf("%w: %s", ErrOutputPermission, out)
	case errors.Is(err, fs.ErrNotExist):
		return 0, fmt.Errorf("%w: %s", ErrOutputDir, out)
	case err != nil:
		return 0, err
	}
	if err := Write(dst, words); err != nil {
		dst.Close()
		return 0, fmt.Errorf("write %s: %w", out, err)
	}
	if err := dst.Close(); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}
	return len(words), nil
}
