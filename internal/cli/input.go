package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/tabulate/internal/wordsort"
)

// readItems reads items from each named file in order, or from stdin when
// there are none. The name "-" also reads stdin. Items are words unless
// lines is set, in which case every non-empty line is one item. An item
// longer than [wordsort.MaxTokenSize] bytes fails with bufio.ErrTooLong.
func readItems(stdin io.Reader, names []string, lines bool) ([]string, error) {
	if len(names) == 0 {
		return scanItems(stdin, lines)
	}
	var items []string
	for _, name := range names {
		if name == "-" {
			got, err := scanItems(stdin, lines)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			items = append(items, got...)
			continue
		}
		got, err := readFile(name, lines)
		if err != nil {
			return nil, err
		}
		items = append(items, got...)
	}
	return items, nil
}

func readFile(name string, lines bool) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	items, err := scanItems(f, lines)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return items, nil
}

func scanItems(r io.Reader, lines bool) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), wordsort.MaxTokenSize)
	if !lines {
		sc.Split(bufio.ScanWords)
	}
	var items []string
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		items = append(items, sc.Text())
	}
	return items, sc.Err()
}
