package tabulate

import (
	"io"
	"iter"
)

// WriteIter collects items from seq and tabulates them to w. Layout needs
// the widest item, so nothing is written until seq is exhausted.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], display func(T) string, cfg Config) error {
	var items []T
	seq(func(item T) bool {
		items = append(items, item)
		return true
	})
	return Write(w, items, display, cfg)
}

// WriteChan tabulates items received from ch until it is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T, display func(T) string, cfg Config) error {
	return WriteIter(w, chanToIter(ch), display, cfg)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
