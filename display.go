package tabulate

import "fmt"

// Displayer renders an item for tabulation. It is consulted when no display
// function is passed and takes precedence over [fmt.Stringer].
type Displayer interface {
	Display() string
}

func defaultDisplay[T any](item T) string {
	switch v := any(item).(type) {
	case Displayer:
		return v.Display()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", item)
	}
}
