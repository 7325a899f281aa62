package tabulate

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Layout is the arrangement resolved for one tabulation. It doubles as the
// statistics summary returned when [Config.Stats] is set.
type Layout struct {
	Alignment  Alignment `json:"alignment" yaml:"alignment"`
	Down       bool      `json:"down" yaml:"down"`
	Force      int       `json:"force" yaml:"force"`
	MaxColumns int       `json:"max_columns" yaml:"max_columns"`
	Separator  string    `json:"separator" yaml:"separator"`
	PerLine    int       `json:"per_line" yaml:"per_line"`
	PerColumn  int       `json:"per_column,omitempty" yaml:"per_column,omitempty"`
	CellWidth  int       `json:"cell_width" yaml:"cell_width"`
	Items      int       `json:"items" yaml:"items"`
	Lines      int       `json:"lines" yaml:"lines"`
	Forced     bool      `json:"forced" yaml:"forced"`
}

// String returns the one-line stats summary. MaxColumns is reported as
// supplied, even when forcing discarded it. In down mode n is the number of
// occupied columns, which may be fewer than the width allows.
func (l Layout) String() string {
	return fmt.Sprintf("Alignment=%s, down=%t, force=%d, maxCol=%d, n=%d",
		l.Alignment, l.Down, l.Force, l.MaxColumns, l.PerLine)
}

// Tabulate renders data in aligned columns according to cfg. A nil display
// falls back to [Displayer], then [fmt.Stringer], then %v.
//
// With cfg.Usage set it returns [Usage] and ignores everything else. With
// cfg.Stats set it returns [Layout.String] instead of the table.
func Tabulate[T any](data []T, display func(T) string, cfg Config) (string, error) {
	if cfg.Usage {
		return Usage, nil
	}
	if err := cfg.validate(len(data)); err != nil {
		return "", err
	}
	if display == nil {
		display = defaultDisplay[T]
	}

	cells := make([]string, len(data))
	widths := make([]int, len(data))
	for i, item := range data {
		cells[i] = display(item)
		widths[i] = Width(cells[i])
	}

	l := plan(widths, cfg)
	if cfg.Stats {
		return l.String(), nil
	}
	return l.render(cells), nil
}

// Strings tabulates data as-is.
func Strings(data []string, cfg Config) (string, error) {
	return Tabulate(data, func(s string) string { return s }, cfg)
}

// Write tabulates data and writes the result, newline terminated, to w.
func Write[T any](w io.Writer, data []T, display func(T) string, cfg Config) error {
	out, err := Tabulate(data, display, cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

// Plan resolves the layout for cells of the given display widths without
// building a table.
func Plan(widths []int, cfg Config) (Layout, error) {
	if err := cfg.validate(len(widths)); err != nil {
		return Layout{}, err
	}
	return plan(widths, cfg), nil
}

func plan(widths []int, cfg Config) Layout {
	l := Layout{
		Alignment:  cfg.Alignment,
		Down:       cfg.Down,
		Force:      cfg.Force,
		MaxColumns: cfg.MaxColumns,
		Separator:  cfg.Separator,
		CellWidth:  slices.Max(widths),
		Items:      len(widths),
	}

	natural := naturalColumns(cfg.MaxWidth, l.CellWidth, Width(cfg.Separator))
	if cfg.Down {
		l.PerLine = columnsDown(natural, cfg.MaxColumns)
		l.PerColumn = ceilDiv(l.Items, l.PerLine)
		if cfg.Force > 1 && l.PerColumn%cfg.Force != 0 {
			l.PerColumn += cfg.Force - l.PerColumn%cfg.Force
			l.Forced = true
		}
		// Fewer columns than allowed may be occupied once the column height
		// is fixed; every line must carry the same count.
		l.PerLine = ceilDiv(l.Items, l.PerColumn)
		l.Lines = l.PerColumn
		return l
	}
	l.PerLine, l.Forced = columnsAcross(natural, cfg.MaxColumns, cfg.Force)
	l.Lines = ceilDiv(l.Items, l.PerLine)
	return l
}

// Width is the number of terminal columns s occupies. Control characters
// such as tab count as one column each.
func Width(s string) int {
	w := runewidth.StringWidth(s)
	for _, r := range s {
		if unicode.IsControl(r) {
			w += max(1-runewidth.RuneWidth(r), 0)
		}
	}
	return w
}

// naturalColumns is how many cells of width cell, each followed by one
// separator, fit in width. Never less than one.
func naturalColumns(width, cell, sep int) int {
	n := (width + sep) / max(cell+sep, 1)
	return max(n, 1)
}

func columnsDown(natural, maxColumns int) int {
	if maxColumns > 0 && maxColumns < natural {
		return maxColumns
	}
	return natural
}

// columnsAcross applies forcing before the column cap. Forcing discards
// maxColumns outright when it is possible at all and the cap forbids it.
func columnsAcross(natural, maxColumns, force int) (int, bool) {
	if maxColumns < force && force <= natural {
		maxColumns = 0
	}
	n := natural
	forced := false
	if force > 1 && n > force {
		n -= n % force
		forced = true
	}
	if maxColumns > 0 && n > maxColumns {
		if !forced {
			return maxColumns, false
		}
		stepped := n
		for stepped > maxColumns {
			stepped -= force
		}
		if stepped > 0 {
			n = stepped
		}
	}
	return n, forced
}

// rows splits cells into display lines. Across, lines follow input order
// and the last may be short. Down, item k sits in column k/PerColumn at row
// k%PerColumn and grid slots past the data are empty cells.
func (l Layout) rows(cells []string) [][]string {
	rows := make([][]string, 0, l.Lines)
	if !l.Down {
		for start := 0; start < len(cells); start += l.PerLine {
			rows = append(rows, cells[start:min(start+l.PerLine, len(cells))])
		}
		return rows
	}
	for r := range l.PerColumn {
		row := make([]string, l.PerLine)
		for c := range row {
			if k := c*l.PerColumn + r; k < len(cells) {
				row[c] = cells[k]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (l Layout) render(cells []string) string {
	var sb strings.Builder
	for i, row := range l.rows(cells) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(l.Separator)
			}
			sb.WriteString(alignCell(cell, l.CellWidth, l.Alignment))
		}
	}
	return sb.String()
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
