package tabulate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Default configuration values.
const (
	DefaultMaxWidth  = 75
	DefaultSeparator = " "
)

// Usage is returned by [Tabulate] when [Config.Usage] is set.
const Usage = `Usage: tabulate(data, display, config)

Lays out the string form of each item of data in aligned columns and
returns the table as a string suitable for printing.

  display     renders an item as a string. When nil, items implementing
              fmt.Stringer use String, anything else uses %v.
  Alignment   '<', '^' or '>' for left, center or right. Default '>'.
  Down        list items down the columns rather than across each line.
  MaxWidth    total characters per line, separators included. Default 75.
  MaxColumns  upper limit on columns. Only effective when fewer columns
              are specified than would fit into MaxWidth. Default 0 (none).
  Separator   inserted between cells. Default a single space.
  Force       keep items in groups of Force, vertically when Down and
              horizontally otherwise. When both Force and MaxColumns are
              given and Force is possible, Force takes precedence.
  Usage       return this text, ignoring everything else.
  Stats       return a one-line summary of the layout instead of a table.`

// Format is an encoding for a resolved [Layout].
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var formats = []Format{Text, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported layout encodings.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls how a cell is padded to the common cell width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignSymbols = map[Alignment]string{
	AlignLeft:   "<",
	AlignCenter: "^",
	AlignRight:  ">",
}

// ParseAlignment accepts '<', '^', '>' or the words left, center and right.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<", "left":
		return AlignLeft, nil
	case "^", "center", "centre":
		return AlignCenter, nil
	case ">", "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("%w: alignment %q not valid: choose from '<', '^', '>'", ErrInvalidConfig, s)
}

// Valid reports whether a is one of the three recognized alignments.
func (a Alignment) Valid() bool {
	_, ok := alignSymbols[a]
	return ok
}

// String returns the alignment symbol.
func (a Alignment) String() string {
	if s, ok := alignSymbols[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alignment) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: alignment %d", ErrInvalidConfig, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Config describes one tabulation. Start from [DefaultConfig]; the zero
// value has no usable width.
type Config struct {
	Alignment  Alignment
	Down       bool
	MaxWidth   int
	MaxColumns int
	Separator  string
	Force      int
	Usage      bool
	Stats      bool
}

// DefaultConfig returns right alignment, across ordering, a width of 75, no
// column limit, a single space separator and no forcing.
func DefaultConfig() Config {
	return Config{
		Alignment: AlignRight,
		MaxWidth:  DefaultMaxWidth,
		Separator: DefaultSeparator,
	}
}

// validate checks alignment first so an unknown alignment fails before any
// other inspection of the input.
func (c Config) validate(n int) error {
	if !c.Alignment.Valid() {
		return fmt.Errorf("%w: alignment %s not valid: choose from '<', '^', '>'", ErrInvalidConfig, c.Alignment)
	}
	if n == 0 {
		return fmt.Errorf("%w: no items to tabulate", ErrInvalidConfig)
	}
	if c.MaxWidth <= 0 {
		return fmt.Errorf("%w: max width must be positive, got %d", ErrInvalidConfig, c.MaxWidth)
	}
	if c.MaxColumns < 0 {
		return fmt.Errorf("%w: max columns must not be negative, got %d", ErrInvalidConfig, c.MaxColumns)
	}
	if c.Force < 0 {
		return fmt.Errorf("%w: force must not be negative, got %d", ErrInvalidConfig, c.Force)
	}
	return nil
}
