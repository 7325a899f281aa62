// Package tabulate lays out a sequence of strings in aligned columns.
//
// The central entry point is [Tabulate], which renders each item with a
// display function, works out how many cells fit on a line and returns the
// grid as a string:
//
//	out, err := tabulate.Strings(words, tabulate.DefaultConfig())
//
// # Layout
//
// Every cell is padded to the display width of the widest item, so no cell
// is ever truncated. The natural column count is the number of such cells,
// each followed by one separator, that fit in [Config.MaxWidth]. It is never
// less than one.
//
// Across (the default), items fill each line left to right. [Config.Force]
// rounds the column count down to a multiple of the group size and
// [Config.MaxColumns] caps it. When forcing is possible but the cap would
// forbid it, forcing wins and the cap is ignored.
//
// Down ([Config.Down]), items fill each column top to bottom. Force applies
// to the column height instead of the column count, and grid slots past the
// last item render as empty, still padded, cells.
//
// # Output modes
//
// [Config.Usage] returns [Usage]. [Config.Stats] returns the one-line
// summary from [Layout.String]; [Layout.Encode] writes the same summary as
// text, JSON or YAML. Use [Plan] to resolve a layout from display widths
// without rendering anything.
//
// # Streaming
//
// [WriteIter] and [WriteChan] accept an iterator or a channel. Layout needs
// the widest item, so both collect their input before writing.
//
// # Errors
//
//   - [ErrInvalidConfig]: unknown alignment, no items, a non-positive
//     width, or a negative MaxColumns or Force. Alignment is checked before
//     anything else.
//   - [ErrUnsupportedFormat]: unknown layout encoding.
package tabulate
