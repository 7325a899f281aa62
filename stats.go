package tabulate

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes the layout summary to w in format f.
func (l Layout) Encode(w io.Writer, f Format) error {
	switch f {
	case Text:
		_, err := fmt.Fprintln(w, l.String())
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(l)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
