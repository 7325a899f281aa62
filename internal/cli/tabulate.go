package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tabulate"
	"github.com/bjaus/tabulate/internal/config"
)

type tabulateOpts struct {
	align       string
	down        bool
	width       int
	columns     int
	separator   string
	force       int
	lines       bool
	stats       bool
	statsFormat string
	usage       bool
	configPath  string
}

func (c *CLI) tabulateCommand() *cobra.Command {
	var opts tabulateOpts
	defaults := tabulate.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "tabulate [flags] [FILE...]",
		Short: "Lay out words in aligned columns",
		Long: `Tabulate reads whitespace-separated words from each FILE, or stdin when
no FILE is given or FILE is "-", and prints them in aligned columns that fit
the requested width.

To tabulate a file named "sort", pass it as "./sort" so it is not taken for
the sort subcommand.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTabulate(cmd, args, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.align, "align", "a", defaults.Alignment.String(), "cell alignment: '<', '^', '>' or left, center, right")
	f.BoolVarP(&opts.down, "down", "d", defaults.Down, "list items down the columns")
	f.IntVarP(&opts.width, "width", "w", defaults.MaxWidth, "maximum line width; 0 uses the terminal width")
	f.IntVarP(&opts.columns, "columns", "c", defaults.MaxColumns, "maximum number of columns (0 for no limit)")
	f.StringVarP(&opts.separator, "sep", "s", defaults.Separator, "separator between cells")
	f.IntVarP(&opts.force, "force", "f", defaults.Force, "keep items in groups of this size")
	f.BoolVar(&opts.lines, "lines", false, "treat each input line as one item")
	f.BoolVar(&opts.stats, "stats", false, "print the resolved layout instead of the table")
	f.StringVar(&opts.statsFormat, "stats-format", string(tabulate.Text), "layout summary format: text, json or yaml")
	f.BoolVar(&opts.usage, "usage", false, "print the layout engine usage and exit")
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tabulate/config.toml)")

	return cmd
}

func (c *CLI) runTabulate(cmd *cobra.Command, args []string, opts *tabulateOpts) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	if opts.usage {
		cfg := tabulate.DefaultConfig()
		cfg.Usage = true
		return tabulate.Write[string](out, nil, nil, cfg)
	}

	cfg, lines, err := c.resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger.Debug("resolved config", "align", cfg.Alignment, "down", cfg.Down, "width", cfg.MaxWidth,
		"columns", cfg.MaxColumns, "force", cfg.Force, "lines", lines)

	items, err := readItems(cmd.InOrStdin(), args, lines)
	if err != nil {
		return err
	}
	logger.Debug("read items", "count", len(items))
	if len(items) == 0 {
		logger.Warn("no input items")
		return nil
	}

	if opts.stats {
		format, err := tabulate.ParseFormat(opts.statsFormat)
		if err != nil {
			return err
		}
		widths := make([]int, len(items))
		for i, item := range items {
			widths[i] = tabulate.Width(item)
		}
		layout, err := tabulate.Plan(widths, cfg)
		if err != nil {
			return err
		}
		return layout.Encode(out, format)
	}

	return tabulate.Write(out, items, nil, cfg)
}

// resolveConfig layers engine defaults, the config file and explicitly set
// flags, in that order.
func (c *CLI) resolveConfig(cmd *cobra.Command, opts *tabulateOpts) (tabulate.Config, bool, error) {
	logger := loggerFromContext(cmd.Context())
	cfg := tabulate.DefaultConfig()

	var (
		file config.File
		path string
		err  error
	)
	if opts.configPath != "" {
		path = opts.configPath
		file, err = config.Load(path)
	} else {
		file, path, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, false, err
	}
	logger.Debug("config file", "path", path)
	file.Apply(&cfg)
	lines := file.Lines != nil && *file.Lines

	flags := cmd.Flags()
	if flags.Changed("align") {
		a, err := tabulate.ParseAlignment(opts.align)
		if err != nil {
			return cfg, false, err
		}
		cfg.Alignment = a
	}
	if flags.Changed("down") {
		cfg.Down = opts.down
	}
	if flags.Changed("width") {
		cfg.MaxWidth = opts.width
	}
	if flags.Changed("columns") {
		cfg.MaxColumns = opts.columns
	}
	if flags.Changed("sep") {
		cfg.Separator = opts.separator
	}
	if flags.Changed("force") {
		cfg.Force = opts.force
	}
	if flags.Changed("lines") {
		lines = opts.lines
	}
	if cfg.MaxWidth == 0 {
		cfg.MaxWidth = c.terminalWidth()
		logger.Debug("using terminal width", "width", cfg.MaxWidth)
	}
	return cfg, lines, nil
}
