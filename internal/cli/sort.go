package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tabulate/internal/wordsort"
)

func (c *CLI) sortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort INFILE [OUTFILE]",
		Short: "Sort the words of a file, one per line",
		Long: `Sort reads every whitespace-separated word of INFILE and writes them in
ascending order, one per line, to OUTFILE (default "` + wordsort.DefaultOutput + `").`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := ""
			if len(args) == 2 {
				out = args[1]
			}
			if out == "" {
				out = wordsort.DefaultOutput
			}
			n, err := wordsort.SortFile(args[0], out)
			if err != nil {
				return err
			}
			logger.Info("sorted words", "count", n, "in", args[0], "out", out)
			return nil
		},
	}
}
