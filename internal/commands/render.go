package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerdev/ledgerkit/internal/manifest"
)

func newRenderCommand() *cobra.Command {
	var (
		out         string
		sortEntries bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "render <manifest.yaml>",
		Short: "Render a YAML journal manifest as ledger text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				var err error
				if logger, err = zap.NewDevelopment(); err != nil {
					return err
				}
			}
			defer func() { _ = logger.Sync() }()

			journal, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded manifest",
				zap.String("path", args[0]),
				zap.Int("entries", len(journal.Entries())))

			if sortEntries {
				journal.Sort()
				logger.Debug("sorted journal entries")
			}

			text := journal.ToLedger() + "\n"
			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			logger.Debug("writing ledger file", zap.String("path", out))
			return os.WriteFile(out, []byte(text), 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVar(&sortEntries, "sort", false, "sort entries: comments first, then by date, code, note")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
