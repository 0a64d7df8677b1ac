package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glade/internal/gallery"
)

type snapshotOptions struct {
	goldenDir string
	update    bool
}

func newSnapshotCmd(root *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot <config-file>",
		Short: "Compare rendered pages with golden files",
		Long: `Snapshot renders every page and compares it with <golden>/<page-id>.html.
Differences are printed as unified diffs and the command exits with code 1.
With --update, golden files are rewritten instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("snapshot", args[0])
			if err != nil {
				return err
			}
			mismatches, err := gallery.NewRenderer(cfg, root.log).Snapshot(opts.goldenDir, opts.update)
			if err != nil {
				return newCommandError("snapshot", "comparing pages", err, "Check that the golden directory is readable.")
			}

			out := cmd.OutOrStdout()
			if len(mismatches) == 0 {
				fmt.Fprintf(out, "%d pages match %s\n", len(cfg.Pages), opts.goldenDir)
				return nil
			}
			for _, m := range mismatches {
				if m.Missing {
					fmt.Fprintf(out, "%s: no golden file at %s\n", m.Page, m.Golden)
					continue
				}
				fmt.Fprintf(out, "%s: +%d -%d, first change at line %d: %s\n",
					m.Page, m.Stats.Insertions, m.Stats.Deletions, m.Line, m.Summary)
				fmt.Fprint(out, m.Diff)
			}
			fmt.Fprintln(out, "Run with --update to accept these changes.")
			return errSnapshotMismatch
		},
	}

	cmd.Flags().StringVar(&opts.goldenDir, "golden", "testdata/golden", "Directory holding golden pages")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite golden files from the current render")

	return cmd
}
