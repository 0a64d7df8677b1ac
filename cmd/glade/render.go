package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glade/internal/config"
	"github.com/alexisbeaulieu97/glade/internal/gallery"
)

type renderOptions struct {
	outDir string
	page   string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <config-file>",
		Short: "Render gallery pages to static HTML",
		Long: `Render builds every page of the gallery and writes <page-id>.html into the
output directory. With --page, a single page is written to stdout instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("render", args[0])
			if err != nil {
				return err
			}
			r := gallery.NewRenderer(cfg, root.log)

			if opts.page != "" {
				page, ok := findPage(cfg, opts.page)
				if !ok {
					return newCommandError("render", "selecting page", fmt.Errorf("no page with id %q", opts.page), "Check the page ids in "+args[0]+".")
				}
				out, err := r.RenderPage(page)
				if err != nil {
					return newCommandError("render", "rendering page "+page.ID, err, "Run with --log-level debug for component warnings.")
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			paths, err := r.RenderAll(opts.outDir)
			if err != nil {
				return newCommandError("render", "writing pages", err, "Check that the output directory is writable.")
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "site", "Output directory")
	cmd.Flags().StringVar(&opts.page, "page", "", "Render only this page id to stdout")

	return cmd
}

func findPage(cfg *config.Config, id string) (config.Page, bool) {
	for _, p := range cfg.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return config.Page{}, false
}
