package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glade/internal/gallery"
)

type listOptions struct {
	jsonOutput bool
	category   string
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the component kinds a gallery can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only list kinds in this category")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	entries := gallery.Catalog()
	if opts.category != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if string(e.Category) == opts.category {
				filtered = append(filtered, e)
			}
		}
		if len(filtered) == 0 {
			names := make([]string, 0, len(gallery.Categories()))
			for _, c := range gallery.Categories() {
				names = append(names, string(c))
			}
			return newCommandError("list", "filtering by category", fmt.Errorf("unknown category %q", opts.category),
				"Use one of: "+strings.Join(names, ", ")+".")
		}
		entries = filtered
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}

	out := cmd.OutOrStdout()
	tty := isTerminal(out)
	width := terminalWidth(out)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KIND\tTITLE\tCATEGORY\tDESCRIPTION")
	for _, e := range entries {
		kind := e.Kind
		if tty {
			// Every row gets the same escape sequence, so tabwriter columns
			// stay aligned.
			kind = kindStyle.Render(kind)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", kind, e.Title, e.Category, truncate(e.Description, width))
	}
	return writer.Flush()
}

var kindStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

// descriptionBudget is the room left for descriptions after the other
// columns on a terminal of the given width.
const descriptionBudget = 60

func terminalWidth(w any) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens s to fit beside the fixed columns when width is known.
func truncate(s string, width int) string {
	if width == 0 {
		return s
	}
	room := width - descriptionBudget
	if room < 10 {
		room = 10
	}
	r := []rune(s)
	if len(r) <= room {
		return s
	}
	return string(r[:room-1]) + "…"
}

type listJSONEntry struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type listJSONPayload struct {
	Count int             `json:"count"`
	Kinds []listJSONEntry `json:"kinds"`
}

func renderListJSON(cmd *cobra.Command, entries []gallery.Entry) error {
	payload := listJSONPayload{Count: len(entries), Kinds: make([]listJSONEntry, len(entries))}
	for i, e := range entries {
		payload.Kinds[i] = listJSONEntry{Kind: e.Kind, Title: e.Title, Category: string(e.Category), Description: e.Description}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
