package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arterdev/site/internal/doctree"
	"github.com/arterdev/site/internal/headings"
	"github.com/arterdev/site/internal/parser"
)

var (
	outputFmt string
	unique    bool
)

var rootCmd = &cobra.Command{
	Use:   "toc [file]",
	Short: "Print the heading outline of a document",
	Long: `toc prints the table of contents of a markdown, HTML or text file.

Headings of level 2 to 6 are nested by level; the level 1 heading is the
page title and is left out. Reads standard input when no file or "-" is
given, treating it as markdown.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		forest, err := readOutline(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		if unique {
			forest = headings.UniqueIDs(forest)
		}
		return writeOutline(cmd.OutOrStdout(), forest, outputFmt)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputFmt, "format", "f", "json", "output format: json, html or flat")
	rootCmd.Flags().BoolVar(&unique, "unique", false, "suffix repeated heading ids")
}

func readOutline(stdin io.Reader, args []string) ([]*doctree.Heading, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return headings.Extract(string(data)), nil
	}

	path := args[0]
	p, err := parser.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := p.Parse(f, path)
	if err != nil {
		return nil, err
	}
	return doc.Headings, nil
}

func writeOutline(w io.Writer, forest []*doctree.Heading, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(forest)
	case "html":
		if err := headings.RenderHTML(w, forest); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case "flat":
		var err error
		doctree.Walk(forest, func(h *doctree.Heading, depth int) bool {
			if err == nil {
				_, err = fmt.Fprintf(w, "%s- %s (#%s)\n", strings.Repeat("  ", depth), h.Text, h.ID)
			}
			return true
		})
		return err
	default:
		return fmt.Errorf("unknown format %q: use json, html or flat", format)
	}
}
