package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/export"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"
)

type convertOptions struct {
	family   string
	style    string
	styles   []string
	fixation int
	contrast int
	format   string
	file     string
	out      string
	title    string
}

// convertResult is the json output of convert.
type convertResult struct {
	Text    string          `json:"text"`
	Runs    []host.Run      `json:"runs"`
	Summary *bionic.Summary `json:"summary"`
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	d := bionic.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "convert [text]",
		Short: "Convert text to bionic reading format",
		Long: `Convert text set in one font to bionic reading format.

The text is taken from the arguments, from --file, or from stdin. Styles of
the family come from the font catalog unless --styles lists them.

Examples:
  bionic convert "the quick brown fox" --family Inter
  bionic convert --file notes.txt --format email --title "Notes" -o notes.html
  echo "hello world" | bionic convert --family Roboto --styles Regular,Bold --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.family, "family", "Inter", "font family the text is set in")
	cmd.Flags().StringVar(&opts.style, "style", "Regular", "current style of the text")
	cmd.Flags().StringSliceVar(&opts.styles, "styles", nil, "styles of the family, overriding the catalog")
	cmd.Flags().IntVarP(&opts.fixation, "fixation", "x", d.FixationStrength, "percentage of each word set in bold (1-100)")
	cmd.Flags().IntVarP(&opts.contrast, "contrast", "c", d.Contrast, "weight gap between base and bold (0-900)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "output format: html, fragment, json or email")
	cmd.Flags().StringVar(&opts.file, "file", "", "read text from file (- for stdin)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.title, "title", "Bionic Reading", "page or email title")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *convertOptions, args []string) error {
	text, err := readText(cmd, opts.file, args)
	if err != nil {
		return err
	}

	catalog := openCatalog(cmd)
	if len(opts.styles) > 0 {
		fonts := make([]font.FontName, 0, len(opts.styles))
		for _, style := range opts.styles {
			fonts = append(fonts, font.FontName{Family: opts.family, Style: strings.TrimSpace(style)})
		}
		catalog = font.NewCatalogFrom(fonts...)
	}

	s := bionic.Settings{FixationStrength: opts.fixation, Contrast: opts.contrast}
	doc, summary, err := bionic.ConvertText(cmd.Context(), catalog, text,
		font.FontName{Family: opts.family, Style: opts.style}, s)
	if err != nil {
		return err
	}

	for _, n := range summary.Notices {
		if n.Level >= bionic.LevelWarning {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", n.Level, n.Message)
		}
	}
	if summary.Count(bionic.OutcomeConverted) == 0 {
		return fmt.Errorf("text was not converted: %w", summary.Nodes[0].Err)
	}

	output, err := formatDocument(cmd, opts, doc, summary)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(output), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Converted to %s (%d bytes)\n", opts.out, len(output))
	return nil
}

func formatDocument(cmd *cobra.Command, opts *convertOptions, doc *host.Document, summary *bionic.Summary) (string, error) {
	switch opts.format {
	case "html":
		var b strings.Builder
		if err := export.Page(opts.title, doc).Render(&b); err != nil {
			return "", fmt.Errorf("render page: %w", err)
		}
		return b.String(), nil
	case "fragment":
		return export.RenderHTML(doc)
	case "json":
		data, err := json.MarshalIndent(convertResult{Text: doc.Text(), Runs: doc.Runs(), Summary: summary}, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "email":
		html, err := export.Email([]*host.Document{doc}, export.WithTitle(opts.title))
		if err != nil {
			return "", err
		}
		for _, issue := range export.ValidateEmail(html) {
			fmt.Fprintf(cmd.ErrOrStderr(), "email: %s\n", issue)
		}
		return html, nil
	default:
		return "", fmt.Errorf("unknown format %q (html, fragment, json or email)", opts.format)
	}
}

// readText returns the text to convert from file, args or stdin, in that order.
func readText(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case file == "-":
		return readAll(cmd.InOrStdin())
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read text: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return readAll(cmd.InOrStdin())
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
