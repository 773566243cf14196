// Command antsibull-markup renders ansible-doc inline markup into one of
// several documentation formats, and optionally lints it for constructs
// that parse but are still worth flagging.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ansible-community/antsibull-markup-go/internal/lint"
	"github.com/ansible-community/antsibull-markup-go/internal/markup"
)

// version is set at build time using -ldflags. Defaults to "dev" when not set.
var version = "dev"

var log = logrus.New()

func main() {
	var (
		format          string
		onlyClassic     bool
		strict          bool
		unhelpfulErrors bool
		lintOutput      bool
		jsonOutput      bool
		quiet           bool
		verbose         bool
		listFormats     bool
		listRules       bool
	)

	root := &cobra.Command{
		Use:     "antsibull-markup [flags] [file]",
		Short:   "Render or lint ansible-doc inline markup",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			if listFormats {
				for _, name := range markup.DefaultFormatterRegistry.Names() {
					fmt.Println(name)
				}
				return nil
			}
			if listRules {
				for _, rule := range lint.DefaultRegistry.All() {
					fmt.Printf("%s\t[%s]\t%s - %s\n", rule.ID(), rule.Severity(), rule.Name(), rule.Description())
				}
				return nil
			}

			source := "stdin"
			var reader io.Reader = os.Stdin
			if len(args) == 1 {
				source = args[0]
				file, err := os.Open(source)
				if err != nil {
					return fmt.Errorf("failed to open file: %w", err)
				}
				defer file.Close()
				reader = file
			}

			content, err := io.ReadAll(reader)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			log.Debugf("read %d bytes from %s", len(content), source)

			opts := markup.NewParseOptions()
			if onlyClassic {
				opts.OnlyClassicMarkup()
			}
			if strict {
				opts.Strict()
			}
			if unhelpfulErrors {
				opts.UnhelpfulErrors()
			}
			opts.Where(source).AddParagraphToWhere()

			paragraphs := markup.ParseParagraphs(string(content), markup.Context{}, opts)
			log.Debugf("parsed %d paragraphs", len(paragraphs))

			if lintOutput {
				analyzer := lint.NewWithDefaults(lint.Config{})
				findings := analyzer.Analyze(paragraphs)

				var f interface {
					Format([]lint.Finding, io.Writer) error
				}
				if jsonOutput {
					f = lint.NewJSONFormatter(source, quiet)
				} else {
					f = lint.NewTextFormatter(source, quiet)
				}
				if err := f.Format(findings, os.Stdout); err != nil {
					return fmt.Errorf("failed to format findings: %w", err)
				}

				for _, finding := range findings {
					if finding.Severity == lint.SeverityError {
						os.Exit(1)
					}
				}
				return nil
			}

			backend := markup.DefaultFormatterRegistry.Get(format)
			if backend == nil {
				return fmt.Errorf("unknown format %q (see --list-formats)", format)
			}

			parts := make([][]markup.Part, len(paragraphs))
			for i, paragraph := range paragraphs {
				parts[i] = make([]markup.Part, len(paragraph))
				for j, p := range paragraph {
					parts[i][j] = p.Part
				}
			}

			out := markup.NewStringAppender()
			markup.AppendParagraphs(out, backend, parts, markup.NoLinkProvider{}, nil)
			fmt.Println(out.IntoString())
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&format, "format", "f", "ansible-doc-text", "output format (see --list-formats)")
	flags.BoolVar(&onlyClassic, "only-classic-markup", false, "recognize only the classic, pre-escaping command set")
	flags.BoolVar(&strict, "strict", false, "reject unnecessarily escaped characters")
	flags.BoolVar(&unhelpfulErrors, "unhelpful-errors", false, "omit quoted source text from diagnostics")
	flags.BoolVar(&lintOutput, "lint", false, "lint the markup instead of rendering it")
	flags.BoolVarP(&jsonOutput, "json", "j", false, "with --lint, output findings as JSON")
	flags.BoolVarP(&quiet, "quiet", "q", false, "with --lint, suppress info-level findings")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&listFormats, "list-formats", false, "list available output formats and exit")
	flags.BoolVar(&listRules, "list-rules", false, "list available lint rules and exit")

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(2)
	}
}
