package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rustlex/internal/diagfmt"
	"rustlex/internal/driver"
	"rustlex/internal/observ"
	"rustlex/internal/ui"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rs ...",
	Short: "Tokenize source files",
	Long:  `Tokenize breaks source files into their constituent tokens. Pass "-" to read from stdin.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("stats", false, "print a per-category token count summary")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	stats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	timer := observ.NewTimer()
	scanPhase := timer.Begin("scan")
	results, err := tokenizeArgs(args, maxDiagnostics)
	if err != nil {
		return err
	}
	timer.End(scanPhase, fmt.Sprintf("%d files", len(results)))

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	outputPhase := timer.Begin("output")
	for _, result := range results {
		if !quiet {
			printDiagnostics(cmd, result)
		}

		if stats {
			fmt.Fprint(cmd.OutOrStdout(), ui.Summary(result.File.Path, result.Tokens, 80))
			continue
		}

		switch format {
		case "pretty":
			err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
		case "json":
			err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
		case "msgpack":
			err = diagfmt.FormatTokensMsgpack(cmd.OutOrStdout(), result.Tokens)
		}
		if err != nil {
			return err
		}
	}
	timer.End(outputPhase, "")

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// tokenizeArgs scans the given paths; "-" reads stdin once.
func tokenizeArgs(args []string, maxDiagnostics int) ([]*driver.TokenizeResult, error) {
	results := make([]*driver.TokenizeResult, 0, len(args))
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			results = append(results, driver.TokenizeBytes("<stdin>", content, maxDiagnostics))
			continue
		}
		paths = append(paths, arg)
	}

	fileResults, err := driver.TokenizeAll(paths, maxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}
	return append(results, fileResults...), nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.TokenizeResult) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	opts := diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
}
