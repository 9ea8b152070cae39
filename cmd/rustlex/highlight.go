package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rustlex/internal/driver"
	"rustlex/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file.rs",
	Short: "Print a source file with terminal syntax highlighting",
	Long:  `Highlight scans a source file and reprints it with each token styled by its category. Pass "-" to read from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("theme", "", "TOML theme file overriding the default colors")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	theme := highlight.DefaultTheme()
	if themePath, _ := cmd.Flags().GetString("theme"); themePath != "" {
		theme, err = highlight.LoadTheme(themePath)
		if err != nil {
			return err
		}
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result = driver.TokenizeBytes("<stdin>", content, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	return highlight.Highlight(cmd.OutOrStdout(), result.File.Content, result.Tokens, theme)
}
