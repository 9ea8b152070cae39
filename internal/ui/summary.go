package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rustlex/internal/token"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summaryErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	summaryTotalStyle = lipgloss.NewStyle().Bold(true)
)

// Summary renders a per-category token count table for one scanned file.
func Summary(path string, tokens []token.Token, width int) string {
	var counts [token.CatError + 1]int
	for _, tok := range tokens {
		counts[tok.Kind.Category()]++
	}

	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render(truncate(path, width)))
	b.WriteString("\n")

	for cat := token.CatPlain; cat <= token.CatError; cat++ {
		n := counts[cat]
		if n == 0 {
			continue
		}
		label := fmt.Sprintf("%12s", cat.String())
		if cat == token.CatError {
			label = summaryErrorStyle.Render(label)
		} else {
			label = summaryLabelStyle.Render(label)
		}
		fmt.Fprintf(&b, "  %s %d\n", label, n)
	}

	total := summaryTotalStyle.Render(fmt.Sprintf("%12s", "total"))
	fmt.Fprintf(&b, "  %s %d\n", total, len(tokens))
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
