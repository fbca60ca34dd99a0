package cmd

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/glamour"
)

// printMarkdown prints md styled for the terminal, or raw in plain mode.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		slog.Debug("cannot style markdown, printing it raw", "err", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Debug("cannot style markdown, printing it raw", "err", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
