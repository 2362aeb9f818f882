package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal. When the
// renderer cannot be built (dumb terminals, broken TERM), the raw markdown
// is still printed: reports must never be lost to styling.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
