package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report to the terminal. When rendering is
// not possible the raw markdown is printed instead, which is still readable.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		fmt.Println(source)
		return
	}
	fmt.Print(out)
}
