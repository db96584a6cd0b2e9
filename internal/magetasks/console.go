package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// out receives all task output.
var out io.Writer = os.Stdout

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))  // green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // blue
)

const headerWidth = 80

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	rule := strings.Repeat("=", headerWidth)
	padding := max((headerWidth-lipgloss.Width(title))/2, 0)
	fmt.Fprintf(out, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), headerStyle.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(out, "\n%s\n\n", headerStyle.Render("=== "+title+" ==="))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintln(out, successStyle.Render("✓ "+msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintln(out, warningStyle.Render("! "+msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintln(out, errorStyle.Render("✗ "+msg))
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Fprintln(out, infoStyle.Render("· "+msg))
}
