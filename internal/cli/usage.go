package cli

import (
	"fmt"
	"strings"

	"github.com/vvka-141/scriptsort/internal/console"
)

// buildLongHelp renders the root command's long help text. Styling is
// applied through lipgloss and degrades to plain text when output is not a
// terminal.
func buildLongHelp() string {
	var b strings.Builder

	b.WriteString("scriptsort orders the shell script fragments of one directory into a\n")
	b.WriteString("deterministic execution sequence and prints the result to stdout.\n\n")

	b.WriteString(console.MutedStyle.Render(
		"Anything not prefixed with 'ordered.', followed by a number, is sourced\n" +
			"between the low and high ordered groups.") + "\n\n")

	b.WriteString("The order is\n")
	fmt.Fprintf(&b, "  1. %s\n", console.ArgStyle.Render("ordered.(0-49).(anything)"))
	fmt.Fprintf(&b, "  2. %s\n", console.ExampleStyle.Render("(files not prefixed with ordered)"))
	fmt.Fprintf(&b, "  3. %s\n\n", console.ArgStyle.Render("ordered.(50+).(anything)"))

	b.WriteString("So in a directory with 'ordered.01.first', 'fn.a', 'fn.b', and\n")
	b.WriteString("'ordered.52.last', scriptsort will print:\n")
	b.WriteString(console.ExampleStyle.Render(
		"  ordered.01.first\n  fn.a\n  fn.b\n  ordered.52.last") + "\n\n")

	b.WriteString("Entries named '.', '..', and anything prefixed 'skip.' are always\n")
	b.WriteString("excluded. To source the whole directory at shell startup, add this to\n")
	b.WriteString("the bottom of your startup script:\n")
	fmt.Fprintf(&b, "  source <(%s /path/to/dir %s)\n\n",
		console.CommandStyle.Render("scriptsort"), console.FlagStyle.Render("--init"))

	b.WriteString(`Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (bad cutoff or scriptsort.yaml)
  11 - Target directory could not be opened
  12 - Assembly buffer allocation failed`)

	return b.String()
}
