package console

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether styled output should be written to f.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - SCRIPTSORT_NO_COLOR=1 is set
//   - CI is set (common CI/CD convention)
//   - f is not a terminal (piped output, redirection)
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("SCRIPTSORT_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
