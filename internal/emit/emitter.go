// Package emit renders assembled output in one of three forms: a plain
// list, a sourceable init script, or concatenated file contents. The init
// script is an opaque text artifact produced by string substitution into a
// fixed embedded template; no shell syntax is parsed or evaluated here.
package emit

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed templates/init.sh.tmpl
var initTemplate string

// Emitter writes final output to a single stream, normally stdout.
// Diagnostics never pass through the emitter; they belong on stderr.
type Emitter struct {
	out io.Writer
}

// NewEmitter creates an emitter writing to out.
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{out: out}
}

// timerExpression builds the defensive shell expression that invokes the
// external millisecond-timestamp command, falling back to 0 when the
// command is not on PATH.
func timerExpression(timerCmd string) string {
	return fmt.Sprintf("$(command 2>&1 >/dev/null -v %s && %s || printf '0')", timerCmd, timerCmd)
}

// EmitList writes the assembled name list as-is.
func (e *Emitter) EmitList(list []byte) error {
	_, err := e.out.Write(list)
	return err
}

// EmitBundle writes concatenated file contents followed by a trailing
// newline. With debug set, the whole stream is wrapped in two reads of the
// external timestamp command and a shell variable assignment capturing the
// elapsed milliseconds.
func (e *Emitter) EmitBundle(bundle []byte, debug bool, timerCmd string) error {
	if debug {
		if _, err := fmt.Fprintf(e.out, "local start_time=%s\n", timerExpression(timerCmd)); err != nil {
			return err
		}
	}

	if _, err := e.out.Write(bundle); err != nil {
		return err
	}
	if _, err := io.WriteString(e.out, "\n"); err != nil {
		return err
	}

	if debug {
		if _, err := fmt.Fprintf(e.out, "local end_time=%s\n", timerExpression(timerCmd)); err != nil {
			return err
		}
		if _, err := io.WriteString(e.out, "export SCRIPTSORT_ELAPSED=$(($end_time - $start_time))\n"); err != nil {
			return err
		}
	}

	return nil
}

// EmitInit renders the sourceable wrapper script around the space-joined
// name list. The template has five substitution points: the script list,
// the timer expression (reused before and after each source), the
// debug-start block, the debug-end block, and the directory path handed to
// the final includeScripts invocation.
func (e *Emitter) EmitInit(list []byte, directory string, debug bool, timerCmd string) error {
	// The assembled list carries a trailing joiner; trim it so the array
	// reads scripts=( a b ) exactly.
	scriptList := strings.TrimRight(string(list), " ")

	debugStart := "\n"
	debugEnd := ""
	if debug {
		debugStart = "    printf \"Sourcing \\\"${scriptpath}\\\"...\"\n"
		debugEnd = "    printf \"done\\n\"\n"
	}

	script := initTemplate
	script = strings.ReplaceAll(script, "{{SCRIPT_LIST}}", scriptList)
	script = strings.ReplaceAll(script, "{{TIMER_EXPR}}", timerExpression(timerCmd))
	script = strings.ReplaceAll(script, "{{DEBUG_START}}", debugStart)
	script = strings.ReplaceAll(script, "{{DEBUG_END}}", debugEnd)
	script = strings.ReplaceAll(script, "{{SCRIPTS_DIR}}", directory)

	_, err := io.WriteString(e.out, script)
	return err
}
