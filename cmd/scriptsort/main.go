package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/scriptsort/internal/cli"
	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(scriptsort.ExitPanic)
		}
	}()

	if os.Getenv("SCRIPTSORT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(scriptsort.ExitCodeForError(err))
	}
}
