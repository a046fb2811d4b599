package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

var rootCmd = &cobra.Command{
	Use:   "scriptsort <directory_path>",
	Short: "Order shell script fragments into a deterministic sequence",
	Long:  buildLongHelp(),
	Args:  cobra.ExactArgs(1),
	RunE:  runSort,

	SilenceUsage: true,
}

type sortFlagValues struct {
	init   bool
	bundle bool
	debug  bool
	cutoff int
}

var sortFlags sortFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")

	rootCmd.Flags().BoolVar(&sortFlags.init, "init", false,
		"Emit a sourceable shell snippet instead of a plain list.\n"+
			"Add to a startup file: source <(scriptsort /path/to/dir --init)")
	rootCmd.Flags().BoolVar(&sortFlags.bundle, "bundle", false,
		"Emit the concatenated contents of every script instead of filenames.\n"+
			"--init takes precedence when both are given.")
	rootCmd.Flags().BoolVar(&sortFlags.debug, "debug", false,
		"Embed timing/progress instrumentation in --init or --bundle output.\n"+
			"Uses the external millisecond-timestamp command when available.")
	rootCmd.Flags().IntVar(&sortFlags.cutoff, "cutoff", scriptsort.DefaultCutoff,
		"Boundary separating low from high ordered files.\n"+
			"Must be greater than 0.\n"+
			"Precedence: --cutoff > $SCRIPTSORT_CUTOFF > scriptsort.yaml > 50")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
