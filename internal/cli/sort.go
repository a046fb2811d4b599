package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/scriptsort/internal/assemble"
	"github.com/vvka-141/scriptsort/internal/config"
	"github.com/vvka-141/scriptsort/internal/emit"
	"github.com/vvka-141/scriptsort/internal/files/scanner"
	"github.com/vvka-141/scriptsort/internal/logging"
	"github.com/vvka-141/scriptsort/internal/ordering"
	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// Environment variables providing defaults below flag precedence.
const (
	envCutoff       = "SCRIPTSORT_CUTOFF"
	envTimerCommand = "SCRIPTSORT_TIMER_CMD"
)

// buildRunConfig resolves the invocation configuration from CLI flags,
// environment, and the optional scriptsort.yaml in the target directory.
// All validation happens here, before any directory scan.
func buildRunConfig(cmd *cobra.Command, sourcePath string, verbose bool, logger scriptsort.Logger) (scriptsort.RunConfig, error) {
	_ = godotenv.Load()

	dirCfg, err := config.Load(sourcePath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return scriptsort.RunConfig{}, fmt.Errorf("%w: failed to load %s: %v",
				scriptsort.ErrInvalidConfig, config.ConfigFileName, err)
		}
		dirCfg = nil
	} else {
		logger.Verbose("loaded %s from %s", config.ConfigFileName, sourcePath)
	}

	cutoff, err := resolveCutoff(cmd.Flags().Changed("cutoff"), sortFlags.cutoff, os.Getenv(envCutoff), dirCfg)
	if err != nil {
		return scriptsort.RunConfig{}, err
	}

	runCfg := scriptsort.RunConfig{
		SourcePath:   sourcePath,
		Cutoff:       cutoff,
		Init:         sortFlags.init,
		Bundle:       sortFlags.bundle,
		Debug:        sortFlags.debug,
		Verbose:      verbose,
		TimerCommand: resolveTimerCommand(os.Getenv(envTimerCommand), dirCfg),
	}

	if err := runCfg.Validate(); err != nil {
		return scriptsort.RunConfig{}, err
	}

	return runCfg, nil
}

// resolveCutoff applies the cutoff precedence chain:
// flag > environment > scriptsort.yaml > built-in default.
// Extracted for testability.
func resolveCutoff(flagChanged bool, flagValue int, envValue string, dirCfg *config.DirectoryConfig) (int, error) {
	if flagChanged {
		return flagValue, nil
	}
	if envValue != "" {
		n, err := strconv.Atoi(envValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q is not an integer", scriptsort.ErrInvalidCutoff, envCutoff, envValue)
		}
		return n, nil
	}
	if dirCfg != nil && dirCfg.Cutoff != 0 {
		return dirCfg.Cutoff, nil
	}
	return scriptsort.DefaultCutoff, nil
}

// resolveTimerCommand applies the timer command precedence chain:
// environment > scriptsort.yaml > built-in default.
func resolveTimerCommand(envValue string, dirCfg *config.DirectoryConfig) string {
	if envValue != "" {
		return envValue
	}
	if dirCfg != nil && dirCfg.TimerCommand != "" {
		return dirCfg.TimerCommand
	}
	return scriptsort.DefaultTimerCommand
}

func runSort(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	runCfg, err := buildRunConfig(cmd, sourcePath, verbose, logger)
	if err != nil {
		return err
	}

	fileScanner := scanner.NewScanner(logger)
	result, err := fileScanner.ScanDirectory(runCfg.SourcePath)
	if err != nil {
		return err
	}

	parts := ordering.Partition(result.Entries, runCfg.Cutoff)
	ordering.Sort(&parts)
	logger.Verbose("classified %d entries (low=%d unordered=%d high=%d, cutoff=%d)",
		parts.Total(), len(parts.Low), len(parts.Unordered), len(parts.High), runCfg.Cutoff)

	assembler := assemble.NewAssembler(logger)
	emitter := emit.NewEmitter(cmd.OutOrStdout())

	switch {
	case runCfg.Init:
		list, err := assembler.AssembleNames(parts, ' ', result.NameBytes)
		if err != nil {
			return err
		}
		return emitter.EmitInit(list, runCfg.SourcePath, runCfg.Debug, runCfg.TimerCommand)

	case runCfg.Bundle:
		bundle, err := assembler.AssembleBundle(runCfg.SourcePath, parts)
		if err != nil {
			return err
		}
		return emitter.EmitBundle(bundle, runCfg.Debug, runCfg.TimerCommand)

	default:
		list, err := assembler.AssembleNames(parts, '\n', result.NameBytes)
		if err != nil {
			return err
		}
		return emitter.EmitList(list)
	}
}
