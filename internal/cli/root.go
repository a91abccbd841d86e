// Package cli implements the CLI argument surface spec.md §1 and §6
// describe as an external collaborator: parse flags into a fully populated
// config.Config and a list of target paths, reject unknown options before
// the engine runs, and drive the walker over the result.
//
// The command shape follows the teacher's internal/cli.rootCmd — a single
// github.com/spf13/cobra.Command wired up in an init() — generalized from
// the teacher's subcommand tree (run/scan/hook/...) down to this tool's one
// flat surface, since goshred has exactly one verb: shred the given paths.
package cli

import (
	"fmt"
	"os"

	"github.com/gzhole/goshred/internal/config"
	"github.com/spf13/cobra"
)

var flags struct {
	passes     int
	recursive  bool
	keep       bool
	verbose    bool
	followSyms bool
	secure     bool
	dryRun     bool
	noVerify   bool
	force      bool
	internal   bool
	reportPath string
}

var rootCmd = &cobra.Command{
	Use:                   "goshred [options] file [file...]",
	Short:                 "Securely overwrite and delete files and directories",
	SilenceUsage:          true,
	SilenceErrors:         true,
	DisableFlagsInUseLine: true,
	RunE:                  runRoot,
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().IntVarP(&flags.passes, "overwrite-count", "n", config.DefaultPasses, "overwrite N times")
	rootCmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "recurse into directories")
	rootCmd.Flags().BoolVarP(&flags.keep, "keep-files", "k", false, "overwrite but do not unlink")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "emit informational output")
	rootCmd.Flags().BoolVarP(&flags.followSyms, "follow-symlinks", "e", false, "follow symbolic links")
	rootCmd.Flags().BoolVarP(&flags.secure, "secure", "s", false, "use the full pattern schedule")
	rootCmd.Flags().BoolVarP(&flags.dryRun, "dry", "d", false, "simulate without touching any files")
	rootCmd.Flags().BoolVarP(&flags.noVerify, "no-verify", "c", false, "skip read-back verification")
	rootCmd.Flags().BoolVarP(&flags.force, "force", "f", false, "attempt to elevate permissions")
	rootCmd.Flags().BoolVar(&flags.internal, "internal", false, "print diagnostics and confirm before running")
	rootCmd.Flags().StringVar(&flags.reportPath, "report", "", "write a YAML run summary to this path")
}

// Execute is the module's single entry point, called from cmd/goshred. On
// success it returns normally and the process exits 0; every other outcome
// ends in os.Exit with 1, 2 or 3, the remaining codes spec.md §6 defines.
//
// The informational flags (-h/-H/-V/-C) are checked directly against the
// preprocessed argv, ahead of cobra's own flag parsing. Cobra reserves the
// name "help" for its built-in help flag and intercepts it before RunE ever
// runs; naming our flag the same way would hand control to cobra's help
// machinery instead of spec.md §6's required short-usage-then-exit-2
// behavior. Checking argv ourselves sidesteps that entirely.
func Execute() {
	expanded := PreprocessArgs(os.Args[1:])

	if handleInformationalFlags(expanded) {
		return
	}

	rootCmd.SetArgs(expanded)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "goshred: %v\n", err)
		os.Exit(1)
	}
}

// handleInformationalFlags implements the exit-2 half of spec.md §6's
// flag table. It reports true (having already exited) if any of -h/-H/-V/-C
// is present, in priority order full-help > help > version > copyright.
// Arguments after a bare "--" are paths and are not checked.
func handleInformationalFlags(argv []string) bool {
	has := func(short, long string) bool {
		for _, a := range argv {
			if a == "--" {
				break
			}
			if a == short || a == long {
				return true
			}
		}
		return false
	}

	switch {
	case has("-H", "--full-help"):
		fmt.Print(fullUsage)
	case has("-h", "--help"):
		fmt.Print(shortUsage)
	case has("-V", "--version"):
		fmt.Print(versionText())
	case has("-C", "--copyright"):
		fmt.Print(copyrightText)
	default:
		return false
	}
	os.Exit(2)
	return true
}
