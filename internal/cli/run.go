package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gzhole/goshred/internal/confirm"
	"github.com/gzhole/goshred/internal/config"
	"github.com/gzhole/goshred/internal/logger"
	"github.com/gzhole/goshred/internal/report"
	"github.com/gzhole/goshred/internal/runstate"
	"github.com/gzhole/goshred/internal/shredengine"
	"github.com/gzhole/goshred/internal/walker"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths given. Usage: goshred [options] file [file...]")
	}

	cfg := config.New()
	cfg.Passes = flags.passes
	cfg.Recursive = flags.recursive
	cfg.Keep = flags.keep
	cfg.Verbose = flags.verbose
	cfg.FollowSymlinks = flags.followSyms
	cfg.Secure = flags.secure
	cfg.DryRun = flags.dryRun
	cfg.Verify = !flags.noVerify
	cfg.Force = flags.force
	cfg.Internal = flags.internal
	cfg.ReportPath = flags.reportPath

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.Verbose, cfg.Internal)

	if cfg.Internal {
		printDiagnostics(cfg, args)
		if !confirm.Continue(os.Stdout, bufio.NewReader(os.Stdin), "") {
			os.Exit(3)
		}
	}

	state := runstate.New()
	engine := shredengine.New(cfg, log, state)
	w := walker.New(cfg, log, state, engine)
	w.Run(args)

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, report.Summary{
			Paths:   args,
			Config:  cfg,
			Success: !state.Fatal(),
		}); err != nil {
			log.Warning("failed to write report to '%s': %v", cfg.ReportPath, err)
		}
	}

	if state.Fatal() {
		os.Exit(1)
	}
	return nil
}

// printDiagnostics implements the --internal half of spec.md §6's
// "Interactive surface": print the configuration and target list before
// prompting.
func printDiagnostics(cfg config.Config, paths []string) {
	fmt.Printf("Configuration: %+v\n", cfg)
	fmt.Println("Targets:")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
}
