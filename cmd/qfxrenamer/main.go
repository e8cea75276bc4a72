// Command qfxrenamer renames Intuit Web Connect downloads (.qfx/.qbo) in a
// directory after the bank, account and statement dates found inside them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/qfxrenamer/internal/config"
	"github.com/backmassage/qfxrenamer/internal/display"
	"github.com/backmassage/qfxrenamer/internal/history"
	"github.com/backmassage/qfxrenamer/internal/logging"
	"github.com/backmassage/qfxrenamer/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	exitCode := 0
	cmd := newRootCmd(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qfxrenamer: %v\n", err)
		return 1
	}
	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "qfxrenamer -d <directory>",
		Short: "Rename QFX/QBO downloads after the statement they contain",
		Long: `qfxrenamer scans one directory (not recursively) for Intuit Web Connect
downloads (.qfx and .qbo, any case) and renames each file to

  {bank} {account} {start date} to {end date}.{ext}

using the <ORG> or <INTU.BID>, <ACCTID>, <DTSTART> and <DTEND> values found
in its text. Existing files are never overwritten: a " (N)" suffix is added
instead. Files that already carry their name are left alone.

Example:
  qfxrenamer -d ~/Downloads
  qfxrenamer -d ~/Downloads --dry-run --verbose`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bootstrap: the logger doesn't exist yet, so config errors are
			// returned and printed by run.
			cfg, err := config.Load(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			*exitCode = execute(&cfg)
			return nil
		},
	}
	flags = config.DefineFlags(cmd.Flags())
	return cmd
}

// execute runs one pass over cfg.Directory and returns the exit code.
func execute(cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qfxrenamer: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)
	log.Info("=== QFX Renamer v%s (%s) ===", version, commit)

	var journal pipeline.Recorder
	if cfg.HistoryPath != "" && !cfg.DryRun {
		j, err := history.Open(cfg.HistoryPath)
		if err != nil {
			log.Error("Cannot open history journal: %v", err)
			return 1
		}
		defer j.Close()
		log.Debug(cfg.Verbose, "Journaling renames to %s (run %s)", j.Path(), j.RunID())
		journal = j
	}

	// Cancel between files on SIGINT/SIGTERM; the file in flight completes.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current file…")
			cancel()
		case <-ctx.Done():
		}
	}()

	stats, err := pipeline.Run(ctx, cfg, log, journal)
	if err != nil {
		return 1
	}
	if stats.HasErrors() {
		return 1
	}
	return 0
}
