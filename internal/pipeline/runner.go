package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/backmassage/qfxrenamer/internal/config"
	"github.com/backmassage/qfxrenamer/internal/display"
	"github.com/backmassage/qfxrenamer/internal/history"
	"github.com/backmassage/qfxrenamer/internal/logging"
	"github.com/backmassage/qfxrenamer/internal/naming"
	"github.com/backmassage/qfxrenamer/internal/webconnect"
)

// Recorder receives one entry per completed rename. *history.Journal
// satisfies it.
type Recorder interface {
	Record(history.Entry) error
}

// Run is the top-level batch entry point. It discovers files in
// cfg.Directory, processes each one sequentially, and returns aggregate
// stats. The only error it returns wraps [ErrInvalidRootDirectory] or a
// directory read failure; per-file problems are logged and counted.
// journal may be nil.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, journal Recorder) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	files, err := Discover(cfg.Directory)
	if err != nil {
		log.Error("%v", err)
		return stats, err
	}

	stats.Total = len(files)
	resolver := naming.NewCollisionResolver()

	log.Info("Found %s in %s", display.Pluralize(stats.Total, "file", "files"), cfg.Directory)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	for i, f := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted, %d of %d files left untouched", stats.Total-i, stats.Total)
			break
		}
		stats.Current = i + 1

		processFile(cfg, log, f, &stats, resolver, journal)
	}

	logSummary(cfg, log, &stats, time.Since(start))
	return stats, nil
}

// processFile handles one download: extract → name → resolve → rename.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	f SourceFile,
	stats *RunStats,
	resolver *naming.CollisionResolver,
	journal Recorder,
) {
	log.Debug(cfg.Verbose, "[%d/%d] %s", stats.Current, stats.Total, f.Name)

	// --- Extract ---
	meta, err := webconnect.ExtractFile(f.Path)
	if err != nil {
		log.Error("%v", err)
		if errors.Is(err, webconnect.ErrUnparsable) {
			stats.Skipped++
		} else {
			stats.Failed++
		}
		return
	}
	log.Debug(cfg.Verbose, "  org=%q bid=%q account=%q start=%q end=%q",
		meta.OrgName, meta.BankID, meta.AccountNumber, meta.StartDate, meta.EndDate)

	// --- Name ---
	filename, err := naming.BuildFilename(meta, f.Ext, cfg.FallbackLabel)
	if err != nil {
		log.Error("'%s' could not be parsed: %v", f.Path, err)
		stats.Skipped++
		return
	}
	bank := naming.BankLabel(meta, cfg.FallbackLabel)
	if meta.OrgName == "" {
		log.Debug(cfg.Verbose, "  No <ORG>, using bank label %q", bank)
	}

	// --- Resolve collisions ---
	target := naming.TargetPath(f.Path, filename)
	dst, unchanged := resolver.Resolve(f.Path, target)
	if unchanged {
		log.Debug(cfg.Verbose, "Already named: %s", f.Name)
		stats.Unchanged++
		return
	}
	if dst != target {
		log.Warn("'%s' exists, using '%s'", filename, filepath.Base(dst))
	}

	// --- Dry-run ---
	if cfg.DryRun {
		resolver.Claim(f.Path, dst)
		log.Success("[DRY] Would rename %s -> %s", f.Name, filepath.Base(dst))
		stats.Renamed++
		return
	}

	// --- Rename ---
	if err := naming.Rename(f.Path, dst); err != nil {
		log.Error("'%s' could not be renamed: %v", f.Path, err)
		stats.Failed++
		return
	}
	resolver.Claim(f.Path, dst)
	stats.Renamed++
	log.Success("Renamed %s -> %s", f.Name, filepath.Base(dst))

	if journal == nil {
		return
	}
	startDate, _ := naming.FormatDate(meta.StartDate)
	endDate, _ := naming.FormatDate(meta.EndDate)
	if err := journal.Record(history.Entry{
		Source:    f.Path,
		Target:    dst,
		Bank:      bank,
		Account:   meta.AccountNumber,
		StartDate: startDate,
		EndDate:   endDate,
	}); err != nil {
		log.Warn("Could not journal rename of %s: %v", f.Name, err)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, elapsed time.Duration) {
	verb := "renamed"
	if cfg.DryRun {
		verb = "to rename"
	}
	log.Info("==============================")
	log.Info("Done: %d %s, %d unchanged, %d skipped, %d failed",
		stats.Renamed, verb, stats.Unchanged, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d of %d in %s",
		stats.Current, stats.Total, display.FormatElapsed(elapsed))
	if stats.HasErrors() {
		log.Warn("  %s reported errors, see above",
			display.Pluralize(stats.Skipped+stats.Failed, "file", "files"))
	}
}
