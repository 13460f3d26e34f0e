package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"framegrab/command/screenshot"
	"framegrab/config"
	"framegrab/ffprobe"
	"framegrab/runner"
	"framegrab/schedule"
	"framegrab/timerange"
)

func main() {
	// Step 1: Load configuration (CLI flags > env > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Run the screenshot pipeline
	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// run executes the complete screenshot workflow: probe, resolve the time
// range, compute the schedule, then extract one frame per scheduled entry.
func run(ctx context.Context, cfg *config.Config) error {
	logger := zap.NewNop()
	if cfg.Verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()
	}

	probeResult, err := ffprobe.Probe(cfg.Input)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}

	// Chapter listing mode: print and stop before touching the filesystem.
	if cfg.PrintChapters {
		for i, ch := range probeResult.Chapters {
			fmt.Printf("Chapter %d: %s %s\n", i+1, ch.StartTime, ch.Tags.Title)
		}
		return nil
	}

	duration, err := probeResult.GetDuration()
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}

	chapters, err := probeResult.TimeRangeChapters()
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}

	rng, err := timerange.Resolve(chapters, duration, timerange.Spec{
		StartTime:          cfg.StartTime,
		StartChapterNumber: cfg.StartChapterNumber,
		StartChapterName:   cfg.StartChapterName,
		EndTime:            cfg.EndTime,
		EndChapterNumber:   cfg.EndChapterNumber,
		EndChapterName:     cfg.EndChapterName,
	})
	if err != nil {
		return fmt.Errorf("time range error: %w", err)
	}

	logger.Debug("time range resolved",
		zap.Float64("start", rng.Start),
		zap.Float64("end", rng.End),
		zap.Float64("duration", duration),
	)

	stem := strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
	plan, err := schedule.Plan(rng, cfg.Interval, stem)
	if err != nil {
		return fmt.Errorf("schedule error: %w", err)
	}

	if cfg.Verbose || cfg.Simulate {
		cfg.PrintRunParameters(rng.Start, rng.End, plan.Total)
	}

	extractor := screenshot.NewBuilder(cfg.Input)
	r := runner.New(extractor, cfg.OutPath).
		SetSimulate(cfg.Simulate).
		SetLogger(logger)

	if err := r.Run(ctx, plan); err != nil {
		return fmt.Errorf("capture failed: %w", err)
	}

	if cfg.Simulate {
		fmt.Printf("\n✓ Simulation complete: %d screenshots planned, none written\n", len(plan.Entries))
	} else {
		fmt.Printf("\n✓ Generated %d screenshots in %s\n", len(plan.Entries), cfg.OutPath)
	}

	return nil
}
