package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// DefaultMaxLargeFiles is the fallback display cap for the large-file
// section.
const DefaultMaxLargeFiles = 10

// Options configures a directory scan.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// SizeThreshold is the large-file cutoff in bytes; files are
	// flagged when strictly larger.
	SizeThreshold int64
	// MaxLargeFiles is the number of large files to display.
	MaxLargeFiles int
	// UseSignatures enables magic-byte detection before the extension
	// fallback.
	UseSignatures bool
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// Depth is the maximum traversal depth (0=unlimited).
	Depth int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := c.snapshot()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run performs directory analysis and returns the aggregated report.
// It walks the tree at opt.Path, classifies and audits every regular
// file, and folds the results into category totals, a large-file
// ranking and grouped permission issues.
//
// Root-level failures (missing path, path not a directory, bad
// exclusion pattern) abort before any traversal. Per-file stat
// failures are recorded in the report and never abort the run.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
//
// Note: fastwalk visits files concurrently, so the arrival order of
// equal-sized large files and of error entries is not reproducible
// run-to-run.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	// Validate path exists and is a directory
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	if opt.MaxLargeFiles <= 0 {
		opt.MaxLargeFiles = DefaultMaxLargeFiles
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	collector := newCollector(opt.Path, opt.SizeThreshold, opt.MaxLargeFiles)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	log.printf("[debug]: exclude regexes:\n")

	for _, re := range excludeRegexes {
		log.printf("[debug]:   - %s\n", re.String())
	}

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Inaccessible directories are pruned before descent, not
			// reported; unreadable files count as per-file errors.
			if d != nil && d.IsDir() {
				log.printf("[debug]: skipping inaccessible directory %s: %v\n", path, err)

				return filepath.SkipDir
			}

			collector.acceptError(path, err.Error())

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		currentDepth := calculateDepth(path, opt.Path)
		if opt.Depth > 0 && currentDepth > opt.Depth {
			if d.IsDir() {
				log.printf("[debug]: skipping directory (beyond depth %d): %s\n", opt.Depth, path)

				return filepath.SkipDir
			}

			log.printf("[debug]: skipping file (beyond depth %d): %s\n", opt.Depth, path)

			return nil
		}

		if matchedPattern := shouldExcludeByPattern(path, excludeRegexes); matchedPattern != nil {
			if d.IsDir() {
				log.printf("[debug]: excluding directory: %s (matched %s)\n", path, matchedPattern)

				return filepath.SkipDir
			}

			log.printf("[debug]: excluding file: %s (matched %s)\n", path, matchedPattern)

			return nil
		}

		if d.IsDir() {
			return nil
		}

		// Devices, sockets, symlinks and the like are skipped, not
		// errors.
		if !d.Type().IsRegular() {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			collector.acceptError(path, err.Error())

			return nil //nolint:nilerr // Per-file errors accumulate instead of aborting
		}

		collector.accept(buildRecord(path, fileInfo, opt.UseSignatures))

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	report := collector.finalize()

	report.Elapsed = time.Since(start)

	return report, nil
}
