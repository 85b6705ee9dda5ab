package analyzer

import (
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	// issueDisplayMax caps the files shown per permission-issue group.
	issueDisplayMax = 5
	// errorDisplayMax caps the errors shown in the report.
	errorDisplayMax = 10
)

// CategoryStat holds the aggregate numbers for one category.
type CategoryStat struct {
	// Category is the classification this row describes.
	Category Category `json:"category"`
	// Count is the number of files in the category.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// IssueGroup collects the files sharing one permission-issue string.
type IssueGroup struct {
	// Issue is the comma-joined tag string the group is keyed on.
	Issue string `json:"issue"`
	// Files are the first members of the group, root-relative, capped.
	Files []FileRecord `json:"files"`
	// Total is the full group size, including files beyond the cap.
	Total int `json:"total"`
}

// ScanError records a per-file failure that did not abort the scan.
type ScanError struct {
	// Path is the file the failure occurred on, root-relative.
	Path string `json:"path"`
	// Message is the underlying error text.
	Message string `json:"message"`
}

// Report is the immutable result of a completed scan.
type Report struct {
	// Root is the directory that was analyzed.
	Root string `json:"root"`
	// FileCount is the number of regular files analyzed.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of all analyzed files.
	TotalBytes int64 `json:"total_bytes"`
	// Categories holds per-category totals, sorted by size descending.
	Categories []CategoryStat `json:"categories"`
	// LargeFiles are the largest files above the threshold, sorted by
	// size descending and capped at MaxLargeFiles.
	LargeFiles []FileRecord `json:"large_files"`
	// LargeTotal is the uncapped number of files above the threshold.
	LargeTotal int `json:"large_total"`
	// SizeThreshold is the large-file cutoff in bytes (strictly
	// greater-than).
	SizeThreshold int64 `json:"size_threshold"`
	// MaxLargeFiles is the display cap applied to LargeFiles.
	MaxLargeFiles int `json:"max_large_files"`
	// Issues groups files with permission anomalies by their issue
	// string, sorted alphabetically.
	Issues []IssueGroup `json:"permission_issues"`
	// Errors are the first per-file failures, capped.
	Errors []ScanError `json:"errors"`
	// ErrorTotal is the uncapped number of per-file failures.
	ErrorTotal int `json:"error_total"`
	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// collector aggregates records from concurrent fastwalk callbacks
// using a mutex. It is append-only during the scan; finalize produces
// the read-only Report.
type collector struct {
	mu sync.Mutex

	root          string
	sizeThreshold int64
	maxLargeFiles int

	fileCount  int64
	totalBytes int64

	recordsByCategory map[Category][]FileRecord
	sizeByCategory    map[Category]int64
	largeFiles        []FileRecord
	issues            []FileRecord
	errors            []ScanError
}

// newCollector creates a collector for one scan of root.
func newCollector(root string, sizeThreshold int64, maxLargeFiles int) *collector {
	return &collector{
		root:              root,
		sizeThreshold:     sizeThreshold,
		maxLargeFiles:     maxLargeFiles,
		recordsByCategory: make(map[Category][]FileRecord),
		sizeByCategory:    make(map[Category]int64),
	}
}

// accept folds one record into the running totals. Safe for
// concurrent use; fastwalk calls back from multiple goroutines.
func (c *collector) accept(rec FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += rec.Size

	c.recordsByCategory[rec.Category] = append(c.recordsByCategory[rec.Category], rec)
	c.sizeByCategory[rec.Category] += rec.Size

	if rec.Size > c.sizeThreshold {
		c.largeFiles = append(c.largeFiles, rec)
	}

	if rec.Issue != "" {
		c.issues = append(c.issues, rec)
	}
}

// acceptError records a per-file failure without aborting the scan.
func (c *collector) acceptError(path, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors = append(c.errors, ScanError{Path: path, Message: message})
}

// snapshot returns the running file count and byte total for progress
// reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize converts the accumulated state into a Report. Large files
// are stable-sorted by size descending and trimmed to the display
// cap; permission issues are grouped by their exact issue string and
// the groups sorted alphabetically; all displayed paths are made
// relative to the scanned root.
func (c *collector) finalize() *Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	categories := make([]CategoryStat, 0, len(c.recordsByCategory))
	for category, records := range c.recordsByCategory {
		categories = append(categories, CategoryStat{
			Category: category,
			Count:    len(records),
			Size:     c.sizeByCategory[category],
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Size != categories[j].Size {
			return categories[i].Size > categories[j].Size
		}

		return categories[i].Category < categories[j].Category
	})

	// Stable so that equal sizes keep arrival order.
	sort.SliceStable(c.largeFiles, func(i, j int) bool {
		return c.largeFiles[i].Size > c.largeFiles[j].Size
	})

	largeTotal := len(c.largeFiles)

	shown := c.largeFiles
	if len(shown) > c.maxLargeFiles {
		shown = shown[:c.maxLargeFiles]
	}

	largeFiles := make([]FileRecord, len(shown))
	for i, rec := range shown {
		rec.Path = c.displayPath(rec.Path)
		largeFiles[i] = rec
	}

	issues := c.groupIssues()

	errorTotal := len(c.errors)

	shownErrs := c.errors
	if len(shownErrs) > errorDisplayMax {
		shownErrs = shownErrs[:errorDisplayMax]
	}

	errors := make([]ScanError, len(shownErrs))
	for i, scanErr := range shownErrs {
		scanErr.Path = c.displayPath(scanErr.Path)
		errors[i] = scanErr
	}

	return &Report{
		Root:          c.root,
		FileCount:     c.fileCount,
		TotalBytes:    c.totalBytes,
		Categories:    categories,
		LargeFiles:    largeFiles,
		LargeTotal:    largeTotal,
		SizeThreshold: c.sizeThreshold,
		MaxLargeFiles: c.maxLargeFiles,
		Issues:        issues,
		Errors:        errors,
		ErrorTotal:    errorTotal,
	}
}

// groupIssues buckets the flagged files by their exact issue string.
// Caller must hold c.mu.
func (c *collector) groupIssues() []IssueGroup {
	index := make(map[string]int)

	groups := make([]IssueGroup, 0)

	for _, rec := range c.issues {
		i, ok := index[rec.Issue]
		if !ok {
			i = len(groups)
			index[rec.Issue] = i
			groups = append(groups, IssueGroup{Issue: rec.Issue})
		}

		groups[i].Total++

		if len(groups[i].Files) < issueDisplayMax {
			rec.Path = c.displayPath(rec.Path)
			groups[i].Files = append(groups[i].Files, rec)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Issue < groups[j].Issue
	})

	return groups
}

// displayPath makes a path relative to the scanned root, in slash
// format for cross-platform consistency.
func (c *collector) displayPath(path string) string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		rel = path
	}

	return filepath.ToSlash(rel)
}
