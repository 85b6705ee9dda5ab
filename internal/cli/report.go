package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"fsreport/internal/analyzer"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	bannerWidth  = 50
	sectionWidth = 30
)

// Color helpers, auto-disabled on non-terminal output.
//
//nolint:gochecknoglobals // Display constants
var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	warn    = color.New(color.FgYellow).SprintFunc()
	dim     = color.New(color.FgHiBlack).SprintFunc()
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *analyzer.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable form.
func PrintTable(report *analyzer.Report, writer io.Writer) error {
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", sectionWidth)

	fmt.Fprintf(writer, "\n%s\n%s\n%s\n", banner, heading("FILE SYSTEM ANALYSIS REPORT"), banner)

	fmt.Fprintf(writer, "\nDirectory: %s\n", report.Root)
	fmt.Fprintf(writer, "Total files analyzed: %s\n", humanize.Comma(report.FileCount))
	fmt.Fprintf(writer, "Total size: %s\n", analyzer.FormatSize(report.TotalBytes))

	fmt.Fprintf(writer, "\n%s\n%s\n", heading("FILE TYPE CATEGORIES:"), rule)

	if err := printCategories(report, writer); err != nil {
		return err
	}

	printLargeFiles(report, writer)
	printIssues(report, writer)
	printErrors(report, writer)

	fmt.Fprintf(writer, "\nElapsed: %v\n", report.Elapsed)

	return nil
}

func printCategories(report *analyzer.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	for _, stat := range report.Categories {
		pct := 0.0
		if report.TotalBytes > 0 {
			pct = 100.0 * float64(stat.Size) / float64(report.TotalBytes)
		}

		fmt.Fprintf(w, "%s:\t%d files\t%s\t(%.1f%%)\n",
			stat.Category.Title(), stat.Count, analyzer.FormatSize(stat.Size), pct)
	}

	return w.Flush()
}

func printLargeFiles(report *analyzer.Report, writer io.Writer) {
	fmt.Fprintf(writer, "\n%s\n%s\n",
		heading(fmt.Sprintf("LARGE FILES (> %s):", analyzer.FormatSize(report.SizeThreshold))),
		strings.Repeat("-", bannerWidth))

	if len(report.LargeFiles) == 0 {
		fmt.Fprintln(writer, "No large files found")

		return
	}

	for _, file := range report.LargeFiles {
		fmt.Fprintf(writer, "%10s  %s\n", analyzer.FormatSize(file.Size), file.Path)
	}

	if report.LargeTotal > len(report.LargeFiles) {
		fmt.Fprintf(writer, "\n%s\n",
			dim(fmt.Sprintf("... and %d more large files", report.LargeTotal-len(report.LargeFiles))))
	}
}

func printIssues(report *analyzer.Report, writer io.Writer) {
	fmt.Fprintf(writer, "\n%s\n%s\n", heading("PERMISSION ISSUES:"), strings.Repeat("-", sectionWidth))

	if len(report.Issues) == 0 {
		fmt.Fprintln(writer, "No files with unusual permissions found")

		return
	}

	for _, group := range report.Issues {
		fmt.Fprintf(writer, "\n%s:\n", warn(group.Issue))

		for _, file := range group.Files {
			fmt.Fprintf(writer, "  %s\n", file.Path)
		}

		if group.Total > len(group.Files) {
			fmt.Fprintf(writer, "  %s\n", dim(fmt.Sprintf("... and %d more", group.Total-len(group.Files))))
		}
	}
}

func printErrors(report *analyzer.Report, writer io.Writer) {
	if len(report.Errors) == 0 {
		return
	}

	fmt.Fprintf(writer, "\n%s\n%s\n", heading("ERRORS ENCOUNTERED:"), strings.Repeat("-", sectionWidth))

	for _, scanErr := range report.Errors {
		fmt.Fprintf(writer, "  %s: %s\n", scanErr.Path, scanErr.Message)
	}

	if report.ErrorTotal > len(report.Errors) {
		fmt.Fprintf(writer, "  %s\n",
			dim(fmt.Sprintf("... and %d more errors", report.ErrorTotal-len(report.Errors))))
	}
}
