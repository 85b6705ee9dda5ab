// Package cli wires the analyzer into a cobra command surface and
// renders its reports.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fsreport/internal/analyzer"
)

// allowedOutputs lists the accepted --output values.
//
//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// Execute runs the CLI and returns the first error encountered.
func Execute(version string) error {
	return newRootCommand(version).Execute()
}

func newRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "fsreport",
		Short:         "fsreport analyzes file system structure and usage",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCommand())

	return root
}

func newAnalyzeCommand() *cobra.Command {
	var (
		options      analyzer.Options
		thresholdStr string
		noSignatures bool
		output       string
	)

	cmd := &cobra.Command{
		Use:   "analyze <directory>",
		Short: "Scan a directory tree and report usage and permission statistics",
		Long: heredoc.Doc(`
			analyze scans a directory tree, classifies every regular file by
			content type, flags unusual permission patterns, and prints a
			summary report: totals, per-category counts and sizes, the largest
			files, and grouped permission issues.

			Classification reads up to 32 bytes from each file and matches
			known magic-byte signatures before falling back to the file
			extension. Use --no-signatures for a faster, extension-only scan.

			Sizes accept an integer byte count or a decimal number with a
			binary unit suffix (B, K, KB, M, MB, G, GB, T, TB).
		`),
		Example: heredoc.Doc(`
			fsreport analyze /home/user                      # analyze a home directory
			fsreport analyze /var/log --size-threshold 10M   # files larger than 10 MiB
			fsreport analyze . --no-signatures               # fast extension-only scan
			fsreport analyze . --max-large-files 25          # show top 25 large files
			fsreport analyze . --output json                 # machine-readable report
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			size, err := analyzer.ParseSize(thresholdStr)
			if err != nil {
				return fmt.Errorf("invalid size-threshold: %w", err)
			}

			if !slices.Contains(allowedOutputs, output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			options.Path = args[0]
			options.SizeThreshold = size
			options.UseSignatures = !noSignatures

			return run(options, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&thresholdStr, "size-threshold", "s", "1M", "Size threshold for large files (e.g., 1M, 10MB, 1G)")
	flags.BoolVar(&noSignatures, "no-signatures", false, "Disable file signature detection (extension-based only)")
	flags.IntVar(&options.MaxLargeFiles, "max-large-files", analyzer.DefaultMaxLargeFiles,
		"Maximum number of large files to display")
	flags.StringSliceVarP(&options.Excludes, "exclude", "e", nil, "Regex patterns to exclude")
	flags.IntVarP(&options.Depth, "depth", "d", 0, "Maximum traversal depth (0=unlimited)")
	flags.StringVarP(&output, "output", "o", "table", "Output format: table or json")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.SortFlags = false

	return cmd
}
