package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fsreport/internal/analyzer"
)

func sampleReport() *analyzer.Report {
	return &analyzer.Report{
		Root:       "/scan",
		FileCount:  1234,
		TotalBytes: 2*1024*1024 + 15600,
		Categories: []analyzer.CategoryStat{
			{Category: analyzer.CategoryOther, Count: 1, Size: 2 * 1024 * 1024},
			{Category: analyzer.CategoryArchive, Count: 1, Size: 10000},
			{Category: analyzer.CategoryText, Count: 3, Size: 600},
		},
		LargeFiles: []analyzer.FileRecord{
			{Path: "blob.xyz", Size: 2 * 1024 * 1024, Category: analyzer.CategoryOther},
		},
		LargeTotal:    3,
		SizeThreshold: 1 << 20,
		MaxLargeFiles: 1,
		Issues: []analyzer.IssueGroup{
			{
				Issue: "world-writable",
				Files: []analyzer.FileRecord{
					{Path: "tmp/scratch.dat", Size: 10, Category: analyzer.CategoryOther, Issue: "world-writable"},
				},
				Total: 7,
			},
		},
		Errors: []analyzer.ScanError{
			{Path: "secret/hidden.key", Message: "permission denied"},
		},
		ErrorTotal: 4,
		Elapsed:    12 * time.Millisecond,
	}
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintTable(sampleReport(), &buf))

	out := buf.String()

	for _, want := range []string{
		"FILE SYSTEM ANALYSIS REPORT",
		"Directory: /scan",
		"Total files analyzed: 1,234",
		"Total size: 2.0 MB",
		"Text:",
		"3 files",
		"LARGE FILES (> 1.0 MB):",
		"blob.xyz",
		"... and 2 more large files",
		"world-writable",
		"tmp/scratch.dat",
		"... and 6 more",
		"ERRORS ENCOUNTERED:",
		"secret/hidden.key: permission denied",
		"... and 3 more errors",
	} {
		require.Contains(t, out, want)
	}
}

func TestPrintTableEmptySections(t *testing.T) {
	t.Parallel()

	report := &analyzer.Report{
		Root:          "/scan",
		SizeThreshold: 1 << 20,
		MaxLargeFiles: 10,
	}

	var buf bytes.Buffer
	require.NoError(t, PrintTable(report, &buf))

	out := buf.String()
	require.Contains(t, out, "No large files found")
	require.Contains(t, out, "No files with unusual permissions found")
	require.NotContains(t, out, "ERRORS ENCOUNTERED:")
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintJSON(sampleReport(), &buf))

	var decoded analyzer.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.EqualValues(t, 1234, decoded.FileCount)
	require.Equal(t, 3, decoded.LargeTotal)
	require.Len(t, decoded.Categories, 3)
	require.Equal(t, "world-writable", decoded.Issues[0].Issue)
}

func TestAnalyzeCommandValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"invalid threshold", []string{"analyze", ".", "--size-threshold", "bogus"}, "invalid size-threshold"},
		{"invalid output", []string{"analyze", ".", "--output", "xml"}, "invalid output format"},
		{"negative depth", []string{"analyze", ".", "--depth", "-1"}, "depth cannot be negative"},
		{"missing directory argument", []string{"analyze"}, "arg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := newRootCommand("test")
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			require.Error(t, err)
			require.Contains(t, strings.ToLower(err.Error()), tt.wantErr)
		})
	}
}

func TestAnalyzeCommandMissingRoot(t *testing.T) {
	t.Parallel()

	root := newRootCommand("test")
	root.SetArgs([]string{"analyze", "/definitely/does/not/exist"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "accessing path")
}
