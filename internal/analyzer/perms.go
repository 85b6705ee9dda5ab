package analyzer

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// suspiciousExecExts lists extensions that should never carry an
// executable bit.
//
//nolint:gochecknoglobals // Fixed lookup table
var suspiciousExecExts = map[string]struct{}{
	".txt":  {},
	".log":  {},
	".conf": {},
	".cfg":  {},
	".ini":  {},
}

const (
	worldWritableBit = 0o002
	ownerExecBit     = 0o100
)

// AuditPermissions inspects a file's mode bits for anomalies and
// returns the matching tags joined with ", ", in fixed rule order.
// An empty string means the file is clean.
func AuditPermissions(path string, mode fs.FileMode) string {
	var issues []string

	if mode.Perm()&worldWritableBit != 0 {
		issues = append(issues, "world-writable")
	}

	if mode&fs.ModeSetuid != 0 {
		issues = append(issues, "SUID")
	}

	if mode&fs.ModeSetgid != 0 {
		issues = append(issues, "SGID")
	}

	if mode.Perm()&ownerExecBit != 0 {
		if _, ok := suspiciousExecExts[strings.ToLower(filepath.Ext(path))]; ok {
			issues = append(issues, "suspicious-executable")
		}
	}

	return strings.Join(issues, ", ")
}
