package analyzer

import (
	"io/fs"
)

// FileRecord is the immutable per-file result of classification and
// permission auditing. Records are values; collections hold copies
// and never mutate them after creation.
type FileRecord struct {
	// Path is the file path as yielded by the traversal.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Category is the content classification.
	Category Category `json:"category"`
	// Issue holds the comma-joined permission anomaly tags, or "" when
	// the file is clean.
	Issue string `json:"permission_issue,omitempty"`
}

// buildRecord assembles the record for a stat'd regular file. The
// header read is bounded to headerLen bytes and only performed when
// signature detection is on.
func buildRecord(path string, info fs.FileInfo, useSignatures bool) FileRecord {
	var header []byte
	if useSignatures {
		header = readHeader(path)
	}

	return FileRecord{
		Path:     path,
		Size:     info.Size(),
		Category: Classify(path, header, useSignatures),
		Issue:    AuditPermissions(path, info.Mode()),
	}
}
