package analyzer

import (
	"io/fs"
	"testing"
)

func TestAuditPermissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		mode fs.FileMode
		want string
	}{
		{"clean", "notes.txt", 0o644, ""},
		{"world-writable", "scratch.dat", 0o646, "world-writable"},
		{"world-writable 666", "scratch.dat", 0o666, "world-writable"},
		{"suid", "tool", fs.ModeSetuid | 0o644, "SUID"},
		{"sgid", "tool", fs.ModeSetgid | 0o644, "SGID"},
		{"suid and sgid", "tool", fs.ModeSetuid | fs.ModeSetgid | 0o644, "SUID, SGID"},
		{"suspicious executable txt", "notes.txt", 0o744, "suspicious-executable"},
		{"suspicious executable ini", "setup.INI", 0o700, "suspicious-executable"},
		{"executable script is fine", "run.sh", 0o755, ""},
		{"executable binary is fine", "tool", 0o755, ""},
		{"all rules in fixed order", "notes.txt",
			fs.ModeSetuid | fs.ModeSetgid | 0o746,
			"world-writable, SUID, SGID, suspicious-executable"},
		{"world-writable not executable", "data.bin", 0o602, "world-writable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AuditPermissions(tt.path, tt.mode); got != tt.want {
				t.Errorf("AuditPermissions(%q, %v) = %q, want %q", tt.path, tt.mode, got, tt.want)
			}
		})
	}
}
