package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBackupPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	tests := []struct {
		style    BackupStyle
		expected string
	}{
		{BackupNone, ""},
		{BackupFixed, "Account.object.bak"},
		{BackupTimestamped, "Account.object.bak_20240309_070501"},
	}

	for _, tc := range tests {
		got := BackupPath("Account.object", tc.style, now)
		if got != tc.expected {
			t.Errorf("BackupPath(style=%d) = %q, want %q", tc.style, got, tc.expected)
		}
	}
}

func TestBackupCopiesOriginal(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Account.object")
	if err := os.WriteFile(src, []byte("<original/>"), 0640); err != nil {
		t.Fatalf("write source: %v", err)
	}

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	dst, err := Backup(src, BackupTimestamped, now)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if !strings.HasSuffix(dst, ".bak_20250102_030405") {
		t.Errorf("unexpected backup path %q", dst)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != "<original/>" {
		t.Errorf("backup content = %q", data)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat backup: %v", err)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("backup mode = %v, want 0640", info.Mode().Perm())
	}
}

func TestBackupNoneIsNoop(t *testing.T) {
	dst, err := Backup(filepath.Join(t.TempDir(), "missing"), BackupNone, time.Now())
	if err != nil || dst != "" {
		t.Errorf("Backup(BackupNone) = %q, %v", dst, err)
	}
}

func TestBackupMissingSource(t *testing.T) {
	if _, err := Backup(filepath.Join(t.TempDir(), "missing"), BackupFixed, time.Now()); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestWriteFileAtomicReplacesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.xml")

	if err := WriteFileAtomic(path, []byte("first"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only out.xml, found %v", names)
	}
}

func TestWriteFileAtomicRemovesTempOnRenameFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.xml")
	if err := os.MkdirAll(filepath.Join(target, "child"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(target, []byte("data"), 0644); err == nil {
		t.Fatal("expected error renaming over a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.xml")
	if err := os.WriteFile(a, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !SameFile(a, filepath.Join(dir, ".", "a.xml")) {
		t.Error("expected same file for equivalent paths")
	}
	if SameFile(a, filepath.Join(dir, "b.xml")) {
		t.Error("expected different files")
	}
	if !SameFile(filepath.Join(dir, "new.xml"), filepath.Join(dir, "sub", "..", "new.xml")) {
		t.Error("expected non-existent equivalent paths to match")
	}
}
