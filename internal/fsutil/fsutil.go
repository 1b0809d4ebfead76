// Package fsutil holds the file operations shared by every picksync tool:
// atomic writes and pre-mutation backups.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupStyle selects how a backup file is named.
type BackupStyle int

const (
	// BackupNone disables backups.
	BackupNone BackupStyle = iota
	// BackupFixed writes <file>.bak, replacing any earlier backup.
	BackupFixed
	// BackupTimestamped writes <file>.bak_YYYYMMDD_HHMMSS.
	BackupTimestamped
)

const backupTimeLayout = "20060102_150405"

// BackupPath returns where Backup would copy path for the given style.
func BackupPath(path string, style BackupStyle, now time.Time) string {
	switch style {
	case BackupFixed:
		return path + ".bak"
	case BackupTimestamped:
		return path + ".bak_" + now.Format(backupTimeLayout)
	default:
		return ""
	}
}

// Backup copies path to its sibling backup path and returns that path.
// BackupNone is a no-op returning "".
func Backup(path string, style BackupStyle, now time.Time) (string, error) {
	if style == BackupNone {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("backup %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	dst := BackupPath(path, style, now)
	if err := WriteFileAtomic(dst, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	return dst, nil
}

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// SameFile reports whether a and b name the same file on disk. A path that
// does not exist yet is compared by its cleaned absolute form.
func SameFile(a, b string) bool {
	ai, errA := os.Stat(a)
	bi, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(ai, bi)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
