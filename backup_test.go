package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, pathname, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(pathname, []byte(content), 0o644))
}

func readFile(t *testing.T, pathname string) string {
	t.Helper()
	data, err := os.ReadFile(pathname)
	require.NoError(t, err)
	return string(data)
}

func TestBackupIsCreatedOnce(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "case.json")
	writeFile(t, pathname, "first")
	backup := NewBackup(pathname, true)
	require.NoError(t, backup.Create())
	require.Equal(t, "first", readFile(t, BackupPath(pathname)))

	writeFile(t, pathname, "second")
	require.NoError(t, backup.Create())
	require.Equal(t, "first", readFile(t, BackupPath(pathname)))
}

func TestBackupDisabled(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "case.json")
	writeFile(t, pathname, "first")
	backup := NewBackup(pathname, false)
	require.NoError(t, backup.Create())
	require.NoFileExists(t, BackupPath(pathname))
}

func TestBackupOfMissingFile(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "case.json")
	backup := NewBackup(pathname, true)
	require.NoError(t, backup.Create())
	require.NoFileExists(t, BackupPath(pathname))
}

func TestRestoreBackup(t *testing.T) {
	pathname := filepath.Join(t.TempDir(), "case.json")
	require.Error(t, RestoreBackup(pathname))
	writeFile(t, pathname, "new")
	writeFile(t, BackupPath(pathname), "old")
	require.NoError(t, RestoreBackup(pathname))
	require.Equal(t, "old", readFile(t, pathname))
	require.NoFileExists(t, BackupPath(pathname))
}
