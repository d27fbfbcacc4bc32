package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// BackupPath returns the name of the backup file for pathname.
func BackupPath(pathname string) string {
	return fmt.Sprintf("%s.backup", pathname)
}

// Backup copies a case file before it is first overwritten in a session.
type Backup struct {
	pathname string
	enabled  bool
	created  bool
}

func NewBackup(pathname string, enabled bool) Backup {
	return Backup{pathname: pathname, enabled: enabled}
}

// Create copies the file to its backup path. It does nothing if backups are
// disabled, the backup was already created, or the file does not exist yet.
func (self *Backup) Create() error {
	if !self.enabled || self.created {
		return nil
	}
	src, err := os.Open(self.pathname)
	if errors.Is(err, fs.ErrNotExist) {
		self.created = true
		return nil
	} else if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(BackupPath(self.pathname))
	if err != nil {
		return err
	}
	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("writing backup: %w", err)
	}
	if err = dst.Close(); err != nil {
		return err
	}
	self.created = true
	return nil
}

// RestoreBackup replaces pathname with its backup.
func RestoreBackup(pathname string) error {
	backup := BackupPath(pathname)
	if _, err := os.Stat(backup); err != nil {
		return fmt.Errorf("no backup for %s", pathname)
	}
	return os.Rename(backup, pathname)
}
