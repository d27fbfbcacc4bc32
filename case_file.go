package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/editor"
	"github.com/JaMo42/rectcase/painter"
	"github.com/JaMo42/rectcase/testcase"
)

// CaseFile is the pair of paths a session reads from and writes to.
type CaseFile struct {
	source string
	dest   string
	backup Backup
}

func NewCaseFile(source, dest string, backup bool) CaseFile {
	if len(dest) == 0 {
		dest = source
	}
	return CaseFile{
		source: source,
		dest:   dest,
		backup: NewBackup(dest, backup),
	}
}

func (self *CaseFile) Source() string {
	return self.source
}

func (self *CaseFile) Dest() string {
	return self.dest
}

// Load reads the source file. A missing file gives None so a new session can
// be started.
func (self *CaseFile) Load() (Optional[testcase.TestCase], error) {
	tc, err := testcase.Load(self.source)
	if errors.Is(err, fs.ErrNotExist) {
		return None[testcase.TestCase](), nil
	} else if err != nil {
		return None[testcase.TestCase](), err
	}
	return Some(tc), nil
}

// Save backs up the destination if needed and writes the session to it.
func (self *CaseFile) Save(e *editor.Editor) error {
	if _, err := e.TestCase(); err != nil {
		return err
	}
	if err := self.backup.Create(); err != nil {
		return err
	}
	return e.Save(self.dest)
}

// ExportPath returns the image path next to the destination file.
func (self *CaseFile) ExportPath(format painter.Format) string {
	base := strings.TrimSuffix(self.dest, filepath.Ext(self.dest))
	return base + "." + string(format)
}
