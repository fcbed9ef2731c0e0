// Where: cli/internal/infra/probe/probe.go
// What: Read-only project directory inspection.
// Why: Report project markers without interpreting them, over an fs.FS so
// resolution logic can be tested without a real file system.
package probe

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/poruru/funcnew/cli/internal/meta"
)

// Probe inspects the top level of one project directory.
type Probe struct {
	fsys fs.FS
}

// New returns a Probe over fsys.
func New(fsys fs.FS) Probe {
	return Probe{fsys: fsys}
}

// ForDir returns a Probe over the directory at dir.
func ForDir(dir string) Probe {
	return New(os.DirFS(dir))
}

// Exists reports whether name exists as a regular file.
func (p Probe) Exists(name string) bool {
	if p.fsys == nil {
		return false
	}
	info, err := fs.Stat(p.fsys, name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// SettingsExists reports whether the persisted settings file is present.
func (p Probe) SettingsExists() bool {
	return p.Exists(meta.LocalSettingsFile)
}

// HasExtension reports whether any top-level file ends with ext, ignoring case.
func (p Probe) HasExtension(ext string) bool {
	if p.fsys == nil {
		return false
	}
	entries, err := fs.ReadDir(p.fsys, ".")
	if err != nil {
		return false
	}
	ext = strings.ToLower(ext)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ext) {
			return true
		}
	}
	return false
}

var errNoFileSystem = errors.New("probe has no file system")

// ReadFile returns the content of name.
func (p Probe) ReadFile(name string) ([]byte, error) {
	if p.fsys == nil {
		return nil, errNoFileSystem
	}
	return fs.ReadFile(p.fsys, name)
}
