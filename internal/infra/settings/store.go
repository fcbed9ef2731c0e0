// Where: cli/internal/infra/settings/store.go
// What: Text file store rooted at the project directory.
// Why: Route every durable write through one seam that tests can replace.
package settings

import (
	"os"
	"path/filepath"

	"github.com/poruru/funcnew/cli/internal/infra/fileops"
)

// Store reads and writes project files by path. Relative paths resolve
// against the store's root.
type Store interface {
	FileExists(path string) bool
	ReadAllText(path string) (string, error)
	WriteAllText(path, text string) error
}

// OSStore is a Store backed by the local file system.
type OSStore struct {
	Root string
}

// NewOSStore returns a store rooted at root.
func NewOSStore(root string) OSStore {
	return OSStore{Root: root}
}

func (s OSStore) resolve(path string) string {
	if filepath.IsAbs(path) || s.Root == "" {
		return path
	}
	return filepath.Join(s.Root, path)
}

func (s OSStore) FileExists(path string) bool {
	info, err := os.Stat(s.resolve(path))
	return err == nil && !info.IsDir()
}

func (s OSStore) ReadAllText(path string) (string, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s OSStore) WriteAllText(path, text string) error {
	return fileops.WriteFile(s.resolve(path), text)
}
