// Where: cli/internal/infra/catalog/catalog.go
// What: Versioned template catalog loading.
// Why: The workflow needs one ordered template list per process; several
// catalog versions may be installed side by side and the newest one wins.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/poruru/funcnew/cli/assets"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/logging"
	"go.uber.org/zap"
)

var (
	errNoCatalog      = errors.New("no template catalog found")
	errInvalidVersion = errors.New("invalid catalog version")
)

// Provider supplies the ordered template catalog.
type Provider interface {
	Templates(ctx context.Context) ([]template.Template, error)
}

// Catalog is one versioned catalog document.
type Catalog struct {
	Version   string              `json:"version"`
	Templates []template.Template `json:"templates"`
}

// Parse validates and decodes a catalog document (YAML or JSON).
func Parse(content []byte) (Catalog, error) {
	jsonData, err := validateDocument(content)
	if err != nil {
		return Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}
	var out Catalog
	if err := json.Unmarshal(jsonData, &out); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if _, err := semver.NewVersion(out.Version); err != nil {
		return Catalog{}, fmt.Errorf("%w %q: %v", errInvalidVersion, out.Version, err)
	}
	return out, nil
}

// Source is a directory of catalog files inside a file system.
type Source struct {
	Name string
	FS   fs.FS
	Dir  string
}

// Embedded returns the catalog shipped with the binary.
func Embedded() Source {
	return Source{Name: "embedded", FS: assets.CatalogFS, Dir: assets.CatalogDir}
}

// Directory returns a source reading catalog files from dir on disk.
func Directory(dir string) Source {
	return Source{Name: dir, FS: os.DirFS(dir), Dir: "."}
}

// FSProvider picks the highest catalog version across its sources. Ties keep
// the catalog found first.
type FSProvider struct {
	Sources []Source
	Logger  *zap.Logger
}

// NewFSProvider returns a provider over the embedded catalog plus an optional
// override directory.
func NewFSProvider(overrideDir string, logger *zap.Logger) *FSProvider {
	sources := []Source{Embedded()}
	if dir := strings.TrimSpace(overrideDir); dir != "" {
		sources = append(sources, Directory(dir))
	}
	return &FSProvider{Sources: sources, Logger: logger}
}

// Templates implements Provider.
func (p *FSProvider) Templates(ctx context.Context) ([]template.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := logging.OrNop(p.Logger)
	var (
		best        *Catalog
		bestVersion *semver.Version
		bestOrigin  string
	)
	for _, source := range p.Sources {
		files, err := catalogFiles(source)
		if err != nil {
			return nil, err
		}
		for _, name := range files {
			content, err := fs.ReadFile(source.FS, name)
			if err != nil {
				return nil, fmt.Errorf("read catalog %s: %w", name, err)
			}
			parsed, err := Parse(content)
			if err != nil {
				return nil, fmt.Errorf("catalog %s (%s): %w", name, source.Name, err)
			}
			version := semver.MustParse(parsed.Version)
			logger.Debug("catalog candidate",
				zap.String("source", source.Name),
				zap.String("file", name),
				zap.String("version", version.String()),
				zap.Int("templates", len(parsed.Templates)),
			)
			if bestVersion == nil || version.GreaterThan(bestVersion) {
				current := parsed
				best = &current
				bestVersion = version
				bestOrigin = source.Name + ":" + name
			}
		}
	}
	if best == nil {
		return nil, errNoCatalog
	}
	logger.Debug("catalog selected", zap.String("origin", bestOrigin), zap.String("version", bestVersion.String()))
	return best.Templates, nil
}

func catalogFiles(source Source) ([]string, error) {
	dir := source.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(source.FS, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list catalog source %s: %w", source.Name, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, path.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Lazy memoises the first successful load of its inner provider.
type Lazy struct {
	Inner Provider

	mu        sync.Mutex
	loaded    bool
	templates []template.Template
}

// NewLazy wraps inner.
func NewLazy(inner Provider) *Lazy {
	return &Lazy{Inner: inner}
}

// Templates implements Provider.
func (l *Lazy) Templates(ctx context.Context) ([]template.Template, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.templates, nil
	}
	templates, err := l.Inner.Templates(ctx)
	if err != nil {
		return nil, err
	}
	l.templates = templates
	l.loaded = true
	return templates, nil
}
