package modpath

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"golang.org/x/mod/modfile"
)

const maxDepth = 64

// ErrModuleNotFound is returned when no go.mod is found in any parent location
var ErrModuleNotFound = errors.New("go.mod not found")

// Module represents go module enclosing a source unit
type Module struct {
	URL  string
	Path string
	Dir  string
}

// ImportPath returns source unit package import path
func (m *Module) ImportPath() string {
	return path.Join(m.Path, m.Dir)
}

// Find locates the closest go.mod starting at the source unit location
func Find(ctx context.Context, fs afs.Service, sourceURL string) (*Module, error) {
	sourceDir, _ := url.Split(sourceURL, file.Scheme)
	dir := sourceDir
	for i := 0; i < maxDepth; i++ {
		modURL := url.Join(dir, "go.mod")
		if ok, _ := fs.Exists(ctx, modURL); ok {
			return load(ctx, fs, modURL, relative(url.Path(dir), url.Path(sourceDir)))
		}
		if dirPath := url.Path(dir); dirPath == "/" || dirPath == "" {
			break
		}
		parent, _ := url.Split(dir, file.Scheme)
		if parent == dir || parent == "" {
			break
		}
		dir = parent
	}
	return nil, fmt.Errorf("%w: %v", ErrModuleNotFound, sourceURL)
}

func load(ctx context.Context, fs afs.Service, modURL string, dir string) (*Module, error) {
	content, err := fs.DownloadWithURL(ctx, modURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", modURL, err)
	}
	aMod, err := modfile.Parse(modURL, content, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", modURL, err)
	}
	if aMod.Module == nil || aMod.Module.Mod.Path == "" {
		return nil, fmt.Errorf("module directive was empty: %v", modURL)
	}
	return &Module{URL: modURL, Path: aMod.Module.Mod.Path, Dir: dir}, nil
}

func relative(root, dir string) string {
	root = strings.TrimRight(root, "/")
	if !strings.HasPrefix(dir, root) {
		return ""
	}
	return strings.Trim(dir[len(root):], "/")
}
