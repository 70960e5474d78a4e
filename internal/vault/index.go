package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/julianstephens/dayplanner/internal/logger"
)

// DirIndex is a FileIndex over a vault directory on disk. Hidden entries
// (such as the host's .obsidian config dir) are not indexed.
type DirIndex struct {
	root string

	mu      sync.RWMutex
	entries map[string]File
}

// NewDirIndex creates an index rooted at dir. Call Refresh to populate it.
func NewDirIndex(dir string) *DirIndex {
	return &DirIndex{
		root:    dir,
		entries: make(map[string]File),
	}
}

// Root returns the vault directory
func (x *DirIndex) Root() string {
	return x.root
}

// Refresh rebuilds the index from disk
func (x *DirIndex) Refresh() error {
	info, err := os.Stat(x.root)
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path is not a directory: %s", x.root)
	}

	entries := map[string]File{
		"/": {Path: "/", Name: "", Folder: true},
	}
	err = filepath.WalkDir(x.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == x.root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(x.root, p)
		if err != nil {
			return err
		}
		key := NormalizePath(filepath.ToSlash(rel))
		entries[key] = File{Path: key, Name: d.Name(), Folder: d.IsDir()}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index vault: %w", err)
	}

	x.mu.Lock()
	x.entries = entries
	x.mu.Unlock()

	logger.Debug("Vault indexed", "root", x.root, "entries", len(entries))
	return nil
}

// GetAbstractFileByPath looks up a normalised path
func (x *DirIndex) GetAbstractFileByPath(p string) (File, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	f, ok := x.entries[p]
	return f, ok
}

// Folders returns every indexed folder path except the root, sorted
func (x *DirIndex) Folders() []string {
	return x.collect(func(f File) bool { return f.Folder && f.Path != "/" })
}

// Notes returns every indexed markdown file path, sorted
func (x *DirIndex) Notes() []string {
	return x.collect(func(f File) bool {
		return !f.Folder && strings.EqualFold(path.Ext(f.Path), ".md")
	})
}

func (x *DirIndex) collect(keep func(File) bool) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var out []string
	for _, f := range x.entries {
		if keep(f) {
			out = append(out, f.Path)
		}
	}
	sort.Strings(out)
	return out
}

// Watch keeps the index current until ctx is cancelled. Every create, remove or
// rename under the vault triggers a full refresh.
func (x *DirIndex) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := x.addWatches(watcher); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := x.Refresh(); err != nil {
				logger.Warn("Vault refresh failed", "error", err)
				continue
			}
			// New folders need their own watch
			if event.Has(fsnotify.Create) {
				if err := x.addWatches(watcher); err != nil {
					logger.Warn("Failed to watch new folder", "path", event.Name, "error", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Vault watcher error", "error", err)
		}
	}
}

func (x *DirIndex) addWatches(watcher *fsnotify.Watcher) error {
	if err := watcher.Add(x.root); err != nil {
		return fmt.Errorf("failed to watch vault: %w", err)
	}
	for _, folder := range x.Folders() {
		// Adding an existing watch is a no-op
		if err := watcher.Add(filepath.Join(x.root, filepath.FromSlash(folder))); err != nil {
			return fmt.Errorf("failed to watch %s: %w", folder, err)
		}
	}
	return nil
}
