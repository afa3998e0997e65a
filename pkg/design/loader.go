package design

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Find searches upward from startDir for a design configuration file.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%w: searched upward from %s", ErrConfigNotFound, startDir)
}

// Loader resolves and caches design contexts. The cache is keyed by the
// resolved configuration path; concurrent requests for the same path share
// one load.
type Loader struct {
	group    singleflight.Group
	mu       sync.RWMutex
	cache    map[string]*Context
	logger   *slog.Logger
	explicit string
	static   *Context
	loadFn   func(path string) (*Context, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for discovery and load events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithConfigPath pins the configuration file instead of searching upward.
func WithConfigPath(path string) Option {
	return func(l *Loader) { l.explicit = path }
}

// WithLoadFunc replaces the function that reads and builds a context.
func WithLoadFunc(fn func(path string) (*Context, error)) Option {
	return func(l *Loader) { l.loadFn = fn }
}

// NewLoader creates a Loader that reads configuration files from disk.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		cache:  make(map[string]*Context),
		logger: slog.New(slog.DiscardHandler),
		loadFn: loadContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewStaticLoader returns a Loader that always yields ctx without touching
// the filesystem.
func NewStaticLoader(ctx *Context) *Loader {
	l := NewLoader()
	l.static = ctx
	return l
}

// ForFile returns the design context governing file.
func (l *Loader) ForFile(ctx context.Context, file string) (*Context, error) {
	if l.static != nil {
		return l.static, nil
	}
	path := l.explicit
	if path == "" {
		found, err := Find(filepath.Dir(file))
		if err != nil {
			return nil, err
		}
		path = found
	}
	return l.Load(ctx, path)
}

// Load returns the context for the configuration at path, loading it at
// most once per resolved path.
func (l *Loader) Load(ctx context.Context, path string) (*Context, error) {
	if l.static != nil {
		return l.static, nil
	}
	key := resolvePath(path)

	l.mu.RLock()
	cached, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		l.logger.Debug("design config cache hit", slog.String("path", key))
		return cached, nil
	}

	ch := l.group.DoChan(key, func() (any, error) {
		l.mu.RLock()
		c, ok := l.cache[key]
		l.mu.RUnlock()
		if ok {
			return c, nil
		}

		l.logger.Debug("loading design config", slog.String("path", key))
		c, err := l.loadFn(key)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[key] = c
		l.mu.Unlock()
		return c, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Context), nil
	}
}

// Invalidate drops the cached context for path.
func (l *Loader) Invalidate(path string) {
	key := resolvePath(path)
	l.mu.Lock()
	_, existed := l.cache[key]
	delete(l.cache, key)
	l.mu.Unlock()
	l.group.Forget(key)
	if existed {
		l.logger.Debug("design config invalidated", slog.String("path", key))
	}
}

// Cached returns the resolved paths currently held in the cache.
func (l *Loader) Cached() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.cache))
	for k := range l.cache {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func loadContext(path string) (*Context, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := New(cfg, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.configPath = path
	return c, nil
}

func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}
