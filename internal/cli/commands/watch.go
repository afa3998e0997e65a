package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/pandalint/pkg/design"
)

// watchDebounce coalesces bursts of editor writes into one re-lint.
const watchDebounce = 150 * time.Millisecond

// watchAndLint re-lints changed source files until ctx is canceled or the
// process is interrupted. A change to a design config re-lints everything.
func watchAndLint(ctx context.Context, cmdCtx *CommandContext, linter *fileLinter, paths []string, opts *LintOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := addWatchDirs(fw, paths, cfg.Ignore); err != nil {
		return err
	}

	var mu sync.Mutex
	pending := make(map[string]bool)
	relintAll := false
	var timer *time.Timer

	flush := func() {
		mu.Lock()
		all := relintAll
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		pending = make(map[string]bool)
		relintAll = false
		mu.Unlock()

		files := changed
		if all {
			collected, err := collectFiles(paths, cfg.Extensions, cfg.Ignore)
			if err != nil {
				r.Error(err.Error())
				return
			}
			files = collected
		}
		if len(files) == 0 {
			return
		}
		r.Println(r.Styles().Muted.Render(fmt.Sprintf("[%s] re-linting %d files", time.Now().Format("15:04:05"), len(files))))
		results := filterBySeverity(linter.lintAll(ctx, files, opts.Jobs), opts.Severity)
		renderLintResults(r, results, len(files))
	}
	schedule := func(path string, all bool) {
		mu.Lock()
		defer mu.Unlock()
		if all {
			relintAll = true
		} else {
			pending[path] = true
		}
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, flush)
	}

	dw, err := design.NewWatcher(linter.loader, logger, func(path string) {
		schedule(path, true)
	})
	if err != nil {
		return err
	}
	defer func() { _ = dw.Close() }()
	for _, path := range linter.loader.Cached() {
		if err := dw.Add(path); err != nil {
			logger.Warn("cannot watch design config", slog.String("path", path), slog.Any("error", err))
		}
	}
	go func() { _ = dw.Run(ctx) }()

	r.Println(r.Styles().Muted.Render("Watching for changes (Ctrl+C to stop)"))
	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchDirs(fw, []string{event.Name}, cfg.Ignore)
					continue
				}
			}
			if !hasExtension(event.Name, cfg.Extensions) || isIgnored(filepath.ToSlash(event.Name), cfg.Ignore) {
				continue
			}
			logger.Debug("source changed", slog.String("path", event.Name))
			schedule(filepath.Clean(event.Name), false)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", slog.Any("error", err))
		}
	}
}

// addWatchDirs watches every non-ignored directory under paths. For a file
// path its parent directory is watched.
func addWatchDirs(fw *fsnotify.Watcher, paths, ignore []string) error {
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", root, err)
		}
		if !info.IsDir() {
			if err := fw.Add(filepath.Dir(root)); err != nil {
				return fmt.Errorf("watch %s: %w", root, err)
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return err
			}
			rel, _ := filepath.Rel(root, path)
			if path != root && isIgnored(filepath.ToSlash(rel), ignore) {
				return filepath.SkipDir
			}
			return fw.Add(path)
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
	}
	return nil
}
