package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchAndRerun re-runs fn whenever one of the watched files changes,
// until interrupted. Editors fire several events per save, so changes
// funnel through a short debounce before the re-run.
func watchAndRerun(paths []string, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	debounced := debounce.New(250 * time.Millisecond)
	rerun := func() {
		if err := fn(); err != nil {
			logger.Error("re-run failed", zap.Error(err))
		}
	}

	logger.Info("watching for changes", zap.Strings("paths", paths))
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debug("file changed", zap.String("path", ev.Name))
				debounced(rerun)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		case <-interrupt:
			logger.Info("stopping watch")
			return nil
		}
	}
}
