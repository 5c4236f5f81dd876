package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// WatchDisplay reloads the display store whenever its backing file
// changes. Editors often replace files via rename, so the parent
// directory is watched and events are filtered by name. Returns a stop
// function; callers must invoke it on shutdown.
func WatchDisplay(store *DisplayStore, log zerolog.Logger) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path := store.Path()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				if err := store.Reload(); err != nil {
					log.Warn().Err(err).Str("path", path).Msg("display config reload failed, keeping previous settings")
					continue
				}
				log.Info().Str("path", path).Msg("display config reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("display config watcher error")
			}
		}
	}()

	return func() {
		watcher.Close()
		<-done
	}, nil
}
