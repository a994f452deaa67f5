package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rubiojr/folio/pkg/config"
	"github.com/rubiojr/folio/pkg/log"
)

// watchConfig reloads the configuration whenever configPath changes until
// ctx is done. apiURL is the --api-url override, which keeps winning over
// the file.
func (s *WebServer) watchConfig(ctx context.Context, configPath, apiURL string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Warnf("failed to create config file watcher: %v", err)
		return
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			s.logger.Warnf("failed to close config file watcher: %v", err)
		}
	}()

	if err := watcher.Add(configPath); err != nil {
		s.logger.Warnf("not watching %s for changes: %v", configPath, err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			s.logger.Infof("Config file changed: %s (event: %s), reloading configuration...", event.Name, event.Op.String())

			// Editors that save by rename replace the watched inode.
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				time.Sleep(200 * time.Millisecond)

				if _, err := os.Stat(configPath); os.IsNotExist(err) {
					s.logger.Warnf("Config file was removed and not replaced, skipping reload")
					continue
				}
				if err := watcher.Add(configPath); err != nil {
					s.logger.Warnf("failed to re-add config file to watcher: %v", err)
				}
			} else {
				time.Sleep(100 * time.Millisecond)
			}

			if err := s.reloadConfig(configPath, apiURL); err != nil {
				s.logger.Errorf("Failed to reload configuration: %v", err)
			} else {
				s.logger.Infof("Configuration reloaded, search API: %s", s.Upstream())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warnf("Config file watcher error: %v", err)
		}
	}
}

// reloadConfig applies the upstream, timeout and debug settings of the
// file at configPath. The previous settings stay in place on error.
func (s *WebServer) reloadConfig(configPath, apiURL string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyOverrides(cfg, apiURL); err != nil {
		return err
	}

	log.ConfigureDebug(cfg.DebugServices)
	s.applyConfig(cfg)
	return nil
}
