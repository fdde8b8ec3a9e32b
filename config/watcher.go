package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/firework/core"
	"github.com/lixenwraith/firework/render"
)

// Watcher reloads the config file on change and publishes the resulting palette.
// Only colors are live; other settings take effect on restart.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	palettes chan render.Palette

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors replacing the file by rename are still seen.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		palettes: make(chan render.Palette, 1),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	core.Go(func() {
		defer w.wg.Done()
		w.processLoop()
	})

	return w, nil
}

// Palettes delivers the latest palette after each successful reload; closed by Close
func (w *Watcher) Palettes() <-chan render.Palette {
	return w.palettes
}

// Close stops the watcher and closes the palette channel
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.palettes)
	})
	return err
}

func (w *Watcher) processLoop() {
	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	// Environment was already merged into the process at startup, so overrides still win
	cfg, err := Load(w.path, "")
	if err != nil {
		log.Printf("config reload skipped: %v", err)
		return
	}
	p, err := cfg.Palette()
	if err != nil {
		log.Printf("config reload skipped: %v", err)
		return
	}
	w.publish(p)
}

// publish replaces any palette the loop has not consumed yet
func (w *Watcher) publish(p render.Palette) {
	for {
		select {
		case w.palettes <- p:
			return
		default:
		}
		select {
		case <-w.palettes:
		default:
		}
	}
}
