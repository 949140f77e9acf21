// Package app wires the display-metric subsystem together for a host
// application: configuration, the DPI cache over a windowing backend, and
// the sizing helpers derived from both.
package app

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/sonoshi/mado/app/config"
	"github.com/sonoshi/mado/dpi"
	"github.com/sonoshi/mado/font"
	"github.com/sonoshi/mado/platform"
	"github.com/sonoshi/mado/util/log"
	"github.com/sonoshi/mado/winsys"
)

// App owns the process-wide display metric state. Construct it once at
// startup and share it.
type App struct {
	caps  *platform.Capabilities
	cache *dpi.Cache
	conv  *dpi.Converter

	// mu guards conf. The config watcher swaps the pointer from its own
	// goroutine while the sizing methods read it; a loaded Config is never
	// mutated in place, so snapshotting the pointer is enough.
	mu   sync.Mutex
	conf *config.Config
}

// New builds an App resolving metrics through win for the platform in
// caps, then applies the configured DPI override, if any.
func New(conf *config.Config, caps *platform.Capabilities, win winsys.Library) (*App, error) {
	if conf == nil {
		conf = config.New()
	}
	cache := dpi.NewCache(dpi.NewResolver(win), caps)
	a := &App{
		conf:  conf,
		caps:  caps,
		cache: cache,
		conv:  dpi.NewConverter(cache, conf.RefreshPxCacheOnOverride),
	}
	if err := a.applyOverride(conf); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) applyOverride(conf *config.Config) error {
	ov := conf.Override()
	if ov == nil {
		return nil
	}
	if _, err := a.cache.Logical(ov); err != nil {
		return fmt.Errorf("app: apply dpi override: %w", err)
	}
	return nil
}

func (a *App) config() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.conf
}

func (a *App) setConfig(conf *config.Config) {
	a.mu.Lock()
	a.conf = conf
	a.mu.Unlock()
}

// Cache exposes the DPI cache for collaborators needing raw metrics.
func (a *App) Cache() *dpi.Cache { return a.cache }

// Metrics resolves and returns the full display metrics.
func (a *App) Metrics() (dpi.Metrics, error) { return a.cache.Full() }

// PtToPx converts a point size through the shared converter.
func (a *App) PtToPx(pts float64) (int, error) { return a.conv.PtToPx(pts) }

// FontOptions sizes a face per the configuration and the resolved logical
// DPI.
func (a *App) FontOptions() (*font.FaceOptions, error) {
	return font.OptionsFromCache(a.config().FontSize, a.cache)
}

// CellSize computes the terminal cell geometry of the configured font
// with the configured line-height adjustment applied.
func (a *App) CellSize() (w, h int, err error) {
	conf := a.config()
	if conf.Font == "" {
		return 0, 0, fmt.Errorf("app: no font configured")
	}
	opt, err := font.OptionsFromCache(conf.FontSize, a.cache)
	if err != nil {
		return 0, 0, err
	}
	face, err := font.ParseFileFace(conf.Font, opt)
	if err != nil {
		return 0, 0, err
	}
	return font.CellSize(face, conf.LineHeight())
}

// WatchConfig reloads file on every change and re-applies the DPI
// override. The returned stop function ends watching.
func (a *App) WatchConfig(file string) (stop func(), err error) {
	w, err := NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Watch(file); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events():
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				conf, err := config.LoadOrDefault(file)
				if err != nil {
					log.Infof("app: reload config %s: %v", file, err)
					continue
				}
				a.setConfig(conf)
				if err := a.applyOverride(conf); err != nil {
					log.Infoln("app:", err)
					continue
				}
				log.Debugf("app: config %s reloaded", file)
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				log.Infof("app: watch config: %v", err)
			}
		}
	}()
	return func() { w.Close() }, nil
}
