package stanza

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/evanlk/stanza/content"
)

const rebuildDebounce = 500 * time.Millisecond

// Server serves the built output dir locally. It is development tooling, not
// part of the deployable site: no auth, no TLS, localhost traffic only.
type Server struct {
	builder *Builder
}

// NewServer returns a Server that serves (and in watch mode rebuilds with)
// the given builder.
func NewServer(b *Builder) *Server {
	return &Server{builder: b}
}

// Serve performs an initial build in the given mode, then serves the output
// dir on the configured address. With watch enabled the content, layouts,
// and static dirs are watched and the site is rebuilt (debounced) on change;
// responses also carry no-store cache headers so the browser always sees the
// latest build.
func (s *Server) Serve(mode content.Mode, watch bool) error {
	cfg := s.builder.Config
	log := s.builder.Log

	if err := s.builder.Build(mode); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	if watch {
		watcher, err := s.startWatcher(mode)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	if watch {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
				return next(c)
			}
		})
	}

	e.Static("/", cfg.OutputDir)

	log.Info("serving site", "dir", cfg.OutputDir, "addr", cfg.Addr, "mode", mode.String())
	if err := e.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// startWatcher watches the source dirs and rebuilds after a quiet period.
// New subdirectories are added to the watch set as they appear, since
// fsnotify watches are not recursive.
func (s *Server) startWatcher(mode content.Mode) (*fsnotify.Watcher, error) {
	cfg := s.builder.Config
	log := s.builder.Log

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, root := range []string{cfg.ContentDir, cfg.LayoutsDir, cfg.StaticDir} {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			continue
		}
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if err := watcher.Add(path); err != nil {
					log.Warn("watch failed", "path", path, "err", err)
				}
			}
			return nil
		})
		if walkErr != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", root, walkErr)
		}
	}

	go func() {
		var rebuild *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watcher.Add(event.Name); err != nil {
							log.Warn("watch failed", "path", event.Name, "err", err)
						}
					}
				}
				log.Info("change detected", "path", event.Name, "op", event.Op.String())
				if rebuild != nil {
					rebuild.Stop()
				}
				rebuild = time.AfterFunc(rebuildDebounce, func() {
					if err := s.builder.Build(mode); err != nil {
						log.Error("rebuild failed", "err", err)
						return
					}
					log.Info("site rebuilt")
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error", "err", err)
			}
		}
	}()

	return watcher, nil
}
