// Package pubshell serves the chrome of a personal blog built with Go, Echo,
// and templ: a layout shell with a header, footer and social links, and a
// light/dark theme switch whose preference lives in a cookie session.
//
// Page bodies are opaque HTML fragments declared in the site metadata; the
// App wraps each one in the layout and serves it, or writes it to disk with
// Build.
package pubshell

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/pubshell/site"
	"github.com/eringen/pubshell/theme"
)

// App is the central pubshell application. It wires together the site
// metadata, the page set, the handlers and the middleware.
type App struct {
	Config Config
	Site   site.Metadata
	Echo   *echo.Echo
	Pages  *PageSet
	Logger zerolog.Logger

	toggleLimiter *ToggleLimiter
	defaultTheme  theme.Theme
	customRoutes  []func(*App)
	now           func() time.Time
	ready         bool
}

// New creates an App for the given configuration and site metadata.
func New(cfg Config, meta site.Metadata, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Site:   meta,
		Echo:   echo.New(),
		Logger: zerolog.Nop(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load validates the metadata and resolves the page set. It is safe to
// call more than once.
func (a *App) Load() error {
	if a.Pages != nil {
		return nil
	}

	def, err := theme.Parse(a.Config.DefaultTheme)
	if err != nil {
		return fmt.Errorf("pubshell: default theme: %w", err)
	}
	a.defaultTheme = def

	if a.Config.Strict {
		if err := site.Validate(a.Site); err != nil {
			return err
		}
	} else if missing := a.Site.Missing(); len(missing) > 0 {
		a.Logger.Warn().Strs("fields", missing).Msg("site metadata incomplete; footer links will be malformed")
	}

	var content fs.FS
	if info, err := os.Stat(a.Config.ContentDir); err == nil && info.IsDir() {
		content = os.DirFS(a.Config.ContentDir)
	}
	pages, err := LoadPages(a.Site, content)
	if err != nil {
		return err
	}
	a.Pages = pages
	a.Logger.Info().Int("pages", len(pages.All())).Str("root", a.Site.RootPath()).Msg("site loaded")
	return nil
}

// Setup loads the site and registers middleware and routes without
// starting the listener.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("pubshell: SessionSecret is required")
	}
	if err := a.Load(); err != nil {
		return err
	}

	a.toggleLimiter = NewToggleLimiter(a.Config.ToggleLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets up the App and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info().Str("addr", a.Config.Addr).Msg("listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close releases background resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.toggleLimiter != nil {
		a.toggleLimiter.Stop()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo
	prefix := a.Site.PathPrefix

	// Framework assets first; anything else under /public comes from the
	// user's static dir.
	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	assetHandler := echo.WrapHandler(http.StripPrefix(prefix+"/public/", http.FileServer(http.FS(assets))))
	e.GET(prefix+"/public/icons.svg", assetHandler)
	e.GET(prefix+"/public/theme.css", assetHandler)
	e.Static(prefix+"/public", a.Config.StaticDir)

	e.GET(prefix+"/favicon.svg", a.handleFavicon)
	e.GET(prefix+"/robots.txt", a.handleRobots)
	e.GET(prefix+"/sitemap.xml", a.handleSitemap)
	e.POST(prefix+"/theme/", a.handleTheme)

	for _, p := range a.Pages.All() {
		e.GET(p.Route, a.handlePage)
	}
}
