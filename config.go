package pubshell

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the server settings. Site content and branding live in the
// site metadata file; Config only says where to find it and how to serve it.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":3000"`              // listen address
	SiteFile      string `env:"SITE_FILE" envDefault:"site.yaml"`     // site metadata
	ContentDir    string `env:"CONTENT_DIR" envDefault:"content"`     // page fragments
	StaticDir     string `env:"STATIC_DIR" envDefault:"public"`       // user-owned assets
	SessionSecret string `env:"SESSION_SECRET"`                       // required to serve
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`     // set true for HTTPS
	DefaultTheme  string `env:"DEFAULT_THEME" envDefault:"light"`     // theme before any toggle
	Strict        bool   `env:"STRICT" envDefault:"false"`            // reject incomplete metadata
	ToggleLimit   int    `env:"TOGGLE_LIMIT" envDefault:"30"`         // theme toggles per IP per minute
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty     bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("pubshell: load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("pubshell: parse config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SiteFile == "" {
		c.SiteFile = "site.yaml"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = "light"
	}
	if c.ToggleLimit <= 0 {
		c.ToggleLimit = 30
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the application logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithClock sets the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
