package pubshell

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/eringen/pubshell/theme"
	"github.com/eringen/pubshell/views"
)

// BuildResult summarizes a static build.
type BuildResult struct {
	Pages []string // files written for pages, relative to the output dir
	Files int      // total files written
}

// Build renders every page with the default theme into outDir, alongside
// sitemap.xml, the favicon and the assets served under /public. Pages land
// at <route>/index.html with the path prefix stripped, so outDir maps onto
// the prefix. The theme switch is rendered disabled since a static host has
// no endpoint to post it to.
func (a *App) Build(ctx context.Context, outDir string) (BuildResult, error) {
	var res BuildResult
	if err := a.Load(); err != nil {
		return res, err
	}

	for _, p := range a.Pages.All() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var buf bytes.Buffer
		doc := a.document(p.Route, p, theme.NewState(a.defaultTheme), views.ToggleOptions{Disabled: true})
		if err := doc.Render(ctx, &buf); err != nil {
			return res, fmt.Errorf("pubshell: render %s: %w", p.Route, err)
		}
		rel := pageFile(strings.TrimPrefix(p.Route, a.Site.PathPrefix))
		if err := writeFile(outDir, rel, buf.Bytes()); err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, rel)
		res.Files++
		a.Logger.Debug().Str("route", p.Route).Str("file", rel).Msg("page written")
	}

	var sm bytes.Buffer
	if err := a.writeSitemap(&sm); err != nil {
		return res, fmt.Errorf("pubshell: sitemap: %w", err)
	}
	if err := writeFile(outDir, "sitemap.xml", sm.Bytes()); err != nil {
		return res, err
	}
	res.Files++

	n, err := a.copyStatic(outDir)
	if err != nil {
		return res, err
	}
	res.Files += n

	// Embedded assets go last so they win over same-named static files,
	// as the routes do.
	err = fs.WalkDir(EmbeddedAssets, "embedded", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := EmbeddedAssets.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := writeFile(outDir, filepath.Join("public", strings.TrimPrefix(path, "embedded/")), data); err != nil {
			return err
		}
		res.Files++
		return nil
	})
	if err != nil {
		return res, err
	}

	a.Logger.Info().Int("pages", len(res.Pages)).Int("files", res.Files).Str("out", outDir).Msg("build complete")
	return res, nil
}

// copyStatic copies the favicon to the output root and the rest of the
// static dir under public/. A missing static dir is not an error.
func (a *App) copyStatic(outDir string) (int, error) {
	info, err := os.Stat(a.Config.StaticDir)
	if err != nil || !info.IsDir() {
		return 0, nil
	}
	files := 0
	err = fs.WalkDir(os.DirFS(a.Config.StaticDir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(filepath.Join(a.Config.StaticDir, filepath.FromSlash(path)))
		if err != nil {
			return fmt.Errorf("pubshell: read %s: %w", path, err)
		}
		rel := filepath.Join("public", filepath.FromSlash(path))
		if path == "favicon.svg" {
			rel = "favicon.svg"
		}
		if err := writeFile(outDir, rel, data); err != nil {
			return err
		}
		files++
		return nil
	})
	return files, err
}

// pageFile maps a route to its index file: "/" -> index.html,
// "/about/" -> about/index.html.
func pageFile(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

func writeFile(root, rel string, data []byte) error {
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("pubshell: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pubshell: write %s: %w", path, err)
	}
	return nil
}
