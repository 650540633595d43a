package pubshell

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pubshell/theme"
	"github.com/eringen/pubshell/views"
)

func (a *App) handlePage(c echo.Context) error {
	path := c.Request().URL.Path
	page, err := a.Pages.Lookup(path)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	st := theme.FromSession(c, a.defaultTheme)
	return Render(c, a.document(path, page, st, a.toggleOptions(c, path)))
}

// handleTheme applies a switch change posted by the theme toggle and sends
// the browser back to the page it came from.
func (a *App) handleTheme(c echo.Context) error {
	if !a.toggleLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many theme changes. Try again later.")
	}
	checked, err := strconv.ParseBool(c.FormValue("checked"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "checked must be true or false")
	}

	st := theme.FromSession(c, a.defaultTheme)
	views.ToggleTheme(st, checked)

	if c.Request().Header.Get("HX-Request") == "true" {
		trigger, _ := json.Marshal(map[string]any{
			"themeChanged": map[string]string{"theme": string(st.Current())},
		})
		c.Response().Header().Set("HX-Trigger", string(trigger))
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, safeRedirect(c.FormValue("redirect"), a.Site.RootPath()))
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeSitemap(c.Response())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n"
	if a.Site.SiteURL != "" {
		body += fmt.Sprintf("\nSitemap: %s%s/sitemap.xml\n", strings.TrimRight(a.Site.SiteURL, "/"), a.Site.PathPrefix)
	}
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderError(c, http.StatusNotFound, views.NotFound(a.Site.RootPath()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = a.renderError(c, code, views.ServerError(a.Site.RootPath()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func (a *App) renderError(c echo.Context, code int, body templ.Component) error {
	page := Page{Title: http.StatusText(code), Content: body}
	st := theme.NewState(theme.Stored(c, a.defaultTheme))
	path := c.Request().URL.Path
	return RenderStatus(c, code, a.document(path, page, st, a.toggleOptions(c, path)))
}

// toggleOptions points the theme switch of a served page back at path.
func (a *App) toggleOptions(c echo.Context, path string) views.ToggleOptions {
	return views.ToggleOptions{CSRFToken: CsrfToken(c), Redirect: path}
}

// document wraps a page in the layout and the HTML document shell.
func (a *App) document(path string, page Page, f theme.Facility, toggle views.ToggleOptions) templ.Component {
	body := views.Layout(views.LayoutProps{
		Path:    path,
		Title:   a.Site.Title,
		Content: page.Content,
		Site:    a.Site,
		Theme:   f,
		Toggle:  toggle,
		Year:    a.now().Year(),
	})
	description := a.Site.Description
	if page.Description != "" {
		description = page.Description
	}
	canonical := ""
	if a.Site.SiteURL != "" {
		canonical = BuildURL(a.Site.SiteURL, path)
	}
	return views.Page(views.DocumentProps{
		Title:       views.PageTitle(page.Title, a.Site.Title),
		Description: description,
		Canonical:   canonical,
		JSONLD:      WebsiteJsonLD(a.Site),
		Site:        a.Site,
		Theme:       f.Current(),
		Body:        body,
	})
}

// safeRedirect only follows local absolute paths.
func safeRedirect(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
