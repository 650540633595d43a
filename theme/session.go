package theme

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the cookie session holding the theme preference.
const SessionName = "theme_pref"

const sessionKey = "theme"

// FromSession returns a State seeded from the request's theme session, or
// def when none is stored. Changes made through the State are written back
// to the session cookie; write failures are logged and otherwise ignored.
func FromSession(c echo.Context, def Theme) *State {
	s := NewState(Stored(c, def))
	s.Subscribe(func(t Theme) {
		if err := Persist(c, t); err != nil {
			c.Logger().Errorf("theme: persist %s: %v", t, err)
		}
	})
	return s
}

// Stored reads the theme saved in the session, falling back to def.
func Stored(c echo.Context, def Theme) Theme {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return def
	}
	raw, ok := sess.Values[sessionKey].(string)
	if !ok {
		return def
	}
	t, err := Parse(raw)
	if err != nil {
		return def
	}
	return t
}

// Persist saves t in the theme session.
func Persist(c echo.Context, t Theme) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[sessionKey] = string(t)
	return sess.Save(c.Request(), c.Response())
}
