package views

import (
	"strings"
	"testing"

	"github.com/eringen/pubshell/node"
	"github.com/eringen/pubshell/theme"
)

// recordingFacility records every Set call.
type recordingFacility struct {
	current theme.Theme
	calls   []theme.Theme
}

func (r *recordingFacility) Current() theme.Theme { return r.current }
func (r *recordingFacility) Set(t theme.Theme)    { r.calls = append(r.calls, t); r.current = t }

func TestThemeToggleChecked(t *testing.T) {
	tests := []struct {
		current theme.Theme
		checked bool
		icon    string
		next    string
	}{
		{theme.Dark, true, "moon", "false"},
		{theme.Light, false, "sun", "true"},
	}
	for _, tt := range tests {
		toggle := ThemeToggle(&recordingFacility{current: tt.current}, ToggleOptions{})
		if got := SwitchChecked(toggle); got != tt.checked {
			t.Errorf("%s: checked = %v, want %v", tt.current, got, tt.checked)
		}
		btn, _ := toggle.Find(node.ByClass("dark-mode-switch"))
		if v, _ := btn.Attr("value"); v != tt.next {
			t.Errorf("%s: posted value = %q, want %q", tt.current, v, tt.next)
		}
		svg, ok := btn.Find(node.ByTag("svg"))
		if !ok {
			t.Fatalf("%s: switch has no icon", tt.current)
		}
		if name, _ := svg.Attr("data-icon"); name != tt.icon {
			t.Errorf("%s: icon = %q, want %q", tt.current, name, tt.icon)
		}
	}
}

func TestThemeToggleDefaults(t *testing.T) {
	toggle := ThemeToggle(theme.NewState(theme.Light), ToggleOptions{})
	if action, _ := toggle.Attr("action"); action != "/theme/" {
		t.Errorf("action = %q, want /theme/", action)
	}
	svg, _ := toggle.Find(node.ByTag("svg"))
	if w, _ := svg.Attr("width"); w != "24" {
		t.Errorf("width = %q, want 24", w)
	}
	if style, _ := svg.Attr("style"); style != "color:Gold" {
		t.Errorf("style = %q, want color:Gold", style)
	}
	if inputs := toggle.FindAll(node.ByTag("input")); len(inputs) != 0 {
		t.Errorf("unexpected hidden inputs: %d", len(inputs))
	}
}

func TestThemeToggleHiddenFields(t *testing.T) {
	toggle := ThemeToggle(theme.NewState(theme.Dark), ToggleOptions{
		CSRFToken: "tok",
		Redirect:  "/posts/hello",
		Prefix:    "/blog",
		Size:      32,
	})
	out := render(t, toggle)
	for _, want := range []string{
		`action="/blog/theme/"`,
		`<input type="hidden" name="_csrf" value="tok">`,
		`<input type="hidden" name="redirect" value="/posts/hello">`,
		`width="32"`,
		`href="/blog/public/icons.svg#moon"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("toggle missing %q in %s", want, out)
		}
	}
}

func TestThemeToggleDisabled(t *testing.T) {
	toggle := ThemeToggle(theme.NewState(theme.Dark), ToggleOptions{Disabled: true, CSRFToken: "tok", Redirect: "/x/"})
	if _, ok := toggle.Attr("action"); ok {
		t.Error("disabled switch must not post anywhere")
	}
	if len(toggle.FindAll(node.ByTag("input"))) != 0 {
		t.Error("disabled switch should carry no hidden fields")
	}
	btn, ok := toggle.Find(node.ByClass("dark-mode-switch"))
	if !ok {
		t.Fatal("switch button missing")
	}
	if _, ok := btn.Attr("disabled"); !ok {
		t.Error("button should be disabled")
	}
	if typ, _ := btn.Attr("type"); typ != "button" {
		t.Errorf("type = %q, want button", typ)
	}
	if !SwitchChecked(toggle) {
		t.Error("disabled switch should still show the dark position")
	}
}

func TestToggleTheme(t *testing.T) {
	f := &recordingFacility{current: theme.Light}
	ToggleTheme(f, true)
	ToggleTheme(f, false)
	if len(f.calls) != 2 || f.calls[0] != "dark" || f.calls[1] != "light" {
		t.Errorf("calls = %v, want [dark light]", f.calls)
	}
}

func TestToggleThemeOnState(t *testing.T) {
	s := theme.NewState(theme.Light)
	var seen []theme.Theme
	s.Subscribe(func(t theme.Theme) { seen = append(seen, t) })

	ToggleTheme(s, true)
	if s.Current() != theme.Dark {
		t.Errorf("Current = %q, want dark", s.Current())
	}
	if !SwitchChecked(ThemeToggle(s, ToggleOptions{})) {
		t.Error("switch should be checked after toggling to dark")
	}
	ToggleTheme(s, false)
	if len(seen) != 2 || seen[0] != theme.Dark || seen[1] != theme.Light {
		t.Errorf("broadcast = %v", seen)
	}
}
