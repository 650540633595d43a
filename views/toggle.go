package views

import (
	"strconv"

	"github.com/eringen/pubshell/node"
	"github.com/eringen/pubshell/theme"
)

// ToggleOptions configures the theme switch.
type ToggleOptions struct {
	Size      int    // icon size in pixels (default 24)
	SunColor  string // tint of the sun icon (default "Gold")
	Action    string // endpoint the switch posts to (default "/theme/")
	CSRFToken string
	Redirect  string // where the endpoint sends the browser afterwards
	Prefix    string // site path prefix for asset URLs
	Disabled  bool   // render the current position only, with nothing to post to
}

func (o *ToggleOptions) setDefaults() {
	if o.Size == 0 {
		o.Size = 24
	}
	if o.SunColor == "" {
		o.SunColor = "Gold"
	}
	if o.Action == "" {
		o.Action = o.Prefix + "/theme/"
	}
}

// ThemeToggle renders a two-state switch reflecting f. The switch is checked
// when the current theme is dark; pressing it posts the opposite position.
func ThemeToggle(f theme.Facility, opts ToggleOptions) node.Node {
	opts.setDefaults()
	checked := f.Current().Checked()

	icon := sizedIcon(opts.Prefix, "sun", opts.Size, opts.SunColor)
	label := "Switch to dark theme"
	if checked {
		icon = sizedIcon(opts.Prefix, "moon", opts.Size, "")
		label = "Switch to light theme"
	}

	if opts.Disabled {
		btn := switchButton("button", checked, label, icon)
		btn.Attrs = append(btn.Attrs, node.Flag("disabled"), node.Attr("aria-disabled", "true"))
		return node.El("form", node.Attrs("class", "theme-toggle"), btn)
	}

	var fields []node.Node
	if opts.CSRFToken != "" {
		fields = append(fields, hiddenInput("_csrf", opts.CSRFToken))
	}
	if opts.Redirect != "" {
		fields = append(fields, hiddenInput("redirect", opts.Redirect))
	}
	fields = append(fields, switchButton("submit", checked, label, icon))

	return node.El("form", node.Attrs(
		"class", "theme-toggle",
		"method", "post",
		"action", opts.Action,
	), fields...)
}

// ToggleTheme applies a switch change: checked requests dark, unchecked light.
func ToggleTheme(f theme.Facility, checked bool) {
	f.Set(theme.FromChecked(checked))
}

// SwitchChecked reports the position a rendered ThemeToggle shows.
func SwitchChecked(toggle node.Node) bool {
	btn, ok := toggle.Find(node.ByClass("dark-mode-switch"))
	if !ok {
		return false
	}
	v, _ := btn.Attr("aria-checked")
	return v == "true"
}

// switchButton posts the opposite of checked under the name "checked".
func switchButton(typ string, checked bool, label string, icon node.Node) node.Node {
	return node.El("button", []node.Attribute{
		node.Attr("type", typ),
		node.Attr("class", "dark-mode-switch"),
		node.Attr("role", "switch"),
		node.Attr("aria-checked", strconv.FormatBool(checked)),
		node.Attr("aria-label", label),
		node.Attr("name", "checked"),
		node.Attr("value", strconv.FormatBool(!checked)),
	}, icon)
}

func hiddenInput(name, value string) node.Node {
	return node.El("input", node.Attrs("type", "hidden", "name", name, "value", value))
}
