package views

import (
	"strconv"

	"github.com/eringen/pubshell/node"
)

// spritePath is the embedded SVG sprite holding every icon symbol.
const spritePath = "/public/icons.svg"

// Icon renders a symbol from the icon sprite. size is a multiplier like the
// footer's "2x"; an empty size renders at 1em.
func Icon(prefix, name, size string) node.Node {
	class := "icon icon-" + name
	if size != "" {
		class += " icon-" + size
	}
	return node.El("svg", []node.Attribute{
		node.Attr("class", class),
		node.Attr("aria-hidden", "true"),
		node.Attr("focusable", "false"),
		node.Attr("data-icon", name),
	},
		node.El("use", node.Attrs("href", prefix+spritePath+"#"+name)),
	)
}

// sizedIcon renders a symbol at a fixed pixel size, optionally tinted.
func sizedIcon(prefix, name string, px int, color string) node.Node {
	attrs := []node.Attribute{
		node.Attr("class", "icon icon-"+name),
		node.Attr("width", strconv.Itoa(px)),
		node.Attr("height", strconv.Itoa(px)),
		node.Attr("aria-hidden", "true"),
		node.Attr("focusable", "false"),
		node.Attr("data-icon", name),
	}
	if color != "" {
		attrs = append(attrs, node.Attr("style", "color:"+color))
	}
	return node.El("svg", attrs,
		node.El("use", node.Attrs("href", prefix+spritePath+"#"+name)),
	)
}
