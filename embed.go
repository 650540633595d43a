package pubshell

import "embed"

// EmbeddedAssets contains static assets shipped with the layout:
// icons.svg (icon sprite) and theme.css (light and dark palettes).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
