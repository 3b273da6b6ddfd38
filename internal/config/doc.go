// Package config loads the fontpreview TOML configuration.
//
// Lookup order: an explicit --config path, then
// ~/.config/fontpreview/config.toml, then ./fontpreview.toml. A missing file
// means defaults. FONTPREVIEW_PARSER and FONTPREVIEW_LOG_LEVEL override the
// corresponding keys. Create a commented sample with `fontpreview config
// init`.
package config
