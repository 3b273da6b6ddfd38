package config

const (
	defaultConfigPath  = "~/.config/fontpreview/config.toml"
	projectConfigName  = "fontpreview.toml"
	defaultParser      = "ximage"
	defaultPreviewText = "Type your own text here to preview the font."
	defaultPixelSize   = 48
	defaultDPI         = 72
	defaultPadding     = 16
	defaultGap         = 24
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Ingest: Ingest{
			Extensions: []string{".ttf", ".otf"},
			Parser:     defaultParser,
		},
		Preview: Preview{
			Text:      defaultPreviewText,
			PixelSize: defaultPixelSize,
			DPI:       defaultDPI,
			Padding:   defaultPadding,
			Gap:       defaultGap,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
