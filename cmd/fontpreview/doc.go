// Command fontpreview inspects and previews font files.
//
// # Commands
//
//   - inspect: load fonts and print their metadata as a table
//   - css: print the @font-face block registered for the loaded fonts
//   - render: rasterise the preview panels to a PNG file
//   - config init: write a commented sample configuration
//
// Every command that loads fonts takes files and directories; directories
// are searched recursively for .ttf and .otf files.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose (-v) enables
// debug output; otherwise [logging] level in the configuration applies.
package main
