package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag string
		parserFlag string
		verbose    bool
	)

	ctx := newCommandContext(&configFlag, &parserFlag)

	rootCmd := &cobra.Command{
		Use:           "fontpreview",
		Short:         "Inspect and preview font files",
		Long:          `fontpreview loads .ttf and .otf files, reports their naming metadata and inferred weight and style, and renders text previews, optionally side by side for comparison.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			format := "console"
			if !shouldSkipConfig(cmd) {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				if parsed, err := log.ParseLevel(cfg.Logging.Level); err == nil {
					level = parsed
				}
				format = cfg.Logging.Format
			}
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level, format)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&parserFlag, "parser", "", "Font parser backend (ximage or gotext)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newCSSCommand(ctx))
	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
