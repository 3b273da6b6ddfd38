package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/fontpreview/internal/config"
	"github.com/gogpu/fontpreview/parse"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, ok := parse.Lookup(cfg.Ingest.Parser); !ok {
				return fmt.Errorf("parser %q is not available (have %v)", cfg.Ingest.Parser, parse.Names())
			}

			rows := [][]string{
				{"ingest.extensions", strings.Join(cfg.Ingest.Extensions, ", ")},
				{"ingest.workers", workersLabel(cfg.Ingest.Workers)},
				{"ingest.parser", cfg.Ingest.Parser},
				{"preview.text", cfg.Preview.Text},
				{"preview.pixel_size", fmt.Sprint(cfg.Preview.PixelSize)},
				{"preview.dpi", fmt.Sprint(cfg.Preview.DPI)},
				{"preview.padding", fmt.Sprint(cfg.Preview.Padding)},
				{"preview.gap", fmt.Sprint(cfg.Preview.Gap)},
				{"preview.max_width", fmt.Sprint(cfg.Preview.MaxWidth)},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows, nil))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func workersLabel(n int) string {
	if n == 0 {
		return "auto"
	}
	return fmt.Sprint(n)
}
