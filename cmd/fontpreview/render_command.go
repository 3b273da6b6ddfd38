package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/fontpreview"
	"github.com/gogpu/fontpreview/preview"
	"github.com/gogpu/fontpreview/selection"
)

const compareAuto = "auto"

type renderOptions struct {
	out        string
	primary    string
	compare    string
	text       string
	size       int
	width      int
	fitWidth   int
	compareSet bool
	textSet    bool
	sizeSet    bool
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render PATH...",
		Short: "Render a preview of the loaded fonts to a PNG file",
		Long: `Render draws the preview text with the primary font (the first loaded
font unless --primary is given). With --compare, a second panel is drawn
beside it using the given font, or the first other font when no ID is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts.compareSet = cmd.Flags().Changed("compare")
			opts.textSet = cmd.Flags().Changed("text")
			opts.sizeSet = cmd.Flags().Changed("size")
			if !cmd.Flags().Changed("width") {
				opts.width = cfg.Preview.MaxWidth
			}

			s, err := ctx.newSession()
			if err != nil {
				return err
			}
			defer s.Teardown()

			if _, err := load(cmd.Context(), cmd, s, args); err != nil {
				return err
			}
			if err := applyRenderOptions(s, opts); err != nil {
				return err
			}

			img, err := s.Render(opts.width)
			if err != nil {
				return err
			}
			if err := writePNG(opts.out, fitWidth(img, opts.fitWidth)); err != nil {
				return err
			}

			snap := s.Selection()
			logger := loggerFromContext(cmd.Context())
			logger.Info("Wrote preview", "file", opts.out, "primary", snap.Primary.DisplayName())
			if snap.Comparison != nil {
				logger.Info("Compared with", "font", snap.Comparison.DisplayName())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "preview.png", "Output PNG file")
	flags.StringVar(&opts.primary, "primary", "", "ID of the primary font")
	flags.StringVar(&opts.compare, "compare", "", "Enable comparison, optionally with the font of this ID")
	flags.Lookup("compare").NoOptDefVal = compareAuto
	flags.StringVarP(&opts.text, "text", "t", "", "Preview text (empty renders a placeholder)")
	flags.IntVarP(&opts.size, "size", "s", selection.DefaultSize, fmt.Sprintf("Pixel size (%d-%d)", selection.MinSize, selection.MaxSize))
	flags.IntVar(&opts.width, "width", 0, "Wrap lines wider than this many pixels (0 disables)")
	flags.IntVar(&opts.fitWidth, "fit", 0, "Scale the finished image down to at most this many pixels wide")
	return cmd
}

func applyRenderOptions(s *fontpreview.Session, opts renderOptions) error {
	if opts.primary != "" {
		if err := s.SelectPrimary(opts.primary); err != nil {
			return fmt.Errorf("select primary %q: %w", opts.primary, err)
		}
	}
	if opts.textSet {
		s.SetPanelText(selection.PrimaryPanel, opts.text)
	}
	if opts.sizeSet {
		s.SetPanelSize(selection.PrimaryPanel, opts.size)
	}
	if !opts.compareSet {
		return nil
	}

	s.EnableCompare()
	if opts.compare != compareAuto && !s.SelectComparison(opts.compare) {
		return fmt.Errorf("cannot compare with %q: unknown ID or the primary font", opts.compare)
	}
	return nil
}

func fitWidth(img image.Image, width int) image.Image {
	if width <= 0 {
		return img
	}
	return preview.Fit(img, width)
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
