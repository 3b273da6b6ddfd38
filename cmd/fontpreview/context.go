package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gogpu/fontpreview"
	"github.com/gogpu/fontpreview/ingest"
	"github.com/gogpu/fontpreview/internal/config"
	"github.com/gogpu/fontpreview/preview"
)

type commandContext struct {
	configFlag *string
	parserFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, parserFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		parserFlag: parserFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.parserFlag != nil && strings.TrimSpace(*c.parserFlag) != "" {
			cfg.Ingest.Parser = strings.ToLower(strings.TrimSpace(*c.parserFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newSession builds a Session from the loaded configuration.
func (c *commandContext) newSession() (*fontpreview.Session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return fontpreview.New(nil,
		fontpreview.WithIngestOptions(
			ingest.WithParser(cfg.Ingest.Parser),
			ingest.WithWorkers(cfg.Ingest.Workers),
			ingest.WithExtensions(cfg.Ingest.Extensions...),
		),
		fontpreview.WithPreviewOptions(
			preview.WithDPI(cfg.Preview.DPI),
			preview.WithPadding(cfg.Preview.Padding),
		),
		fontpreview.WithPreviewText(cfg.Preview.Text, cfg.Preview.PixelSize),
		fontpreview.WithGap(cfg.Preview.Gap),
	), nil
}

// load expands paths into files and ingests them. Aggregate failures are
// returned as errors carrying the user-facing message; a partial failure is
// printed as a warning and the batch is returned.
func load(ctx context.Context, cmd *cobra.Command, s *fontpreview.Session, paths []string) (*ingest.Batch, error) {
	files, err := ingest.Paths(paths...)
	if err != nil {
		return nil, err
	}

	batch, err := s.Ingest(ctx, files)
	if err != nil {
		if msg, sev := ingest.UserMessage(err); sev == ingest.SeverityError {
			return nil, errors.New(msg)
		}
		return nil, err
	}

	msg, sev := ingest.UserMessage(batch.Outcome())
	switch sev {
	case ingest.SeverityError:
		return nil, errors.New(msg)
	case ingest.SeverityWarning:
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, renderStatus(sev, msg, shouldColorize(errOut)))
	}
	return batch, nil
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

func renderStatus(sev ingest.Severity, message string, colorize bool) string {
	line := fmt.Sprintf("[%s] %s", strings.ToUpper(sev.String()), message)
	if !colorize {
		return line
	}
	switch sev {
	case ingest.SeverityWarning:
		return ansiYellow + line + ansiReset
	case ingest.SeverityError:
		return ansiRed + line + ansiReset
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
