package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mozilla-ai/gnuusage/internal/cmd"
	cmdopts "github.com/mozilla-ai/gnuusage/internal/cmd/options"
	"github.com/mozilla-ai/gnuusage/internal/config"
	"github.com/mozilla-ai/gnuusage/internal/usage"
)

type RenderCmd struct {
	*cmd.BaseCmd
	cfgLoader config.Loader
	Program   string
	Newline   cmd.NewlineStyle
	MaxColumn int
}

func NewRenderCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &RenderCmd{
		BaseCmd:   baseCmd,
		cfgLoader: opts.ConfigLoader,
	}

	cobraCmd := &cobra.Command{
		Use:   "render <file>...",
		Short: "Renders the usage text described by usage documents",
		Long: "Renders the usage text described by one or more usage documents to standard output, " +
			"in the order the files are given. Documents are separated by a blank line.",
		RunE: c.run,
		Args: cobra.MinimumNArgs(1),
	}

	cobraCmd.Flags().StringVar(
		&c.Program,
		"program",
		"",
		"Override the program `NAME` shown on the usage line",
	)

	cobraCmd.Flags().Var(
		&c.Newline,
		"newline",
		"Override the line terminator (one of: crlf, lf)",
	)

	cobraCmd.Flags().IntVar(
		&c.MaxColumn,
		"max-column",
		0,
		"Fail when the option column is wider than `WIDTH` (0 disables the check)",
	)

	return cobraCmd, nil
}

func (c *RenderCmd) run(cmd *cobra.Command, args []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	loader := c.cfgLoader
	if c.MaxColumn > 0 {
		loader = config.NewValidatingLoader(loader, config.MaxColumnWidth(c.MaxColumn))
	}

	docs, err := loadDocuments(loader, logger, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, doc := range docs {
		cfg := doc.DisplayConfig()
		if program := strings.TrimSpace(c.Program); program != "" {
			cfg.Program = program
		}
		if nl := c.Newline.Sequence(); nl != "" {
			cfg.Newline = nl
		}

		if i > 0 {
			if _, err := io.WriteString(out, cfg.Newline); err != nil {
				return err
			}
		}

		logger.Debug("Rendering usage document", "path", doc.Path(), "program", cfg.Program, "options", len(cfg.Options))

		if err := usage.Render(out, cfg); err != nil {
			return fmt.Errorf("error rendering %s: %w", doc.Path(), err)
		}
	}

	return nil
}
