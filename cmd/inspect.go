package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mozilla-ai/gnuusage/internal/cmd"
	cmdopts "github.com/mozilla-ai/gnuusage/internal/cmd/options"
	"github.com/mozilla-ai/gnuusage/internal/cmd/output"
	"github.com/mozilla-ai/gnuusage/internal/config"
	"github.com/mozilla-ai/gnuusage/internal/usage"
)

type InspectCmd struct {
	*cmd.BaseCmd
	cfgLoader     config.Loader
	Format        cmd.OutputFormat
	layoutPrinter output.Printer[usage.Layout]
}

func NewInspectCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InspectCmd{
		BaseCmd:       baseCmd,
		cfgLoader:     opts.ConfigLoader,
		Format:        cmd.FormatText, // Default to plain text
		layoutPrinter: opts.LayoutPrinter,
	}

	cobraCmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Shows how usage documents are aligned",
		Long: "Shows the column width, padding and documentation column of every option " +
			"in one or more usage documents, without rendering them",
		RunE: c.run,
		Args: cobra.MinimumNArgs(1),
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCmd.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCmd, nil
}

func (c *InspectCmd) run(cobraCmd *cobra.Command, args []string) error {
	handler, err := cmd.FormatHandler(cobraCmd.OutOrStdout(), c.Format, c.layoutPrinter)
	if err != nil {
		return err
	}

	logger, err := c.Logger()
	if err != nil {
		return handler.HandleError(err)
	}

	docs, err := loadDocuments(c.cfgLoader, logger, args)
	if err != nil {
		return handler.HandleError(err)
	}

	layouts := make([]usage.Layout, 0, len(docs))
	for _, doc := range docs {
		layouts = append(layouts, usage.Measure(doc.DisplayConfig()))
	}

	// A single document keeps the singular payload.
	if len(layouts) == 1 {
		return handler.HandleResult(layouts[0])
	}

	return handler.HandleResults(layouts...)
}
