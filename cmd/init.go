package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mozilla-ai/gnuusage/internal/cmd"
	cmdopts "github.com/mozilla-ai/gnuusage/internal/cmd/options"
	"github.com/mozilla-ai/gnuusage/internal/config"
	"github.com/mozilla-ai/gnuusage/internal/flags"
)

type InitCmd struct {
	*cmd.BaseCmd
	cfgInitializer config.Initializer
}

func NewInitCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InitCmd{
		BaseCmd:        baseCmd,
		cfgInitializer: opts.ConfigInitializer,
	}

	cobraCommand := &cobra.Command{
		Use:   "init [<file>]",
		Short: "Creates a skeleton usage document",
		Long:  c.longDescription(),
		RunE:  c.run,
		Args:  cobra.MaximumNArgs(1),
	}

	return cobraCommand, nil
}

func (c *InitCmd) longDescription() string {
	return fmt.Sprintf(
		"Creates a skeleton usage document, defaulting to %s in the current directory.\n\n"+
			"The document format is chosen from the file extension (.toml, .yaml, .yml or .json)",
		flags.DefaultDocumentFile,
	)
}

func (c *InitCmd) run(cmd *cobra.Command, args []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	var initFilePath string
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		initFilePath = strings.TrimSpace(args[0])
	} else {
		if _, err := fmt.Fprintf(
			cmd.OutOrStdout(),
			"📄 Using default usage document: '%s' in the current directory\n", flags.DefaultDocumentFile,
		); err != nil {
			return err
		}
		cwd, err := os.Getwd()
		if err != nil {
			logger.Error("Failed to get working directory", "error", err)
			return fmt.Errorf("error getting current directory: %w", err)
		}
		initFilePath = filepath.Join(cwd, flags.DefaultDocumentFile)
	}

	if err := c.cfgInitializer.Init(initFilePath); err != nil {
		logger.Error("Usage document initialization failed", "path", initFilePath, "error", err)
		return fmt.Errorf("error initializing usage document: %w", err)
	}

	logger.Debug("Usage document created", "path", initFilePath)

	if _, err := fmt.Fprintf(
		cmd.OutOrStdout(),
		"✅ Usage document created: %s\n", initFilePath,
	); err != nil {
		return err
	}

	return nil
}
