package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mozilla-ai/gnuusage/internal/cmd"
	cmdopts "github.com/mozilla-ai/gnuusage/internal/cmd/options"
	"github.com/mozilla-ai/gnuusage/internal/cobrausage"
	"github.com/mozilla-ai/gnuusage/internal/flags"
)

var version = "dev" // Set at build time using -ldflags

type RootCmd struct {
	*cmd.BaseCmd
}

func Execute() error {
	rootCmd, err := NewRootCmd(&RootCmd{BaseCmd: &cmd.BaseCmd{}})
	if err != nil {
		return err
	}

	return rootCmd.Execute()
}

func NewRootCmd(c *RootCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           "gnuusage <command> [args]",
		Short:         "'gnuusage' renders GNU style usage text from usage documents.",
		Long:          c.longDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	fns := []func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error){
		NewInitCmd,
		NewInspectCmd,
		NewRenderCmd,
	}

	for _, fn := range fns {
		subCmd, err := fn(c.BaseCmd, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(subCmd)
	}

	// The CLI's own help is rendered in the same style it produces.
	cobrausage.Apply(rootCmd, cobrausage.DefaultConfig())

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `The 'gnuusage' CLI renders the '--help' screen of a program from a usage document
(TOML, YAML or JSON), aligning option documentation the way GNU tools do.`
}
