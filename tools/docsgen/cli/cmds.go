//go:build docsgen_cli
// +build docsgen_cli

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/mozilla-ai/gnuusage/cmd"
	internalcmd "github.com/mozilla-ai/gnuusage/internal/cmd"
	"github.com/mozilla-ai/gnuusage/internal/cobrausage"
	"github.com/mozilla-ai/gnuusage/internal/perms"
)

// main assumes it is run from the repository root.
func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gnuusage.docsgen",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	// docsPath is the path to the commands documentation, relative to the repository root.
	docsPath := "./docs/commands/"

	rootCmd, err := cmd.NewRootCmd(&cmd.RootCmd{BaseCmd: &internalcmd.BaseCmd{}})
	if err != nil {
		logger.Error("failed to create root command for docs generation", "error", err)
		return
	}
	rootCmd.DisableAutoGenTag = true

	if err = os.RemoveAll(docsPath); err != nil {
		logger.Error("failed to clear docs directory", "path", docsPath, "error", err)
		return
	}

	if err = os.MkdirAll(docsPath, perms.RegularDir); err != nil {
		logger.Error("failed to create docs directory", "path", docsPath, "error", err)
		return
	}

	err = doc.GenMarkdownTree(rootCmd, docsPath)
	if err != nil {
		logger.Error("failed to generate CLI docs", "error", err)
		return
	}

	// Alongside the markdown, write the exact help screen of every command.
	if err = writeHelpScreens(rootCmd, docsPath); err != nil {
		logger.Error("failed to generate help screens", "error", err)
		return
	}

	logger.Info("CLI docs generated", "path", docsPath)
}

func writeHelpScreens(c *cobra.Command, dir string) error {
	var sb strings.Builder
	if err := cobrausage.Render(&sb, c, cobrausage.DefaultConfig()); err != nil {
		return err
	}

	name := strings.ReplaceAll(c.CommandPath(), " ", "_") + ".txt"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sb.String()), perms.RegularFile); err != nil {
		return err
	}

	for _, sub := range c.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		if err := writeHelpScreens(sub, dir); err != nil {
			return err
		}
	}

	return nil
}
