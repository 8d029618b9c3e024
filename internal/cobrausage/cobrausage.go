// Package cobrausage renders the help output of Cobra commands with the GNU style usage renderer.
package cobrausage

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mozilla-ai/gnuusage/internal/usage"
)

// DefaultArgumentName is used for flags taking a value when no better placeholder can be derived.
const DefaultArgumentName = "VALUE"

// Config controls how commands are rendered.
type Config struct {
	// Fragments are the localizable pieces of text passed to the usage renderer.
	Fragments usage.Fragments

	// CommandsTitle introduces the list of available subcommands.
	// Subcommands are not listed when empty.
	CommandsTitle string
}

// DefaultConfig returns the untranslated configuration.
func DefaultConfig() Config {
	return Config{
		Fragments:     usage.DefaultFragments(),
		CommandsTitle: "Commands:",
	}
}

// FromFlagSet converts the visible flags of fs into options keyed by flag name.
// Flags are visited in the order pflag reports them (lexical, unless sorting was disabled).
func FromFlagSet(fs *pflag.FlagSet) []usage.Option[string] {
	var opts []usage.Option[string]
	if fs == nil {
		return opts
	}

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Deprecated != "" {
			return
		}
		opts = append(opts, optionFromFlag(f))
	})

	return opts
}

func optionFromFlag(f *pflag.Flag) usage.Option[string] {
	name, doc := pflag.UnquoteUsage(f)

	opt := usage.Option[string]{
		Key:  f.Name,
		Long: f.Name,
		Doc:  doc,
	}

	if f.Shorthand != "" && f.ShorthandDeprecated == "" {
		opt.Short = f.Shorthand
	}

	if f.Value.Type() == "bool" {
		return opt
	}

	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		name = DefaultArgumentName
	}

	opt.Argument = &usage.OptionArgument{
		Name:     name,
		Optional: f.NoOptDefVal != "",
	}

	return opt
}

// DisplayConfig builds the renderer input for cmd from its local and inherited flags.
func DisplayConfig(cmd *cobra.Command, frags usage.Fragments) usage.DisplayConfig[string] {
	opts := FromFlagSet(cmd.LocalFlags())
	opts = append(opts, FromFlagSet(cmd.InheritedFlags())...)

	doc := strings.TrimSpace(cmd.Long)
	if doc == "" {
		doc = strings.TrimSpace(cmd.Short)
	}

	return usage.DisplayConfig[string]{
		Options:   opts,
		Program:   cmd.CommandPath(),
		Doc:       doc,
		Fragments: frags,
	}
}

// Render writes the usage of cmd to w, followed by its available subcommands.
func Render(w io.Writer, cmd *cobra.Command, cfg Config) error {
	if err := usage.Render(w, DisplayConfig(cmd, cfg.Fragments)); err != nil {
		return err
	}

	if cfg.CommandsTitle == "" || !cmd.HasAvailableSubCommands() {
		return nil
	}

	nl := cfg.Fragments.Newline
	if _, err := io.WriteString(w, nl+cfg.CommandsTitle+nl); err != nil {
		return err
	}

	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-*s  %s%s", sub.NamePadding(), sub.Name(), sub.Short, nl); err != nil {
			return err
		}
	}

	return nil
}

// Apply replaces the usage and help functions of cmd, and of every subcommand that does not set its own.
func Apply(cmd *cobra.Command, cfg Config) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return Render(c.OutOrStderr(), c, cfg)
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := Render(c.OutOrStdout(), c, cfg); err != nil {
			c.PrintErrln("Error:", err)
		}
	})
}
