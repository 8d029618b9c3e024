package cobrausage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/mozilla-ai/gnuusage/internal/usage"
)

func TestFromFlagSet(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("gzip", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "verbose mode")
	fs.StringP("suffix", "S", ".gz", "use suffix `SUF` on compressed files")
	fs.Int("level", 6, "compression level")
	fs.String("color", "auto", "colorize the output")
	fs.Lookup("color").NoOptDefVal = "always"
	fs.Bool("debug", false, "internal debugging")
	require.NoError(t, fs.MarkHidden("debug"))
	fs.String("old", "", "replaced by --suffix")
	require.NoError(t, fs.MarkDeprecated("old", "use --suffix instead"))
	fs.BoolP("quiet", "q", false, "suppress all warnings")
	require.NoError(t, fs.MarkShorthandDeprecated("quiet", "use --quiet instead"))

	opts := FromFlagSet(fs)

	require.Equal(t, []usage.Option[string]{
		{
			Key:      "color",
			Long:     "color",
			Argument: &usage.OptionArgument{Name: "STRING", Optional: true},
			Doc:      "colorize the output",
		},
		{
			Key:      "level",
			Long:     "level",
			Argument: &usage.OptionArgument{Name: "INT"},
			Doc:      "compression level",
		},
		{
			Key:  "quiet",
			Long: "quiet",
			Doc:  "suppress all warnings",
		},
		{
			Key:      "suffix",
			Short:    "S",
			Long:     "suffix",
			Argument: &usage.OptionArgument{Name: "SUF"},
			Doc:      "use suffix SUF on compressed files",
		},
		{
			Key:   "verbose",
			Short: "v",
			Long:  "verbose",
			Doc:   "verbose mode",
		},
	}, opts)
}

func TestFromFlagSet_Nil(t *testing.T) {
	t.Parallel()

	require.Empty(t, FromFlagSet(nil))
}

func TestApply_Help(t *testing.T) {
	t.Parallel()

	c := &cobra.Command{
		Use:   "gzip",
		Short: "Compress files",
		Run:   func(*cobra.Command, []string) {},
	}
	c.Flags().StringP("suffix", "S", ".gz", "use suffix `SUF` on compressed files")

	Apply(c, DefaultConfig())

	out := &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(out)
	c.SetArgs([]string{"--help"})

	require.NoError(t, c.Execute())

	expected := "Usage: gzip [OPTION]...\n" +
		"Compress files\n" +
		"\n" +
		"Mandatory arguments to long options are mandatory for short options too.\n" +
		"\n" +
		"  -h, --help" + strings.Repeat(" ", 6) + " help for gzip\n" +
		"  -S, --suffix=SUF use suffix SUF on compressed files\n"
	require.Equal(t, expected, out.String())
}

func TestApply_Subcommands(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{
		Use:   "app",
		Short: "A test app",
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(&cobra.Command{
		Use:   "render",
		Short: "Render usage text",
		Run:   func(*cobra.Command, []string) {},
	})
	root.AddCommand(&cobra.Command{
		Use:    "secret",
		Short:  "Hidden command",
		Hidden: true,
		Run:    func(*cobra.Command, []string) {},
	})

	Apply(root, DefaultConfig())

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())

	expected := "Usage: app [OPTION]...\n" +
		"A test app\n" +
		"\n" +
		"  -h, --help help for app\n" +
		"\n" +
		"Commands:\n" +
		"  render" + strings.Repeat(" ", 7) + "Render usage text\n"
	require.Equal(t, expected, out.String())
}

func TestApply_InheritedFlags(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "app"}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().String("log-level", "info", "log `LEVEL` for logs")

	sub := &cobra.Command{
		Use:  "render",
		Long: "Renders usage documents.",
		Run:  func(*cobra.Command, []string) {},
	}
	sub.Flags().Bool("strict", false, "fail on warnings")
	root.AddCommand(sub)

	Apply(root, DefaultConfig())

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"render", "--help"})

	require.NoError(t, root.Execute())

	expected := "Usage: app render [OPTION]...\n" +
		"Renders usage documents.\n" +
		"\n" +
		"Mandatory arguments to long options are mandatory for short options too.\n" +
		"\n" +
		"  -h, --help" + strings.Repeat(" ", 11) + " help for render\n" +
		"      --strict" + strings.Repeat(" ", 9) + " fail on warnings\n" +
		"      --log-level=LEVEL log LEVEL for logs\n"
	require.Equal(t, expected, out.String())
}

func TestRender_NoCommandsTitle(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "app"}
	root.AddCommand(&cobra.Command{Use: "render", Run: func(*cobra.Command, []string) {}})

	cfg := DefaultConfig()
	cfg.CommandsTitle = ""

	out := &bytes.Buffer{}
	require.NoError(t, Render(out, root, cfg))
	require.Equal(t, "Usage: app\n", out.String())
}
