// Package cli implements the colorconv command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/color-game/swatchbook/notation"
)

// EnvPrefix is prepended to every configuration key read from the environment.
const EnvPrefix = "COLORCONV"

// Configuration keys shared by flags and the environment.
const (
	KeyTo      = "to"
	KeyShort   = "short"
	KeyVerbose = "verbose"
)

// EnvKeyReplacer maps configuration keys onto environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// NewRootCmd builds the colorconv command tree around its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "colorconv",
		Short:         "Convert colors between hex, CSS, HSL and NSColor notations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if v.GetBool(KeyVerbose) {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolP(KeyShort, "s", false, "Omit notation wrappers, e.g. 255, 0, 0 instead of rgb(255, 0, 0)")
	lo.Must0(v.BindPFlag(KeyShort, rootCmd.PersistentFlags().Lookup(KeyShort)))

	rootCmd.PersistentFlags().BoolP(KeyVerbose, "V", false, "Log parser decisions to stderr")
	lo.Must0(v.BindPFlag(KeyVerbose, rootCmd.PersistentFlags().Lookup(KeyVerbose)))

	rootCmd.AddCommand(
		newConvertCmd(v),
		newInspectCmd(v),
		newFormatsCmd(v),
	)

	return rootCmd
}

// Execute runs colorconv with the process arguments and exits non-zero on failure.
func Execute() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	if err := Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Run executes colorconv with args, writing results to out and failures to errOut.
func Run(args []string, out, errOut io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "%s %s\n", failMark, strings.Trim(err.Error(), " \n"))
	}
	return err
}

// parseArg joins the positional arguments so unquoted notations with spaces still parse.
func parseArg(args []string) (notation.Color, error) {
	input := strings.Join(args, " ")
	color, err := notation.Parse(input)
	if err != nil {
		return notation.Color{}, err
	}

	log.WithFields(log.Fields{
		"input": input,
		"color": notation.RGBAString(color, true),
	}).Debug("parsed color")

	return color, nil
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(notation.Formats(), func(f notation.Format, _ int) string {
		return string(f)
	}), cobra.ShellCompDirectiveNoFileComp
}
