package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/color-game/swatchbook/notation"
)

// formatSample is translucent so every notation shows how it handles alpha.
var formatSample = notation.New(0.8, 0.7, 0.6, 0.5)

func newFormatsCmd(v *viper.Viper) *cobra.Command {
	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List the output notations with an example of each",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			raw := lo.Must(cmd.Flags().GetBool("raw"))
			short := v.GetBool(KeyShort)

			for _, f := range notation.Formats() {
				if raw {
					cmd.Println(string(f))
					continue
				}
				example, _ := notation.Render(formatSample, f, short)
				cmd.Println(row(string(f), example))
			}
		},
	}

	formatsCmd.Flags().BoolP("raw", "r", false, "Print only the format names")

	return formatsCmd
}
