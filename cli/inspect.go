package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/color-game/swatchbook/notation"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <color>",
		Short: "Show a color's components and every notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseArg(args)
			if err != nil {
				return err
			}

			cmd.Println(preview(color))

			hsb, hsl := color.HSB(), color.HSL()

			cmd.Println(heading("Components"))
			cmd.Println(row("rgba", fmt.Sprintf("%.4f %.4f %.4f %.4f", color.Red, color.Green, color.Blue, color.Alpha)))
			cmd.Println(row("hsb", fmt.Sprintf("%.2f° %.4f %.4f", hsb.Hue, hsb.Saturation, hsb.Brightness)))
			cmd.Println(row("hsl", fmt.Sprintf("%.2f° %.4f %.4f", hsl.Hue, hsl.Saturation, hsl.Lightness)))

			cmd.Println(heading("Notations"))
			all := notation.RenderAll(color, v.GetBool(KeyShort))
			for _, f := range notation.Formats() {
				cmd.Println(row(string(f), all[f]))
			}

			return nil
		},
	}
}
