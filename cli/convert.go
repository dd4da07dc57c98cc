package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/color-game/swatchbook/notation"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:     "convert <color>",
		Short:   "Render a color in another notation",
		Example: `  colorconv convert "#cbb298" --to hsla
  colorconv convert "rgba(255, 0, 0, 0.5)" --to objc --short`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := notation.ParseFormat(v.GetString(KeyTo))
			if err != nil {
				return err
			}

			color, err := parseArg(args)
			if err != nil {
				return err
			}

			output, err := notation.Render(color, format, v.GetBool(KeyShort))
			if err != nil {
				return err
			}

			cmd.Println(output)
			return nil
		},
	}

	convertCmd.Flags().StringP(KeyTo, "t", string(notation.FormatCSS), "Output notation")
	lo.Must0(convertCmd.RegisterFlagCompletionFunc(KeyTo, formatCompletion))
	lo.Must0(v.BindPFlag(KeyTo, convertCmd.Flags().Lookup(KeyTo)))

	return convertCmd
}
