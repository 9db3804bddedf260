package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

func newWeightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weight <style>...",
		Short: "Print the numeric weight of font style names",
		Example: `  bionic weight Regular "Semi Bold" ExtraLight "Thin 250"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range args {
				if _, err := fmt.Fprintf(w, "%s\t%d\n", name, font.WeightToNumber(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newContrastCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "contrast [styles]",
		Short: "Suggest contrast steps for a number of available styles",
		Long: `Suggest the contrast values worth offering for a family.

Pass the number of styles directly, or --family to count them in
the font catalog.`,
		Example: `  bionic contrast 4
  bionic contrast --family Inter`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var weights int
			switch {
			case family != "":
				styles := openCatalog(cmd).StylesFor(family)
				if len(styles) == 0 {
					return fmt.Errorf("family %q not found in catalog", family)
				}
				weights = len(styles)
			case len(args) == 1:
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid style count %q", args[0])
				}
				weights = n
			default:
				return fmt.Errorf("pass a style count or --family")
			}

			steps := font.SuggestContrastSteps(weights)
			parts := make([]string, len(steps))
			for i, s := range steps {
				parts[i] = strconv.Itoa(s)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return err
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "count the styles of this catalog family")
	return cmd
}
