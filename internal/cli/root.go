// Package cli provides the command-line interface for plat-bionic.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

// NewRootCmd creates the root command for bionic
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bionic",
		Short: "Bionic reading conversion for styled text",
		Long: `Convert text to bionic reading format: the leading letters of every word
are set in a heavier weight of the same font family.

Environment Variables:
  DATA_PATH             Base data directory (default: ./.data)
  FONT_CATALOG_PATH     Font catalog file (default: $DATA_PATH/fonts/catalog.json)
  GOOGLE_FONTS_API_KEY  Key for syncing the catalog from Google Fonts
  LOG_LEVEL             debug, info, warn or error`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("catalog", "", "font catalog file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bionic %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newWeightCmd())
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newFontsCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

// openCatalog opens the catalog named by --catalog, or the default one.
func openCatalog(cmd *cobra.Command) *font.Catalog {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return font.NewCatalog()
	}
	return font.NewCatalogAt(path)
}
