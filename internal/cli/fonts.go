package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joeblew999/plat-bionic/pkg/config"
	"github.com/joeblew999/plat-bionic/pkg/font"
)

func newFontsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts [family]",
		Short: "List catalog families, or the styles of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := openCatalog(cmd)
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				families := catalog.Families()
				if len(families) == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "Catalog %s is empty, run 'bionic fonts sync'\n", catalog.Path())
					return nil
				}
				for _, family := range families {
					styles := catalog.StylesFor(family)
					fmt.Fprintf(w, "%s\t%d styles\t%d weights\n", family, len(styles), font.DistinctWeights(styles))
				}
				return nil
			}

			styles := catalog.StylesFor(args[0])
			if len(styles) == 0 {
				return fmt.Errorf("family %q not found in catalog", args[0])
			}
			for _, style := range styles {
				fmt.Fprintf(w, "%s\t%d\n", style, font.WeightToNumber(style))
			}
			return nil
		},
	}

	cmd.AddCommand(newFontsSyncCmd())
	cmd.AddCommand(newFontsAddCmd())
	cmd.AddCommand(newFontsRemoveCmd())
	return cmd
}

func newFontsSyncCmd() *cobra.Command {
	var (
		apiKey  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sync [family...]",
		Short: "Sync catalog families from Google Fonts",
		Long: `Fetch the Google Fonts listing and add the given families to the catalog.
Without arguments the default families are synced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				return fmt.Errorf("a Google Fonts API key is required (--api-key or GOOGLE_FONTS_API_KEY)")
			}
			families := args
			if len(families) == 0 {
				families = font.ListGoogleFonts()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			catalog := openCatalog(cmd)
			n, err := font.NewGoogleSource(apiKey).Sync(ctx, catalog, families...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d fonts into %s\n", n, catalog.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", config.GetGoogleFontsAPIKey(), "Google Fonts API key")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}

func newFontsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <family> <style>...",
		Short:   "Add styles of a family to the catalog",
		Example: `  bionic fonts add Inter Regular Medium Bold Black`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := openCatalog(cmd)
			fonts := make([]font.FontName, 0, len(args)-1)
			for _, style := range args[1:] {
				fonts = append(fonts, font.FontName{Family: args[0], Style: style})
			}
			if err := catalog.Add(fonts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d styles\n", args[0], len(catalog.StylesFor(args[0])))
			return nil
		},
	}
}

func newFontsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <family> <style>",
		Short: "Remove a style from the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := font.FontName{Family: args[0], Style: args[1]}
			if err := openCatalog(cmd).Remove(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", f)
			return nil
		},
	}
}
