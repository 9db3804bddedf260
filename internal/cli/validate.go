package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joeblew999/plat-bionic/pkg/export"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check exported email HTML for client compatibility issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			issues := export.ValidateEmail(string(data))
			w := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(w, "No compatibility issues found")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(w, "- %s\n", issue)
			}
			return fmt.Errorf("%d compatibility issues", len(issues))
		},
	}
}
