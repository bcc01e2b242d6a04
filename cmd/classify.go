package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"twm/internal/clix"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <prompt...>",
	Short: "Show which task type a prompt maps to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		res, err := appInstance.GenerationService.Classify(cmd.Context(), clix.JoinArgs(args))
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", color.CyanString(res.Category.String()))
		if res.Keyword != "" {
			fmt.Fprintf(out, "matched keyword: %q\n", res.Keyword)
		} else {
			fmt.Fprintln(out, "no keyword matched")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
