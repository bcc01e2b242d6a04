package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"twm/internal/clix"
	"twm/internal/services"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the content library",
	Long:  `Displays library entries newest first. Supports pagination and filtering by content type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return err
		}
		contentType, err := clix.ParseContentType(cmd.Flags())
		if err != nil {
			return err
		}
		log.Debugf("Executing list command: limit=%d, offset=%d, type=%q", pagination.Limit, pagination.Offset, contentType)

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}
		items, total, err := appInstance.LibraryService.List(cmd.Context(), services.ListContentParams{
			Type:   contentType,
			Limit:  pagination.Limit,
			Offset: pagination.Offset,
		})
		if err != nil {
			return fmt.Errorf("failed to list content: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "No content found.")
			return nil
		}
		renderLibrary(out, items)
		fmt.Fprintf(out, "Displayed %d of %d items.\n", len(items), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntP("limit", "l", 20, "Number of items to display per page")
	listCmd.Flags().IntP("offset", "o", 0, "Number of items to skip (for pagination)")
	listCmd.Flags().StringP("type", "t", "", "Only list this content type (text, table, presentation, podcast, image, video, document)")
}
