package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var deleteAll bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [content_id]",
	Short: "Delete a library entry",
	Long:  `Deletes the library entry with the given id, or every entry with --all.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if deleteAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if deleteAll {
			if err := appInstance.ContentStore.ClearContent(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear library: %w", err)
			}
			fmt.Fprintln(out, "Library cleared.")
			return nil
		}

		contentID := args[0]
		log.Debugf("Attempting to delete content with ID: %s", contentID)
		if err := appInstance.LibraryService.Delete(cmd.Context(), contentID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Successfully deleted content with ID: %s\n", contentID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete every library entry")
}
