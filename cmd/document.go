package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var documentTitle string

var documentCmd = &cobra.Command{
	Use:   "document [file]",
	Short: "Save a document to the library",
	Long:  `Saves the contents of file (or stdin when no file or "-" is given) as a document entry.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		var body []byte
		if len(args) == 0 || args[0] == "-" {
			body, err = io.ReadAll(cmd.InOrStdin())
		} else {
			body, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		doc, err := appInstance.LibraryService.SaveDocument(cmd.Context(), documentTitle, string(body))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q as %s\n", color.GreenString("Saved"), doc.Title, doc.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(documentCmd)
	documentCmd.Flags().StringVarP(&documentTitle, "title", "t", "", "Document title")
}
