package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"twm/internal/catalog"
)

var modelsTask string

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available models and task types",
	Args:  cobra.NoArgs,
	// The catalog is static; no app is needed.
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if modelsTask != "" {
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"ID", "Name", "Provider", "Description"})
			for _, m := range catalog.ModelsForTask(modelsTask) {
				table.Append([]string{m.ID, m.Name, m.Provider, m.Description})
			}
			table.Render()
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Task", "Name", "Keywords", "Models"})
		table.SetAutoWrapText(false)
		for _, t := range catalog.TaskTypes() {
			ids := make([]string, len(t.Models))
			for i, m := range t.Models {
				ids[i] = m.ID
			}
			keywords := strings.Join(t.Keywords, ", ")
			if keywords == "" {
				keywords = "(default)"
			}
			table.Append([]string{string(t.ID), t.Name, keywords, strings.Join(ids, ", ")})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().StringVarP(&modelsTask, "task", "t", "", "Only list models offered for this task type")
}
