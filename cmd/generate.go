package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"twm/internal/clix"
	"twm/internal/services"
)

var (
	generateModel  string
	generateNoSave bool
	generateAsync  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt...>",
	Short: "Generate content for a prompt and save it to the library",
	Long: `Generates content for the prompt. The task type is detected from the
prompt unless --category is given. With --async the job is queued for
'twm worker' and the library id is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		category, err := clix.ParseCategory(cmd.Flags())
		if err != nil {
			return err
		}
		params := services.GenerateParams{
			Prompt:   clix.JoinArgs(args),
			Category: category,
			Model:    generateModel,
			Save:     !generateNoSave,
		}
		out := cmd.OutOrStdout()

		if generateAsync {
			contentID, taskID, err := appInstance.GenerationService.EnqueueGenerate(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s queued content %s (task %s)\n", color.GreenString("Enqueued"), contentID, taskID)
			return nil
		}

		content, err := appInstance.GenerationService.Generate(cmd.Context(), params)
		if err != nil {
			return err
		}
		renderContent(out, content)
		if params.Save {
			fmt.Fprintf(out, "\n%s %s\n", color.GreenString("Saved"), content.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("category", "c", "", "Task type (text, table, presentation, podcast, image, video); detected when empty")
	generateCmd.Flags().StringVarP(&generateModel, "model", "m", "", "Model id (see 'twm models')")
	generateCmd.Flags().BoolVar(&generateNoSave, "no-save", false, "Print the result without saving it")
	generateCmd.Flags().BoolVar(&generateAsync, "async", false, "Queue the generation for the worker")
}
