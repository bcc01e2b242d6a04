package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job <task_id>",
	Short: "Show the status of a background job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		job, err := appInstance.JobStore.GetJob(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("job %s: %w", args[0], err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s  content %s\n", job.ID, job.TaskType, job.ContentID)
		fmt.Fprintf(out, "status: %s (updated %s)\n", job.Status, job.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		if job.Error != "" {
			fmt.Fprintf(out, "error: %s\n", job.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobCmd)
}
