package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"twm/internal/clix"
	"twm/internal/models"
)

var (
	chatHistory bool
	chatClear   bool
)

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Send a chat message, or show or clear the conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		switch {
		case chatClear:
			if err := appInstance.ChatService.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Chat history cleared.")
			return nil
		case chatHistory || len(args) == 0:
			msgs, err := appInstance.ChatService.History(ctx)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Fprintln(out, color.New(color.Bold).Sprint("Willkommen bei TWM"))
				fmt.Fprintln(out, "Stellen Sie eine Frage oder beschreiben Sie, was Sie erstellen möchten.")
				return nil
			}
			renderChat(out, msgs)
			return nil
		}

		reply, err := appInstance.ChatService.Send(ctx, clix.JoinArgs(args))
		if err != nil {
			return err
		}
		renderChat(out, []models.ChatMessage{*reply})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatHistory, "history", false, "Print the conversation")
	chatCmd.Flags().BoolVar(&chatClear, "clear", false, "Delete the conversation")
}
