package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"twm/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change provider keys and mock mode",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings with API keys masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		st, err := appInstance.SettingsService.Masked(cmd.Context())
		if err != nil {
			return err
		}
		renderSettings(cmd.OutOrStdout(), st)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <name> [value]",
	Short: "Set one setting, e.g. 'settings set mockMode false'",
	Long: `Sets one setting by its name: openaiKey, anthropicKey, openrouterKey,
elevenlabsKey, deepgramKey, shotstackKey or mockMode. When value is omitted it
is read from the TWM_SETTING_VALUE environment variable so keys stay out of
shell history.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		value := os.Getenv("TWM_SETTING_VALUE")
		if len(args) == 2 {
			value = args[1]
		}
		if _, err := appInstance.SettingsService.Set(cmd.Context(), args[0], value); err != nil {
			return err
		}
		st, err := appInstance.SettingsService.Masked(cmd.Context())
		if err != nil {
			return err
		}
		renderSettings(cmd.OutOrStdout(), st)
		return nil
	},
}

func renderSettings(w io.Writer, st models.Settings) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"openaiKey", st.OpenAIKey},
		{"anthropicKey", st.AnthropicKey},
		{"openrouterKey", st.OpenRouterKey},
		{"elevenlabsKey", st.ElevenLabsKey},
		{"deepgramKey", st.DeepgramKey},
		{"shotstackKey", st.ShotstackKey},
		{"mockMode", strconv.FormatBool(st.MockMode)},
	})
	table.Render()
	if !st.MockMode {
		fmt.Fprintf(w, "%s mock mode is off, but only the mock generator is available\n", warnMark())
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
