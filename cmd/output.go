package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/redis/go-redis/v9"

	"twm/internal/config"
	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/preview"
)

func okMark() string   { return color.GreenString("OK") }
func warnMark() string { return color.YellowString("WARN") }
func failMark() string { return color.RedString("FAIL") }

func pingBroker(ctx context.Context, cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func renderLibrary(w io.Writer, items []*models.GeneratedContent) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Type", "Title", "Created", "Preview"})
	table.SetAutoWrapText(false)
	table.SetBorder(true)
	for _, it := range items {
		table.Append([]string{
			it.ID,
			string(it.Type),
			it.Title,
			it.CreatedAt.Local().Format("2006-01-02 15:04"),
			preview.Snippet(it.Content, 48),
		})
	}
	table.Render()
}

// renderContent prints one library entry in a form suited to its type.
func renderContent(w io.Writer, c *models.GeneratedContent) {
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s\n", c.Title)
	fmt.Fprintf(w, "%s  %s  %s", color.CyanString(string(c.Type)), c.ID, c.CreatedAt.Local().Format("2006-01-02 15:04"))
	if c.Model != "" {
		fmt.Fprintf(w, "  %s", c.Model)
	}
	fmt.Fprint(w, "\n\n")

	switch p := c.Content.(type) {
	case generator.TextPayload:
		fmt.Fprintln(w, p.Content)
	case generator.DocumentPayload:
		fmt.Fprintln(w, preview.PlainText(p.Content))
	case generator.TablePayload:
		table := tablewriter.NewWriter(w)
		table.SetHeader(p.Headers)
		table.SetRowLine(true)
		table.AppendBulk(p.Rows)
		table.Render()
	case generator.PresentationPayload:
		for i, s := range p.Slides {
			bold.Fprintf(w, "Folie %d: %s\n", i+1, s.Title)
			fmt.Fprintf(w, "%s\n\n", s.Content)
		}
	case generator.PodcastPayload:
		fmt.Fprintln(w, p.Script)
		if p.AudioURL != "" {
			fmt.Fprintf(w, "\nAudio: %s\n", abbreviate(p.AudioURL, 60))
		}
	case generator.ImagePayload:
		fmt.Fprintf(w, "%s\nBild: %s\n", p.Description, p.ImageURL)
	case generator.VideoPayload:
		fmt.Fprintf(w, "%s\nVideo: %s\n", p.Description, p.VideoURL)
	}
}

func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func renderChat(w io.Writer, msgs []models.ChatMessage) {
	for _, m := range msgs {
		who := color.BlueString("Sie")
		if m.Role == models.ChatRoleAssistant {
			who = color.GreenString("TWM")
		}
		fmt.Fprintf(w, "%s: %s\n", who, strings.TrimSpace(m.Content))
		for _, q := range m.FollowUpQuestions {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString("?"), q)
		}
	}
}
