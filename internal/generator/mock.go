package generator

import (
	"fmt"

	"twm/pkg/categorizer"
)

const (
	// DemoImageURL is the placeholder returned for image generation.
	DemoImageURL = "https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg?auto=compress&cs=tinysrgb&w=800"
	// DemoVideoURL is the placeholder returned for video generation.
	DemoVideoURL = "demo-video-url"
	// DemoAudioURL is the placeholder audio reference attached to generated podcasts.
	DemoAudioURL = "demo-audio-url"
)

var tableHeaders = []string{"Name", "Kategorie", "Wert", "Status"}

var tableRows = [][]string{
	{"Produkt A", "Kategorie 1", "€99", "Verfügbar"},
	{"Produkt B", "Kategorie 2", "€149", "Ausverkauft"},
	{"Produkt C", "Kategorie 1", "€79", "Verfügbar"},
	{"Produkt D", "Kategorie 3", "€199", "Vorbestellung"},
}

var followUpQuestions = []string{
	"Kannst du das weiter ausführen?",
	"Welche Alternativen gibt es?",
	"Wie kann ich das praktisch umsetzen?",
}

// MockContent builds the placeholder payload for a category with the prompt
// embedded verbatim. Every call allocates fresh slices, so callers may
// modify the result.
func MockContent(c categorizer.Category, prompt string) (Payload, error) {
	switch c {
	case categorizer.CategoryText:
		return TextPayload{Content: mockText(prompt)}, nil
	case categorizer.CategoryTable:
		return TablePayload{Headers: cloneRow(tableHeaders), Rows: cloneRows(tableRows)}, nil
	case categorizer.CategoryPresentation:
		return PresentationPayload{
			Title: prompt,
			Slides: []Slide{
				{Title: "Einführung", Content: fmt.Sprintf("# %s\n\nWillkommen zu dieser Präsentation über \"%s\"", prompt, prompt)},
				{Title: "Hauptpunkte", Content: "## Wichtige Aspekte\n\n- Punkt 1\n- Punkt 2\n- Punkt 3"},
				{Title: "Details", Content: "## Detaillierte Analyse\n\nHier finden Sie eine ausführliche Betrachtung des Themas."},
				{Title: "Fazit", Content: "## Zusammenfassung\n\nDie wichtigsten Erkenntnisse und nächste Schritte."},
			},
		}, nil
	case categorizer.CategoryPodcast:
		return PodcastPayload{
			Title:    prompt,
			Script:   fmt.Sprintf("Willkommen zu unserem Podcast über \"%s\". In dieser Episode werden wir verschiedene Aspekte dieses faszinierenden Themas erkunden...", prompt),
			AudioURL: DemoAudioURL,
		}, nil
	case categorizer.CategoryImage:
		return ImagePayload{
			ImageURL:    DemoImageURL,
			Prompt:      prompt,
			Description: fmt.Sprintf("Ein KI-generiertes Bild basierend auf: \"%s\"", prompt),
		}, nil
	case categorizer.CategoryVideo:
		return VideoPayload{
			VideoURL:    DemoVideoURL,
			Prompt:      prompt,
			Description: fmt.Sprintf("Ein KI-generiertes Video basierend auf: \"%s\"", prompt),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", categorizer.ErrUnknownCategory, c)
}

// FollowUpQuestions returns the fixed follow-up suggestions shown after a chat answer.
func FollowUpQuestions() []string {
	return cloneRow(followUpQuestions)
}

func mockText(prompt string) string {
	return fmt.Sprintf("# %s\n\n", prompt) +
		fmt.Sprintf("Dies ist ein generierter Text basierend auf Ihrem Prompt: \"%s\"\n\n", prompt) +
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.\n\n" +
		"## Hauptpunkte\n\n" +
		"- Punkt 1: Wichtige Information\n" +
		"- Punkt 2: Weitere Details\n" +
		"- Punkt 3: Zusammenfassung\n\n" +
		"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat."
}

func cloneRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = cloneRow(r)
	}
	return out
}
