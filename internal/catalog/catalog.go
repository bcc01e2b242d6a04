// Package catalog lists the AI models offered in the UI and the task types they serve.
package catalog

import "twm/pkg/categorizer"

type AIModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
}

type TaskType struct {
	ID          categorizer.Category `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Models      []AIModel            `json:"models"`
	// Keywords are the prompt words that select this task; empty for text.
	Keywords []string `json:"keywords"`
}

var models = []AIModel{
	{ID: "gpt-4", Name: "GPT-4", Provider: "OpenAI", Description: "Fortschrittlichstes Sprachmodell für komplexe Aufgaben"},
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: "OpenAI", Description: "Schnell und effizient für die meisten Aufgaben"},
	{ID: "claude-3-opus", Name: "Claude 3 Opus", Provider: "Anthropic", Description: "Exzellent für kreative und analytische Aufgaben"},
	{ID: "claude-3-sonnet", Name: "Claude 3 Sonnet", Provider: "Anthropic", Description: "Ausgewogen zwischen Geschwindigkeit und Qualität"},
	{ID: "llama-3-70b", Name: "Llama 3 70B", Provider: "OpenRouter", Description: "Open-Source-Modell mit starker Leistung"},
}

var taskTypes = []TaskType{
	{ID: categorizer.CategoryText, Name: "Text erstellen", Description: "Artikel, Blogs, Geschichten und andere Texte", Icon: "FileText", Models: pick(0, 1, 2)},
	{ID: categorizer.CategoryTable, Name: "Tabelle erstellen", Description: "Datenstrukturen und Vergleichstabellen", Icon: "Table", Models: pick(0, 1, 2)},
	{ID: categorizer.CategoryPresentation, Name: "Präsentation", Description: "Folien und Präsentationen erstellen", Icon: "Presentation", Models: pick(0, 1, 2)},
	{ID: categorizer.CategoryPodcast, Name: "Podcast", Description: "Audio-Inhalte und Skripte generieren", Icon: "Mic", Models: pick(0, 2)},
	{ID: categorizer.CategoryImage, Name: "Bild generieren", Description: "KI-generierte Bilder und Grafiken", Icon: "Image", Models: pick(4)},
	{ID: categorizer.CategoryVideo, Name: "Video erstellen", Description: "Kurze Videos und Animationen", Icon: "Video", Models: pick(0)},
}

func pick(idx ...int) []AIModel {
	out := make([]AIModel, 0, len(idx))
	for _, i := range idx {
		out = append(out, models[i])
	}
	return out
}

// Models returns every known model.
func Models() []AIModel {
	return append([]AIModel(nil), models...)
}

// TaskTypes returns the task type table.
func TaskTypes() []TaskType {
	out := make([]TaskType, len(taskTypes))
	for i, t := range taskTypes {
		t.Models = append([]AIModel(nil), t.Models...)
		t.Keywords = categorizer.Keywords(t.ID)
		if t.Keywords == nil {
			t.Keywords = []string{}
		}
		out[i] = t
	}
	return out
}

// ModelsForTask returns the models offered for a task. Unknown task ids get
// the first three models.
func ModelsForTask(taskID string) []AIModel {
	for _, t := range taskTypes {
		if string(t.ID) == taskID {
			return append([]AIModel(nil), t.Models...)
		}
	}
	return append([]AIModel(nil), models[:3]...)
}

// DefaultModel is the first model offered for a category.
func DefaultModel(c categorizer.Category) string {
	return ModelsForTask(string(c))[0].ID
}

// FindModel looks up a model by id.
func FindModel(id string) (AIModel, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return AIModel{}, false
}
