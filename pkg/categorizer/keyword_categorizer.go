package categorizer

import (
	"context"
	"strings"
)

type keywordRule struct {
	category Category
	keywords []string
}

// rules are checked in order; the first rule with a matching keyword wins.
var rules = []keywordRule{
	{CategoryTable, []string{"tabelle", "daten", "vergleich"}},
	{CategoryPresentation, []string{"präsentation", "folien", "slides"}},
	{CategoryPodcast, []string{"podcast", "audio", "sprechen"}},
	{CategoryImage, []string{"bild", "foto", "grafik"}},
	{CategoryVideo, []string{"video", "film", "animation"}},
}

// Classify maps a prompt to a task category by keyword matching.
// Prompts that match no keyword set are text tasks.
func Classify(prompt string) Category {
	c, _ := match(prompt)
	return c
}

// Keywords returns the keyword set for a category. Text has none.
func Keywords(c Category) []string {
	for _, r := range rules {
		if r.category == c {
			out := make([]string, len(r.keywords))
			copy(out, r.keywords)
			return out
		}
	}
	return nil
}

func match(prompt string) (Category, string) {
	lower := strings.ToLower(prompt)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category, kw
			}
		}
	}
	return CategoryText, ""
}

// KeywordCategorizer implements ContentCategorizer with the fixed keyword rules.
type KeywordCategorizer struct{}

// NewKeywordCategorizer returns the keyword based categorizer.
func NewKeywordCategorizer() *KeywordCategorizer {
	return &KeywordCategorizer{}
}

func (k *KeywordCategorizer) Categorize(ctx context.Context, req CategorizationRequest) (CategorizationResult, error) {
	c, kw := match(req.Prompt)
	return CategorizationResult{Category: c, Keyword: kw}, nil
}

var _ ContentCategorizer = (*KeywordCategorizer)(nil)
