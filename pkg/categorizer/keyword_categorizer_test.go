package categorizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TableKeywords(t *testing.T) {
	prompts := []string{
		"Erstelle eine Tabelle mit Preisen",
		"Zeig mir DATEN zu Umsätzen",
		"Ein Vergleich von drei Laptops",
		"tabelle",
	}
	for _, p := range prompts {
		assert.Equal(t, CategoryTable, Classify(p), "prompt %q", p)
	}
}

func TestClassify_EachCategory(t *testing.T) {
	testCases := []struct {
		name     string
		prompt   string
		expected Category
	}{
		{"Presentation umlaut", "Mach eine Präsentation über Go", CategoryPresentation},
		{"Presentation folien", "10 Folien zum Thema KI", CategoryPresentation},
		{"Presentation english", "Some SLIDES please", CategoryPresentation},
		{"Podcast", "Ein Podcast über Kaffee", CategoryPodcast},
		{"Podcast audio", "Audio Zusammenfassung", CategoryPodcast},
		{"Podcast sprechen", "Kannst du darüber sprechen?", CategoryPodcast},
		{"Image", "Ein Bild von einem Hund", CategoryImage},
		{"Image foto", "Foto eines Sonnenuntergangs", CategoryImage},
		{"Image grafik", "Eine Grafik zur Erklärung", CategoryImage},
		{"Video", "Ein kurzes Video", CategoryVideo},
		{"Video film", "Ein Film über Berge", CategoryVideo},
		{"Video animation", "Eine Animation vom Sonnensystem", CategoryVideo},
		{"Fallback", "Schreibe einen Blogartikel über Go", CategoryText},
		{"Empty", "", CategoryText},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.prompt))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	assert.Equal(t, CategoryTable, Classify("Ein Video mit einer Tabelle"))
	assert.Equal(t, CategoryPresentation, Classify("Folien mit einem Bild"))
	assert.Equal(t, CategoryPodcast, Classify("Audio zum Film"))
	assert.Equal(t, CategoryImage, Classify("Foto für die Animation"))
}

func TestClassify_SubstringMatch(t *testing.T) {
	// "Bildschirm" contains "bild"
	assert.Equal(t, CategoryImage, Classify("Bildschirm kaputt"))
}

func TestKeywordCategorizer_Categorize(t *testing.T) {
	c := NewKeywordCategorizer()

	res, err := c.Categorize(context.Background(), CategorizationRequest{Prompt: "Bitte ein VERGLEICH"})
	require.NoError(t, err)
	assert.Equal(t, CategoryTable, res.Category)
	assert.Equal(t, "vergleich", res.Keyword)

	res, err = c.Categorize(context.Background(), CategorizationRequest{Prompt: "Hallo"})
	require.NoError(t, err)
	assert.Equal(t, CategoryText, res.Category)
	assert.Empty(t, res.Keyword)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Table ")
	require.NoError(t, err)
	assert.Equal(t, CategoryTable, c)

	_, err = ParseCategory("document")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoriesAndKeywords(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryTable, cats[0])
	assert.Equal(t, CategoryText, cats[5])
	for _, c := range cats {
		assert.True(t, c.Valid())
	}

	assert.Equal(t, []string{"video", "film", "animation"}, Keywords(CategoryVideo))
	assert.Nil(t, Keywords(CategoryText))
}
