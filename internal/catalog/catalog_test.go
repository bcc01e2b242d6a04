package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twm/pkg/categorizer"
)

func ids(ms []AIModel) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestModelsForTask(t *testing.T) {
	assert.Equal(t, []string{"gpt-4", "gpt-3.5-turbo", "claude-3-opus"}, ids(ModelsForTask("text")))
	assert.Equal(t, []string{"gpt-4", "claude-3-opus"}, ids(ModelsForTask("podcast")))
	assert.Equal(t, []string{"llama-3-70b"}, ids(ModelsForTask("image")))
	assert.Equal(t, []string{"gpt-4"}, ids(ModelsForTask("video")))
	assert.Equal(t, []string{"gpt-4", "gpt-3.5-turbo", "claude-3-opus"}, ids(ModelsForTask("unknown")))
}

func TestTaskTypes_CoverEveryCategory(t *testing.T) {
	tt := TaskTypes()
	require.Len(t, tt, len(categorizer.Categories()))
	seen := map[categorizer.Category]bool{}
	for _, task := range tt {
		seen[task.ID] = true
		assert.NotEmpty(t, task.Models, "task %s", task.ID)
		assert.Equal(t, task.ID == categorizer.CategoryText, len(task.Keywords) == 0, "keywords of %s", task.ID)
		for _, kw := range task.Keywords {
			assert.Equal(t, task.ID, categorizer.Classify(kw), "keyword %q", kw)
		}
	}
	for _, c := range categorizer.Categories() {
		assert.True(t, seen[c], "missing task type %s", c)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	m := ModelsForTask("text")
	m[0].ID = "changed"
	assert.Equal(t, "gpt-4", ModelsForTask("text")[0].ID)

	all := Models()
	all[0].Name = "changed"
	assert.Equal(t, "GPT-4", Models()[0].Name)
}

func TestDefaultAndFindModel(t *testing.T) {
	assert.Equal(t, "llama-3-70b", DefaultModel(categorizer.CategoryImage))
	assert.Equal(t, "gpt-4", DefaultModel(categorizer.CategoryTable))

	m, ok := FindModel("claude-3-sonnet")
	require.True(t, ok)
	assert.Equal(t, "Anthropic", m.Provider)

	_, ok = FindModel("sdxl")
	assert.False(t, ok)
}
