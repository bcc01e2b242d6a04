package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twm/internal/app"
	"twm/internal/config"
	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/services"
	"twm/internal/store/kv"
)

func newTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Storage.Driver = "memory"
	a, err := app.New(cfg, kv.NewMemoryStore())
	require.NoError(t, err)
	router := gin.New()
	RegisterRoutes(router, NewAPIHandler(a))
	return router, a
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.([]byte); ok {
			buf.Write(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func listAll() services.ListContentParams { return services.ListContentParams{} }

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := decode(t, w)
	e, ok := env["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %s", w.Body.String())
	return e["code"].(string)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestClassifyHandler(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/classify", gin.H{"prompt": "Zeig mir einen Vergleich"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "table", body["category"])
	assert.Equal(t, "vergleich", body["keyword"])

	w = do(t, router, http.MethodPost, "/api/v1/classify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, w))
}

func TestGenerateHandler(t *testing.T) {
	router, a := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "Erstelle Folien über Go"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "presentation", data["type"])
	content := data["content"].(map[string]any)
	assert.NotEmpty(t, content["slides"])

	_, total, err := a.LibraryService.List(context.Background(), listAll())
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	w = do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "x", "category": "image", "save": false})
	require.Equal(t, http.StatusCreated, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, generator.DemoImageURL, data["content"].(map[string]any)["imageUrl"])
	_, total, err = a.LibraryService.List(context.Background(), listAll())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestGenerateHandler_Errors(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "x", "category": "audio"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "x", "model": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "x", "async": true})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unavailable", errorCode(t, w))
}

func TestFollowUpsHandler(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodPost, "/api/v1/followups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	qs := decode(t, w)["questions"].([]any)
	assert.Len(t, qs, len(generator.FollowUpQuestions()))
}

func TestContentLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/documents", gin.H{"title": "", "content": "<p>Erster Satz. Zweiter.</p>"})
	require.Equal(t, http.StatusCreated, w.Code)
	doc := decode(t, w)["data"].(map[string]any)
	id := doc["id"].(string)
	assert.Equal(t, "Unbenanntes Dokument", doc["title"])

	do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "Tabelle bitte"})

	w = do(t, router, http.MethodGet, "/api/v1/content", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.EqualValues(t, 2, list["total"])
	items := list["items"].([]any)
	assert.Equal(t, "table", items[0].(map[string]any)["type"])
	assert.Equal(t, "Erster Satz.", items[1].(map[string]any)["preview"])

	w = do(t, router, http.MethodGet, "/api/v1/content?type=document", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])

	w = do(t, router, http.MethodGet, "/api/v1/content?type=audio", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, router, http.MethodGet, "/api/v1/content?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/content/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "document", decode(t, w)["data"].(map[string]any)["type"])

	w = do(t, router, http.MethodDelete, "/api/v1/content/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/content/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w))

	w = do(t, router, http.MethodDelete, "/api/v1/content/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPodcastAudioHandler(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "Ein Podcast über Wale"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]any)["id"].(string)

	w = do(t, router, http.MethodPost, "/api/v1/content/"+id+"/audio", nil)
	require.Equal(t, http.StatusOK, w.Code)
	content := decode(t, w)["data"].(map[string]any)["content"].(map[string]any)
	assert.Equal(t, generator.DemoSpeechDataURL, content["audioUrl"])

	w = do(t, router, http.MethodPost, "/api/v1/content/"+id+"/audio?async=true", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/generate", gin.H{"prompt": "Hallo"})
	textID := decode(t, w)["data"].(map[string]any)["id"].(string)
	w = do(t, router, http.MethodPost, "/api/v1/content/"+textID+"/audio", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/chat", gin.H{"message": "Wie geht es?"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "assistant", reply["role"])
	assert.NotEmpty(t, reply["followUpQuestions"])

	w = do(t, router, http.MethodGet, "/api/v1/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 2)

	w = do(t, router, http.MethodPost, "/api/v1/chat", gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodDelete, "/api/v1/chat", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, router, http.MethodGet, "/api/v1/chat", nil)
	assert.Empty(t, decode(t, w)["items"])
}

func TestSettingsHandlers(t *testing.T) {
	router, a := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["data"].(map[string]any)["mockMode"])

	w = do(t, router, http.MethodPut, "/api/v1/settings", gin.H{"openaiKey": "sk-secret-9876", "mockMode": false})
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "••••••••••9876", data["openaiKey"])
	assert.Equal(t, false, data["mockMode"])

	// Sending the masked value back keeps the secret.
	w = do(t, router, http.MethodPut, "/api/v1/settings", gin.H{"openaiKey": data["openaiKey"], "mockMode": true})
	require.Equal(t, http.StatusOK, w.Code)
	st, err := a.SettingsService.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-secret-9876", st.OpenAIKey)
	assert.True(t, st.MockMode)

	w = do(t, router, http.MethodPut, "/api/v1/settings", []byte("{"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandlers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 5)

	w = do(t, router, http.MethodGet, "/api/v1/models?task=image", nil)
	items := decode(t, w)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "llama-3-70b", items[0].(map[string]any)["id"])

	w = do(t, router, http.MethodGet, "/api/v1/models?task=unknown", nil)
	assert.Len(t, decode(t, w)["items"], 3)

	w = do(t, router, http.MethodGet, "/api/v1/tasks", nil)
	assert.Len(t, decode(t, w)["items"], 6)
}

func TestSpeechHandlers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/speech/transcribe", []byte{0x52, 0x49, 0x46, 0x46})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, generator.DemoTranscript, decode(t, w)["text"])

	w = do(t, router, http.MethodPost, "/api/v1/speech/transcribe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/speech/synthesize", gin.H{"text": "Hallo"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, generator.DemoSpeechDataURL, decode(t, w)["audioUrl"])
}

func TestJobHandler(t *testing.T) {
	router, a := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", errorCode(t, w))

	ctx := context.Background()
	require.NoError(t, a.JobStore.RecordJob(ctx, &models.Job{ID: "task-1", TaskType: "content:generate", ContentID: "c1", Status: models.JobStatusEnqueued}))
	require.NoError(t, a.JobStore.UpdateJobStatus(ctx, "task-1", models.JobStatusCompleted, ""))

	w = do(t, router, http.MethodGet, "/api/v1/jobs/task-1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "completed", data["status"])
	assert.Equal(t, "c1", data["contentId"])
}
