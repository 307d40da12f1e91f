package admin

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloo-solutions/krishisahay/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func query(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/query", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestBuildRouter_DefaultTableWithoutAPIKey(t *testing.T) {
	cfg := &config.Config{OpenAIModel: "gpt-4o-mini", CORSOrigins: []string{"*"}}

	router, err := buildRouter(cfg, zap.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)

	w := query(t, router, `{"question":"wheat rust problem"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"offline"`)

	w = query(t, router, `{"question":"how to irrigate sugarcane"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, w.Body.String())
}

func TestBuildRouter_CustomTableAndGateway(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"X"}}]}`))
	}))
	defer gateway.Close()

	file := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(file, []byte("records:\n  - keywords: [sugarcane]\n    answer: cane\n"), 0o600))

	cfg := &config.Config{
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: gateway.URL + "/v1",
		KnowledgeFile: file,
	}

	router, err := buildRouter(cfg, zap.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)

	w := query(t, router, `{"question":"how to irrigate sugarcane"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"source":"offline","answer":"cane"}`, w.Body.String())

	w = query(t, router, `{"question":"wheat rust problem"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"source":"ai","answer":"X"}`, w.Body.String())
}

func TestBuildRouter_BadKnowledgeFile(t *testing.T) {
	cfg := &config.Config{KnowledgeFile: filepath.Join(t.TempDir(), "missing.yaml")}

	router, err := buildRouter(cfg, zap.NewNop(), prometheus.NewRegistry())
	assert.Error(t, err)
	assert.Nil(t, router)
	assert.Contains(t, err.Error(), "failed to load knowledge base")
}
