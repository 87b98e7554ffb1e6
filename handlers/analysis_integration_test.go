package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"zodiac/services/analysis"
	ai "zodiac/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedEstimator int

func (n fixedEstimator) Estimate(string, string) (int, error) { return int(n), nil }

// providerStub is an OpenAI-compatible endpoint that fails any prompt
// mentioning failOn and records the model used per request.
func providerStub(t *testing.T, failOn string) (*httptest.Server, *sync.Map) {
	t.Helper()
	var models sync.Map
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if !assert.NoError(t, json.Unmarshal(body, &req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		prompt := req.Messages[0].Content

		for _, s := range analysis.DefaultSections() {
			if strings.Contains(prompt, "**"+string(s)+"**") {
				models.Store(string(s), req.Model)
			}
		}
		if failOn != "" && strings.Contains(prompt, "**"+failOn+"**") {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "\n## Reading\n"}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &models
}

func TestZodiacAnalysis_EndToEnd(t *testing.T) {
	srv, models := providerStub(t, "Gia đình")

	svc := analysis.NewDefaultAnalysisService(
		ai.NewOpenAIClient(srv.Client(), "key", srv.URL),
		fixedEstimator(400),
		analysis.NewPolicy("gpt-3.5-turbo-1106", "gpt-4-1106-preview", analysis.DefaultHighDepthSections()),
		analysis.DefaultSections(),
		nil,
	)
	h := NewAnalysisHandler(svc)

	w := post(h.ZodiacAnalysisHandler, `{"name":"Lan","birth_date":"1990-05-01","gender":"female","language":"vi","detail_level":"deep"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 10)

	assert.Equal(t, "Đã xảy ra lỗi khi phân tích mục Gia đình.", got["Gia đình"])
	assert.Equal(t, "## Reading", got["Tình yêu"])

	personality, _ := models.Load("Tính cách")
	love, _ := models.Load("Tình yêu")
	assert.Equal(t, "gpt-4-1106-preview", personality)
	assert.Equal(t, "gpt-3.5-turbo-1106", love)
}
