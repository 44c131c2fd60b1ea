package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		apiKey:  "test-key",
		baseURL: baseURL,
		model:   "test-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.NotEmpty(t, req.Messages)

		json.NewEncoder(w).Encode(ChatResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: content}}},
		})
	}))
}

func TestChat(t *testing.T) {
	srv := chatServer(t, "hello there")
	defer srv.Close()

	got, err := testClient(srv.URL).Chat([]Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)
}

func TestChat_MissingAPIKey(t *testing.T) {
	c := testClient("http://localhost:0")
	c.apiKey = ""

	_, err := c.Chat([]Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestChat_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Chat([]Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Chat([]Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestNutritionFacts(t *testing.T) {
	srv := chatServer(t, `Here you go: {"calories":120,"carbs":25,"protein":3,"fat":0.5,"fiber":1.2,"glycemic_index":54}`)
	defer srv.Close()

	facts, err := testClient(srv.URL).NutritionFacts("poha")
	require.NoError(t, err)

	assert.Equal(t, 120.0, facts.Calories)
	assert.Equal(t, 25.0, facts.Carbs)
	assert.Equal(t, 3.0, facts.Protein)
	assert.Equal(t, 0.5, facts.Fat)
	assert.Equal(t, 1.2, facts.Fiber)
	require.NotNil(t, facts.GlycemicIndex)
	assert.Equal(t, 54.0, *facts.GlycemicIndex)
}

func TestNutritionFacts_NullGlycemicIndex(t *testing.T) {
	srv := chatServer(t, `{"calories":50,"carbs":10,"protein":1,"fat":0,"fiber":0.5,"glycemic_index":null}`)
	defer srv.Close()

	facts, err := testClient(srv.URL).NutritionFacts("cucumber")
	require.NoError(t, err)
	assert.Nil(t, facts.GlycemicIndex)
}

func TestNutritionFacts_UnparseableAnswerYieldsZeros(t *testing.T) {
	srv := chatServer(t, "Sorry, I cannot help with that.")
	defer srv.Close()

	facts, err := testClient(srv.URL).NutritionFacts("mystery dish")
	require.NoError(t, err)
	assert.Equal(t, &Nutrition{}, facts)
}

func TestNutritionFacts_MalformedJSONYieldsZeros(t *testing.T) {
	srv := chatServer(t, `{"calories": not-a-number}`)
	defer srv.Close()

	facts, err := testClient(srv.URL).NutritionFacts("mystery dish")
	require.NoError(t, err)
	assert.Equal(t, &Nutrition{}, facts)
}

func TestSimplifyMedicalText(t *testing.T) {
	srv := chatServer(t, "Your sugar levels are slightly high.")
	defer srv.Close()

	got, err := testClient(srv.URL).SimplifyMedicalText("HbA1c 7.2%")
	require.NoError(t, err)
	assert.Equal(t, "Your sugar levels are slightly high.", got)
}
