package board

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisperboard/internal/config"
	"whisperboard/internal/logger"
	"whisperboard/internal/recordstore"
)

func newTestRouter(store Store, cfg config.StoreConfig, production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	svc := NewService(store, cfg, production, logger.NopLogger())
	handler := NewHandler(svc, logger.NopLogger())
	handler.RegisterRoutes(router)

	return router
}

func TestCreateMessageInvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeStore{}, storeConfig(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader("{not json"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid JSON", body["error"])
}

func TestCreateMessageValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "empty content",
			body:      `{"content":"   ","fingerprint":"fp1","username":"u"}`,
			wantField: "content",
		},
		{
			name:      "missing fingerprint",
			body:      `{"content":"hello","username":"u"}`,
			wantField: "fingerprint",
		},
		{
			name:      "missing username",
			body:      `{"content":"hello","fingerprint":"fp1"}`,
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeStore{}, storeConfig(), false)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			errMsg, _ := body["error"].(string)
			assert.Contains(t, errMsg, tt.wantField)
		})
	}
}

func TestCreateMessageSuccess(t *testing.T) {
	router := newTestRouter(&fakeStore{}, storeConfig(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages",
		strings.NewReader(`{"content":"hello","fingerprint":"fp1","username":"calm-cloud-42"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body CreateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
}

func TestMisconfiguredReturns500(t *testing.T) {
	router := newTestRouter(&fakeStore{}, config.StoreConfig{}, false)

	for _, tc := range []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPost, body: `{"content":"hello","fingerprint":"fp1","username":"u"}`},
		// Misconfiguration is checked before body parsing.
		{method: http.MethodPost, body: `{not json`},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, "/messages", strings.NewReader(tc.body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		errMsg, _ := body["error"].(string)
		assert.Contains(t, errMsg, "misconfigured")
	}
}

func TestListMessagesOrdering(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{records: []recordstore.DecodedRecord{
		fullRecord("rec-2", "newer", t2),
		fullRecord("rec-1", "older", t1),
	}}
	router := newTestRouter(store, storeConfig(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "newer", body.Messages[0].Content)
	assert.Equal(t, "older", body.Messages[1].Content)
}

func TestListMessagesEmptyArray(t *testing.T) {
	router := newTestRouter(&fakeStore{}, storeConfig(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[]}`, w.Body.String())
}

func TestStoreFailureResponse(t *testing.T) {
	store := &fakeStore{queryErr: &recordstore.StoreError{Status: 500, Code: "internal", Message: "boom"}}
	router := newTestRouter(store, storeConfig(), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch messages", body["error"])
	// Production responses never carry diagnostics.
	assert.NotContains(t, body, "details")
}

// stubStoreServer is an in-memory stand-in for the external record
// store, speaking just enough of its wire protocol for end-to-end
// exercise through the real client.
type stubStoreServer struct {
	mu      sync.Mutex
	records []recordstore.Record
	nextID  int
}

func (s *stubStoreServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/pages", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Properties recordstore.Properties `json:"properties"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.nextID++
		rec := recordstore.Record{
			ID:          fmt.Sprintf("rec-%d", s.nextID),
			URL:         fmt.Sprintf("https://store.example/rec-%d", s.nextID),
			CreatedTime: time.Now().UTC(),
			Properties:  req.Properties,
		}
		s.records = append(s.records, rec)
		s.mu.Unlock()

		json.NewEncoder(w).Encode(map[string]string{"id": rec.ID, "url": rec.URL})
	})
	mux.HandleFunc("/v1/databases/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		results := make([]recordstore.Record, len(s.records))
		copy(results, s.records)
		s.mu.Unlock()

		sort.Slice(results, func(i, j int) bool {
			return results[i].CreatedTime.After(results[j].CreatedTime)
		})

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results":  results,
			"has_more": false,
		})
	})
	return mux
}

func TestEndToEndPostThenGet(t *testing.T) {
	stub := &stubStoreServer{}
	storeServer := httptest.NewServer(stub.handler())
	defer storeServer.Close()

	client := recordstore.NewClient(storeServer.URL, "secret", 5*time.Second)
	cfg := config.StoreConfig{BaseURL: storeServer.URL, APIKey: "secret", CollectionID: "coll-1"}
	router := newTestRouter(client, cfg, false)

	postTime := time.Now().UTC()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/messages",
		strings.NewReader(`{"content":"hello from e2e","fingerprint":"fp1","username":"calm-cloud-42"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/messages", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var feed ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Messages, 1)

	msg := feed.Messages[0]
	assert.Equal(t, created.ID, msg.ID)
	assert.Equal(t, "hello from e2e", msg.Content)
	assert.Equal(t, "calm-cloud-42", msg.Username)
	assert.False(t, msg.Timestamp.Before(postTime.Truncate(time.Second)))
}
