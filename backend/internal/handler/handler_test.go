package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/filestate/backend/internal/filestore"
	"github.com/itchan-dev/filestate/shared/api"
	"github.com/itchan-dev/filestate/shared/config"
	"github.com/itchan-dev/filestate/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock for FileStore ---

type MockFileStore struct {
	MockDispatch func(ctx context.Context, e filestore.Event) bool
	MockState    func() filestore.State
	dispatched   []filestore.Event
}

func (m *MockFileStore) Dispatch(ctx context.Context, e filestore.Event) bool {
	m.dispatched = append(m.dispatched, e)
	if m.MockDispatch != nil {
		return m.MockDispatch(ctx, e)
	}
	return true // Default behavior
}

func (m *MockFileStore) State() filestore.State {
	if m.MockState != nil {
		return m.MockState()
	}
	return filestore.InitialState()
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{MaxEventBytes: 1 << 10}}
}

func newRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/v1/events", h.PostEvent)
	r.Get("/v1/files/{fileId}", h.GetFile)
	r.Get("/v1/posts/{postId}/files", h.GetPostFiles)
	r.Get("/v1/public_link", h.GetPublicLink)
	r.Get("/v1/state", h.GetState)
	return r
}

func TestPostEvent(t *testing.T) {
	t.Run("dispatches decoded event", func(t *testing.T) {
		store := &MockFileStore{}
		router := newRouter(New(store, testConfig()))
		body := []byte(`{"type":"POST_DELETED","data":{"id":"p1","file_ids":["f1"]}}`)

		req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusAccepted, rr.Code)
		require.Len(t, store.dispatched, 1)
		assert.Equal(t, filestore.PostDeleted{Post: domain.DeletedPost{Id: "p1", FileIds: domain.FileIds{"f1"}}}, store.dispatched[0])

		var resp api.EventAcceptedResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "POST_DELETED", resp.Type)
		assert.True(t, resp.Changed)
		assert.NotEmpty(t, resp.EventId)
	})

	t.Run("unknown type is accepted unchanged", func(t *testing.T) {
		store := &MockFileStore{
			MockDispatch: func(ctx context.Context, e filestore.Event) bool { return false },
		}
		router := newRouter(New(store, testConfig()))

		req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{"type":"RECEIVED_CHANNEL"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusAccepted, rr.Code)
		assert.Equal(t, filestore.UnknownEvent{Tag: "RECEIVED_CHANNEL"}, store.dispatched[0])
		assert.Contains(t, rr.Body.String(), `"changed":false`)
	})

	tests := []struct {
		name string
		body string
		code int
	}{
		{"invalid json", `{"type":`, http.StatusBadRequest},
		{"missing type", `{"data":[]}`, http.StatusBadRequest},
		{"malformed payload", `{"type":"RECEIVED_UPLOAD_FILES","data":{"id":"f1"}}`, http.StatusBadRequest},
		{"too large", `{"type":"RECEIVED_UPLOAD_FILES","data":[{"id":"` + strings.Repeat("x", 2048) + `"}]}`, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockFileStore{}
			router := newRouter(New(store, testConfig()))

			req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.code, rr.Code)
			assert.Empty(t, store.dispatched)
		})
	}
}

func stateWithFiles() filestore.State {
	return filestore.State{
		Files: filestore.FilesById{
			"f1": {Id: "f1", PostId: "p1", Name: "a.png"},
			"f2": {Id: "f2", PostId: "p1", Name: "b.png"},
		},
		FileIdsByPostId: filestore.FileIdsByPostId{"p1": {"f2", "f1"}},
		FilePublicLink:  domain.PublicLink{Link: "https://example.com/f1"},
	}
}

func TestGetFile(t *testing.T) {
	store := &MockFileStore{MockState: stateWithFiles}
	router := newRouter(New(store, testConfig()))

	t.Run("found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/files/f1", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.FileResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "a.png", resp.File.Name)
	})

	t.Run("not found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/files/nope", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetPostFiles(t *testing.T) {
	store := &MockFileStore{MockState: stateWithFiles}
	router := newRouter(New(store, testConfig()))

	t.Run("ordered files", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/posts/p1/files", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.PostFilesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "p1", resp.PostId)
		assert.Equal(t, domain.FileIds{"f2", "f1"}, resp.FileIds)
		require.Len(t, resp.Files, 2)
		assert.Equal(t, "b.png", resp.Files[0].Name)
	})

	t.Run("unknown post", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/posts/p9/files", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"post_id":"p9","file_ids":[],"files":[]}`, rr.Body.String())
	})
}

func TestGetPublicLinkAndState(t *testing.T) {
	store := &MockFileStore{MockState: stateWithFiles}
	router := newRouter(New(store, testConfig()))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/public_link", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"link":"https://example.com/f1"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/state", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var state map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Contains(t, state, "files")
	assert.Contains(t, state, "fileIdsByPostId")
	assert.JSONEq(t, `{"link":"https://example.com/f1"}`, string(state["filePublicLink"]))
}
