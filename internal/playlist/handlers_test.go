package playlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog-service/internal/auth"
	"catalog-service/internal/domain"
	"catalog-service/internal/export"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, queue string, body []byte) error {
	args := m.Called(ctx, queue, body)
	return args.Error(0)
}

func newRequest(t *testing.T, method, target, userID string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req = auth.WithPrincipal(req, userID)
	}
	return req
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHandleAddSong(t *testing.T) {
	p := &Playlist{ID: "p1", Name: "mix", OwnerID: "u1"}

	t.Run("forbidden principal gets 403 and nothing is written", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "p1").Return(p, nil)
		store.On("IsCollaborator", mock.Anything, "p1", "u2").Return(false, nil)
		s := NewServer(store, nil)

		w := serve(s, newRequest(t, "POST", "/p1/songs", "u2", map[string]string{"songId": "s1"}))

		assert.Equal(t, http.StatusForbidden, w.Code)
		store.AssertNotCalled(t, "InsertPlaylistSong")
		store.AssertNotCalled(t, "InsertActivity")
	})

	t.Run("owner gets 201", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "p1").Return(p, nil)
		store.On("SongExists", mock.Anything, "s1").Return(true, nil)
		store.On("InsertPlaylistSong", mock.Anything, mock.Anything, "p1", "s1").Return("ps1", nil)
		store.On("InsertActivity", mock.Anything, mock.Anything, "p1", "s1", "u1", actionAdd, mock.Anything).Return("act1", nil)
		s := NewServer(store, nil)

		w := serve(s, newRequest(t, "POST", "/p1/songs", "u1", map[string]string{"songId": "s1"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing songId is 400", func(t *testing.T) {
		store := new(MockStore)
		s := NewServer(store, nil)

		w := serve(s, newRequest(t, "POST", "/p1/songs", "u1", map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		store.AssertNotCalled(t, "GetPlaylistByID")
	})
}

func TestHandleRenamePlaylist(t *testing.T) {
	p := &Playlist{ID: "p1", Name: "mix", OwnerID: "u1"}

	t.Run("collaborator may not rename", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "p1").Return(p, nil)
		s := NewServer(store, nil)

		w := serve(s, newRequest(t, "PUT", "/p1", "u2", map[string]string{"name": "new"}))

		assert.Equal(t, http.StatusForbidden, w.Code)
		store.AssertNotCalled(t, "RenamePlaylist")
	})

	t.Run("missing playlist is 404", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "nope").Return(nil, domain.NotFound("playlist not found"))
		s := NewServer(store, nil)

		w := serve(s, newRequest(t, "PUT", "/nope", "u1", map[string]string{"name": "new"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleExportPlaylist(t *testing.T) {
	p := &Playlist{ID: "p1", Name: "mix", OwnerID: "u1"}

	exportReq := func(t *testing.T, userID, email string) *http.Request {
		return newRequest(t, "POST", "/playlists/p1", userID, map[string]string{"targetEmail": email})
	}

	serveExport := func(s *Server, req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		s.ExportRouter().ServeHTTP(w, req)
		return w
	}

	t.Run("owner enqueues the job descriptor", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "p1").Return(p, nil)
		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, export.QueueName, mock.Anything).Return(nil)
		s := NewServer(store, pub)

		w := serveExport(s, exportReq(t, "u1", "me@example.com"))

		assert.Equal(t, http.StatusCreated, w.Code)

		body := pub.Calls[0].Arguments.Get(2).([]byte)
		var job export.Job
		assert.NoError(t, json.Unmarshal(body, &job))
		assert.Equal(t, export.Job{PlaylistID: "p1", UserID: "u1", TargetEmail: "me@example.com"}, job)
	})

	t.Run("collaborator may not export", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "p1").Return(p, nil)
		pub := new(MockPublisher)
		s := NewServer(store, pub)

		w := serveExport(s, exportReq(t, "u2", "me@example.com"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		pub.AssertNotCalled(t, "Publish")
	})

	t.Run("invalid email is 400 before any store call", func(t *testing.T) {
		store := new(MockStore)
		s := NewServer(store, nil)

		w := serveExport(s, exportReq(t, "u1", "not-an-email"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		store.AssertNotCalled(t, "GetPlaylistByID")
	})

	t.Run("publisher failure is a server error", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetPlaylistByID", mock.Anything, "p1").Return(p, nil)
		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, export.QueueName, mock.Anything).Return(errors.New("broker down"))
		s := NewServer(store, pub)

		w := serveExport(s, exportReq(t, "u1", "me@example.com"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
