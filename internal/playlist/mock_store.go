package playlist

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertPlaylist(ctx context.Context, id, name, ownerID string) (string, error) {
	args := m.Called(ctx, id, name, ownerID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetPlaylistByID(ctx context.Context, id string) (*Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockStore) ListPlaylists(ctx context.Context, userID string) ([]PlaylistSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlaylistSummary), args.Error(1)
}

func (m *MockStore) RenamePlaylist(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockStore) DeletePlaylist(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) IsCollaborator(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) InsertCollaboration(ctx context.Context, id, playlistID, userID string) (string, error) {
	args := m.Called(ctx, id, playlistID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeleteCollaboration(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SongExists(ctx context.Context, songID string) (bool, error) {
	args := m.Called(ctx, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) InsertPlaylistSong(ctx context.Context, id, playlistID, songID string) (string, error) {
	args := m.Called(ctx, id, playlistID, songID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeletePlaylistSong(ctx context.Context, playlistID, songID string) (bool, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) GetPlaylistSongs(ctx context.Context, playlistID string) (*PlaylistWithSongs, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PlaylistWithSongs), args.Error(1)
}

func (m *MockStore) InsertActivity(ctx context.Context, id, playlistID, songID, userID, action string, at time.Time) (string, error) {
	args := m.Called(ctx, id, playlistID, songID, userID, action, at)
	return args.String(0), args.Error(1)
}

func (m *MockStore) ListActivities(ctx context.Context, playlistID string) ([]Activity, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Activity), args.Error(1)
}
