package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertAlbum(ctx context.Context, a Album) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetAlbumByID(ctx context.Context, id string) (*Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Album), args.Error(1)
}

func (m *MockStore) ListAlbums(ctx context.Context) ([]Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Album), args.Error(1)
}

func (m *MockStore) UpdateAlbum(ctx context.Context, id, name string, year int) error {
	args := m.Called(ctx, id, name, year)
	return args.Error(0)
}

func (m *MockStore) DeleteAlbum(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) SetAlbumCover(ctx context.Context, id, coverURL string) error {
	args := m.Called(ctx, id, coverURL)
	return args.Error(0)
}

func (m *MockStore) InsertSong(ctx context.Context, s Song) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetSongByID(ctx context.Context, id string) (*Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) ListSongs(ctx context.Context, title, performer string) ([]SongSummary, error) {
	args := m.Called(ctx, title, performer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SongSummary), args.Error(1)
}

func (m *MockStore) UpdateSong(ctx context.Context, s Song) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStore) DeleteSong(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) HasAlbumLike(ctx context.Context, albumID, userID string) (bool, error) {
	args := m.Called(ctx, albumID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) InsertAlbumLike(ctx context.Context, id, albumID, userID string) (string, error) {
	args := m.Called(ctx, id, albumID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DeleteAlbumLike(ctx context.Context, albumID, userID string) (bool, error) {
	args := m.Called(ctx, albumID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CountAlbumLikes(ctx context.Context, albumID string) (int, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Error(1)
}
