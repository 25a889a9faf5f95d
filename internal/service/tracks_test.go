package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/internal/model"
	"trackmirror/pkg/pagination"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrackService_GetTrackByID(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		trackID int64
		setup   func(m *MockTrackStorage)
		wantErr error
	}{
		{
			name:    "invalid id",
			trackID: 0,
			setup:   func(_ *MockTrackStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "storage error",
			trackID: 123,
			setup: func(m *MockTrackStorage) {
				m.EXPECT().
					GetTrackByID(gomock.Any(), int64(123)).
					Return(model.Track{}, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
		{
			name:    "success",
			trackID: 5,
			setup: func(m *MockTrackStorage) {
				m.EXPECT().
					GetTrackByID(gomock.Any(), int64(5)).
					Return(model.Track{ID: 5, RemoteID: "r5", Title: "t", Artist: "a", CreatedAt: now}, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockTrackStorage(ctrl)
			tt.setup(m)

			svc := NewTrackService(m)
			got, err := svc.GetTrackByID(context.Background(), tt.trackID)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.trackID, got.ID)
			require.Equal(t, "r5", got.RemoteID)
		})
	}
}

func tracksFixture(n int, base time.Time) []model.Track {
	out := make([]model.Track, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Track{
			ID:        int64(n - i),
			RemoteID:  string(rune('a' + n - i)),
			Title:     "track",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestTrackService_ListTracks_FirstPage(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name        string
		limit       int
		stored      []model.Track
		wantCount   int
		wantHasNext bool
	}{
		{
			name:        "page smaller than dataset",
			limit:       3,
			stored:      tracksFixture(4, now), // peek returns limit+1
			wantCount:   3,
			wantHasNext: true,
		},
		{
			name:      "page covers dataset",
			limit:     10,
			stored:    tracksFixture(4, now),
			wantCount: 4,
		},
		{
			name:   "empty storage",
			limit:  10,
			stored: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockTrackStorage(ctrl)
			m.EXPECT().
				ListTracks(gomock.Any(), tt.limit+1).
				Return(tt.stored, nil)

			svc := NewTrackService(m)
			page, err := svc.ListTracks(context.Background(), pagination.PageRequest{Limit: tt.limit})
			require.NoError(t, err)

			require.Equal(t, tt.wantCount, page.Count)
			require.Len(t, page.Items, tt.wantCount)
			require.Equal(t, tt.wantHasNext, page.HasNextPage)

			if tt.wantCount == 0 {
				require.Nil(t, page.StartCursor)
				require.Nil(t, page.EndCursor)
				return
			}

			require.NotNil(t, page.StartCursor)
			require.NotNil(t, page.EndCursor)

			end, err := pagination.Decode(page.EndCursor)
			require.NoError(t, err)
			require.Equal(t, page.Items[len(page.Items)-1].ID, end.ID)
		})
	}
}

func TestTrackService_ListTracks_CursorValidation(t *testing.T) {
	t.Parallel()

	cursor := pagination.Cursor{CreatedAt: time.Now(), ID: 7}.Encode()
	garbage := "%%%"

	tests := []struct {
		name string
		req  pagination.PageRequest
	}{
		{
			name: "both cursors provided",
			req:  pagination.PageRequest{AfterCursor: cursor, BeforeCursor: cursor},
		},
		{
			name: "undecodable after-cursor",
			req:  pagination.PageRequest{AfterCursor: &garbage},
		},
		{
			name: "undecodable before-cursor",
			req:  pagination.PageRequest{BeforeCursor: &garbage},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewTrackService(NewMockTrackStorage(ctrl))
			_, err := svc.ListTracks(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestTrackService_ListTracks_AfterCursor(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cursor := pagination.Cursor{CreatedAt: now, ID: 20}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockTrackStorage(ctrl)
	m.EXPECT().
		ListTracksWithCursor(gomock.Any(), gomock.Cond(func(p storage.ListTracksParams) bool {
			return p.Direction == storage.DirectionAfter &&
				p.Cursor.ID == 20 &&
				p.Limit == 3 // peek = limit+1
		})).
		Return(tracksFixture(2, now.Add(-time.Hour)), nil)

	svc := NewTrackService(m)
	page, err := svc.ListTracks(context.Background(), pagination.PageRequest{
		Limit:       2,
		AfterCursor: cursor.Encode(),
	})
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	require.False(t, page.HasNextPage)
	require.True(t, page.HasPreviousPage)
}

func TestTrackService_ListTracks_LimitClamped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockTrackStorage(ctrl)
	m.EXPECT().
		ListTracks(gomock.Any(), MaxTracksLimit+1).
		Return(nil, nil)

	svc := NewTrackService(m)
	_, err := svc.ListTracks(context.Background(), pagination.PageRequest{Limit: 100000})
	require.NoError(t, err)
}
