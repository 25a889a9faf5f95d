package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/internal/adapter/out/storage/postgres/mocks"
	"trackmirror/internal/model"
	"trackmirror/pkg/pagination"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

var trackRowColumns = []string{"id", "remote_id", "title", "artist", "duration_ms", "created_at"}

func Test_listTracksQueryBuilder(t *testing.T) {
	cursor := pagination.Cursor{
		ID:        123,
		CreatedAt: time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		params    storage.ListTracksParams
		wantOrder string
		wantWhere []string
		wantErr   bool
	}{
		{
			name: "after cursor",
			params: storage.ListTracksParams{
				Cursor:    cursor,
				Direction: storage.DirectionAfter,
				Limit:     10,
			},
			wantOrder: "ORDER BY created_at DESC, id DESC",
			wantWhere: []string{"<", "created_at", "id"},
		},
		{
			name: "before cursor",
			params: storage.ListTracksParams{
				Cursor:    cursor,
				Direction: storage.DirectionBefore,
				Limit:     5,
			},
			wantOrder: "ORDER BY created_at ASC, id ASC",
			wantWhere: []string{">", "created_at", "id"},
		},
		{
			name: "invalid direction",
			params: storage.ListTracksParams{
				Cursor: cursor,
				Limit:  3,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb, err := listTracksQueryBuilder(tt.params)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			sql, _, err := qb.ToSql()
			require.NoError(t, err)

			require.Contains(t, sql, tt.wantOrder)
			for _, w := range tt.wantWhere {
				require.Contains(t, sql, w)
			}
		})
	}
}

func TestTrackStorage_GetTrackByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		setup func(m *mocks.MockDB)
		check func(t *testing.T, got model.Track, err error)
	}{
		{
			name: "success",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().
					QueryRow(gomock.Any(), gomock.Any(), int64(7)).
					Return(fakeRow{scan: func(dest ...any) error {
						*(dest[0].(*int64)) = 7
						*(dest[1].(*string)) = "r7"
						*(dest[2].(*string)) = "song"
						*(dest[3].(*string)) = "band"
						*(dest[4].(*int)) = 215000
						*(dest[5].(*time.Time)) = now
						return nil
					}})
			},
			check: func(t *testing.T, got model.Track, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(7), got.ID)
				require.Equal(t, "r7", got.RemoteID)
				require.Equal(t, "song", got.Title)
				require.Equal(t, 215000, got.DurationMS)
			},
		},
		{
			name: "not found",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().
					QueryRow(gomock.Any(), gomock.Any(), int64(7)).
					Return(fakeRow{scan: func(...any) error { return pgx.ErrNoRows }})
			},
			check: func(t *testing.T, _ model.Track, err error) {
				require.ErrorIs(t, err, ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mocks.NewMockDB(ctrl)
			tt.setup(mockDB)

			st := NewTrackStorage(mockDB, trmpgx.DefaultCtxGetter)

			got, err := st.GetTrackByID(context.Background(), 7)
			tt.check(t, got, err)
		})
	}
}

func TestTrackStorage_UpsertTracks(t *testing.T) {
	now := time.Now()

	snapshot := []model.Track{
		{RemoteID: "r1", Title: "one", Artist: "a", DurationMS: 100, CreatedAt: now},
		{RemoteID: "r2", Title: "two", Artist: "a", DurationMS: 200, CreatedAt: now},
	}

	tests := []struct {
		name  string
		input []model.Track
		setup func(m *mocks.MockDB)
		check func(t *testing.T, got []model.Track, err error)
	}{
		{
			name:  "empty snapshot issues no query",
			input: nil,
			setup: func(_ *mocks.MockDB) {},
			check: func(t *testing.T, got []model.Track, err error) {
				require.NoError(t, err)
				require.Empty(t, got)
			},
		},
		{
			name:  "returns only newly inserted rows",
			input: snapshot,
			setup: func(m *mocks.MockDB) {
				rows := pgxmock.
					NewRows(trackRowColumns).
					AddRow(int64(11), "r2", "two", "a", 200, now).
					Kind()

				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rows, nil)
			},
			check: func(t *testing.T, got []model.Track, err error) {
				require.NoError(t, err)
				require.Len(t, got, 1)
				require.Equal(t, int64(11), got[0].ID)
				require.Equal(t, "r2", got[0].RemoteID)
			},
		},
		{
			name:  "query error",
			input: snapshot,
			setup: func(m *mocks.MockDB) {
				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db fail"))
			},
			check: func(t *testing.T, got []model.Track, err error) {
				require.Error(t, err)
				require.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mocks.NewMockDB(ctrl)
			tt.setup(mockDB)

			st := NewTrackStorage(mockDB, trmpgx.DefaultCtxGetter)

			got, err := st.UpsertTracks(context.Background(), tt.input)
			tt.check(t, got, err)
		})
	}
}

func TestTrackStorage_ListTracksWithCursor(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		params storage.ListTracksParams
		setup  func(m *mocks.MockDB)
		check  func(t *testing.T, got []model.Track, err error)
	}{
		{
			name: "after keeps descending order",
			params: storage.ListTracksParams{
				Limit:     5,
				Direction: storage.DirectionAfter,
				Cursor:    pagination.Cursor{ID: 10, CreatedAt: now},
			},
			setup: func(m *mocks.MockDB) {
				rows := pgxmock.
					NewRows(trackRowColumns).
					AddRow(int64(9), "r9", "nine", "a", 90, now.Add(-time.Minute)).
					AddRow(int64(8), "r8", "eight", "a", 80, now.Add(-2*time.Minute)).
					Kind()

				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rows, nil)
			},
			check: func(t *testing.T, got []model.Track, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				require.Equal(t, int64(9), got[0].ID)
				require.Equal(t, int64(8), got[1].ID)
			},
		},
		{
			name: "before reverses the ascending scan",
			params: storage.ListTracksParams{
				Limit:     5,
				Direction: storage.DirectionBefore,
				Cursor:    pagination.Cursor{ID: 5, CreatedAt: now.Add(-time.Hour)},
			},
			setup: func(m *mocks.MockDB) {
				rows := pgxmock.
					NewRows(trackRowColumns).
					AddRow(int64(6), "r6", "six", "a", 60, now.Add(-30*time.Minute)).
					AddRow(int64(7), "r7", "seven", "a", 70, now.Add(-20*time.Minute)).
					Kind()

				m.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rows, nil)
			},
			check: func(t *testing.T, got []model.Track, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				// newest first after the reverse
				require.Equal(t, int64(7), got[0].ID)
				require.Equal(t, int64(6), got[1].ID)
			},
		},
		{
			name: "direction unset",
			params: storage.ListTracksParams{
				Limit:  3,
				Cursor: pagination.Cursor{ID: 5, CreatedAt: now},
			},
			setup: func(_ *mocks.MockDB) {},
			check: func(t *testing.T, got []model.Track, err error) {
				require.ErrorIs(t, err, storage.ErrDirectionUnset)
				require.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mocks.NewMockDB(ctrl)
			tt.setup(mockDB)

			st := NewTrackStorage(mockDB, trmpgx.DefaultCtxGetter)

			got, err := st.ListTracksWithCursor(context.Background(), tt.params)
			tt.check(t, got, err)
		})
	}
}
