package inmemory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/internal/model"
	"trackmirror/internal/service"
	"trackmirror/pkg/pagination"

	"github.com/stretchr/testify/require"
)

func seedTracks(t *testing.T, st *TrackStorage, n int, base time.Time) []model.Track {
	t.Helper()

	in := make([]model.Track, 0, n)
	for i := 0; i < n; i++ {
		in = append(in, model.Track{
			RemoteID:  fmt.Sprintf("r%d", i+1),
			Title:     fmt.Sprintf("title %d", i+1),
			Artist:    "artist",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	added, err := st.UpsertTracks(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, added, n)
	return added
}

func TestTrackStorage_UpsertAndGetByID(t *testing.T) {
	t.Parallel()

	st := NewTrackStorage()
	added := seedTracks(t, st, 2, time.Now())

	require.Equal(t, int64(1), added[0].ID)
	require.Equal(t, int64(2), added[1].ID)

	got, err := st.GetTrackByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, added[0], got)
}

func TestTrackStorage_UpsertDeduplicatesByRemoteID(t *testing.T) {
	t.Parallel()

	st := NewTrackStorage()
	now := time.Now()
	seedTracks(t, st, 3, now)

	// a second mirror pass carries the same snapshot plus one new record
	again := []model.Track{
		{RemoteID: "r1", Title: "title 1", CreatedAt: now},
		{RemoteID: "r2", Title: "title 2", CreatedAt: now},
		{RemoteID: "r3", Title: "title 3", CreatedAt: now},
		{RemoteID: "r4", Title: "title 4", CreatedAt: now},
	}
	added, err := st.UpsertTracks(context.Background(), again)
	require.NoError(t, err)
	require.Len(t, added, 1)
	require.Equal(t, "r4", added[0].RemoteID)

	n, err := st.CountTracks(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
}

func TestTrackStorage_GetTrackByID_NotFound(t *testing.T) {
	t.Parallel()

	st := NewTrackStorage()

	_, err := st.GetTrackByID(context.Background(), 10)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestTrackStorage_ListTracks_OrderDESCAndLimit(t *testing.T) {
	t.Parallel()

	st := NewTrackStorage()
	seedTracks(t, st, 5, time.Now())

	got, err := st.ListTracks(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest first
	require.Equal(t, "r5", got[0].RemoteID)
	require.Equal(t, "r4", got[1].RemoteID)
	require.Equal(t, "r3", got[2].RemoteID)
}

func TestTrackStorage_ListTracksWithCursor(t *testing.T) {
	t.Parallel()

	st := NewTrackStorage()
	added := seedTracks(t, st, 5, time.Now())

	// cursor at r3 (the middle record)
	cur := pagination.Cursor{CreatedAt: added[2].CreatedAt, ID: added[2].ID}

	after, err := st.ListTracksWithCursor(context.Background(), storage.ListTracksParams{
		Cursor:    cur,
		Direction: storage.DirectionAfter,
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, after, 2)
	require.Equal(t, "r2", after[0].RemoteID)
	require.Equal(t, "r1", after[1].RemoteID)

	before, err := st.ListTracksWithCursor(context.Background(), storage.ListTracksParams{
		Cursor:    cur,
		Direction: storage.DirectionBefore,
		Limit:     1,
	})
	require.NoError(t, err)
	require.Len(t, before, 1)
	// the page immediately preceding the cursor
	require.Equal(t, "r4", before[0].RemoteID)

	_, err = st.ListTracksWithCursor(context.Background(), storage.ListTracksParams{Cursor: cur, Limit: 1})
	require.ErrorIs(t, err, storage.ErrDirectionUnset)
}
