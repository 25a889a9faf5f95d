package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trackmirror/internal/model"
	"trackmirror/pkg/pager"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passthrough TrManager; transaction behavior itself belongs to the driver.
type fakeTrManager struct {
	calls int
}

func (f *fakeTrManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func syncBatch(ids []string, createdAt time.Time, next string, hasNext bool) pager.Batch[model.Track] {
	items := make([]model.Track, 0, len(ids))
	for _, id := range ids {
		items = append(items, model.Track{RemoteID: id, Title: "t-" + id, CreatedAt: createdAt})
	}
	b := pager.Batch[model.Track]{Items: items, HasNext: hasNext}
	if hasNext {
		b.NextCursor = &next
	}
	return b
}

func TestSyncService_Sync_MultiPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()

	remote := NewMockRemoteCatalog(ctrl)
	gomock.InOrder(
		remote.EXPECT().
			FetchTracks(gomock.Any(), nil, 2).
			Return(syncBatch([]string{"a", "b"}, now, "c1", true), nil),
		remote.EXPECT().
			FetchTracks(gomock.Any(), gomock.Cond(func(c *string) bool { return c != nil && *c == "c1" }), 2).
			Return(syncBatch([]string{"c"}, now, "", false), nil),
	)

	storage := NewMockTrackStorage(ctrl)
	storage.EXPECT().
		UpsertTracks(gomock.Any(), gomock.Len(3)).
		DoAndReturn(func(_ context.Context, tracks []model.Track) ([]model.Track, error) {
			require.Equal(t, []string{"a", "b", "c"}, []string{tracks[0].RemoteID, tracks[1].RemoteID, tracks[2].RemoteID})
			// only two of the three are new this pass
			return tracks[:2], nil
		})

	bus := NewMockTrackBus(ctrl)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

	trm := &fakeTrManager{}
	svc := NewSyncService(remote, storage, bus, trm, 2, 10)

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Pages)
	require.Equal(t, 3, report.Fetched)
	require.Equal(t, 2, report.Added)
	require.Equal(t, 1, trm.calls)
}

func TestSyncService_Sync_EmptyCatalog(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := NewMockRemoteCatalog(ctrl)
	remote.EXPECT().
		FetchTracks(gomock.Any(), nil, 50).
		Return(pager.Batch[model.Track]{}, nil)

	// nothing stored, nothing published
	storage := NewMockTrackStorage(ctrl)
	bus := NewMockTrackBus(ctrl)

	svc := NewSyncService(remote, storage, bus, &fakeTrManager{}, 50, 10)

	report, err := svc.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Pages)
	require.Zero(t, report.Fetched)
	require.Zero(t, report.Added)
}

func TestSyncService_Sync_FetchFailureDiscardsPass(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	boom := errors.New("remote unavailable")

	remote := NewMockRemoteCatalog(ctrl)
	gomock.InOrder(
		remote.EXPECT().
			FetchTracks(gomock.Any(), nil, 2).
			Return(syncBatch([]string{"a", "b"}, now, "c1", true), nil),
		remote.EXPECT().
			FetchTracks(gomock.Any(), gomock.Any(), 2).
			Return(pager.Batch[model.Track]{}, boom),
	)

	// the partially fetched page must never reach storage
	storage := NewMockTrackStorage(ctrl)
	bus := NewMockTrackBus(ctrl)

	svc := NewSyncService(remote, storage, bus, &fakeTrManager{}, 2, 10)

	_, err := svc.Sync(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSyncService_Sync_RunawayCatalogBounded(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()

	remote := NewMockRemoteCatalog(ctrl)
	remote.EXPECT().
		FetchTracks(gomock.Any(), gomock.Any(), 5).
		Return(syncBatch([]string{"x"}, now, "again", true), nil).
		Times(3)

	svc := NewSyncService(remote, NewMockTrackStorage(ctrl), NewMockTrackBus(ctrl), &fakeTrManager{}, 5, 3)

	_, err := svc.Sync(context.Background())
	require.ErrorIs(t, err, pager.ErrPageLimit)
}

func TestSyncService_Sync_StorageFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()

	remote := NewMockRemoteCatalog(ctrl)
	remote.EXPECT().
		FetchTracks(gomock.Any(), nil, 50).
		Return(syncBatch([]string{"a"}, now, "", false), nil)

	storage := NewMockTrackStorage(ctrl)
	storage.EXPECT().
		UpsertTracks(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db fail"))

	bus := NewMockTrackBus(ctrl)

	svc := NewSyncService(remote, storage, bus, &fakeTrManager{}, 50, 10)

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "storing snapshot")
}

func TestSyncService_Listen(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ch := make(chan model.Track)
	bus := NewMockTrackBus(ctrl)
	bus.EXPECT().Subscribe(gomock.Any()).Return((<-chan model.Track)(ch), nil)

	svc := NewSyncService(NewMockRemoteCatalog(ctrl), NewMockTrackStorage(ctrl), bus, &fakeTrManager{}, 50, 10)

	got, err := svc.Listen(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
}
