package service

import (
	"context"
	"fmt"
	"time"

	"trackmirror/internal/model"
	"trackmirror/pkg/logger"
	"trackmirror/pkg/pager"
)

//go:generate mockgen -source=sync.go -destination=./sync_mock.go -package=service trackmirror/internal/service RemoteCatalog,TrackBus,TrManager

// RemoteCatalog is one page-fetch against the upstream track catalog.
type RemoteCatalog interface {
	FetchTracks(ctx context.Context, cursor *string, limit int) (pager.Batch[model.Track], error)
}

type TrackBus interface {
	Subscribe(ctx context.Context) (<-chan model.Track, error)
	Publish(ctx context.Context, t model.Track) error
}

type TrManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SyncReport summarizes one mirror pass.
type SyncReport struct {
	Pages   int
	Fetched int
	Added   int
	Took    time.Duration
}

type SyncService struct {
	remote       RemoteCatalog
	trackStorage TrackStorage
	trackBus     TrackBus
	trManager    TrManager
	pageSize     int
	maxPages     int
}

func NewSyncService(remote RemoteCatalog, trackStorage TrackStorage, trackBus TrackBus, trManager TrManager, pageSize, maxPages int) *SyncService {
	return &SyncService{
		remote:       remote,
		trackStorage: trackStorage,
		trackBus:     trackBus,
		trManager:    trManager,
		pageSize:     pageSize,
		maxPages:     maxPages,
	}
}

// Sync performs one mirror pass: drain the remote cursor chain, then store
// the snapshot in a single transaction. A failure at any point discards the
// whole pass; nothing is persisted from a partial fetch.
func (s *SyncService) Sync(ctx context.Context) (SyncReport, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	it := pager.NewIterator(
		s.remote.FetchTracks,
		pager.WithPageSize(s.pageSize),
		pager.WithMaxPages(s.maxPages),
	)

	var tracks []model.Track
	for !it.Done() {
		items, err := it.Next(ctx)
		if err != nil {
			return SyncReport{}, fmt.Errorf("fetching catalog: %w", err)
		}
		tracks = append(tracks, items...)
	}

	var added []model.Track
	if len(tracks) > 0 {
		err := s.trManager.Do(ctx, func(ctx context.Context) error {
			var err error
			added, err = s.trackStorage.UpsertTracks(ctx, tracks)
			return err
		})
		if err != nil {
			return SyncReport{}, fmt.Errorf("storing snapshot: %w", err)
		}
	}

	for _, t := range added {
		if err := s.trackBus.Publish(ctx, t); err != nil {
			log.Warn("publishing added track", "remote_id", t.RemoteID, "error", err)
		}
	}

	report := SyncReport{
		Pages:   it.Pages(),
		Fetched: len(tracks),
		Added:   len(added),
		Took:    time.Since(start),
	}
	log.Info("catalog sync finished",
		"pages", report.Pages,
		"fetched", report.Fetched,
		"added", report.Added,
		"took", report.Took,
	)
	return report, nil
}

// Listen subscribes to tracks added by subsequent mirror passes. The channel
// closes when ctx is done.
func (s *SyncService) Listen(ctx context.Context) (<-chan model.Track, error) {
	return s.trackBus.Subscribe(ctx)
}
