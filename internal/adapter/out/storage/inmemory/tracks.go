package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/internal/model"
	"trackmirror/internal/service"
	"trackmirror/pkg/pagination"
)

type TrackStorage struct {
	mu         sync.RWMutex
	tracks     []model.Track
	byID       map[int64]model.Track
	byRemoteID map[string]int64
	nextID     int64
}

func NewTrackStorage() *TrackStorage {
	return &TrackStorage{
		byID:       make(map[int64]model.Track),
		byRemoteID: make(map[string]int64),
		nextID:     1,
	}
}

// UpsertTracks stores a fetched snapshot. Records already known by remote ID
// are left untouched; the newly inserted ones are returned in input order.
func (s *TrackStorage) UpsertTracks(_ context.Context, tracks []model.Track) ([]model.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added []model.Track
	for _, t := range tracks {
		if _, ok := s.byRemoteID[t.RemoteID]; ok {
			continue
		}
		t.ID = s.nextID
		s.nextID++
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now()
		}
		s.tracks = append(s.tracks, t)
		s.byID[t.ID] = t
		s.byRemoteID[t.RemoteID] = t.ID
		added = append(added, t)
	}
	return added, nil
}

func (s *TrackStorage) GetTrackByID(_ context.Context, trackID int64) (model.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.byID[trackID]; ok {
		return t, nil
	}
	return model.Track{}, service.ErrNotFound
}

func (s *TrackStorage) CountTracks(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tracks)), nil
}

// ListTracks returns up to limit tracks, newest first.
func (s *TrackStorage) ListTracks(_ context.Context, limit int) ([]model.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.sortedDesc()
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *TrackStorage) ListTracksWithCursor(_ context.Context, params storage.ListTracksParams) ([]model.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := params.Limit
	if limit <= 0 {
		limit = service.DefaultTracksLimit
	}

	sorted := s.sortedDesc()

	switch params.Direction {
	case storage.DirectionAfter:
		out := make([]model.Track, 0, limit)
		for _, t := range sorted {
			if keysetLess(t, params.Cursor) && len(out) < limit {
				out = append(out, t)
			}
		}
		return out, nil

	case storage.DirectionBefore:
		var newer []model.Track
		for _, t := range sorted {
			if keysetGreater(t, params.Cursor) {
				newer = append(newer, t)
			}
		}
		// the page immediately preceding the cursor, still newest first
		if len(newer) > limit {
			newer = newer[len(newer)-limit:]
		}
		return newer, nil

	default:
		return nil, storage.ErrDirectionUnset
	}
}

func (s *TrackStorage) sortedDesc() []model.Track {
	out := make([]model.Track, len(s.tracks))
	copy(out, s.tracks)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func keysetLess(t model.Track, c pagination.Cursor) bool {
	if !t.CreatedAt.Equal(c.CreatedAt) {
		return t.CreatedAt.Before(c.CreatedAt)
	}
	return t.ID < c.ID
}

func keysetGreater(t model.Track, c pagination.Cursor) bool {
	if !t.CreatedAt.Equal(c.CreatedAt) {
		return t.CreatedAt.After(c.CreatedAt)
	}
	return t.ID > c.ID
}
