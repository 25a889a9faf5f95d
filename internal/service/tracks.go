package service

import (
	"context"
	"fmt"

	"trackmirror/internal/adapter/out/storage"
	"trackmirror/internal/model"
	"trackmirror/pkg/pagination"
)

const (
	DefaultTracksLimit = 50
	MaxTracksLimit     = 250
)

//go:generate mockgen -source=tracks.go -destination=./track_storage_mock.go -package=service trackmirror/internal/service TrackStorage
type TrackStorage interface {
	UpsertTracks(ctx context.Context, tracks []model.Track) ([]model.Track, error)
	GetTrackByID(ctx context.Context, trackID int64) (model.Track, error)
	ListTracks(ctx context.Context, limit int) ([]model.Track, error)
	ListTracksWithCursor(ctx context.Context, params storage.ListTracksParams) ([]model.Track, error)
	CountTracks(ctx context.Context) (int64, error)
}

type TrackService struct {
	trackStorage TrackStorage
}

func NewTrackService(trackStorage TrackStorage) *TrackService {
	return &TrackService{
		trackStorage: trackStorage,
	}
}

func (s *TrackService) GetTrackByID(ctx context.Context, trackID int64) (model.Track, error) {
	if trackID <= 0 {
		return model.Track{}, fmt.Errorf("trackID must be > 0: %w", ErrInvalidRequest)
	}
	t, err := s.trackStorage.GetTrackByID(ctx, trackID)
	if err != nil {
		return model.Track{}, err
	}
	return t, nil
}

func (s *TrackService) ListTracks(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Track], error) {
	var (
		tracks []model.Track
		err    error
		page   pagination.Page[model.Track]
	)

	if err := validatePagination(in); err != nil {
		return page, err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = DefaultTracksLimit
	}
	if limit > MaxTracksLimit {
		limit = MaxTracksLimit
	}
	peek := limit + 1

	afterProvided := in.AfterCursor != nil && *in.AfterCursor != ""
	beforeProvided := in.BeforeCursor != nil && *in.BeforeCursor != ""

	switch {
	case !afterProvided && !beforeProvided:
		tracks, err = s.trackStorage.ListTracks(ctx, peek)
		if err != nil {
			return page, err
		}

	default:
		params, err := toListTracksParams(in)
		if err != nil {
			return page, err
		}
		params.Limit = peek
		tracks, err = s.trackStorage.ListTracksWithCursor(ctx, params)
		if err != nil {
			return page, err
		}
	}

	if len(tracks) == 0 {
		page.Items = nil
		page.Count = 0
		page.HasNextPage = false
		page.StartCursor = nil
		page.EndCursor = nil
		return page, nil
	}

	if len(tracks) > limit {
		page.HasNextPage = true
		tracks = tracks[:limit]
	}
	if beforeProvided || afterProvided {
		page.HasPreviousPage = true
	}

	page.Items = tracks
	page.Count = len(tracks)

	startCursor := pagination.Cursor{
		CreatedAt: tracks[0].CreatedAt,
		ID:        tracks[0].ID,
	}
	endCursor := pagination.Cursor{
		CreatedAt: tracks[len(tracks)-1].CreatedAt,
		ID:        tracks[len(tracks)-1].ID,
	}

	page.StartCursor, page.EndCursor = startCursor.Encode(), endCursor.Encode()
	return page, nil
}
