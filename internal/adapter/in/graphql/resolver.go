package graphql

import (
	"context"

	"trackmirror/internal/model"
	"trackmirror/internal/service"
	"trackmirror/pkg/pagination"
)

//go:generate go run github.com/99designs/gqlgen generate

type TrackService interface {
	GetTrackByID(ctx context.Context, trackID int64) (model.Track, error)
	ListTracks(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Track], error)
}

type SyncService interface {
	Sync(ctx context.Context) (service.SyncReport, error)
	Listen(ctx context.Context) (<-chan model.Track, error)
}

type Resolver struct {
	trackService TrackService
	syncService  SyncService
}

func NewResolver(trackService TrackService, syncService SyncService) *Resolver {
	return &Resolver{
		trackService: trackService,
		syncService:  syncService,
	}
}
