package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.80

import (
	"context"
	"errors"
	"strconv"
	gqlmodel "trackmirror/internal/adapter/in/graphql/model"
	"trackmirror/internal/service"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

// SyncNow is the resolver for the syncNow field.
func (r *mutationResolver) SyncNow(ctx context.Context) (*gqlmodel.SyncReport, error) {
	report, err := r.syncService.Sync(ctx)
	if err != nil {
		return nil, gqlerror.Errorf("sync failed: %v", err)
	}
	return toSyncReport(report), nil
}

// Tracks is the resolver for the tracks field.
func (r *queryResolver) Tracks(ctx context.Context, page *gqlmodel.PageInput) (*gqlmodel.TrackPage, error) {
	p, err := r.trackService.ListTracks(ctx, toPageRequest(page))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return nil, gqlerror.Errorf("invalid page request: %v", err)
		}
		return nil, err
	}
	return toTrackPage(p), nil
}

// Track is the resolver for the track field.
func (r *queryResolver) Track(ctx context.Context, id string) (*gqlmodel.Track, error) {
	trackID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, gqlerror.Errorf("invalid track id %q", id)
	}
	t, err := r.trackService.GetTrackByID(ctx, trackID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, gqlerror.Errorf("track %s not found", id)
		}
		return nil, err
	}
	return toTrackNode(t), nil
}

// TrackAdded is the resolver for the trackAdded field.
func (r *subscriptionResolver) TrackAdded(ctx context.Context) (<-chan *gqlmodel.Track, error) {
	src, err := r.syncService.Listen(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan *gqlmodel.Track, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case t, ok := <-src:
				if !ok {
					return
				}
				select {
				case out <- toTrackNode(t):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Subscription returns SubscriptionResolver implementation.
func (r *Resolver) Subscription() SubscriptionResolver { return &subscriptionResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }
