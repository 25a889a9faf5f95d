package graphql

import (
	"strconv"

	gqlmodel "trackmirror/internal/adapter/in/graphql/model"
	"trackmirror/internal/model"
	"trackmirror/internal/service"
	"trackmirror/pkg/pagination"
)

func toTrackNode(t model.Track) *gqlmodel.Track {
	return &gqlmodel.Track{
		ID:         strconv.FormatInt(t.ID, 10),
		RemoteID:   t.RemoteID,
		Title:      t.Title,
		Artist:     t.Artist,
		DurationMs: t.DurationMS,
		CreatedAt:  t.CreatedAt,
	}
}

func toTrackPage(p pagination.Page[model.Track]) *gqlmodel.TrackPage {
	items := make([]*gqlmodel.Track, 0, len(p.Items))
	for _, t := range p.Items {
		items = append(items, toTrackNode(t))
	}
	return &gqlmodel.TrackPage{
		Items: items,
		Count: p.Count,
		PageInfo: &gqlmodel.PageInfo{
			StartCursor:     p.StartCursor,
			EndCursor:       p.EndCursor,
			HasNextPage:     p.HasNextPage,
			HasPreviousPage: p.HasPreviousPage,
		},
	}
}

func toSyncReport(r service.SyncReport) *gqlmodel.SyncReport {
	return &gqlmodel.SyncReport{
		Pages:   r.Pages,
		Fetched: r.Fetched,
		Added:   r.Added,
	}
}

func toPageRequest(in *gqlmodel.PageInput) pagination.PageRequest {
	var limit int
	var before, after *string
	if in != nil {
		if in.Limit != nil {
			limit = *in.Limit
		}
		if in.Before != nil && *in.Before != "" {
			before = in.Before
		}
		if in.After != nil && *in.After != "" {
			after = in.After
		}
	}
	return pagination.PageRequest{
		Limit:        limit,
		BeforeCursor: before,
		AfterCursor:  after,
	}
}
