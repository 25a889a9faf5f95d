package remote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"
)

const catalogHost = "http://catalog.local"

func newTestClient(t *testing.T, cfg Config) *Client {
	t.Helper()

	cfg.Endpoint = catalogHost + "/graphql"
	c, err := NewClient(cfg)
	require.NoError(t, err)
	gock.InterceptClient(c.http.GetClient())
	return c
}

func TestNewClient_ConfigValidation(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient(Config{Endpoint: "not a url"})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewClient(Config{Endpoint: catalogHost + "/graphql", RetryCount: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func page(ids []string, endCursor string, hasNext bool) map[string]any {
	items := make([]map[string]any, 0, len(ids))
	for i, id := range ids {
		items = append(items, map[string]any{
			"id":         id,
			"title":      "title " + id,
			"artist":     "artist",
			"durationMs": 1000 * (i + 1),
			"createdAt":  time.Date(2026, 4, 1, 10, i, 0, 0, time.UTC).Format(time.RFC3339),
		})
	}
	pi := map[string]any{"hasNextPage": hasNext}
	if endCursor != "" {
		pi["endCursor"] = endCursor
	}
	return map[string]any{
		"data": map[string]any{
			"tracks": map[string]any{
				"items":    items,
				"pageInfo": pi,
			},
		},
	}
}

func TestClient_FetchTracks_FirstPage(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		Reply(200).
		JSON(page([]string{"a", "b"}, "C1", true))

	c := newTestClient(t, Config{})

	batch, err := c.FetchTracks(context.Background(), nil, 2)
	require.NoError(t, err)

	require.Len(t, batch.Items, 2)
	require.Equal(t, "a", batch.Items[0].RemoteID)
	require.Equal(t, "title a", batch.Items[0].Title)
	require.Equal(t, 1000, batch.Items[0].DurationMS)
	require.False(t, batch.Items[0].CreatedAt.IsZero())

	require.True(t, batch.HasNext)
	require.NotNil(t, batch.NextCursor)
	require.Equal(t, "C1", *batch.NextCursor)

	require.True(t, gock.IsDone())
}

func TestClient_FetchTracks_CursorInVariables(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		JSON(map[string]any{
			"query": tracksQuery,
			"variables": map[string]any{
				"after": "C1",
				"limit": 50,
			},
		}).
		Reply(200).
		JSON(page([]string{"c"}, "", false))

	c := newTestClient(t, Config{})

	cursor := "C1"
	batch, err := c.FetchTracks(context.Background(), &cursor, 50)
	require.NoError(t, err)
	require.Len(t, batch.Items, 1)
	require.False(t, batch.HasNext)
	require.Nil(t, batch.NextCursor)

	require.True(t, gock.IsDone(), "request body must carry the cursor and limit")
}

func TestClient_FetchTracks_LastPage(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		Reply(200).
		JSON(page(nil, "", false))

	c := newTestClient(t, Config{})

	batch, err := c.FetchTracks(context.Background(), nil, 10)
	require.NoError(t, err)
	require.Empty(t, batch.Items)
	require.False(t, batch.HasNext)
}

func TestClient_FetchTracks_GraphQLError(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		Reply(200).
		JSON(map[string]any{
			"errors": []map[string]any{{"message": "rate limited"}},
		})

	c := newTestClient(t, Config{})

	_, err := c.FetchTracks(context.Background(), nil, 10)
	require.ErrorIs(t, err, ErrCatalogQuery)
	require.Contains(t, err.Error(), "rate limited")
}

func TestClient_FetchTracks_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "no data",
			body: map[string]any{},
		},
		{
			name: "missing pageInfo",
			body: map[string]any{
				"data": map[string]any{
					"tracks": map[string]any{
						"items": []map[string]any{},
					},
				},
			},
		},
		{
			name: "record without id",
			body: map[string]any{
				"data": map[string]any{
					"tracks": map[string]any{
						"items":    []map[string]any{{"title": "x", "createdAt": "2026-04-01T10:00:00Z"}},
						"pageInfo": map[string]any{"hasNextPage": false},
					},
				},
			},
		},
		{
			name: "unparsable createdAt",
			body: map[string]any{
				"data": map[string]any{
					"tracks": map[string]any{
						"items":    []map[string]any{{"id": "a", "createdAt": "yesterday"}},
						"pageInfo": map[string]any{"hasNextPage": false},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()

			gock.New(catalogHost).
				Post("/graphql").
				Reply(200).
				JSON(tt.body)

			c := newTestClient(t, Config{})

			_, err := c.FetchTracks(context.Background(), nil, 10)
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestClient_FetchTracks_RetriesTransientFailure(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		Reply(500)
	gock.New(catalogHost).
		Post("/graphql").
		Reply(200).
		JSON(page([]string{"a"}, "", false))

	c := newTestClient(t, Config{
		RetryCount:   2,
		RetryWait:    time.Millisecond,
		RetryMaxWait: 5 * time.Millisecond,
	})

	batch, err := c.FetchTracks(context.Background(), nil, 10)
	require.NoError(t, err)
	require.Len(t, batch.Items, 1)
	require.True(t, gock.IsDone(), "both responses consumed: one failure, one retry")
}

func TestClient_FetchTracks_RetriesExhausted(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		Times(3).
		Reply(503)

	c := newTestClient(t, Config{
		RetryCount:   2,
		RetryWait:    time.Millisecond,
		RetryMaxWait: 5 * time.Millisecond,
	})

	_, err := c.FetchTracks(context.Background(), nil, 10)
	require.ErrorIs(t, err, ErrCatalogQuery)
}

func TestClient_FetchTracks_AuthHeader(t *testing.T) {
	defer gock.Off()

	gock.New(catalogHost).
		Post("/graphql").
		MatchHeader("Authorization", "Bearer secret-token").
		Reply(200).
		JSON(page(nil, "", false))

	c := newTestClient(t, Config{Token: "secret-token"})

	_, err := c.FetchTracks(context.Background(), nil, 10)
	require.NoError(t, err)
	require.True(t, gock.IsDone())
}
