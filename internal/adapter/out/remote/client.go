// Package remote implements the outbound adapter for the upstream GraphQL
// track catalog. One FetchTracks call is one paginated query; transient
// failures (network errors, 429, 5xx) are retried with backoff at the
// transport level before surfacing.
package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trackmirror/internal/model"
	"trackmirror/pkg/pager"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

const tracksQuery = `query Tracks($after: String, $limit: Int!) {
  tracks(after: $after, limit: $limit) {
    items {
      id
      title
      artist
      durationMs
      createdAt
    }
    pageInfo {
      endCursor
      hasNextPage
    }
  }
}`

var (
	ErrMalformedResponse = errors.New("malformed catalog response")
	ErrCatalogQuery      = errors.New("catalog query failed")
	ErrInvalidConfig     = errors.New("invalid catalog config")
)

type Config struct {
	Endpoint       string `validate:"required,url"`
	Token          string
	RetryCount     int `validate:"gte=0"`
	RetryWait      time.Duration
	RetryMaxWait   time.Duration
	RequestTimeout time.Duration
}

type Client struct {
	http     *resty.Client
	endpoint string
}

func NewClient(cfg Config) (*Client, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	hc := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == 429 || r.StatusCode() >= 500
		})
	if cfg.Token != "" {
		hc.SetAuthToken(cfg.Token)
	}
	return &Client{http: hc, endpoint: cfg.Endpoint}, nil
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

type trackRecord struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	DurationMS int    `json:"durationMs"`
	CreatedAt  string `json:"createdAt"`
}

type pageInfo struct {
	EndCursor   *string `json:"endCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type tracksResponse struct {
	Data *struct {
		Tracks *struct {
			Items    []trackRecord `json:"items"`
			PageInfo *pageInfo     `json:"pageInfo"`
		} `json:"tracks"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

// FetchTracks requests one catalog page. A nil cursor requests the first
// page. The signature matches pager.Source[model.Track].
func (c *Client) FetchTracks(ctx context.Context, cursor *string, limit int) (pager.Batch[model.Track], error) {
	var none pager.Batch[model.Track]

	vars := map[string]any{"limit": limit}
	if cursor != nil && *cursor != "" {
		vars["after"] = *cursor
	}

	var out tracksResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(gqlRequest{Query: tracksQuery, Variables: vars}).
		SetResult(&out).
		Post(c.endpoint)
	if err != nil {
		return none, fmt.Errorf("%w: %v", ErrCatalogQuery, err)
	}
	if resp.IsError() {
		return none, fmt.Errorf("%w: status %s", ErrCatalogQuery, resp.Status())
	}
	if len(out.Errors) > 0 {
		return none, fmt.Errorf("%w: %s", ErrCatalogQuery, out.Errors[0].Message)
	}
	if out.Data == nil || out.Data.Tracks == nil || out.Data.Tracks.PageInfo == nil {
		return none, ErrMalformedResponse
	}

	items := make([]model.Track, 0, len(out.Data.Tracks.Items))
	for _, rec := range out.Data.Tracks.Items {
		t, err := rec.toModel()
		if err != nil {
			return none, err
		}
		items = append(items, t)
	}

	pi := out.Data.Tracks.PageInfo
	return pager.Batch[model.Track]{
		Items:      items,
		NextCursor: pi.EndCursor,
		HasNext:    pi.HasNextPage,
	}, nil
}

func (r trackRecord) toModel() (model.Track, error) {
	if r.ID == "" {
		return model.Track{}, fmt.Errorf("%w: record without id", ErrMalformedResponse)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return model.Track{}, fmt.Errorf("%w: createdAt of record %q: %v", ErrMalformedResponse, r.ID, err)
	}
	return model.Track{
		RemoteID:   r.ID,
		Title:      r.Title,
		Artist:     r.Artist,
		DurationMS: r.DurationMS,
		CreatedAt:  createdAt,
	}, nil
}
