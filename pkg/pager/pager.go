// Package pager implements a sequential consumer for cursor-paginated
// remote sources: issue a request with the current cursor, accumulate the
// returned batch, repeat until the source reports no further pages.
package pager

import (
	"context"
	"errors"
	"fmt"
)

const (
	DefaultPageSize = 100
	DefaultMaxPages = 1000
)

var (
	// ErrPageLimit is returned when the source still reports more pages
	// after the configured maximum number of requests.
	ErrPageLimit = errors.New("page limit exceeded")

	// ErrMissingCursor is returned when the source reports more pages but
	// provides no cursor to request them with.
	ErrMissingCursor = errors.New("source reports more pages but returned no cursor")
)

// Batch is one page of records returned by a single request.
type Batch[T any] struct {
	Items      []T
	NextCursor *string
	HasNext    bool
}

// Source issues one paginated request. The cursor is nil on the first call;
// limit is a page-size hint the remote side may clamp.
type Source[T any] func(ctx context.Context, cursor *string, limit int) (Batch[T], error)

type options struct {
	pageSize int
	maxPages int
}

type Option func(*options)

func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithMaxPages bounds the number of requests a single iteration may issue.
// A source that never reports completion fails with ErrPageLimit instead of
// looping forever.
func WithMaxPages(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPages = n
		}
	}
}

// Iterator walks a cursor chain one batch at a time. Requests are strictly
// sequential: each one carries the cursor returned by the previous response.
type Iterator[T any] struct {
	src    Source[T]
	opts   options
	cursor *string
	pages  int
	done   bool
}

func NewIterator[T any](src Source[T], opts ...Option) *Iterator[T] {
	o := options{pageSize: DefaultPageSize, maxPages: DefaultMaxPages}
	for _, f := range opts {
		f(&o)
	}
	return &Iterator[T]{src: src, opts: o}
}

// Next fetches the next batch. It returns nil items once the chain is
// exhausted. Any source error ends the iteration.
func (it *Iterator[T]) Next(ctx context.Context) ([]T, error) {
	if it.done {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		it.done = true
		return nil, err
	}
	if it.pages >= it.opts.maxPages {
		it.done = true
		return nil, fmt.Errorf("%w: %d requests issued and the source still reports more", ErrPageLimit, it.pages)
	}

	batch, err := it.src(ctx, it.cursor, it.opts.pageSize)
	if err != nil {
		it.done = true
		return nil, err
	}
	it.pages++

	if !batch.HasNext {
		it.done = true
		return batch.Items, nil
	}
	if batch.NextCursor == nil || *batch.NextCursor == "" {
		it.done = true
		return nil, ErrMissingCursor
	}
	it.cursor = batch.NextCursor
	return batch.Items, nil
}

// Done reports whether the cursor chain is exhausted or failed.
func (it *Iterator[T]) Done() bool { return it.done }

// Pages is the number of requests issued so far.
func (it *Iterator[T]) Pages() int { return it.pages }

// FetchAll drains the whole cursor chain and returns every record in fetch
// order. A failed request aborts the operation; no partial result is
// returned.
func FetchAll[T any](ctx context.Context, src Source[T], opts ...Option) ([]T, error) {
	it := NewIterator(src, opts...)

	var out []T
	for !it.Done() {
		items, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}
