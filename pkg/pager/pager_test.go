package pager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource serves records split into the given batch sizes, chaining
// cursors p1, p2, ... and recording every cursor it was called with.
type fakeSource struct {
	records []int
	sizes   []int
	calls   []*string
}

func (f *fakeSource) fetch(_ context.Context, cursor *string, _ int) (Batch[int], error) {
	f.calls = append(f.calls, cursor)

	page := 0
	if cursor != nil {
		if _, err := fmt.Sscanf(*cursor, "p%d", &page); err != nil {
			return Batch[int]{}, fmt.Errorf("unexpected cursor %q", *cursor)
		}
	}

	start := 0
	for i := 0; i < page; i++ {
		start += f.sizes[i]
	}
	end := start + f.sizes[page]
	if end > len(f.records) {
		end = len(f.records)
	}

	batch := Batch[int]{Items: f.records[start:end]}
	if page < len(f.sizes)-1 {
		next := fmt.Sprintf("p%d", page+1)
		batch.NextCursor = &next
		batch.HasNext = true
	}
	return batch, nil
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestFetchAll_AllRecordsInOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		sizes []int
	}{
		{name: "single batch", total: 5, sizes: []int{5}},
		{name: "even split", total: 12, sizes: []int{4, 4, 4}},
		{name: "uneven split", total: 10, sizes: []int{1, 6, 3}},
		{name: "trailing empty batch", total: 7, sizes: []int{4, 3, 0}},
		{name: "many small batches", total: 9, sizes: []int{2, 2, 2, 2, 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{records: seq(tt.total), sizes: tt.sizes}

			got, err := FetchAll(context.Background(), src.fetch)
			require.NoError(t, err)
			require.Equal(t, seq(tt.total), got)
			require.Len(t, src.calls, len(tt.sizes))
		})
	}
}

func TestFetchAll_EmptyFirstPage(t *testing.T) {
	t.Parallel()

	src := &fakeSource{records: nil, sizes: []int{0}}

	got, err := FetchAll(context.Background(), src.fetch)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Len(t, src.calls, 1, "a source with no records is asked exactly once")
}

func TestFetchAll_ThreeBatchesCursorChain(t *testing.T) {
	t.Parallel()

	// fixed 2/2/1 split: requests carry nil, then C1, then C2; the third
	// response ends the chain
	src := &fakeSource{records: seq(5), sizes: []int{2, 2, 1}}

	got, err := FetchAll(context.Background(), src.fetch)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, got)

	require.Len(t, src.calls, 3)
	require.Nil(t, src.calls[0])
	require.Equal(t, "p1", *src.calls[1])
	require.Equal(t, "p2", *src.calls[2])
}

func TestFetchAll_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := FetchAll(context.Background(), (&fakeSource{records: seq(23), sizes: []int{10, 10, 3}}).fetch)
	require.NoError(t, err)

	second, err := FetchAll(context.Background(), (&fakeSource{records: seq(23), sizes: []int{10, 10, 3}}).fetch)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestFetchAll_NeverCompletingSource(t *testing.T) {
	t.Parallel()

	calls := 0
	endless := func(_ context.Context, _ *string, _ int) (Batch[int], error) {
		calls++
		c := fmt.Sprintf("c%d", calls)
		return Batch[int]{Items: []int{calls}, NextCursor: &c, HasNext: true}, nil
	}

	_, err := FetchAll(context.Background(), endless, WithMaxPages(10))
	require.ErrorIs(t, err, ErrPageLimit)
	require.Equal(t, 10, calls)
}

func TestFetchAll_SourceErrorIsFatal(t *testing.T) {
	t.Parallel()

	boom := errors.New("remote unavailable")
	calls := 0
	src := func(_ context.Context, cursor *string, _ int) (Batch[int], error) {
		calls++
		if calls == 2 {
			return Batch[int]{}, boom
		}
		c := "c1"
		return Batch[int]{Items: []int{1, 2}, NextCursor: &c, HasNext: true}, nil
	}

	got, err := FetchAll(context.Background(), src)
	require.ErrorIs(t, err, boom)
	require.Nil(t, got, "no partial result on failure")
	require.Equal(t, 2, calls)
}

func TestFetchAll_MissingCursor(t *testing.T) {
	t.Parallel()

	src := func(_ context.Context, _ *string, _ int) (Batch[int], error) {
		return Batch[int]{Items: []int{1}, HasNext: true}, nil
	}

	_, err := FetchAll(context.Background(), src)
	require.ErrorIs(t, err, ErrMissingCursor)
}

func TestFetchAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{records: seq(3), sizes: []int{3}}
	_, err := FetchAll(ctx, src.fetch)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, src.calls)
}

func TestIterator_PageSizeHintPassedThrough(t *testing.T) {
	t.Parallel()

	var gotLimit int
	src := func(_ context.Context, _ *string, limit int) (Batch[int], error) {
		gotLimit = limit
		return Batch[int]{}, nil
	}

	it := NewIterator(src, WithPageSize(25))
	_, err := it.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, 25, gotLimit)
	require.True(t, it.Done())
	require.Equal(t, 1, it.Pages())
}
