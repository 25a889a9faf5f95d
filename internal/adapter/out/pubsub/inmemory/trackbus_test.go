package inmemory

import (
	"context"
	"testing"
	"time"

	"trackmirror/internal/model"

	"github.com/stretchr/testify/require"
)

func TestTrackBus_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := New(4)
	ctx := context.Background()

	first, err := bus.Subscribe(ctx)
	require.NoError(t, err)
	second, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	track := model.Track{ID: 1, RemoteID: "r1", Title: "t"}
	require.NoError(t, bus.Publish(ctx, track))

	select {
	case got := <-first:
		require.Equal(t, track, got)
	case <-time.After(time.Second):
		t.Fatal("first subscriber got nothing")
	}

	select {
	case got := <-second:
		require.Equal(t, track, got)
	case <-time.After(time.Second):
		t.Fatal("second subscriber got nothing")
	}
}

func TestTrackBus_SubscriberRemovedOnCancel(t *testing.T) {
	t.Parallel()

	bus := New(4)
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	// channel closes once the subscriber is detached
	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	// publishing afterwards must not panic on the closed channel
	require.NoError(t, bus.Publish(context.Background(), model.Track{ID: 2}))
}

func TestTrackBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	t.Parallel()

	bus := New(1)
	ctx := context.Background()

	_, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			_ = bus.Publish(ctx, model.Track{ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
