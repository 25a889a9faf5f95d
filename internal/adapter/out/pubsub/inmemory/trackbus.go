package inmemory

import (
	"context"
	"sync"

	"trackmirror/internal/model"
)

// TrackBus fans newly mirrored tracks out to subscribers. Publish never
// blocks; a subscriber that falls behind its buffer misses tracks.
type TrackBus struct {
	mu   sync.RWMutex
	subs map[chan model.Track]struct{}
	buf  int
}

func New(buf int) *TrackBus {
	if buf <= 0 {
		buf = 64
	}
	return &TrackBus{
		subs: make(map[chan model.Track]struct{}),
		buf:  buf,
	}
}

func (b *TrackBus) Subscribe(ctx context.Context) (<-chan model.Track, error) {
	ch := make(chan model.Track, b.buf)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (b *TrackBus) Publish(_ context.Context, t model.Track) error {
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- t:
		default:
		}
	}
	b.mu.RUnlock()
	return nil
}
