package notify

import (
	"context"
	"sync"
)

const DefaultFeedSize = 50

// Feed keeps the most recent notifications until the client drains them.
type Feed struct {
	mu    sync.Mutex
	size  int
	items []Notification
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{
		size:  size,
		items: make([]Notification, 0, size),
	}
}

func (f *Feed) Notify(_ context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) == f.size {
		// drop oldest
		copy(f.items, f.items[1:])
		f.items = f.items[:len(f.items)-1]
	}
	f.items = append(f.items, n)
}

// Recent returns up to limit newest notifications, oldest first, without removing them.
func (f *Feed) Recent(limit int) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	if limit <= 0 || limit > len(f.items) {
		limit = len(f.items)
	}
	out := make([]Notification, limit)
	copy(out, f.items[len(f.items)-limit:])
	return out
}

// Drain returns all pending notifications and empties the feed.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.items
	f.items = make([]Notification, 0, f.size)
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
