package notify_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/2beens/gymquest/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_BoundedAndDrain(t *testing.T) {
	ctx := context.Background()
	feed := notify.NewFeed(3)
	now := time.Now()

	for i := 1; i <= 5; i++ {
		feed.Notify(ctx, notify.NewStreakExtended(i, now))
	}
	assert.Equal(t, 3, feed.Len())

	recent := feed.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 4, recent[0].StreakExtended.NewStreak)
	assert.Equal(t, 5, recent[1].StreakExtended.NewStreak)
	assert.Len(t, feed.Recent(0), 3)

	drained := feed.Drain()
	require.Len(t, drained, 3)
	assert.Equal(t, 3, drained[0].StreakExtended.NewStreak)
	assert.Zero(t, feed.Len())
	assert.Empty(t, feed.Drain())
}

func TestFeed_ConcurrentNotify(t *testing.T) {
	ctx := context.Background()
	feed := notify.NewFeed(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			feed.Notify(ctx, notify.NewQuestCompleted(notify.QuestCompleted{
				QuestID: fmt.Sprintf("q%d", i),
				Title:   "Complete 3 workouts",
				Reward:  10,
			}, time.Now()))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, feed.Len())
}

func TestMulti(t *testing.T) {
	ctx := context.Background()
	a, b := notify.NewFeed(10), notify.NewFeed(10)
	sink := notify.Multi{notify.LogSink{}, a, b}

	n := notify.NewQuestCompleted(notify.QuestCompleted{QuestID: "q", Title: "Train for 10 minutes", Reward: 25}, time.Now())
	sink.Notify(ctx, n)
	sink.Notify(ctx, notify.NewStreakExtended(4, time.Now()))

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, notify.KindQuestCompleted, a.Recent(0)[0].Kind)
	assert.Equal(t, n.ID, b.Recent(0)[0].ID)
}
