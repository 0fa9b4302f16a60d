package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Kind string

const (
	KindQuestCompleted Kind = "quest_completed"
	KindStreakExtended Kind = "streak_extended"
)

type QuestCompleted struct {
	QuestID string `json:"questId"`
	Title   string `json:"title"`
	Reward  int    `json:"reward"`
	Weekly  bool   `json:"weekly"`
}

type StreakExtended struct {
	NewStreak int `json:"newStreak"`
}

type Notification struct {
	ID             string          `json:"id"`
	Kind           Kind            `json:"kind"`
	QuestCompleted *QuestCompleted `json:"questCompleted,omitempty"`
	StreakExtended *StreakExtended `json:"streakExtended,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func NewQuestCompleted(q QuestCompleted, now time.Time) Notification {
	return Notification{
		ID:             uuid.NewString(),
		Kind:           KindQuestCompleted,
		QuestCompleted: &q,
		CreatedAt:      now,
	}
}

func NewStreakExtended(newStreak int, now time.Time) Notification {
	return Notification{
		ID:             uuid.NewString(),
		Kind:           KindStreakExtended,
		StreakExtended: &StreakExtended{NewStreak: newStreak},
		CreatedAt:      now,
	}
}

// Sink receives notifications for the view layer. Implementations must not block.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

type LogSink struct{}

func (LogSink) Notify(_ context.Context, n Notification) {
	switch n.Kind {
	case KindQuestCompleted:
		log.Infof("quest completed: %s (+%d diamonds)", n.QuestCompleted.Title, n.QuestCompleted.Reward)
	case KindStreakExtended:
		log.Infof("streak extended: %d days", n.StreakExtended.NewStreak)
	default:
		log.Debugf("notification: %s", n.Kind)
	}
}

// Multi fans a notification out to every sink, in order.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, s := range m {
		s.Notify(ctx, n)
	}
}
