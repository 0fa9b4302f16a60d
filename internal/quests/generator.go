package quests

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultDailyCount  = 3
	DefaultWeeklyCount = 3
)

// Generate draws count quests of distinct types from pool.
func Generate(rng *rand.Rand, pool []Type, count int, weekly bool, now time.Time) ([]Quest, error) {
	distinct := make([]Type, 0, len(pool))
	seen := make(map[Type]bool, len(pool))
	for _, t := range pool {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
		}
		if !seen[t] {
			seen[t] = true
			distinct = append(distinct, t)
		}
	}
	if count < 0 || count > len(distinct) {
		return nil, fmt.Errorf("%w: want %d, pool has %d", ErrPoolTooSmall, count, len(distinct))
	}

	rng.Shuffle(len(distinct), func(i, j int) {
		distinct[i], distinct[j] = distinct[j], distinct[i]
	})

	generated := make([]Quest, 0, count)
	for _, t := range distinct[:count] {
		r, _ := t.rule()
		tr := r.daily
		if weekly {
			tr = r.weekly
		}

		target := tr.min + rng.IntN(tr.max-tr.min+1)
		reward := Rewards[rng.IntN(len(Rewards))]
		if weekly {
			reward *= weeklyRewardMultiplier
		}

		generated = append(generated, Quest{
			ID:       uuid.NewString(),
			Type:     t,
			Title:    fmt.Sprintf(r.title, target),
			Target:   target,
			Reward:   reward,
			Weekly:   weekly,
			IssuedAt: now,
		})
	}

	return generated, nil
}

type Generator struct {
	rng         *rand.Rand
	pool        []Type
	dailyCount  int
	weeklyCount int
}

type GeneratorOption func(*Generator)

func WithPool(pool []Type) GeneratorOption {
	return func(g *Generator) {
		g.pool = append([]Type(nil), pool...)
	}
}

func WithCounts(daily, weekly int) GeneratorOption {
	return func(g *Generator) {
		g.dailyCount = daily
		g.weeklyCount = weekly
	}
}

func NewGenerator(rng *rand.Rand, opts ...GeneratorOption) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	g := &Generator{
		rng:         rng,
		pool:        AllTypes,
		dailyCount:  DefaultDailyCount,
		weeklyCount: DefaultWeeklyCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Daily(now time.Time) ([]Quest, error) {
	return Generate(g.rng, g.pool, g.dailyCount, false, now)
}

func (g *Generator) Weekly(now time.Time) ([]Quest, error) {
	return Generate(g.rng, g.pool, g.weeklyCount, true, now)
}
