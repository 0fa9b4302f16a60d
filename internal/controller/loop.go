package controller

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultTickInterval = time.Second

var ErrLoopStopped = errors.New("event loop stopped")

type ticker interface {
	Tick(ctx context.Context, deltaSeconds int)
}

type command struct {
	ctx  context.Context
	fn   func(ctx context.Context)
	done chan struct{}
}

// Loop is the single goroutine that mutates session and progression state.
// Every tick and every submitted command runs on it, one at a time.
type Loop struct {
	target   ticker
	interval time.Duration
	commands chan command
	stopped  chan struct{}
}

func NewLoop(target ticker, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Loop{
		target:   target,
		interval: interval,
		commands: make(chan command),
		stopped:  make(chan struct{}),
	}
}

// Run ticks the target once per interval and executes submitted commands
// until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.stopped)

	t := time.NewTicker(l.interval)
	defer t.Stop()

	log.Debugf("event loop started, tick interval %s", l.interval)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("event loop stopped")
			return
		case <-t.C:
			l.target.Tick(ctx, 1)
		case cmd := <-l.commands:
			cmd.fn(cmd.ctx)
			close(cmd.done)
		}
	}
}

// Submit runs fn on the loop and waits for it to return. Once the loop
// accepted fn, Submit waits for it even if ctx is cancelled meanwhile.
func (l *Loop) Submit(ctx context.Context, fn func(ctx context.Context)) error {
	cmd := command{
		ctx:  ctx,
		fn:   fn,
		done: make(chan struct{}),
	}

	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrLoopStopped
	}

	<-cmd.done
	return nil
}
