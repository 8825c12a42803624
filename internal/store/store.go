package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// ErrClosed is returned by Dispatch and Snapshot after Close.
var ErrClosed = errors.New("store: closed")

type dispatchReq struct {
	action Action
	done   chan struct{}
}

type subReq struct {
	ch    chan State
	reply chan int
}

// Store owns the state tree. A single goroutine consumes a command queue
// and applies the reducer, so one dispatch completes fully before the next
// is served; there are no concurrent writers and no locks around the tree
// itself.
type Store struct {
	dispatchCh chan dispatchReq
	snapshotCh chan chan State
	subCh      chan subReq
	unsubCh    chan int

	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	log zerolog.Logger
}

// New starts a store owning the given initial state.
func New(initial State, log zerolog.Logger) *Store {
	s := &Store{
		dispatchCh: make(chan dispatchReq),
		snapshotCh: make(chan chan State),
		subCh:      make(chan subReq),
		unsubCh:    make(chan int),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		log:        log,
	}
	go s.run(initial)
	return s
}

func (s *Store) run(state State) {
	defer close(s.done)
	subs := make(map[int]chan State)
	nextSub := 0
	for {
		select {
		case req := <-s.dispatchCh:
			state = Reduce(state, req.action)
			s.log.Debug().
				Str("action", req.action.Name()).
				Bool("authenticated", state.Authenticated).
				Int("patients", len(state.Patients)).
				Msg("action applied")
			for _, ch := range subs {
				select {
				case ch <- state:
				default: // slow subscriber; drop rather than stall the queue
				}
			}
			close(req.done)

		case reply := <-s.snapshotCh:
			reply <- state

		case req := <-s.subCh:
			subs[nextSub] = req.ch
			req.reply <- nextSub
			nextSub++

		case id := <-s.unsubCh:
			if ch, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}

		case <-s.quit:
			for _, ch := range subs {
				close(ch)
			}
			return
		}
	}
}

// Dispatch applies the action and returns once the reducer has run.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	req := dispatchReq{action: a, done: make(chan struct{})}
	select {
	case s.dispatchCh <- req:
	case <-s.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-req.done:
		return nil
	case <-s.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state value. Collections inside it are
// produced copy-on-write by the reducer, so a snapshot is safe to read for
// as long as the caller likes.
func (s *Store) Snapshot() State {
	reply := make(chan State, 1)
	select {
	case s.snapshotCh <- reply:
		return <-reply
	case <-s.quit:
		return Initial()
	}
}

// Subscribe registers for post-dispatch state notifications. The returned
// cancel func releases the subscription; the channel closes on cancel or
// store close. Notifications to a full channel are dropped.
func (s *Store) Subscribe(buffer int) (<-chan State, func()) {
	if buffer < 1 {
		buffer = 1
	}
	req := subReq{ch: make(chan State, buffer), reply: make(chan int, 1)}
	select {
	case s.subCh <- req:
	case <-s.quit:
		close(req.ch)
		return req.ch, func() {}
	}
	id := <-req.reply
	cancel := func() {
		select {
		case s.unsubCh <- id:
		case <-s.quit:
		}
	}
	return req.ch, cancel
}

// Close stops the owner goroutine. Pending and subsequent dispatches fail
// with ErrClosed.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
	<-s.done
}
