package theme

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/onceui/internal/logger"
	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

// Change describes one applied mutation.
type Change struct {
	Previous Config
	Current  Config
	// Attributes lists the attributes whose value changed, in display order.
	Attributes []string
}

// Changed reports whether any attribute changed.
func (c Change) Changed() bool {
	return len(c.Attributes) > 0
}

// Handler is notified after a mutation has been applied.
type Handler func(ctx context.Context, change Change)

// Subscription cancels a handler registration.
type Subscription interface {
	Unsubscribe()
}

// Store owns the process-wide theme. All mutations go through Update, which
// validates the candidate config before it becomes visible and then notifies
// subscribers outside the lock.
type Store struct {
	mu      sync.RWMutex
	cfg     Config
	version uint64
	log     *logger.Logger
	subs    []subscriptionEntry
	nextID  int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger logs each applied attribute change at info level.
func WithLogger(log *logger.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a store seeded with cfg. Unset attributes take their
// defaults; invalid values are rejected.
func NewStore(cfg Config, opts ...StoreOption) (*Store, error) {
	cfg = cfg.Normalize()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	s := &Store{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns a snapshot of the current theme.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies mutate to a copy of the current config. The result must
// validate; otherwise the store is left untouched and the error returned.
// Subscribers are only notified when at least one attribute changed.
//
// mutate runs without the store lock held, so it may read the store. When
// another update commits first, mutate is run again against the newer
// config; it must not have side effects beyond the *Config it is given.
func (s *Store) Update(ctx context.Context, mutate func(*Config)) (Change, error) {
	if mutate == nil {
		if err := ctx.Err(); err != nil {
			return Change{}, err
		}
		cfg := s.Config()
		return Change{Previous: cfg, Current: cfg}, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return Change{}, err
		}

		prev, version := s.snapshot()
		next := prev
		mutate(&next)
		if err := Validate(next); err != nil {
			return Change{}, err
		}

		change := Change{Previous: prev, Current: next}
		for _, a := range attributes {
			if *a.field(&prev) != *a.field(&next) {
				change.Attributes = append(change.Attributes, a.name)
			}
		}

		handlers, committed := s.commit(version, change)
		if !committed {
			continue
		}
		if !change.Changed() {
			return change, nil
		}

		for _, name := range change.Attributes {
			from, _ := prev.Get(name)
			to, _ := next.Get(name)
			s.log.WithFields(map[string]any{
				"attribute": name,
				"from":      from,
				"to":        to,
			}).Info("theme attribute changed")
		}

		for _, entry := range handlers {
			entry.handler(ctx, change)
		}
		return change, nil
	}
}

func (s *Store) snapshot() (Config, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.version
}

// commit stores change.Current if nothing was committed since version and
// returns the handlers to notify.
func (s *Store) commit(version uint64, change Change) ([]subscriptionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != version {
		return nil, false
	}
	if !change.Changed() {
		return nil, true
	}
	s.cfg = change.Current
	s.version++
	return append([]subscriptionEntry(nil), s.subs...), true
}

// Set assigns one attribute through Update.
func (s *Store) Set(ctx context.Context, name, value string) (Change, error) {
	if _, ok := lookup(name); !ok {
		return Change{}, onceerrors.NewThemeError(name, value, ErrUnknownAttribute)
	}
	return s.Update(ctx, func(c *Config) {
		_ = c.Set(name, value)
	})
}

// Cycle moves an attribute step options forward (or backward when step is
// negative), wrapping around. The next option is computed from the config
// being committed, so concurrent cycles never lose a step.
func (s *Store) Cycle(ctx context.Context, name string, step int) (Change, error) {
	a, ok := lookup(name)
	if !ok {
		return Change{}, onceerrors.NewThemeError(name, "", ErrUnknownAttribute)
	}
	return s.Update(ctx, func(c *Config) {
		*a.field(c) = nextOption(a.options, *a.field(c), step)
	})
}

func nextOption(options []string, current string, step int) string {
	index := 0
	for i, option := range options {
		if option == current {
			index = i
			break
		}
	}
	n := len(options)
	return options[((index+step)%n+n)%n]
}

// Subscribe registers a handler for applied changes.
func (s *Store) Subscribe(handler Handler) Subscription {
	if handler == nil {
		return noopSubscription{}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriptionEntry{id: id, handler: handler})
	s.mu.Unlock()

	return subscription{
		cancel: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, entry := range s.subs {
				if entry.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
