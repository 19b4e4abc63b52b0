// Package store holds the todo collection and the commands that change it.
package store

import (
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/sirupsen/logrus"
)

// Store owns a todo collection. It is not safe for concurrent use; callers
// dispatch from a single goroutine.
type Store struct {
	items []model.Item
	ids   IDSource
	log   *logrus.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the default Counter.
func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithLogger replaces the default "store" component logger.
func WithLogger(l *logrus.Entry) Option {
	return func(s *Store) { s.log = l }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		items: []model.Item{},
		ids:   &Counter{},
		log:   logging.NewLogger("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies cmd and replaces the collection with the result.
// A nil cmd does nothing.
func (s *Store) Dispatch(cmd Command) {
	if cmd == nil {
		s.log.Debug("nil command ignored")
		return
	}
	before := len(s.items)
	next := Apply(s.items, cmd, s.ids)

	fields := logrus.Fields{"cmd": cmd.String(), "before": before, "after": len(next)}
	if !changed(s.items, next) {
		s.log.WithFields(fields).Debug("no-op")
	} else {
		s.log.WithFields(fields).Debug("dispatch")
	}
	s.items = next
}

// Items returns a copy of the current collection.
func (s *Store) Items() []model.Item { return model.Clone(s.items) }

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Get returns the item with id.
func (s *Store) Get(id model.ID) (model.Item, bool) {
	if i := model.Index(s.items, id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Add appends text as a new item. It reports the new id, or false when text
// was blank and nothing was added.
func (s *Store) Add(text string) (model.ID, bool) {
	before := len(s.items)
	s.Dispatch(Add{Text: text})
	if len(s.items) == before {
		return 0, false
	}
	return s.items[len(s.items)-1].ID, true
}

func (s *Store) Delete(id model.ID)     { s.Dispatch(Delete{ID: id}) }
func (s *Store) ToggleDone(id model.ID) { s.Dispatch(ToggleDone{ID: id}) }
func (s *Store) StartEdit(id model.ID)  { s.Dispatch(StartEdit{ID: id}) }
func (s *Store) ClearAll()              { s.Dispatch(ClearAll{}) }

func (s *Store) CommitEdit(id model.ID, text string) {
	s.Dispatch(CommitEdit{ID: id, Text: text})
}

func changed(a, b []model.Item) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
