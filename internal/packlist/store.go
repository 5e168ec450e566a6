// Package packlist holds the packing-list state and the views derived from it.
package packlist

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/packing/internal/model"
)

// Store owns the ordered item collection. Every effective mutation installs a
// fresh backing slice, so a snapshot returned by Items is never written to.
//
// Store is not safe for concurrent use; the UI drives it from one goroutine.
type Store struct {
	items   []model.Item
	version uint64
	newID   func() string
	log     *zap.Logger
	seed    []model.Item
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the UUID generator (tests use a counter).
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger attaches a logger for mutation tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithItems seeds the store, typically from a saved list. Entries that break
// the item invariants or repeat an id are dropped.
func WithItems(items []model.Item) Option {
	return func(s *Store) {
		s.seed = items
	}
}

// NewStore returns an empty store unless WithItems says otherwise.
func NewStore(opts ...Option) *Store {
	s := &Store{
		items: []model.Item{},
		newID: uuid.NewString,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	if s.seed != nil {
		s.items = s.sanitize(s.seed)
		s.seed = nil
	}
	return s
}

func (s *Store) sanitize(items []model.Item) []model.Item {
	seen := make(map[string]bool, len(items))
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		it.Description = strings.TrimSpace(it.Description)
		if !it.Valid() || seen[it.ID] {
			s.log.Warn("dropping invalid item",
				zap.String("id", it.ID),
				zap.String("description", it.Description),
				zap.Int("quantity", it.Quantity))
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

// Items returns the current snapshot in input order.
func (s *Store) Items() []model.Item { return s.items }

// Len is the number of items.
func (s *Store) Len() int { return len(s.items) }

// Version increases on every mutation that changed the collection.
func (s *Store) Version() uint64 { return s.version }

// Get looks up an item by id.
func (s *Store) Get(id string) (model.Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Add appends a new unpacked item. An empty description is rejected and
// reported with ok=false; quantity is clamped to the allowed range.
func (s *Store) Add(description string, quantity int) (model.Item, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		s.log.Debug("add rejected: empty description")
		return model.Item{}, false
	}
	it := model.Item{
		ID:          s.uniqueID(),
		Description: description,
		Quantity:    model.ClampQuantity(quantity),
	}
	next := make([]model.Item, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.commit(append(next, it))
	s.log.Debug("item added", zap.String("id", it.ID), zap.Int("quantity", it.Quantity))
	return it, true
}

// Remove deletes the item with the given id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	next := make([]model.Item, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.commit(next)
	s.log.Debug("item removed", zap.String("id", id))
}

// TogglePacked flips the packed flag of the item with the given id.
// Unknown ids are ignored.
func (s *Store) TogglePacked(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	next := make([]model.Item, len(s.items))
	copy(next, s.items)
	next[i].Packed = !next[i].Packed
	s.commit(next)
	s.log.Debug("item toggled", zap.String("id", id), zap.Bool("packed", next[i].Packed))
}

// Clear empties the list.
func (s *Store) Clear() {
	if len(s.items) == 0 {
		return
	}
	n := len(s.items)
	s.commit([]model.Item{})
	s.log.Debug("list cleared", zap.Int("removed", n))
}

func (s *Store) commit(next []model.Item) {
	s.items = next
	s.version++
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// uniqueID retries the generator on a clash so a poor IDFunc cannot break
// id uniqueness.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}
