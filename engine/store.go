package engine

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidEntity reports a component write against an entity id the
// store never issued
var ErrInvalidEntity = errors.New("invalid entity")

// column is the type-erased handle to one component collection. The
// store only needs the untyped grow-by-one capability when entities are
// created; typed reads and writes recover the concrete column through
// the generic accessors
type column interface {
	appendAbsent()
	length() int
}

// slot pairs a component value with its presence flag. A flag rather
// than a pointer keeps the collection dense with no per-component
// allocation
type slot[T any] struct {
	present bool
	value   T
}

// denseColumn is the per-type parallel array of optional component
// values, indexed by entity id. Its length always equals the owning
// store's entity count
type denseColumn[T any] struct {
	slots []slot[T]
}

func (c *denseColumn[T]) appendAbsent() {
	c.slots = append(c.slots, slot[T]{})
}

func (c *denseColumn[T]) length() int {
	return len(c.slots)
}

// Store owns every component collection, one per component type ever
// written, plus the running entity count. Component data lives only in
// the store; entities index into it. The store is single-threaded by
// design: callers sharing one across goroutines must serialize access
// themselves
type Store struct {
	entityCount int
	columns     map[reflect.Type]column
}

// NewStore creates an empty store with no entities and no registered
// component types
func NewStore() *Store {
	return &Store{
		columns: make(map[reflect.Type]column),
	}
}

// NewEntity appends one absent slot to every registered collection and
// returns the new entity's id, which equals the prior entity count.
// Never fails
func (s *Store) NewEntity() Entity {
	e := Entity(s.entityCount)
	for _, c := range s.columns {
		c.appendAbsent()
	}
	s.entityCount++
	return e
}

// EntityCount reports how many entities have been created. Entities are
// never destroyed, so the count only grows
func (s *Store) EntityCount() int {
	return s.entityCount
}

// typeKey resolves the registry key for component type T
func typeKey[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// columnOf finds the collection for T, registering an empty one
// backfilled with absent slots for all existing entities on first use
func columnOf[T any](s *Store) *denseColumn[T] {
	t := typeKey[T]()
	if c, ok := s.columns[t]; ok {
		return c.(*denseColumn[T])
	}
	c := &denseColumn[T]{slots: make([]slot[T], s.entityCount)}
	s.columns[t] = c
	return c
}

// lookupColumn finds the collection for T without registering one
func lookupColumn[T any](s *Store) (*denseColumn[T], bool) {
	c, ok := s.columns[typeKey[T]()]
	if !ok {
		return nil, false
	}
	return c.(*denseColumn[T]), true
}

// AddComponent stores v as entity e's component of type T, overwriting
// any prior T at that slot. The first write of a given type registers
// its collection, backfilled with absent slots for every entity created
// so far. Ids should only come from NewEntity; a write against any
// other id returns ErrInvalidEntity and mutates nothing, so the
// equal-length invariant across collections survives every call
// sequence
func AddComponent[T any](s *Store, e Entity, v T) error {
	if uint64(e) >= uint64(s.entityCount) {
		return fmt.Errorf("add %v at entity %d with %d entities: %w",
			typeKey[T](), e, s.entityCount, ErrInvalidEntity)
	}
	c := columnOf[T](s)
	c.slots[e].present = true
	c.slots[e].value = v
	return nil
}

// GetComponent returns a pointer to entity e's component of type T.
// The second return is false when e is beyond the entity count, T was
// never registered, or the slot is absent; none of these are errors.
// The pointer aliases store-owned memory: it stays valid only until
// the next NewEntity or AddComponent call, which may relocate the
// collection
func GetComponent[T any](s *Store, e Entity) (*T, bool) {
	if uint64(e) >= uint64(s.entityCount) {
		return nil, false
	}
	c, ok := lookupColumn[T](s)
	if !ok {
		return nil, false
	}
	sl := &c.slots[e]
	if !sl.present {
		return nil, false
	}
	return &sl.value, true
}
