package engine

// EntityBuilder provides a fluent, type-safe interface for constructing
// an entity with its components. The entity id is allocated upfront;
// each With call writes one component and the first write failure is
// carried to Build.
//
// Methods cannot take type parameters, so With is a package function
// taking the builder as its first argument:
//
//	b := store.Spawn()
//	engine.With(b, components.Mesh{...})
//	engine.With(b, components.Material{...})
//	earth, err := b.Build()
type EntityBuilder struct {
	store  *Store
	entity Entity
	err    error
}

// Spawn creates a new entity immediately and returns a builder for
// attaching its components
func (s *Store) Spawn() *EntityBuilder {
	return &EntityBuilder{
		store:  s,
		entity: s.NewEntity(),
	}
}

// With attaches a component of type T to the entity under construction.
// Once any attachment has failed, later calls are no-ops so the first
// error reaches Build intact
func With[T any](eb *EntityBuilder, component T) *EntityBuilder {
	if eb.err == nil {
		eb.err = AddComponent(eb.store, eb.entity, component)
	}
	return eb
}

// Build finalizes construction, returning the entity id and the first
// component write error, if any. The entity exists either way; ids are
// never rolled back
func (eb *EntityBuilder) Build() (Entity, error) {
	return eb.entity, eb.err
}
