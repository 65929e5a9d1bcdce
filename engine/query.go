package engine

// Queries walk the component collections in one linear pass, pairing
// slots by index. Cost is O(entity count) regardless of match count,
// which also fixes the observable order: results ascend by entity id
// with no relation to component insertion order. Scene sizes here are
// small enough that no index is kept

// QueryWith returns every entity holding both a present T1 and a
// present T2, ascending by id. A type never written has no collection,
// so no entity can hold it and the result is empty
func QueryWith[T1, T2 any](s *Store) []Entity {
	c1, ok := lookupColumn[T1](s)
	if !ok {
		return nil
	}
	c2, ok := lookupColumn[T2](s)
	if !ok {
		return nil
	}
	var out []Entity
	for i := range c1.slots {
		if c1.slots[i].present && c2.slots[i].present {
			out = append(out, Entity(i))
		}
	}
	return out
}

// QueryWithOnly returns every entity holding a present T1 but no
// present T2, ascending by id. When T2 was never registered the whole
// collection is treated as absent, so every T1 holder qualifies
func QueryWithOnly[T1, T2 any](s *Store) []Entity {
	c1, ok := lookupColumn[T1](s)
	if !ok {
		return nil
	}
	c2, haveC2 := lookupColumn[T2](s)
	var out []Entity
	for i := range c1.slots {
		if !c1.slots[i].present {
			continue
		}
		if haveC2 && c2.slots[i].present {
			continue
		}
		out = append(out, Entity(i))
	}
	return out
}
