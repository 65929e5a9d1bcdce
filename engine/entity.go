package engine

// Entity identifies one entity in a Store. Ids are issued sequentially
// by Store.NewEntity starting at zero and are never reused; an entity
// carries no data of its own, it only indexes the component collections
type Entity uint64
