package logbook

// Record is anything a Collection can hold, keyed by its server id.
type Record interface {
	RecordKey() string
}

// Collection holds one user's records of a single kind: a mapping from
// id to record plus the arrival order used for display. Last write wins
// per key.
type Collection[T Record] struct {
	byID  map[string]T
	order []string
}

func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{
		byID: make(map[string]T),
	}
}

// Insert adds a record, keeping its existing position when a record
// with the same id is already present. Applying the same insert twice
// leaves the collection as if it were applied once.
func (c *Collection[T]) Insert(rec T) {
	id := rec.RecordKey()
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = rec
}

// Update replaces the record with the same id in place. No-op when the
// id is not present.
func (c *Collection[T]) Update(rec T) {
	id := rec.RecordKey()
	if _, ok := c.byID[id]; !ok {
		return
	}
	c.byID[id] = rec
}

// Delete removes the record with the given id. No-op when absent.
func (c *Collection[T]) Delete(id string) {
	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Collection[T]) Get(id string) (T, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

func (c *Collection[T]) Len() int {
	return len(c.byID)
}

// Records returns the records in arrival order.
func (c *Collection[T]) Records() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Reset replaces the whole collection with the given snapshot, in
// snapshot order.
func (c *Collection[T]) Reset(recs []T) {
	c.byID = make(map[string]T, len(recs))
	c.order = c.order[:0]
	for _, rec := range recs {
		c.Insert(rec)
	}
}
