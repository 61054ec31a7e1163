package orderbook

// Index is the O(1) order_id -> resident Order mapping. Every order
// inserted into a SideBook has exactly one entry here, mirrored by the
// engine on every insert and removal.
type Index struct {
	byID map[uint64]*Order
}

// NewIndex constructs an empty index sized for the given expected
// capacity (a hint only; the map still grows as needed).
func NewIndex(capacityHint int) *Index {
	return &Index{byID: make(map[uint64]*Order, capacityHint)}
}

// Get returns the resident order for id, if any.
func (ix *Index) Get(id uint64) (*Order, bool) {
	o, ok := ix.byID[id]
	return o, ok
}

// Put registers o under its ID. The caller must ensure the ID is not
// already present (see engine.ErrDuplicateOrderID).
func (ix *Index) Put(o *Order) {
	ix.byID[o.ID] = o
}

// Delete erases the entry for id.
func (ix *Index) Delete(id uint64) {
	delete(ix.byID, id)
}

// Len returns the number of resident orders currently indexed.
func (ix *Index) Len() int {
	return len(ix.byID)
}
