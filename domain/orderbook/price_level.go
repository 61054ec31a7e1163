package orderbook

// PriceLevel is a FIFO queue of resident orders sharing one price on one
// side. TotalQuantity tracks the sum of member quantities and is kept in
// lock-step with every mutation so callers never need to re-sum.
type PriceLevel struct {
	Price PriceInt

	head *Order
	tail *Order

	TotalQuantity uint64
	Count         int
}

// Enqueue appends a newly-admitted order to the tail of the FIFO.
func (lvl *PriceLevel) Enqueue(o *Order) {
	o.next = nil
	o.prev = lvl.tail
	if lvl.tail != nil {
		lvl.tail.next = o
	} else {
		lvl.head = o
	}
	lvl.tail = o
	lvl.TotalQuantity += o.Quantity
	lvl.Count++
}

// Head returns the oldest resident order, or nil if the level is empty.
func (lvl *PriceLevel) Head() *Order {
	return lvl.head
}

// Drain reduces the head order's quantity by qty (a trade), keeping
// TotalQuantity consistent. The caller (the matching loop) must only ever
// call this against the current head. If the head's quantity reaches
// zero it is unlinked and Drain reports fullyFilled=true; the caller is
// then responsible for erasing the order from the OrderIndex and
// releasing its pool slot before the level is observed again.
func (lvl *PriceLevel) Drain(o *Order, qty uint64) (fullyFilled bool) {
	o.Quantity -= qty
	lvl.TotalQuantity -= qty
	if o.Quantity > 0 {
		return false
	}
	lvl.unlink(o)
	lvl.Count--
	return true
}

// AdjustQuantity mutates a resident order's quantity in place, preserving
// its FIFO position. Used by in-place (same-price) amends.
func (lvl *PriceLevel) AdjustQuantity(o *Order, newQuantity uint64) {
	lvl.TotalQuantity = lvl.TotalQuantity - o.Quantity + newQuantity
	o.Quantity = newQuantity
}

// Remove unlinks an arbitrary resident order (not necessarily the head),
// e.g. for cancellation.
func (lvl *PriceLevel) Remove(o *Order) {
	lvl.TotalQuantity -= o.Quantity
	lvl.Count--
	lvl.unlink(o)
}

func (lvl *PriceLevel) unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		lvl.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		lvl.tail = o.prev
	}
	o.next, o.prev = nil, nil
}

// Empty reports whether the level has no resident orders left.
func (lvl *PriceLevel) Empty() bool {
	return lvl.head == nil
}
