// Package engine is the coordinator that ties the pool, the index, and
// the two SideBooks together: add / cancel / amend / snapshot, driving
// continuous price-time matching after every admission.
package engine

import (
	"obcore/domain/orderbook"
	"obcore/infra/clock"
	"obcore/infra/pool"
)

// OrderRequest is the caller-facing shape of an order submission. A zero
// TimestampNs means "assign now."
type OrderRequest struct {
	ID          uint64
	Side        orderbook.Side
	Price       orderbook.PriceInt
	Quantity    uint64
	TimestampNs uint64
}

// Level is an external, read-only view of one price level: price plus
// aggregate resident quantity across its orders.
type Level struct {
	Price         orderbook.PriceInt
	TotalQuantity uint64
}

// Config wires an Engine's collaborators. Clock and Sink default to
// clock.System and a stdout PrintSink (scale 2) if left zero.
type Config struct {
	Capacity uint64
	Clock    clock.Source
	Sink     Sink
}

// Engine is the single-symbol matching engine. All mutating operations
// and the snapshot read execute to completion without suspension; the
// caller is responsible for serializing concurrent access (see spec
// concurrency model).
type Engine struct {
	pool *pool.OrderPool
	idx  *orderbook.Index
	bids *orderbook.SideBook
	asks *orderbook.SideBook

	clock clock.Source
	sink  Sink

	lastAssignedTs uint64
}

// New constructs an Engine with a pool sized to cfg.Capacity.
func New(cfg Config) *Engine {
	c := cfg.Clock
	if c == nil {
		c = clock.System{}
	}
	s := cfg.Sink
	if s == nil {
		s = NewPrintSink(2)
	}
	return &Engine{
		pool:  pool.New(cfg.Capacity),
		idx:   orderbook.NewIndex(int(cfg.Capacity)),
		bids:  orderbook.NewSideBook(orderbook.Buy),
		asks:  orderbook.NewSideBook(orderbook.Sell),
		clock: c,
		sink:  s,
	}
}

// Add admits a new order, assigns a timestamp if needed, inserts it at
// the tail of its price level, and then drives matching. On any error
// the book is left exactly as it was before the call.
func (e *Engine) Add(req OrderRequest) error {
	if req.Quantity == 0 || req.Price <= 0 {
		return ErrInvalidOrder
	}

	o, err := e.pool.Acquire()
	if err != nil {
		return err
	}

	if _, exists := e.idx.Get(req.ID); exists {
		e.pool.Release(o)
		return ErrDuplicateOrderID
	}

	ts := req.TimestampNs
	if ts == 0 {
		ts = e.assignTimestamp()
	}

	*o = orderbook.Order{
		ID:          req.ID,
		Side:        req.Side,
		Price:       req.Price,
		Quantity:    req.Quantity,
		TimestampNs: ts,
	}

	e.idx.Put(o)
	e.bookFor(req.Side).InsertAtTail(req.Price, o)

	e.match()
	return nil
}

// Cancel removes a resident order. Reports whether it was found; no
// matching is triggered.
func (e *Engine) Cancel(orderID uint64) bool {
	o, ok := e.idx.Get(orderID)
	if !ok {
		return false
	}
	e.bookFor(o.Side).Remove(o.Price, o)
	e.idx.Delete(orderID)
	e.pool.Release(o)
	return true
}

// Amend changes a resident order's price and/or quantity. A same-price
// amend mutates quantity in place, preserving time priority, and never
// triggers matching. A price-changing amend is cancel(order_id) followed
// by add(new_order) with a fresh timestamp -- since those are two
// independently-committing steps (per spec), a PoolExhausted failure on
// the add leg leaves the order cancelled, not resident; the return value
// still reports found=true because the order was located and acted on
// before the failure.
func (e *Engine) Amend(orderID uint64, newPrice orderbook.PriceInt, newQuantity uint64) (bool, error) {
	o, ok := e.idx.Get(orderID)
	if !ok {
		return false, nil
	}
	if newQuantity == 0 || newPrice <= 0 {
		return false, ErrInvalidOrder
	}

	if newPrice == o.Price {
		lvl, _ := e.bookFor(o.Side).Find(o.Price)
		lvl.AdjustQuantity(o, newQuantity)
		return true, nil
	}

	side := o.Side
	e.bookFor(side).Remove(o.Price, o)
	e.idx.Delete(orderID)
	e.pool.Release(o)

	fresh, err := e.pool.Acquire()
	if err != nil {
		return true, err
	}
	*fresh = orderbook.Order{
		ID:          orderID,
		Side:        side,
		Price:       newPrice,
		Quantity:    newQuantity,
		TimestampNs: e.assignTimestamp(),
	}
	e.idx.Put(fresh)
	e.bookFor(side).InsertAtTail(newPrice, fresh)

	e.match()
	return true, nil
}

// Snapshot aggregates up to depth price levels per side, best-first. The
// returned slices are independent copies; they never alias live book
// state.
func (e *Engine) Snapshot(depth int) (bids []Level, asks []Level) {
	bids = make([]Level, 0, depth)
	e.bids.IterateTop(depth, func(lvl *orderbook.PriceLevel) bool {
		bids = append(bids, Level{Price: lvl.Price, TotalQuantity: lvl.TotalQuantity})
		return true
	})
	asks = make([]Level, 0, depth)
	e.asks.IterateTop(depth, func(lvl *orderbook.PriceLevel) bool {
		asks = append(asks, Level{Price: lvl.Price, TotalQuantity: lvl.TotalQuantity})
		return true
	})
	return bids, asks
}

// PoolStats exposes the pool's occupancy for callers wiring up resource
// monitoring (e.g. invariant P6 tests: |index| + free slots == capacity).
func (e *Engine) PoolStats() (capacity, outstanding, free int) {
	return e.pool.Capacity(), e.pool.Outstanding(), e.pool.FreeSlots()
}

func (e *Engine) bookFor(side orderbook.Side) *orderbook.SideBook {
	if side == orderbook.Buy {
		return e.bids
	}
	return e.asks
}

// assignTimestamp enforces strict monotonicity across caller-omitted
// admissions: if the clock does not strictly advance past the last
// assigned value, bump it by one nanosecond instead.
func (e *Engine) assignTimestamp() uint64 {
	now := e.clock.NowNs()
	if now <= e.lastAssignedTs {
		now = e.lastAssignedTs + 1
	}
	e.lastAssignedTs = now
	return now
}

// match is the continuous price-time matching loop, run after every
// admission that may have crossed the book.
func (e *Engine) match() {
	for {
		bidLvl, okB := e.bids.Best()
		askLvl, okA := e.asks.Best()
		if !okB || !okA {
			return
		}
		if bidLvl.Price < askLvl.Price {
			return
		}

		b := bidLvl.Head()
		a := askLvl.Head()

		// Whichever order arrived first sets the trade price; on an exact
		// timestamp tie the bid's price wins.
		execPrice := a.Price
		if b.TimestampNs <= a.TimestampNs {
			execPrice = b.Price
		}

		qty := b.Quantity
		if a.Quantity < qty {
			qty = a.Quantity
		}

		e.sink.OnMatch(Match{
			Price:       execPrice,
			Quantity:    qty,
			BuyOrderID:  b.ID,
			SellOrderID: a.ID,
			TimestampNs: e.clock.NowNs(),
		})

		if bidLvl.Drain(b, qty) {
			e.idx.Delete(b.ID)
			e.pool.Release(b)
			e.bids.DropIfEmpty(bidLvl)
		}
		if askLvl.Drain(a, qty) {
			e.idx.Delete(a.ID)
			e.pool.Release(a)
			e.asks.DropIfEmpty(askLvl)
		}
	}
}
