// Package orderbook holds the resident data model for a single-symbol
// limit order book: orders, FIFO price levels, and the price-ordered
// directory (SideBook) that maps a price to its level.
package orderbook

// Side identifies which side of the book an order rests on.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// PriceInt is a fixed-point price, expressed in ticks of whatever scale
// the caller's instrument uses. Representing price as an integer avoids
// the equality hazards of binary floating point (e.g. 100.1 + 0.2 != 100.3)
// that a decimal-string boundary (see package priceutil) is meant to hide.
type PriceInt int64

// Order is a resident order. Orders are allocated from a pool (see
// package pool) and linked into exactly one PriceLevel's FIFO at a time;
// next/prev are owned by whichever PriceLevel currently holds the order.
type Order struct {
	ID          uint64
	Side        Side
	Price       PriceInt
	Quantity    uint64
	TimestampNs uint64

	next *Order
	prev *Order
}

// Next returns the following order in FIFO order within its price level,
// or nil if this is the tail.
func (o *Order) Next() *Order {
	return o.next
}
