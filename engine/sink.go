package engine

import (
	"fmt"
	"io"
	"os"

	"obcore/domain/orderbook"
	"obcore/priceutil"
)

// Match is the event emitted for every trade the matching procedure
// produces. Price and Quantity reflect the executed trade; TimestampNs
// is the moment of execution, not the admission timestamp of either
// resting order.
type Match struct {
	Price       orderbook.PriceInt
	Quantity    uint64
	BuyOrderID  uint64
	SellOrderID uint64
	TimestampNs uint64
}

// Sink is the capability the caller supplies to receive Match events.
// Matches produced by a single Add are delivered to Sink in the order
// they occur in the matching loop: best price first, FIFO within level.
type Sink interface {
	OnMatch(m Match)
}

// PrintSink is the default sink: a human-readable line per match,
// matching the reference engine's observable output exactly.
type PrintSink struct {
	Out   io.Writer
	Scale int32
}

// NewPrintSink returns a PrintSink writing to stdout at the given tick
// scale (see package priceutil).
func NewPrintSink(scale int32) *PrintSink {
	return &PrintSink{Out: os.Stdout, Scale: scale}
}

func (s *PrintSink) OnMatch(m Match) {
	fmt.Fprintf(s.Out, "[MATCH] %d @ %s (Buy Order #%d <-> Sell Order #%d)\n",
		m.Quantity, priceutil.Format(m.Price, s.Scale), m.BuyOrderID, m.SellOrderID)
}

// CollectingSink accumulates matches in memory, useful for tests and for
// callers that want to batch-process trades rather than react per-event.
type CollectingSink struct {
	Matches []Match
}

func (s *CollectingSink) OnMatch(m Match) {
	s.Matches = append(s.Matches, m)
}
