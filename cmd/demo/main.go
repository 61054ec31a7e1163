// Command demo wires an Engine the way a long-running service would,
// then drives it through a short scripted scenario so PrintSink has
// something to print. There is no listener here: the engine is an
// in-process library, not a server.
package main

import (
	"fmt"
	"log"

	"obcore/domain/orderbook"
	"obcore/engine"
	"obcore/infra/clock"
)

func main() {
	// ---------------- Engine ----------------

	eng := engine.New(engine.Config{
		Capacity: 1 << 16,
		Clock:    clock.System{},
		Sink:     engine.NewPrintSink(2),
	})

	// ---------------- Scripted scenario ----------------

	orders := []engine.OrderRequest{
		{ID: 1, Side: orderbook.Buy, Price: 10050, Quantity: 100},
		{ID: 2, Side: orderbook.Buy, Price: 10025, Quantity: 150},
		{ID: 3, Side: orderbook.Sell, Price: 10100, Quantity: 75},
		{ID: 4, Side: orderbook.Sell, Price: 10050, Quantity: 120},
	}

	for _, req := range orders {
		if err := eng.Add(req); err != nil {
			log.Fatalf("add #%d failed: %v", req.ID, err)
		}
	}

	if _, err := eng.Amend(2, 10075, 150); err != nil {
		log.Fatalf("amend #2 failed: %v", err)
	}

	bids, asks := eng.Snapshot(5)
	fmt.Println("book after scenario:")
	for _, lvl := range bids {
		fmt.Printf("  bid %d x %d\n", lvl.Price, lvl.TotalQuantity)
	}
	for _, lvl := range asks {
		fmt.Printf("  ask %d x %d\n", lvl.Price, lvl.TotalQuantity)
	}
}
