package orderbook

import "testing"

func TestPriceLevelEnqueueFIFO(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	o1 := &Order{ID: 1, Quantity: 10, TimestampNs: 1}
	o2 := &Order{ID: 2, Quantity: 20, TimestampNs: 2}

	lvl.Enqueue(o1)
	lvl.Enqueue(o2)

	if lvl.Head() != o1 {
		t.Error("expected o1 at head")
	}
	if lvl.TotalQuantity != 30 || lvl.Count != 2 {
		t.Errorf("unexpected aggregate: qty=%d count=%d", lvl.TotalQuantity, lvl.Count)
	}
	if o1.Next() != o2 {
		t.Error("expected o1.Next() == o2")
	}
}

func TestPriceLevelDrainPartialThenFull(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	o := &Order{ID: 1, Quantity: 10}
	lvl.Enqueue(o)

	if full := lvl.Drain(o, 4); full {
		t.Error("partial drain should not report fullyFilled")
	}
	if o.Quantity != 6 || lvl.TotalQuantity != 6 {
		t.Errorf("unexpected remaining after partial drain: o=%d lvl=%d", o.Quantity, lvl.TotalQuantity)
	}
	if lvl.Empty() {
		t.Error("level should still have a resident order")
	}

	if full := lvl.Drain(o, 6); !full {
		t.Error("final drain should report fullyFilled")
	}
	if !lvl.Empty() {
		t.Error("level should be empty after full drain")
	}
}

func TestPriceLevelAdjustQuantityPreservesFIFOPosition(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	o1 := &Order{ID: 1, Quantity: 50}
	o2 := &Order{ID: 2, Quantity: 200}
	lvl.Enqueue(o1)
	lvl.Enqueue(o2)

	lvl.AdjustQuantity(o1, 300)

	if lvl.Head() != o1 {
		t.Error("adjust-in-place must not change FIFO position")
	}
	if o1.Quantity != 300 {
		t.Errorf("expected quantity 300, got %d", o1.Quantity)
	}
	if lvl.TotalQuantity != 500 {
		t.Errorf("expected total 500, got %d", lvl.TotalQuantity)
	}
}

func TestPriceLevelRemoveArbitraryOrder(t *testing.T) {
	lvl := &PriceLevel{Price: 100}
	o1 := &Order{ID: 1, Quantity: 10}
	o2 := &Order{ID: 2, Quantity: 20}
	o3 := &Order{ID: 3, Quantity: 30}
	lvl.Enqueue(o1)
	lvl.Enqueue(o2)
	lvl.Enqueue(o3)

	lvl.Remove(o2)

	if lvl.TotalQuantity != 40 || lvl.Count != 2 {
		t.Errorf("unexpected aggregate after remove: qty=%d count=%d", lvl.TotalQuantity, lvl.Count)
	}
	if o1.Next() != o3 {
		t.Error("expected o1 -> o3 after removing o2")
	}
}
