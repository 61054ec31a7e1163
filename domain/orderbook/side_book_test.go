package orderbook

import "testing"

func TestSideBookGetOrCreateFindDelete(t *testing.T) {
	book := NewSideBook(Buy)

	lvl1 := book.getOrCreate(100)
	if lvl1 == nil {
		t.Fatal("getOrCreate returned nil")
	}
	if lvl2, ok := book.Find(100); !ok || lvl2 != lvl1 {
		t.Error("Find did not return the same level")
	}

	book.getOrCreate(200)
	if best, ok := book.Best(); !ok || best.Price != 200 {
		t.Errorf("expected best bid 200, got %v (ok=%v)", best, ok)
	}

	if !book.delete(100) {
		t.Error("delete(100) failed")
	}
	if _, ok := book.Find(100); ok {
		t.Error("expected level 100 to be gone")
	}
}

func TestSideBookOrderingBuyVsSell(t *testing.T) {
	bids := NewSideBook(Buy)
	asks := NewSideBook(Sell)

	for _, p := range []PriceInt{100, 101, 99} {
		bids.getOrCreate(p)
		asks.getOrCreate(p)
	}

	if best, _ := bids.Best(); best.Price != 101 {
		t.Errorf("expected best bid 101, got %d", best.Price)
	}
	if best, _ := asks.Best(); best.Price != 99 {
		t.Errorf("expected best ask 99, got %d", best.Price)
	}
}

func TestSideBookInsertAtTailAndRemove(t *testing.T) {
	book := NewSideBook(Buy)
	o1 := &Order{ID: 1, Quantity: 10}
	o2 := &Order{ID: 2, Quantity: 5}

	book.InsertAtTail(100, o1)
	book.InsertAtTail(100, o2)

	lvl, ok := book.Find(100)
	if !ok {
		t.Fatal("expected level 100 to exist")
	}
	if lvl.TotalQuantity != 15 || lvl.Count != 2 {
		t.Errorf("unexpected aggregate: qty=%d count=%d", lvl.TotalQuantity, lvl.Count)
	}
	if lvl.Head() != o1 {
		t.Error("expected o1 at head (FIFO)")
	}

	if !book.Remove(100, o1) {
		t.Error("Remove(o1) failed")
	}
	if _, ok := book.Find(100); !ok {
		t.Error("level should still exist with o2 resident")
	}

	if !book.Remove(100, o2) {
		t.Error("Remove(o2) failed")
	}
	if _, ok := book.Find(100); ok {
		t.Error("level should be dropped once empty")
	}
}

func TestSideBookIterateTopStopsEarlyAndRespectsDepth(t *testing.T) {
	book := NewSideBook(Buy)
	for _, p := range []PriceInt{100, 101, 102, 103} {
		book.getOrCreate(p)
	}

	var seen []PriceInt
	book.IterateTop(2, func(lvl *PriceLevel) bool {
		seen = append(seen, lvl.Price)
		return true
	})
	if len(seen) != 2 || seen[0] != 103 || seen[1] != 102 {
		t.Errorf("unexpected top-2 bids: %v", seen)
	}

	seen = nil
	book.IterateTop(10, func(lvl *PriceLevel) bool {
		seen = append(seen, lvl.Price)
		return len(seen) < 1
	})
	if len(seen) != 1 {
		t.Errorf("expected early stop after 1 level, got %v", seen)
	}
}

func TestSideBookManyLevelsPreserveOrdering(t *testing.T) {
	book := NewSideBook(Sell)
	prices := []PriceInt{50, 10, 90, 30, 70, 20, 60, 40, 80}
	for _, p := range prices {
		book.getOrCreate(p)
	}

	var seen []PriceInt
	book.IterateTop(len(prices), func(lvl *PriceLevel) bool {
		seen = append(seen, lvl.Price)
		return true
	})
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("ask levels not ascending: %v", seen)
		}
	}
	if len(seen) != len(prices) {
		t.Fatalf("expected %d levels, got %d", len(prices), len(seen))
	}
}
