package orderbook

// SideBook is a price-ordered directory of PriceLevels for one side of the
// book. It is a red-black tree keyed by price, with a FIFO PriceLevel
// hanging off each key. Descending selects bid ordering (best = highest
// price first); ascending selects ask ordering (best = lowest price
// first). Levels are removed from the tree the instant they empty, so
// Best never returns an empty level.
type SideBook struct {
	side       Side
	descending bool
	root       *rbNode
	nilNode    *rbNode
	size       int
}

// NewSideBook constructs an empty book for the given side. Buy sides sort
// descending (best bid = max price); Sell sides sort ascending (best ask
// = min price).
func NewSideBook(side Side) *SideBook {
	sentinel := &rbNode{color: black}
	return &SideBook{
		side:       side,
		descending: side == Buy,
		root:       sentinel,
		nilNode:    sentinel,
	}
}

// Len reports the number of distinct active price levels.
func (b *SideBook) Len() int { return b.size }

// InsertAtTail appends order o to the FIFO at price, creating the level
// if it does not already exist.
func (b *SideBook) InsertAtTail(price PriceInt, o *Order) {
	b.getOrCreate(price).Enqueue(o)
}

// Find returns the level at price, or (nil, false) if no orders rest
// there.
func (b *SideBook) Find(price PriceInt) (*PriceLevel, bool) {
	n := b.search(price)
	if n == b.nilNode {
		return nil, false
	}
	return n.level, true
}

// Remove erases a specific order from its level and drops the level if
// it becomes empty. Reports whether the level existed.
func (b *SideBook) Remove(price PriceInt, o *Order) bool {
	lvl, ok := b.Find(price)
	if !ok {
		return false
	}
	lvl.Remove(o)
	if lvl.Empty() {
		b.delete(price)
	}
	return true
}

// DropIfEmpty removes lvl from the tree if it has no resident orders. The
// matching loop calls this after draining a level's head so an emptied
// level never remains visible to Best.
func (b *SideBook) DropIfEmpty(lvl *PriceLevel) {
	if lvl.Empty() {
		b.delete(lvl.Price)
	}
}

// Best returns the best level per this side's ordering, or (nil, false)
// if the side is empty.
func (b *SideBook) Best() (*PriceLevel, bool) {
	var n *rbNode
	if b.descending {
		n = b.maxNode(b.root)
	} else {
		n = b.minNode(b.root)
	}
	if n == b.nilNode {
		return nil, false
	}
	return n.level, true
}

// IterateTop walks up to n levels in best-first order, invoking fn with
// each. Stops early if fn returns false or the side is exhausted.
func (b *SideBook) IterateTop(n int, fn func(*PriceLevel) bool) {
	count := 0
	walk := b.next
	start := b.minNode(b.root)
	if b.descending {
		walk = b.prev
		start = b.maxNode(b.root)
	}
	for node := start; node != b.nilNode && count < n; node = walk(node) {
		if !fn(node.level) {
			return
		}
		count++
	}
}

// ---- red-black tree ----

type color uint8

const (
	red color = iota
	black
)

type rbNode struct {
	key    PriceInt
	level  *PriceLevel
	color  color
	left   *rbNode
	right  *rbNode
	parent *rbNode
}

func (b *SideBook) search(price PriceInt) *rbNode {
	n := b.root
	for n != b.nilNode {
		switch {
		case price < n.key:
			n = n.left
		case price > n.key:
			n = n.right
		default:
			return n
		}
	}
	return b.nilNode
}

func (b *SideBook) getOrCreate(price PriceInt) *PriceLevel {
	y := b.nilNode
	x := b.root
	for x != b.nilNode {
		y = x
		switch {
		case price < x.key:
			x = x.left
		case price > x.key:
			x = x.right
		default:
			return x.level
		}
	}

	lvl := &PriceLevel{Price: price}
	z := &rbNode{
		key:    price,
		level:  lvl,
		color:  red,
		left:   b.nilNode,
		right:  b.nilNode,
		parent: y,
	}
	switch {
	case y == b.nilNode:
		b.root = z
	case z.key < y.key:
		y.left = z
	default:
		y.right = z
	}
	b.insertFixup(z)
	b.size++
	return lvl
}

func (b *SideBook) delete(price PriceInt) bool {
	z := b.search(price)
	if z == b.nilNode {
		return false
	}
	b.deleteNode(z)
	b.size--
	return true
}

func (b *SideBook) minNode(n *rbNode) *rbNode {
	if n == b.nilNode {
		return b.nilNode
	}
	for n.left != b.nilNode {
		n = n.left
	}
	return n
}

func (b *SideBook) maxNode(n *rbNode) *rbNode {
	if n == b.nilNode {
		return b.nilNode
	}
	for n.right != b.nilNode {
		n = n.right
	}
	return n
}

func (b *SideBook) next(n *rbNode) *rbNode {
	if n.right != b.nilNode {
		return b.minNode(n.right)
	}
	p := n.parent
	for p != b.nilNode && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func (b *SideBook) prev(n *rbNode) *rbNode {
	if n.left != b.nilNode {
		return b.maxNode(n.left)
	}
	p := n.parent
	for p != b.nilNode && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

func (b *SideBook) leftRotate(x *rbNode) {
	y := x.right
	x.right = y.left
	if y.left != b.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == b.nilNode:
		b.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (b *SideBook) rightRotate(y *rbNode) {
	x := y.left
	y.left = x.right
	if x.right != b.nilNode {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == b.nilNode:
		b.root = x
	case y == y.parent.right:
		y.parent.right = x
	default:
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (b *SideBook) insertFixup(z *rbNode) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					b.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				b.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					b.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				b.leftRotate(z.parent.parent)
			}
		}
	}
	b.root.color = black
}

func (b *SideBook) transplant(u, v *rbNode) {
	switch {
	case u.parent == b.nilNode:
		b.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

func (b *SideBook) deleteNode(z *rbNode) {
	y := z
	yOrigColor := y.color
	var x *rbNode

	switch {
	case z.left == b.nilNode:
		x = z.right
		b.transplant(z, z.right)
	case z.right == b.nilNode:
		x = z.left
		b.transplant(z, z.left)
	default:
		y = b.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			b.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		b.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		b.deleteFixup(x)
	}
}

func (b *SideBook) deleteFixup(x *rbNode) {
	for x != b.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				b.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					b.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				b.leftRotate(x.parent)
				x = b.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				b.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					b.leftRotate(x.parent)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				b.rightRotate(x.parent)
				x = b.root
			}
		}
	}
	x.color = black
}
