package engine

import "errors"

// ErrDuplicateOrderID is returned by Add when order_id is already
// resident. The book is left unchanged.
var ErrDuplicateOrderID = errors.New("engine: duplicate order id")

// ErrInvalidOrder is returned by Add or Amend when quantity is zero or
// price is not strictly positive.
var ErrInvalidOrder = errors.New("engine: invalid order")
