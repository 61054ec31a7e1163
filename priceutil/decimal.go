// Package priceutil is the decimal <-> fixed-point boundary for prices.
// The engine's internal representation is orderbook.PriceInt (an integer
// count of ticks); callers at the edge of the system work in decimal
// strings, matching the convention used for prices elsewhere in this
// domain (shopspring/decimal).
package priceutil

import (
	"errors"

	"github.com/shopspring/decimal"

	"obcore/domain/orderbook"
)

// ErrNonPositive is returned when a parsed price is not strictly
// positive, mirroring the InvalidOrder policy of the engine itself.
var ErrNonPositive = errors.New("priceutil: price must be positive")

// ParseTicks parses a decimal string (e.g. "100.50") into a PriceInt
// scaled by 10^scale ticks. scale is the instrument's tick precision,
// e.g. scale=2 for cents-of-a-dollar pricing.
func ParseTicks(s string, scale int32) (orderbook.PriceInt, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.Sign() <= 0 {
		return 0, ErrNonPositive
	}
	scaled := d.Shift(scale).Round(0)
	return orderbook.PriceInt(scaled.IntPart()), nil
}

// Format renders a PriceInt back to a fixed-precision decimal string at
// the given scale.
func Format(p orderbook.PriceInt, scale int32) string {
	return decimal.New(int64(p), -scale).StringFixed(scale)
}
