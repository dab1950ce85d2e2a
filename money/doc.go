// Package money provides an exact decimal monetary amount with a fixed
// scale of two fractional digits.
//
// Every Money value is normalized to scale 2 with half-up rounding at
// construction, and every arithmetic derivation re-rounds its result, so
// amounts never drift away from cent precision. Values are never backed by
// binary floating point; arithmetic runs on shopspring/decimal.
package money
