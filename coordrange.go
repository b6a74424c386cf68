package isolate

import "fmt"

// CoordRange is a closed interval [Lower, Upper] of coordinates along one
// axis. It is a plain value type: construct it with a struct literal and
// compare it with ==, which matches bounds exactly.
type CoordRange struct {
	Lower float64 // lower boundary
	Upper float64 // upper boundary
}

// Contains reports whether c lies within the range, boundaries included.
func (r CoordRange) Contains(c float64) bool { return r.Lower <= c && c <= r.Upper }

// Empty reports whether the range spans no coordinates at all.
func (r CoordRange) Empty() bool { return r.Lower == r.Upper }

// Valid reports whether the bounds are ordered. An empty range is valid.
func (r CoordRange) Valid() bool { return r.Lower <= r.Upper }

// Size returns Upper - Lower. No check is performed: on an invalid range the
// result is negative, and it is the caller's business to care.
func (r CoordRange) Size() float64 { return r.Upper - r.Lower }

// Offset returns the distance of c from the lower bound.
func (r CoordRange) Offset(c float64) float64 { return c - r.Lower }

// String renders the range as "(lower to upper)".
func (r CoordRange) String() string { return fmt.Sprintf("(%g to %g)", r.Lower, r.Upper) }
