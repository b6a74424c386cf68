// Package isolate identifies the non-isolated points of a 3D point cloud:
// the points that have at least one other point within a fixed isolation
// radius R.
//
// The algorithm bins the points into a uniform grid of cubic cells sized to
// the radius and only compares points that share a cell neighborhood, instead
// of the naive all-pairs scan. When a cell is small enough that its diagonal
// fits inside R, every multi-point cell is resolved without a single distance
// computation.
//
// # Quick Start
//
//	cfg := isolate.Configuration{
//	    RangeX:  isolate.CoordRange{Lower: -2, Upper: 2},
//	    RangeY:  isolate.CoordRange{Lower: -2, Upper: 2},
//	    RangeZ:  isolate.CoordRange{Lower: -2, Upper: 2},
//	    Radius2: 1, // isolation radius squared
//	}
//
//	engine := isolate.New(isolate.ArrayExtractor{}, cfg)
//
//	points := [][3]float64{{1, 1, 1}, {-1, -1, -1}, {0.5, 1, 1}}
//	indices, err := engine.RemoveIsolatedPoints(points)
//	// indices == {0, 2}: those two points are within distance 1 of each other
//
// Points are opaque to the engine: any representation works as long as a
// PositionExtractor can read its x, y, z coordinates. Extractors for
// [3]float64, []float64, golang/geo r3.Vector and gonum spatial/r3 Vec ship
// with the package; FuncExtractor adapts anything else.
//
// # Volume Contract
//
// The configured ranges must cover every input point. This is not an
// optimization hint that degrades gracefully: a point outside the volume
// aborts the run with an *OutOfVolumeError naming the axis and coordinate,
// because silently misbinning it would corrupt the result. A coordinate
// exactly at a range's upper bound can also be rejected when the range splits
// evenly into cells; pad the ranges slightly if boundary points must bin.
//
// # Memory Budget
//
// The grid allocates every cell up front, which is the dominant cost on
// large sparse volumes. Configuration.MaxMemory caps that cost by doubling
// the cell size until the grid fits, trading precision (the fast path may
// switch off) for bounded memory. Zero disables the cap.
//
// # Key Features
//
//   - Two-pass isolation test: containment fast path + neighborhood scan
//   - Squared-distance comparisons only, no square roots on the hot path
//   - Precomputed neighbor offsets, reused for every cell of the grid
//   - O(n²) brute-force reference implementation for validation
//   - Generic over the point representation, no per-point boxing
package isolate
