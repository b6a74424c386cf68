package isolate

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/spatialgo/isolate/grid"
)

// DefaultMaxMemory is a reasonable grid memory budget (100 MiB) for
// Configuration.MaxMemory.
const DefaultMaxMemory = 100 << 20

// cellOverhead is the bookkeeping cost of one (empty) grid cell: the grid
// allocates every cell up front, so this is what an oversized grid charges
// per cell before a single point is stored.
const cellOverhead = uint64(unsafe.Sizeof([]int(nil)))

// Configuration carries all parameters of the isolation algorithm.
//
// It is replaced wholesale via Engine.Reconfigure, never partially mutated,
// and it is not validated automatically: call ValidateConfiguration when the
// values are not trusted.
type Configuration struct {
	// RangeX, RangeY and RangeZ bound the volume the points span. The volume
	// is trusted, not checked against the data; a point outside it makes
	// RemoveIsolatedPoints fail with an *OutOfVolumeError.
	RangeX CoordRange
	RangeY CoordRange
	RangeZ CoordRange

	// Radius2 is the square of the isolation radius. Distance comparisons
	// happen in squared space, boundary included: two points exactly one
	// radius apart are neighbors. A zero radius is legal and links only
	// exactly coincident points.
	Radius2 float64

	// MaxMemory caps the bytes spent on grid cell containers. When the grid
	// would exceed it, the cell size is doubled until the grid fits; a grid
	// already reduced to a single cell is accepted even over budget, which
	// is the documented floor of the bound. Zero disables the cap entirely
	// and always uses the most precise cell size.
	MaxMemory uint64
}

// Engine finds the non-isolated points of a point cloud: the points with at
// least one other point within the isolation radius.
//
// Every run builds its own grid and discards it on return; only the
// configuration survives between calls. An Engine is not safe for concurrent
// use on a shared instance without external synchronization.
type Engine[P any] struct {
	ext    PositionExtractor[P]
	cfg    Configuration
	logger *Logger
}

// New creates an engine that reads point positions through ext. The
// configuration is not validated.
func New[P any](ext PositionExtractor[P], cfg Configuration, optFns ...Option) *Engine[P] {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	return &Engine[P]{
		ext:    ext,
		cfg:    cfg,
		logger: o.logger,
	}
}

// Reconfigure replaces the whole configuration. No validation is performed.
func (e *Engine[P]) Reconfigure(cfg Configuration) { e.cfg = cfg }

// Configuration returns the current configuration.
func (e *Engine[P]) Configuration() Configuration { return e.cfg }

// MaximumOptimalCellSize returns the largest cell edge length for which any
// two points sharing a cell are guaranteed to be within radius of each
// other: the cell diagonal, edge*sqrt(3), must not exceed the radius.
func MaximumOptimalCellSize(radius float64) float64 {
	return radius / math.Sqrt(3)
}

// ValidateConfiguration reports every problem of cfg as a single
// *ConfigurationError, or nil if cfg is usable. It is never called
// implicitly; validation is the caller's explicit choice.
func ValidateConfiguration(cfg Configuration) error {
	var problems []string
	if cfg.Radius2 < 0 {
		problems = append(problems, fmt.Sprintf("invalid radius squared (%g)", cfg.Radius2))
	}
	if !cfg.RangeX.Valid() {
		problems = append(problems, fmt.Sprintf("invalid x range %s", cfg.RangeX))
	}
	if !cfg.RangeY.Valid() {
		problems = append(problems, fmt.Sprintf("invalid y range %s", cfg.RangeY))
	}
	if !cfg.RangeZ.Valid() {
		problems = append(problems, fmt.Sprintf("invalid z range %s", cfg.RangeZ))
	}

	if len(problems) == 0 {
		return nil
	}
	return &ConfigurationError{Problems: problems}
}

// RemoveIsolatedPoints returns the indices into points of every point that
// is not isolated: some other point lies within the isolation radius,
// boundary included. The order of the returned indices is unspecified.
//
// A point outside the configured volume aborts the call with an
// *OutOfVolumeError.
func (e *Engine[P]) RemoveIsolatedPoints(points []P) ([]int, error) {
	radius := math.Sqrt(e.cfg.Radius2)
	logger := e.logger.WithRadius(radius)

	cellSize := e.computeCellSize()
	part := NewPartition(e.ext, e.cfg.RangeX, e.cfg.RangeY, e.cfg.RangeZ, cellSize)
	indexer := part.Indexer()

	// Within a cell no larger than the optimal size, the diagonal bound
	// makes every pair of points mutual neighbors; that guarantee unlocks
	// the fast path below. It is lost when memory pressure grew the cells.
	cellContained := cellSize <= MaximumOptimalCellSize(radius)

	// Cells within neighExtent cells of a reference cell, on each axis, are
	// the only ones that can hold points within the radius of its points.
	neighExtent := int(math.Ceil(radius / cellSize))
	neighborhood := buildNeighborhood(indexer, neighExtent, !cellContained)

	logger.LogPartition(cellSize, indexer.SizeX(), indexer.SizeY(), indexer.SizeZ(), len(neighborhood))

	if err := part.Fill(points); err != nil {
		return nil, err
	}

	nonIsolated := roaring.New()
	for cellIndex, cell := range part.Cells() {
		// Fast path: any two points sharing a contained cell are closer
		// than the radius, so the whole cell is marked without a single
		// distance computation.
		if cellContained && len(cell) > 1 {
			for _, pi := range cell {
				nonIsolated.Add(uint32(pi))
			}
			continue
		}

		for _, pi := range cell {
			if !e.isolatedWithinNeighborhood(points, part, cellIndex, pi, neighborhood) {
				nonIsolated.Add(uint32(pi))
			}
		}
	}

	out := make([]int, 0, nonIsolated.GetCardinality())
	it := nonIsolated.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	logger.LogScan(len(points), len(out))

	return out, nil
}

// BruteForceRemoveIsolatedPoints computes the same index set as
// RemoveIsolatedPoints by exhaustive pairwise comparison, without binning
// the points or consulting the configured volume. It is O(n²) and exists as
// a correctness reference, not for production use.
func (e *Engine[P]) BruteForceRemoveIsolatedPoints(points []P) []int {
	var nonIsolated []int
	for i := range points {
		px, py, pz := e.ext.X(points[i]), e.ext.Y(points[i]), e.ext.Z(points[i])
		for j := range points {
			if j == i {
				continue
			}
			other := points[j]
			if squaredDistance(px, py, pz, e.ext.X(other), e.ext.Y(other), e.ext.Z(other)) <= e.cfg.Radius2 {
				nonIsolated = append(nonIsolated, i)
				break
			}
		}
	}
	return nonIsolated
}

// computeCellSize picks the working cell edge length. It starts from the
// largest size that still guarantees in-cell closeness and doubles it while
// the resulting grid would blow the memory budget, stopping once the grid
// degenerates to a single cell.
func (e *Engine[P]) computeCellSize() float64 {
	radius := math.Sqrt(e.cfg.Radius2)
	cellSize := MaximumOptimalCellSize(radius)

	if cellSize <= 0 {
		// A zero radius gives no usable cell edge. One cell spanning the
		// whole volume keeps binning well defined; only coincident points
		// can then pair up, and they always share that single cell.
		cellSize = math.Max(e.cfg.RangeX.Size(), math.Max(e.cfg.RangeY.Size(), e.cfg.RangeZ.Size()))
		if cellSize <= 0 {
			cellSize = 1
		}
		return cellSize
	}

	if e.cfg.MaxMemory == 0 {
		return cellSize
	}

	for {
		nx, ny, nz := diceVolume(e.cfg.RangeX, e.cfg.RangeY, e.cfg.RangeZ, cellSize)
		nCells := uint64(nx) * uint64(ny) * uint64(nz)
		if nCells <= 1 {
			break // can't reduce any further
		}
		if nCells*cellOverhead < e.cfg.MaxMemory {
			break
		}
		cellSize *= 2
	}

	return cellSize
}

// buildNeighborhood returns the flat-index deltas of every cell within
// extent cells of a reference cell on each axis, excluding the reference
// cell itself. The uniform cell size makes the deltas position independent,
// so one list serves every cell of the grid; deltas may land outside the
// grid and must pass Has before use.
//
// When includeSelf is set, the zero delta is prepended: points sharing a
// cell then cross-check each other explicitly, which is required whenever
// the cell is too large for the containment guarantee.
func buildNeighborhood(indexer grid.Indexer, extent int, includeSelf bool) []int {
	side := 2*extent + 1
	offsets := make([]int, 0, side*side*side)
	if includeSelf {
		offsets = append(offsets, 0)
	}

	origin := grid.CellID{0, 0, 0}
	for ix := -extent; ix <= extent; ix++ {
		for iy := -extent; iy <= extent; iy++ {
			for iz := -extent; iz <= extent; iz++ {
				if ix == 0 && iy == 0 && iz == 0 {
					continue
				}
				offsets = append(offsets, indexer.Offset(origin, grid.CellID{ix, iy, iz}))
			}
		}
	}

	return offsets
}

// isolatedWithinNeighborhood reports whether points[pi], stored in the cell
// at cellIndex, has no neighbor within the radius in any cell of the
// neighborhood. Deltas landing outside the grid are skipped.
func (e *Engine[P]) isolatedWithinNeighborhood(points []P, part *Partition[P], cellIndex, pi int, neighborhood []int) bool {
	px, py, pz := e.ext.X(points[pi]), e.ext.Y(points[pi]), e.ext.Z(points[pi])

	for _, delta := range neighborhood {
		neighIndex := cellIndex + delta
		if !part.Has(neighIndex) {
			continue
		}
		if !e.isolatedFrom(points, px, py, pz, pi, part.Cell(neighIndex)) {
			return false
		}
	}

	return true
}

// isolatedFrom reports whether the point with index pi, at (px, py, pz), is
// farther than the radius from every point listed in others. pi itself is
// skipped by index, not by position, so coincident duplicate points still
// count as neighbors of each other.
func (e *Engine[P]) isolatedFrom(points []P, px, py, pz float64, pi int, others []int) bool {
	for _, oi := range others {
		if oi == pi {
			continue
		}
		other := points[oi]
		if squaredDistance(px, py, pz, e.ext.X(other), e.ext.Y(other), e.ext.Z(other)) <= e.cfg.Radius2 {
			return false
		}
	}
	return true
}

// squaredDistance returns the squared euclidean distance between
// (ax, ay, az) and (bx, by, bz). Comparisons against Radius2 stay in squared
// space; no square root on the hot path.
func squaredDistance(ax, ay, az, bx, by, bz float64) float64 {
	dx, dy, dz := ax-bx, ay-by, az-bz
	return dx*dx + dy*dy + dz*dz
}
