// Package grid provides a dense uniform 3D grid of cells with row-major
// index arithmetic.
//
// The Indexer does the address math: it flattens signed 3D cell coordinates
// into flat offsets and bounds-checks them, per axis or as a whole. Grid
// pairs an Indexer with the cell storage, one resizable list per cell.
// Indexing operations perform no bounds checking of their own; callers
// validate with Has/HasX/HasY/HasZ first. This split keeps the hot loops of
// grid consumers free of redundant checks.
package grid

import "iter"

// CellID addresses a cell by its (x, y, z) cell coordinates. The components
// are signed: a CellID serves both as an absolute address and as a relative
// offset between cells.
type CellID [3]int

// Indexer converts the 3D cell coordinates of a fixed-size grid into flat
// offsets and validates them.
type Indexer struct {
	// cells on each of the dimensions of the grid ({x, y, z})
	dims [3]int
	// size of each level of the grid (0: x*y*z, 1: y*z, 2: z)
	strides [3]int
}

// NewIndexer creates an indexer for a grid with the given cell counts.
func NewIndexer(nx, ny, nz int) Indexer {
	return Indexer{
		dims:    [3]int{nx, ny, nz},
		strides: [3]int{nx * ny * nz, ny * nz, nz},
	}
}

// Size returns the total number of cells in the grid.
func (x Indexer) Size() int { return x.strides[0] }

// SizeX returns the number of cells along the x axis.
func (x Indexer) SizeX() int { return x.dims[0] }

// SizeY returns the number of cells along the y axis.
func (x Indexer) SizeY() int { return x.dims[1] }

// SizeZ returns the number of cells along the z axis.
func (x Indexer) SizeZ() int { return x.dims[2] }

// Has reports whether the signed flat offset addresses a cell of the grid.
// Relative offsets can be negative or run past the last cell; they must pass
// this check before any cell access.
func (x Indexer) Has(offset int) bool { return offset >= 0 && offset < x.strides[0] }

// HasX reports whether i is a valid cell coordinate on the x axis.
func (x Indexer) HasX(i int) bool { return i >= 0 && i < x.dims[0] }

// HasY reports whether i is a valid cell coordinate on the y axis.
func (x Indexer) HasY(i int) bool { return i >= 0 && i < x.dims[1] }

// HasZ reports whether i is a valid cell coordinate on the z axis.
func (x Indexer) HasZ(i int) bool { return i >= 0 && i < x.dims[2] }

// Index returns the flat offset of the cell with the given coordinates,
// row-major: ix*(ny*nz) + iy*nz + iz. No bounds check is performed; validate
// the coordinates with HasX/HasY/HasZ first.
func (x Indexer) Index(id CellID) int {
	return id[0]*x.strides[1] + id[1]*x.strides[2] + id[2]
}

// Offset returns the difference between the flat indices of cellID and
// origin. Because the grid is uniform, the same relative CellID yields the
// same flat delta for every origin, so one delta can be reused grid-wide.
// The result is not validated against the grid bounds: it may address a cell
// that does not exist, which Has must catch before use.
func (x Indexer) Offset(origin, cellID CellID) int {
	return x.Index(cellID) - x.Index(origin)
}

// Grid is a dense 3D grid of cells, each holding a resizable list of values
// of type T. All nx*ny*nz cells are allocated up front, empty or not,
// trading worst-case memory for constant-time cell addressing.
type Grid[T any] struct {
	indexer Indexer
	cells   [][]T
}

// New creates a grid with the given cell counts and allocates all its cells.
func New[T any](nx, ny, nz int) *Grid[T] {
	indexer := NewIndexer(nx, ny, nz)
	return &Grid[T]{
		indexer: indexer,
		cells:   make([][]T, indexer.Size()),
	}
}

// Indexer returns the index manager of the grid.
func (g *Grid[T]) Indexer() Indexer { return g.indexer }

// Has reports whether the signed flat offset addresses a cell of the grid.
func (g *Grid[T]) Has(offset int) bool { return g.indexer.Has(offset) }

// HasX reports whether i is a valid cell coordinate on the x axis.
func (g *Grid[T]) HasX(i int) bool { return g.indexer.HasX(i) }

// HasY reports whether i is a valid cell coordinate on the y axis.
func (g *Grid[T]) HasY(i int) bool { return g.indexer.HasY(i) }

// HasZ reports whether i is a valid cell coordinate on the z axis.
func (g *Grid[T]) HasZ(i int) bool { return g.indexer.HasZ(i) }

// Index returns the flat offset of the cell with the given coordinates
// (no bounds check).
func (g *Grid[T]) Index(id CellID) int { return g.indexer.Index(id) }

// Insert appends v to the cell at the given flat index.
func (g *Grid[T]) Insert(index int, v T) {
	g.cells[index] = append(g.cells[index], v)
}

// InsertAt appends v to the cell with the given coordinates (no bounds
// check).
func (g *Grid[T]) InsertAt(id CellID, v T) {
	g.Insert(g.indexer.Index(id), v)
}

// Cell returns the contents of the cell at the given flat index. The
// returned slice aliases grid storage; appending through it is undefined,
// mutate via Insert instead.
func (g *Grid[T]) Cell(index int) []T { return g.cells[index] }

// CellAt returns the contents of the cell with the given coordinates
// (no bounds check).
func (g *Grid[T]) CellAt(id CellID) []T { return g.cells[g.indexer.Index(id)] }

// All iterates over every cell in flat-index order, yielding the flat index
// and the cell contents.
func (g *Grid[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i, cell := range g.cells {
			if !yield(i, cell) {
				return
			}
		}
	}
}
