package isolate

import (
	"iter"
	"math"

	"github.com/spatialgo/isolate/grid"
)

// Partition bins points into a uniform 3D grid of cubic cells covering a
// fixed bounding volume. Cells store indices into the point slice passed to
// Fill; the points themselves stay with the caller.
//
// A Partition is built fresh for one batch of points and discarded
// afterwards; it supports no removal or rebinning.
type Partition[P any] struct {
	ext PositionExtractor[P]

	// length of the side of each cubic cell
	cellSize float64

	rangeX CoordRange
	rangeY CoordRange
	rangeZ CoordRange

	data *grid.Grid[int]
}

// NewPartition dices the volume spanned by the three ranges into cubic cells
// with the given edge length and allocates the grid. Point positions are
// read through ext.
func NewPartition[P any](ext PositionExtractor[P], rangeX, rangeY, rangeZ CoordRange, cellSize float64) *Partition[P] {
	nx, ny, nz := diceVolume(rangeX, rangeY, rangeZ, cellSize)
	return &Partition[P]{
		ext:      ext,
		cellSize: cellSize,
		rangeX:   rangeX,
		rangeY:   rangeY,
		rangeZ:   rangeZ,
		data:     grid.New[int](nx, ny, nz),
	}
}

// diceVolume returns the per-axis cell counts covering the three ranges with
// cells of the given edge length. Every axis gets at least one cell, so a
// degenerate (empty) range still produces a usable grid.
func diceVolume(rangeX, rangeY, rangeZ CoordRange, cellSize float64) (nx, ny, nz int) {
	dice := func(r CoordRange) int {
		n := int(math.Ceil(r.Size() / cellSize))
		if n < 1 {
			n = 1
		}
		return n
	}
	return dice(rangeX), dice(rangeY), dice(rangeZ)
}

// Fill bins every point of points into its owning cell, storing the point's
// slice index. On the first point outside the volume it stops and returns an
// *OutOfVolumeError; points binned before the failure are not rolled back,
// so the whole partition must then be discarded.
func (p *Partition[P]) Fill(points []P) error {
	for i, pt := range points {
		index, err := p.PointIndex(pt)
		if err != nil {
			return err
		}
		p.data.Insert(index, i)
	}
	return nil
}

// PointIndex resolves the flat index of the cell owning pt without inserting
// anything. It returns an *OutOfVolumeError naming the axis and coordinate
// if pt lies outside the volume.
//
// A coordinate exactly at a range's upper bound can fall past the last cell
// when the range size divides evenly into cells, and is then reported as out
// of the volume even though the range itself is inclusive. Pad the ranges
// slightly if boundary points must bin.
func (p *Partition[P]) PointIndex(pt P) (int, error) {
	x := p.ext.X(pt)
	xc := p.cellNumber(x, p.rangeX)
	if !p.data.HasX(xc) {
		return 0, &OutOfVolumeError{Axis: AxisX, Coord: x}
	}

	y := p.ext.Y(pt)
	yc := p.cellNumber(y, p.rangeY)
	if !p.data.HasY(yc) {
		return 0, &OutOfVolumeError{Axis: AxisY, Coord: y}
	}

	z := p.ext.Z(pt)
	zc := p.cellNumber(z, p.rangeZ)
	if !p.data.HasZ(zc) {
		return 0, &OutOfVolumeError{Axis: AxisZ, Coord: z}
	}

	return p.data.Index(grid.CellID{xc, yc, zc}), nil
}

// cellNumber returns the cell coordinate of c along one axis. The floor
// keeps coordinates below the lower bound negative, so the bounds check
// catches them instead of folding them into cell zero.
func (p *Partition[P]) cellNumber(c float64, r CoordRange) int {
	return int(math.Floor(r.Offset(c) / p.cellSize))
}

// CellSize returns the edge length of the cubic cells.
func (p *Partition[P]) CellSize() float64 { return p.cellSize }

// Indexer returns the index manager of the underlying grid.
func (p *Partition[P]) Indexer() grid.Indexer { return p.data.Indexer() }

// Has reports whether the signed flat offset addresses a cell of the grid.
func (p *Partition[P]) Has(offset int) bool { return p.data.Has(offset) }

// Cell returns the point indices stored in the cell at the given flat index.
func (p *Partition[P]) Cell(index int) []int { return p.data.Cell(index) }

// Cells iterates over every cell in flat-index order, yielding the flat
// index and the point indices stored there.
func (p *Partition[P]) Cells() iter.Seq2[int, []int] { return p.data.All() }
