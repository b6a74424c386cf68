package isolate

import (
	geo "github.com/golang/geo/r3"
	gonum "gonum.org/v1/gonum/spatial/r3"
)

// PositionExtractor reads the spatial coordinates of a point representation.
//
// The engine never copies or converts points: it reads the three coordinates
// through the extractor on demand and keeps only indices into the caller's
// slice. Supply one implementation per point type; as a type parameter bound
// it is resolved at compile time, so the per-point hot path pays no interface
// boxing for the points themselves.
type PositionExtractor[P any] interface {
	// X returns the x coordinate of p.
	X(p P) float64
	// Y returns the y coordinate of p.
	Y(p P) float64
	// Z returns the z coordinate of p.
	Z(p P) float64
}

// ArrayExtractor reads a [3]float64 as {x, y, z}.
type ArrayExtractor struct{}

func (ArrayExtractor) X(p [3]float64) float64 { return p[0] }
func (ArrayExtractor) Y(p [3]float64) float64 { return p[1] }
func (ArrayExtractor) Z(p [3]float64) float64 { return p[2] }

// SliceExtractor reads a []float64 as {x, y, z}. The length is not checked.
type SliceExtractor struct{}

func (SliceExtractor) X(p []float64) float64 { return p[0] }
func (SliceExtractor) Y(p []float64) float64 { return p[1] }
func (SliceExtractor) Z(p []float64) float64 { return p[2] }

// GeoVectorExtractor reads a golang/geo r3.Vector, the point type commonly
// used by point cloud pipelines.
type GeoVectorExtractor struct{}

func (GeoVectorExtractor) X(p geo.Vector) float64 { return p.X }
func (GeoVectorExtractor) Y(p geo.Vector) float64 { return p.Y }
func (GeoVectorExtractor) Z(p geo.Vector) float64 { return p.Z }

// GonumVecExtractor reads a gonum spatial/r3 Vec.
type GonumVecExtractor struct{}

func (GonumVecExtractor) X(p gonum.Vec) float64 { return p.X }
func (GonumVecExtractor) Y(p gonum.Vec) float64 { return p.Y }
func (GonumVecExtractor) Z(p gonum.Vec) float64 { return p.Z }

// FuncExtractor adapts three accessor functions to a PositionExtractor.
// Use it for point types you do not control without writing a named type.
type FuncExtractor[P any] struct {
	XFunc func(P) float64
	YFunc func(P) float64
	ZFunc func(P) float64
}

func (f FuncExtractor[P]) X(p P) float64 { return f.XFunc(p) }
func (f FuncExtractor[P]) Y(p P) float64 { return f.YFunc(p) }
func (f FuncExtractor[P]) Z(p P) float64 { return f.ZFunc(p) }
