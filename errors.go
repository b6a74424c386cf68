package isolate

import (
	"fmt"
	"strings"
)

// Axis identifies one of the three spatial axes.
type Axis int

// The three axes, in the order coordinates are resolved.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// OutOfVolumeError reports the first point whose coordinate on some axis
// falls outside the configured volume.
//
// It is fail-fast: binning stops at the offending point and the partition is
// left partially filled, so the whole operation must be treated as failed.
type OutOfVolumeError struct {
	Axis  Axis    // axis on which the coordinate escaped the range
	Coord float64 // the offending coordinate value
}

func (e *OutOfVolumeError) Error() string {
	return fmt.Sprintf("point out of the volume (%s = %g)", e.Axis, e.Coord)
}

// ConfigurationError aggregates every problem found in a Configuration.
//
// Unlike OutOfVolumeError, validation is not fail-fast: all problems are
// collected and reported together so the caller gets the complete picture in
// one pass.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d configuration errors found:", len(e.Problems))
	for _, p := range e.Problems {
		sb.WriteString("\n * ")
		sb.WriteString(p)
	}
	return sb.String()
}
