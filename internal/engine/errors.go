package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation matches every *Violation returned by Toggle.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrGenerationFailed matches every *GenerationError returned by Randomize.
	ErrGenerationFailed = errors.New("unable to generate a valid grid")
	// ErrOutOfRange reports a coordinate outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrInvalidProbability reports a fill probability outside [0, 1].
	ErrInvalidProbability = errors.New("fill probability must be within [0, 1]")
	// ErrInvalidConfig reports a Config that cannot build an engine.
	ErrInvalidConfig = errors.New("invalid engine config")
)

// ViolationKind names the rule class a rejected grid broke.
type ViolationKind int

const (
	// ViolationLineCap means a row or column holds more than MaxPerLine
	// filled cells.
	ViolationLineCap ViolationKind = iota + 1
	// ViolationBlock means a 2x2 block is entirely filled.
	ViolationBlock
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationLineCap:
		return "line cap"
	case ViolationBlock:
		return "filled block"
	default:
		return "unknown"
	}
}

// Axis distinguishes rows from columns in a line-cap violation.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// Violation describes the first broken invariant found in a candidate grid.
// For ViolationLineCap, Axis, Index and Count locate the line; for
// ViolationBlock, Row and Col are the block's top-left corner.
type Violation struct {
	Kind  ViolationKind
	Axis  Axis
	Index int
	Count int
	Row   int
	Col   int
}

func (v *Violation) Error() string {
	return ErrConstraintViolation.Error() + ": " + v.Detail()
}

// Detail describes where the violation occurred, without the error prefix.
func (v *Violation) Detail() string {
	switch v.Kind {
	case ViolationLineCap:
		return fmt.Sprintf("%s %d would hold %d filled cells (max %d)", v.Axis, v.Index, v.Count, MaxPerLine)
	case ViolationBlock:
		return fmt.Sprintf("2x2 block at (%d,%d) would be filled", v.Row, v.Col)
	default:
		return v.Kind.String()
	}
}

// Is makes errors.Is(v, ErrConstraintViolation) hold.
func (v *Violation) Is(target error) bool { return target == ErrConstraintViolation }

// GenerationError is returned when Randomize exhausts its attempt budget.
type GenerationError struct {
	Attempts    int
	Probability float64
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s after %d attempts at fill probability %.2f",
		ErrGenerationFailed, e.Attempts, e.Probability)
}

// Is makes errors.Is(e, ErrGenerationFailed) hold.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }
