package fern

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxDepth bounds the recursion budget accepted by Validate.
const MaxDepth = 12

var (
	// ErrInvalidDepth reports a depth outside [1, MaxDepth].
	ErrInvalidDepth = errors.New("fern: depth out of range")
	// ErrInvalidGrowth reports a growth factor that would keep stems from
	// shrinking.
	ErrInvalidGrowth = errors.New("fern: growth must be finite and below 1")
	// ErrInvalidAngle reports a non-finite curl angle.
	ErrInvalidAngle = errors.New("fern: angle must be finite")
	// ErrInvalidFronds reports a negative frond count.
	ErrInvalidFronds = errors.New("fern: frond count must not be negative")
)

// Params holds the values that shape one render.
type Params struct {
	// Depth is the recursion budget of every fern.
	Depth int
	// Angle is the global curl subtracted from every branch direction.
	Angle float64
	// Growth elongates stems: continuations shrink by 1/(2-Growth).
	Growth float64
	// FrondCount is the number of ferns radiating from the centre.
	FrondCount int
}

// DefaultParams returns the standard configuration.
func DefaultParams() Params {
	return Params{
		Depth:      5,
		Angle:      0.05,
		Growth:     0.4,
		FrondCount: 7,
	}
}

// FromMap populates the params from a string map (flag-style key/value pairs).
// Malformed values are ignored and leave the default in place.
func FromMap(cfg map[string]string) Params {
	p := DefaultParams()
	if cfg == nil {
		return p
	}
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Depth = parsed
		}
	}
	if v, ok := cfg["angle"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Angle = parsed
		}
	}
	if v, ok := cfg["growth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Growth = parsed
		}
	}
	if v, ok := cfg["fronds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.FrondCount = parsed
		}
	}
	return p
}

// Validate reports the first configuration error, if any. Values are never
// clamped here so the caller sees exactly what was rejected.
func (p Params) Validate() error {
	if p.Depth < 1 || p.Depth > MaxDepth {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDepth, p.Depth, MaxDepth)
	}
	if math.IsNaN(p.Growth) || math.IsInf(p.Growth, 0) || p.Growth >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidGrowth, p.Growth)
	}
	if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAngle, p.Angle)
	}
	if p.FrondCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFronds, p.FrondCount)
	}
	return nil
}

// ColorDepth is the green step per recursion level.
func (p Params) ColorDepth() float64 {
	if p.Depth <= 0 {
		return 0
	}
	return 255 / float64(p.Depth)
}
