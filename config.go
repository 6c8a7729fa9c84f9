package letterfield

import (
	"errors"
	"fmt"
)

// Config holds the tunables of the letter field. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Force model
	MaxDist           float64 // distance scale of the exponential falloff, in pixels
	DecayFactor       float64 // multiplies MaxDist; smaller values fade faster
	MaxForce          float64 // force at zero distance
	ScaleAmt          float64 // extra scale per unit of force
	NeighborRange     int     // index distance that gets geometric falloff
	NeighborInfluence float64 // factor applied to the first neighbor
	Threshold         float64 // forces at or below this return the glyph to rest
	Pull              float64 // fraction of the pointer displacement applied per unit force

	// Transition timings, in seconds
	ActiveDuration float32 // pull toward the pointer
	ReturnDuration float32 // per-frame return of weakly affected glyphs
	LeaveDuration  float32 // return after the pointer leaves the title
	LeaveStagger   float32 // extra delay per glyph index on leave
}

// DefaultConfig returns the tuning used by the hero title.
func DefaultConfig() Config {
	return Config{
		MaxDist:           220,
		DecayFactor:       0.6,
		MaxForce:          1,
		ScaleAmt:          0.35,
		NeighborRange:     4,
		NeighborInfluence: 0.6,
		Threshold:         0.01,
		Pull:              0.25,

		ActiveDuration: 0.3,
		ReturnDuration: 0.8,
		LeaveDuration:  1.2,
		LeaveStagger:   0.05,
	}
}

var errInvalidConfig = errors.New("letterfield: invalid config")

// Validate reports the first tunable that would make the force model
// degenerate.
func (c Config) Validate() error {
	switch {
	case c.MaxDist <= 0:
		return fmt.Errorf("%w: MaxDist must be positive, got %v", errInvalidConfig, c.MaxDist)
	case c.DecayFactor <= 0:
		return fmt.Errorf("%w: DecayFactor must be positive, got %v", errInvalidConfig, c.DecayFactor)
	case c.MaxForce < 0:
		return fmt.Errorf("%w: MaxForce must not be negative, got %v", errInvalidConfig, c.MaxForce)
	case c.NeighborRange < 0:
		return fmt.Errorf("%w: NeighborRange must not be negative, got %d", errInvalidConfig, c.NeighborRange)
	case c.Threshold < 0:
		return fmt.Errorf("%w: Threshold must not be negative, got %v", errInvalidConfig, c.Threshold)
	case c.ActiveDuration <= 0 || c.ReturnDuration <= 0 || c.LeaveDuration <= 0:
		return fmt.Errorf("%w: transition durations must be positive", errInvalidConfig)
	case c.LeaveStagger <= 0:
		return fmt.Errorf("%w: LeaveStagger must be positive, got %v", errInvalidConfig, c.LeaveStagger)
	}
	return nil
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}
