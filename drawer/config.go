package drawer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"
)

const (
	// A release faster than this, in pixels per millisecond, over a short
	// distance is treated as a flick.
	VelocityForForcedClose = 2.0
	// Fraction of the panel size below which a flick forces a close.
	ForcedCloseThreshold = 0.4
)

const (
	DefaultCloseThreshold    = 0.4
	DefaultVelocityThreshold = 0.5
	DefaultScrollLockTimeout = 100 * time.Millisecond
	DefaultDampingFactor     = 0.5
	DefaultSwipeThreshold    = 40
	DefaultReverseThreshold  = 10
)

type Config struct {
	// Direction in which the panel is dragged closed.
	Direction swipe.Direction
	// Disabled makes the engine ignore presses.
	Disabled bool
	// SnapPoints are the rest positions of the panel. Without snap points the
	// drawer is either open or closed.
	SnapPoints []snap.Point
	// ActiveSnapPointIndex is the initial rest position. It is clamped to the
	// valid range.
	ActiveSnapPointIndex int
	// CloseThreshold is the distance that has to be dragged to close the
	// panel. Values in (0, 1) are fractions of the panel size, all others are
	// pixels.
	CloseThreshold float32
	// VelocityThreshold, in pixels per millisecond, above which a release
	// closes the panel regardless of distance.
	VelocityThreshold float32
	// ScrollLockTimeout is the window after scrolling content during which
	// presses are not turned into drags.
	ScrollLockTimeout time.Duration
	// DampingFactor is the exponent of the rubber band resistance. Must be in
	// (0, 1).
	DampingFactor float32
	// SwipeThreshold is how far a gesture has to advance again after
	// reversing before a cancellation is lifted.
	SwipeThreshold float32
	// ReverseThreshold is how far a gesture has to fall back from its furthest
	// point to be cancelled.
	ReverseThreshold float32

	// Logger receives debug output about gesture sessions. May be nil.
	Logger *slog.Logger
}

// WithDefaults returns a copy of cfg with all unset fields set to their
// defaults.
func (cfg Config) WithDefaults() Config {
	if cfg.CloseThreshold == 0 {
		cfg.CloseThreshold = DefaultCloseThreshold
	}
	if cfg.VelocityThreshold == 0 {
		cfg.VelocityThreshold = DefaultVelocityThreshold
	}
	if cfg.ScrollLockTimeout == 0 {
		cfg.ScrollLockTimeout = DefaultScrollLockTimeout
	}
	if cfg.DampingFactor == 0 {
		cfg.DampingFactor = DefaultDampingFactor
	}
	if cfg.SwipeThreshold == 0 {
		cfg.SwipeThreshold = DefaultSwipeThreshold
	}
	if cfg.ReverseThreshold == 0 {
		cfg.ReverseThreshold = DefaultReverseThreshold
	}
	return cfg
}

// Validate checks a configuration after defaults have been applied.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Direction > swipe.Right {
		errs = append(errs, fmt.Errorf("invalid direction %s", cfg.Direction))
	}
	if cfg.DampingFactor <= 0 || cfg.DampingFactor >= 1 {
		errs = append(errs, fmt.Errorf("damping factor %v is not in (0, 1)", cfg.DampingFactor))
	}
	if cfg.CloseThreshold < 0 {
		errs = append(errs, fmt.Errorf("negative close threshold %v", cfg.CloseThreshold))
	}
	if cfg.VelocityThreshold < 0 {
		errs = append(errs, fmt.Errorf("negative velocity threshold %v", cfg.VelocityThreshold))
	}
	if cfg.ScrollLockTimeout < 0 {
		errs = append(errs, fmt.Errorf("negative scroll lock timeout %s", cfg.ScrollLockTimeout))
	}
	if cfg.SwipeThreshold < 0 || cfg.ReverseThreshold < 0 {
		errs = append(errs, errors.New("swipe and reverse thresholds must not be negative"))
	}
	for i, p := range cfg.SnapPoints {
		if !p.Valid() {
			errs = append(errs, fmt.Errorf("snap point %d: %s", i, p))
		}
	}
	return errors.Join(errs...)
}

// ResolveCloseThreshold returns the close threshold in pixels for a panel of
// the given size.
func (cfg Config) ResolveCloseThreshold(panelSize float32) float32 {
	t := cfg.CloseThreshold
	if t > 0 && t < 1 {
		if panelSize <= 0 {
			return 0
		}
		return t * panelSize
	}
	return t
}
