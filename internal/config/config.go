// Package config loads drawer configurations from YAML files.
//
// A configuration file looks like this:
//
//	direction: down
//	snap_points: [null, 200, "50%"]
//	active_snap_point: 2
//	close_threshold: 0.25
//	scroll_lock_timeout: 150ms
//
// Omitted settings use the engine's defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"honnef.co/go/drawer/drawer"
	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"

	"gopkg.in/yaml.v3"
)

// File is the on-disk representation of a drawer.Config.
type File struct {
	Direction         string      `yaml:"direction,omitempty"`
	Disabled          bool        `yaml:"disabled,omitempty"`
	SnapPoints        []SnapPoint `yaml:"snap_points,omitempty"`
	ActiveSnapPoint   int         `yaml:"active_snap_point,omitempty"`
	CloseThreshold    float32     `yaml:"close_threshold,omitempty"`
	VelocityThreshold float32     `yaml:"velocity_threshold,omitempty"`
	ScrollLockTimeout Duration    `yaml:"scroll_lock_timeout,omitempty"`
	DampingFactor     float32     `yaml:"damping_factor,omitempty"`
	SwipeThreshold    float32     `yaml:"swipe_threshold,omitempty"`
	ReverseThreshold  float32     `yaml:"reverse_threshold,omitempty"`
}

// SnapPoint is a snap point as written in YAML: a number of pixels, a
// percentage string such as "50%", or null for the closed position.
type SnapPoint struct {
	snap.Point
}

func (sp *SnapPoint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: snap point must be a scalar", node.Line)
	}
	var p snap.Point
	switch node.ShortTag() {
	case "!!null":
		sp.Point = snap.Closed()
		return nil
	case "!!int", "!!float":
		p = snap.ParseArg(node.Value)
	default:
		p = snap.Parse(node.Value)
	}
	if !p.Valid() {
		return fmt.Errorf("line %d: invalid snap point %q", node.Line, node.Value)
	}
	sp.Point = p
	return nil
}

// Duration accepts Go duration strings such as "150ms", or plain integers,
// which are milliseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if ms, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// Config converts the file to an engine configuration. Defaults are applied
// and the result is validated.
func (f *File) Config() (drawer.Config, error) {
	dir, err := swipe.ParseDirection(f.Direction)
	if err != nil {
		return drawer.Config{}, err
	}
	cfg := drawer.Config{
		Direction:            dir,
		Disabled:             f.Disabled,
		ActiveSnapPointIndex: f.ActiveSnapPoint,
		CloseThreshold:       f.CloseThreshold,
		VelocityThreshold:    f.VelocityThreshold,
		ScrollLockTimeout:    time.Duration(f.ScrollLockTimeout),
		DampingFactor:        f.DampingFactor,
		SwipeThreshold:       f.SwipeThreshold,
		ReverseThreshold:     f.ReverseThreshold,
	}
	for _, sp := range f.SnapPoints {
		cfg.SnapPoints = append(cfg.SnapPoints, sp.Point)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return drawer.Config{}, err
	}
	return cfg, nil
}

// Parse decodes a configuration file. Unknown keys are errors. An empty
// document yields the default configuration.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Load reads and converts the configuration file at path.
func Load(path string) (drawer.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return drawer.Config{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return drawer.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg, err := f.Config()
	if err != nil {
		return drawer.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
