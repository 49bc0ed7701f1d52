package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Config holds every tunable the layout engine uses. A single Config flows
// through footprint estimation, space search, and overlap resolution so the
// visual footprint and the collision footprint can never diverge.
//
// The zero value is not usable - start from DefaultConfig and override.
type Config struct {
	// Footprint estimation
	CharWidth    float64 `toml:"char_width"`     // estimated px per label character
	PaddingX     float64 `toml:"padding_x"`      // horizontal label padding
	MinNodeWidth float64 `toml:"min_node_width"` // floor for very short labels
	NodeHeight   float64 `toml:"node_height"`    // fixed node height

	// Spacing
	MinGap      float64 `toml:"min_gap"`       // minimum clearance between footprints
	LevelGapY   float64 `toml:"level_gap_y"`   // vertical distance from parent to children
	SiblingGapX float64 `toml:"sibling_gap_x"` // horizontal distance between siblings

	// Spatial index
	CellSize float64 `toml:"cell_size"` // uniform grid cell edge length

	// Space-finding search budgets
	SpiralAttempts int     `toml:"spiral_attempts"`  // candidate budget for the spiral sweep
	SpiralStep     float64 `toml:"spiral_step"`      // radius growth per spiral ring
	GridScanExtent float64 `toml:"grid_scan_extent"` // half-width of the bounded grid scan
	GridScanStep   float64 `toml:"grid_scan_step"`   // grid scan step size

	// Overlap resolution
	MaxResolvePasses int     `toml:"max_resolve_passes"` // relaxation iteration budget
	Damping          float64 `toml:"damping"`            // per-pass displacement damping
	MaxStep          float64 `toml:"max_step"`           // per-pass displacement cap

	// Guards
	MaxNodes int `toml:"max_nodes"` // traversal guard for adversarial subgraphs

	// Seed drives the deterministic pseudo-random tie-breaking used by the
	// spiral search, so layouts are reproducible while avoiding mechanical
	// symmetry.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the standard layout configuration.
func DefaultConfig() Config {
	return Config{
		CharWidth:    8.0,
		PaddingX:     12.0,
		MinNodeWidth: 60.0,
		NodeHeight:   40.0,

		MinGap:      10.0,
		LevelGapY:   90.0,
		SiblingGapX: 24.0,

		CellSize: 90.0,

		SpiralAttempts: 96,
		SpiralStep:     40.0,
		GridScanExtent: 600.0,
		GridScanStep:   40.0,

		MaxResolvePasses: 40,
		Damping:          0.6,
		MaxStep:          48.0,

		MaxNodes: 5000,

		Seed: 42,
	}
}

// LoadConfigFile reads a TOML config file and overlays it on the defaults.
// Unknown keys are rejected so typos surface immediately.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load layout config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load layout config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load layout config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is geometrically sane.
func (c Config) Validate() error {
	if c.NodeHeight <= 0 || c.MinNodeWidth <= 0 {
		return fmt.Errorf("node dimensions must be positive")
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive")
	}
	if c.MinGap < 0 {
		return fmt.Errorf("min_gap must not be negative")
	}
	if c.MaxResolvePasses < 1 {
		return fmt.Errorf("max_resolve_passes must be at least 1")
	}
	if c.GridScanStep <= 0 || c.SpiralStep <= 0 {
		return fmt.Errorf("search step sizes must be positive")
	}
	return nil
}
