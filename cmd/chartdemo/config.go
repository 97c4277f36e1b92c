package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chartgeom/chart/indicator"
)

// Config is the optional YAML configuration shared by both subcommands.
type Config struct {
	Rotation   RotationConfig    `yaml:"rotation"`
	Indicators []IndicatorConfig `yaml:"indicators"`
}

// RotationConfig holds projection angles in degrees.
type RotationConfig struct {
	Alpha        float64 `yaml:"alpha"`
	Beta         float64 `yaml:"beta"`
	Depth        float64 `yaml:"depth"`
	ViewDistance float64 `yaml:"viewDistance"`
}

// IndicatorConfig selects one computer and its parameters. Zero-valued
// periods fall back to each indicator's conventional default.
type IndicatorConfig struct {
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Period      int    `yaml:"period"`
	ShortPeriod int    `yaml:"shortPeriod"`
	LongPeriod  int    `yaml:"longPeriod"`
	KPeriod     int    `yaml:"kPeriod"`
	DPeriod     int    `yaml:"dPeriod"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// columnName is what the export table calls this indicator's columns.
func (ic IndicatorConfig) columnName() string {
	if ic.Name != "" {
		return ic.Name
	}
	return ic.Kind
}

// computer builds the configured indicator, starting from the registry
// defaults and overriding the periods that were set.
func (ic IndicatorConfig) computer() (indicator.Computer, error) {
	c, ok := indicator.DefaultRegistry().Lookup(indicator.Kind(ic.Kind))
	if !ok {
		return nil, fmt.Errorf("unknown indicator kind %q", ic.Kind)
	}
	switch v := c.(type) {
	case *indicator.SMA:
		if ic.Period > 0 {
			v.Period = ic.Period
		}
	case *indicator.EMA:
		if ic.Period > 0 {
			v.Period = ic.Period
		}
	case *indicator.DEMA:
		if ic.Period > 0 {
			v.Period = ic.Period
		}
	case *indicator.TEMA:
		if ic.Period > 0 {
			v.Period = ic.Period
		}
	case *indicator.PPO:
		if ic.ShortPeriod > 0 {
			v.ShortPeriod = ic.ShortPeriod
		}
		if ic.LongPeriod > 0 {
			v.LongPeriod = ic.LongPeriod
		}
	case *indicator.Stochastic:
		if ic.KPeriod > 0 {
			v.KPeriod = ic.KPeriod
		}
		if ic.DPeriod > 0 {
			v.DPeriod = ic.DPeriod
		}
	}
	return c, nil
}
