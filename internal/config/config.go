package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/zfacksandahler/btc-energy-model/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Curve        CurveConfig   `yaml:"curve"`
	HoursPerYear float64       `yaml:"hours_per_year"`
	Display      DisplayConfig `yaml:"display"`
}

type CurveConfig struct {
	BaselineYear   int     `yaml:"baseline_year"`
	BaselineJPerTH float64 `yaml:"baseline_j_per_th"`
	FloorYear      int     `yaml:"floor_year"`
	FloorJPerTH    float64 `yaml:"floor_j_per_th"`
}

type DisplayConfig struct {
	Decimals int `yaml:"decimals"`
}

// Default returns the standard assumptions: 50 J/TH in 2016 improving to
// 30 J/TH by 2020, 8760 operating hours, 2-decimal display.
func Default() *Config {
	curve := model.DefaultCurve()
	return &Config{
		Curve: CurveConfig{
			BaselineYear:   curve.BaselineYear,
			BaselineJPerTH: curve.BaselineJPerTH,
			FloorYear:      curve.FloorYear,
			FloorJPerTH:    curve.FloorJPerTH,
		},
		HoursPerYear: 8760,
		Display:      DisplayConfig{Decimals: 2},
	}
}

// Load reads a YAML config, fills unset fields from Default, and
// validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	def := Default()
	if c.Curve.BaselineYear == 0 {
		c.Curve.BaselineYear = def.Curve.BaselineYear
	}
	if c.Curve.BaselineJPerTH == 0 {
		c.Curve.BaselineJPerTH = def.Curve.BaselineJPerTH
	}
	if c.Curve.FloorYear == 0 {
		c.Curve.FloorYear = def.Curve.FloorYear
	}
	if c.Curve.FloorJPerTH == 0 {
		c.Curve.FloorJPerTH = def.Curve.FloorJPerTH
	}
	if c.HoursPerYear == 0 {
		c.HoursPerYear = def.HoursPerYear
	}
	if c.Display.Decimals == 0 {
		c.Display.Decimals = def.Display.Decimals
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Curve.ToModelCurve().Validate(); err != nil {
		return fmt.Errorf("curve config invalid: %w", err)
	}
	if c.HoursPerYear <= 0 {
		return errors.New("hours_per_year must be > 0")
	}
	if c.Display.Decimals < 0 {
		return errors.New("display.decimals must be >= 0")
	}
	return nil
}

func (cc CurveConfig) ToModelCurve() model.EfficiencyCurve {
	return model.EfficiencyCurve{
		BaselineYear:   cc.BaselineYear,
		BaselineJPerTH: cc.BaselineJPerTH,
		FloorYear:      cc.FloorYear,
		FloorJPerTH:    cc.FloorJPerTH,
	}
}
