package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Default engine parameters. The energy scales follow the reference material,
// which uses the same value for both (making their ratio exactly 1).
const (
	DefaultVacuumEnergy = 1e-9
	DefaultPlanckEnergy = 1e-9
	DefaultThreshold    = 0.15
	DefaultTolerance    = 0.001

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. CHI_THRESHOLD=0.2.
	EnvPrefix = "CHI"
)

// EngineConfig holds the scale constants and boundary parameters shared by
// all engine components. It is fixed at construction and never mutated
// during a run.
type EngineConfig struct {
	// VacuumEnergy is the vacuum energy density scale (J/m³).
	VacuumEnergy float64 `mapstructure:"vacuumEnergy" yaml:"vacuumEnergy"`

	// PlanckEnergy is the reference energy scale dividing VacuumEnergy in the
	// chi ratio (J/m³).
	PlanckEnergy float64 `mapstructure:"planckEnergy" yaml:"planckEnergy"`

	// Threshold is the chi boundary value separating valid from invalid points.
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`

	// Tolerance is the additive slack applied to the validity test only;
	// it does not shift reported boundary distances.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
}

// Default returns an EngineConfig populated with the default parameters.
func Default() *EngineConfig {
	return &EngineConfig{
		VacuumEnergy: DefaultVacuumEnergy,
		PlanckEnergy: DefaultPlanckEnergy,
		Threshold:    DefaultThreshold,
		Tolerance:    DefaultTolerance,
	}
}

// Validate checks for invalid configuration values.
func (c *EngineConfig) Validate() error {
	for name, v := range map[string]float64{
		"vacuumEnergy": c.VacuumEnergy,
		"planckEnergy": c.PlanckEnergy,
		"threshold":    c.Threshold,
		"tolerance":    c.Tolerance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	if c.VacuumEnergy <= 0 {
		return fmt.Errorf("vacuumEnergy must be > 0, got %g", c.VacuumEnergy)
	}
	if c.PlanckEnergy <= 0 {
		return fmt.Errorf("planckEnergy must be > 0, got %g", c.PlanckEnergy)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be > 0, got %g", c.Threshold)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %g", c.Tolerance)
	}
	return nil
}

// Load reads engine configuration from the given YAML file, applies
// environment variable overrides, fills unset fields with defaults, and
// validates the result. An empty path loads defaults plus environment
// overrides only.
func Load(path string) (*EngineConfig, error) {
	v := viper.New()
	v.SetDefault("vacuumEnergy", DefaultVacuumEnergy)
	v.SetDefault("planckEnergy", DefaultPlanckEnergy)
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("tolerance", DefaultTolerance)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	cfg := &EngineConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling engine config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}
