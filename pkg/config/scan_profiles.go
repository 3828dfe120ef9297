package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/internal/logging"
)

const (
	// ProfileDefaultsKey is the reserved entry name holding defaults that
	// apply to every scan profile.
	ProfileDefaultsKey = "default"
)

// ScanProfile describes a named rectangular scan window. It combines the
// grid geometry with optional per-profile boundary overrides.
type ScanProfile struct {
	// Name is the profile identifier (only used in override entries).
	Name string `yaml:"name,omitempty"`

	// Scan window, inclusive of both endpoints on each axis.
	XMin float64 `yaml:"xMin"`
	XMax float64 `yaml:"xMax"`
	YMin float64 `yaml:"yMin"`
	YMax float64 `yaml:"yMax"`

	// Resolution is the number of grid points per axis.
	Resolution int `yaml:"resolution,omitempty"`

	// Threshold/Tolerance override the engine values for this profile when
	// set. Pointers allow omitting a field and inheriting from defaults.
	Threshold *float64 `yaml:"threshold,omitempty"`
	Tolerance *float64 `yaml:"tolerance,omitempty"`
}

// ScanProfileData holds pre-read scan profiles keyed by profile name.
type ScanProfileData map[string]ScanProfile

// Validate checks for invalid profile values.
func (p *ScanProfile) Validate() error {
	if p.XMin >= p.XMax {
		return fmt.Errorf("xMin (%g) must be < xMax (%g)", p.XMin, p.XMax)
	}
	if p.YMin >= p.YMax {
		return fmt.Errorf("yMin (%g) must be < yMax (%g)", p.YMin, p.YMax)
	}
	if p.Resolution < 2 {
		return fmt.Errorf("resolution must be >= 2, got %d", p.Resolution)
	}
	if p.Threshold != nil && *p.Threshold <= 0 {
		return fmt.Errorf("threshold must be > 0, got %g", *p.Threshold)
	}
	if p.Tolerance != nil && *p.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %g", *p.Tolerance)
	}
	return nil
}

// ParseScanProfileData parses scan profiles from a map of YAML documents,
// e.g. the data section of a deployment-supplied config object. The format:
//   - "default": window defaults shared by all profiles
//   - "<entry-name>": per-profile configuration with a name field
//
// Malformed or invalid entries are skipped with a log line rather than
// failing the whole parse.
func ParseScanProfileData(data map[string]string) ScanProfileData {
	out := make(ScanProfileData)
	if data == nil {
		return out
	}
	log := logging.Logger()

	// Defaults are extracted first so every override can be validated in its
	// merged form. Defaults may be partial on their own.
	if raw, ok := data[ProfileDefaultsKey]; ok {
		var defaults ScanProfile
		if err := yaml.Unmarshal([]byte(raw), &defaults); err != nil {
			log.Info("Failed to parse scan profile defaults, skipping",
				"key", ProfileDefaultsKey,
				"error", err)
		} else {
			out[ProfileDefaultsKey] = defaults
		}
	}
	defaults := out[ProfileDefaultsKey]

	nameToKeys := make(map[string][]string)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == ProfileDefaultsKey {
			continue
		}

		var profile ScanProfile
		if err := yaml.Unmarshal([]byte(data[key]), &profile); err != nil {
			log.Info("Failed to parse scan profile entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if profile.Name == "" {
			log.Info("Skipping scan profile without name field", "key", key)
			continue
		}

		if existing, dup := nameToKeys[profile.Name]; dup {
			log.Info("Duplicate profile name in scan profile data - first key wins",
				"name", profile.Name,
				"winningKey", existing[0],
				"duplicateKey", key)
			continue
		}

		merged := profile.mergeOver(defaults)
		if err := merged.Validate(); err != nil {
			log.Info("Skipping invalid scan profile",
				"key", key,
				"name", profile.Name,
				"error", err)
			continue
		}
		nameToKeys[profile.Name] = append(nameToKeys[profile.Name], key)

		out[profile.Name] = profile
	}

	log.V(logging.DEBUG).Info("Parsed scan profiles", "profileCount", len(out))

	return out
}

// mergeOver layers this profile over the shared defaults. A window is
// overridden as a whole: a profile either inherits the full default window
// or replaces it.
func (p ScanProfile) mergeOver(defaults ScanProfile) ScanProfile {
	result := defaults
	result.Name = p.Name

	if p.XMin != 0 || p.XMax != 0 || p.YMin != 0 || p.YMax != 0 {
		result.XMin = p.XMin
		result.XMax = p.XMax
		result.YMin = p.YMin
		result.YMax = p.YMax
	}
	if p.Resolution != 0 {
		result.Resolution = p.Resolution
	}
	if p.Threshold != nil {
		result.Threshold = p.Threshold
	}
	if p.Tolerance != nil {
		result.Tolerance = p.Tolerance
	}
	return result
}

// GetProfile returns the effective profile for a given name, merging the
// named entry over the shared defaults. Unknown names return the defaults.
func (data ScanProfileData) GetProfile(name string) ScanProfile {
	defaults := data[ProfileDefaultsKey]
	profile, has := data[name]
	if !has {
		return defaults
	}
	return profile.mergeOver(defaults)
}

// EngineConfigFor returns a copy of base with this profile's boundary
// overrides applied.
func (p ScanProfile) EngineConfigFor(base *EngineConfig) *EngineConfig {
	cfg := *base
	if p.Threshold != nil {
		cfg.Threshold = *p.Threshold
	}
	if p.Tolerance != nil {
		cfg.Tolerance = *p.Tolerance
	}
	return &cfg
}
