// Package config provides configuration management for the chi-boundary engine.
//
// This package handles loading, validation, and access to engine configuration
// from files, environment variables, and in-memory profile data.
//
// Configuration Types:
//
//   - EngineConfig: physical scale constants and boundary parameters shared by
//     all engine components (vacuum energy, Planck-scale energy, threshold,
//     tolerance)
//   - ScanProfile: a named scan window (ranges + resolution) with optional
//     per-profile threshold overrides
//
// Configuration Sources:
//
//  1. Environment variables (highest priority, CHI_ prefix)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// Example usage:
//
//	// Load configuration from a file plus environment overrides
//	cfg, err := config.Load("engine.yaml")
//	if err != nil {
//	    log.Error(err, "failed to load configuration")
//	    return err
//	}
//
//	log.Info("engine configuration",
//	    "vacuumEnergy", cfg.VacuumEnergy,
//	    "threshold", cfg.Threshold,
//	    "tolerance", cfg.Tolerance)
//
// Configuration Validation:
//
// All configuration values are validated on load:
//   - Energy scales must be positive and finite
//   - Threshold must be positive
//   - Tolerance must be non-negative
//   - Scan profiles must describe non-empty windows with resolution >= 2
//
// An EngineConfig is immutable once constructed: components hold a pointer to
// a shared instance and never write through it, so independently configured
// engines can coexist in one process.
//
// Note on scale constants: the reference material uses identical defaults for
// VacuumEnergy and PlanckEnergy (their ratio is exactly 1) and is internally
// inconsistent about the critical radius that follows from them. Both values
// are therefore kept independently configurable and no closed-form critical
// radius is assumed anywhere in the engine.
package config
