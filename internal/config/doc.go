// Package config loads, normalizes, and validates streamlens configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from either an explicit path, a
// project-local streamlens.toml, or the user config directory. The Config
// type centralizes every knob the CLI needs: the dataset location, the
// artifact output directory, chart theming, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
