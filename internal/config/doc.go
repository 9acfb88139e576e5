// Package config loads, normalizes, and validates dotkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Configuration is optional: when no file
// exists, the defaults apply unchanged.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
