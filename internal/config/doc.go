// Package config loads, normalizes, and validates antenna configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ANTENNA_NTFY_TOPIC. The Config type centralizes every knob the CLI needs:
// listing and lookup endpoints, request timeouts, list size and output
// location, notification settings, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
