// Package config loads, normalizes, and validates mlinput configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// MLINPUT_* environment overrides. The Config type centralizes the knobs the
// editor and CLI need: the default language for new records, the paste merge
// policy, advisory field lengths, clipboard handling, extra catalog names and
// log output.
//
// Always obtain settings through this package so downstream code receives
// canonical language codes, a parseable merge mode, and clear validation
// errors.
package config
