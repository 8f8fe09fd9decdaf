// Package config loads settings for the versa CLI: defaults, an optional
// JSON file (-c/-config) and command-line flags, in that order.
package config
