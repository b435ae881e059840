// Package config loads, normalizes, and validates the TOML configuration for
// yydbuild.
//
// Configuration is optional by design: the tool must work when double-clicked
// with nothing but the bundled defaults. When a yydbuild.toml exists in the
// working directory (or a config file at the XDG default location), it is
// decoded over the defaults and validated. The resulting Config is immutable
// after Load and threaded through every pipeline stage as a parameter.
package config
