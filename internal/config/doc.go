// Package config handles configuration loading and merging for verdict.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. Environment variables (VERDICT_NO_COLOR, VERDICT_CI, NO_COLOR, CI, ...)
//  2. YAML config file (.verdict.yaml in the working directory or ~/.config/verdict/.verdict.yaml)
//  3. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - NoColor: Renders failure reports without ANSI styling
//   - CI: Enables CI mode (implies NoColor)
//   - Debug: Enables debug logging to stderr
//   - Verbose: Appends a structural dump of the subject to rendered failures
//   - MaxDepth: Bounds how deep the value formatter descends into nested values
//   - Theme: Selects the failure styling theme (default or mono)
//
// # Environment Variables
//
// The following environment variables are recognized:
//
//   - VERDICT_NO_COLOR or NO_COLOR: Set to "true" or "1" to disable colors
//   - VERDICT_CI or CI: Set to "true" or "1" to enable CI mode
//   - VERDICT_DEBUG: Set to "true" or "1" to enable debug logging
//   - VERDICT_VERBOSE: Set to "true" or "1" to dump subjects in failure reports
//   - VERDICT_MAX_DEPTH: A non-negative integer; 0 selects the formatter default
//   - VERDICT_THEME: "default" or "mono"
package config
