// Package config provides configuration loading, merging, and validation
// facilities for the server, the terminal client and the backfill tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig], [GetClientConfig] and
// [GetBackfillConfig].
package config
