// Package config holds the settings of one carspecs run: the lookup
// parameters, how pages are fetched, how the result is rendered, and
// whether it is recorded in the history database.
//
// Settings come from three layers, later layers winning: the defaults of
// NewConfig, an optional YAML file (.carspecs), and explicitly set CLI flags.
package config
