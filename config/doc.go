/*
Package config defines the explicit configuration object for the docframe library.

There is no global mutable configuration. Default() builds a fresh instance
with library defaults, Load() layers a YAML or JSON file on top of those
defaults, and ApplyEnv() applies DOCFRAME_* environment overrides. Core
packages receive a *Config by reference from their callers; only application
entry points should reach for Default().

	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
	    log.Fatal(err)
	}
	f := docframe.NewFetcher(docframe.WithConfig(cfg))
*/
package config
