// Package config provides type-safe environment variable loading with
// per-type caching. Parsing uses caarlos0/env struct tags; a .env file is
// loaded automatically on first use.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
