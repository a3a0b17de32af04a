// Package container provides a reflection-based dependency-injection
// container. Services are registered as constructor functions and resolved
// by type; constructor arguments are resolved recursively, so the container
// builds the full dependency graph on first use.
//
//	c := container.New()
//	c.Provide(func() *Config { return loadConfig() })
//	c.Provide(func(cfg *Config) *UserRepo { return NewUserRepo(cfg.DSN) })
//	c.Provide(func(repo *UserRepo) *UserService { return NewUserService(repo) })
//
//	svc, err := container.ResolveAs[*UserService](c)
//
// Every provider is a singleton: the constructor runs once and the value is
// cached. Interfaces resolve to their single registered implementor;
// multiple implementors make the resolution ambiguous and return an error,
// as do cycles in the constructor graph.
package container
