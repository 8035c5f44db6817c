package server

import "net"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowRebuild exposes the index rebuild endpoint.
	AllowRebuild bool `mapstructure:"allow_rebuild" default:"false"`
}

// Address returns the listen address for the server.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}
