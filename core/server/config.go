package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// CorsOrigins is a comma separated list of allowed CORS origins.
	// An empty value allows any origin.
	CorsOrigins string `mapstructure:"cors_origins" default:""`
}
