// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in cmd/start.go; this package only
// defines the configuration section so it can be embedded into the central
// config.Config struct alongside the other partial configurations.
package server
