// Package config provides configuration management for the loaning hub.
//
// It utilizes Viper for loading configuration from environment variables and a
// local .env file (via godotenv). Default values are declared as 'default:'
// struct tags on the partial config structs and bound through reflection.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, CORS origins)
//   - Database: Postgres/MySQL connection details and pool bounds
//   - Storage: S3/MinIO credentials and bucket settings
//   - Webhook: outbound form forwarding endpoint
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
