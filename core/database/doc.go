// Package database handles the relational store connection.
//
// It provides a wrapper around GORM that configures a Postgres (default) or
// MySQL connection from the application's configuration, including a bounded
// connection pool and an initial ping with a timeout.
//
// The returned *gorm.DB is constructed once in cmd/start.go and injected into
// the feature packages; nothing in this codebase reaches for a global handle.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
