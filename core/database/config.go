package database

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"5432"`
	// User is the database user.
	User string `mapstructure:"user" default:"default_user"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"loaning_system"`
	// Driver is the database driver (postgres, mysql).
	Driver string `mapstructure:"driver" default:"postgres"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxOpenConns bounds the connection pool size.
	MaxOpenConns int `mapstructure:"max_open_conns" default:"25"`
	// MaxIdleConns bounds the number of idle pooled connections.
	MaxIdleConns int `mapstructure:"max_idle_conns" default:"5"`
}
