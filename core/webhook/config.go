package webhook

// Config holds configuration for the outbound form forwarder.
type Config struct {
	// Enabled toggles forwarding of form submissions.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// URL is the third-party workflow endpoint submissions are forwarded to.
	URL string `mapstructure:"url" default:""`
	// TimeoutSeconds bounds a single forwarding attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
