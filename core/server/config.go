package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB caps the size of a single uploaded extract in megabytes.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"64"`
}

// BodyLimit returns the Fiber body limit in bytes.
// Both extracts arrive in one multipart request, so the limit covers two files.
func (c Config) BodyLimit() int {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = 64
	}
	return 2 * mb * 1024 * 1024
}
