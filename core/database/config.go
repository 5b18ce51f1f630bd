package database

// Config holds configuration for the optional CAMA database connection.
type Config struct {
	// Enabled turns the database-backed CAMA source on. When false the CAMA
	// extract must arrive as an uploaded file.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" default:"cama"`
	// Table is the table holding the assessment extract.
	Table string `mapstructure:"table" default:"cama_parcels"`
	// TimeoutSeconds is the connection and I/O timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
