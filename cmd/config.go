package cmd

import "time"

// Default background sweep settings, used when the environment does not
// override them.
const (
	DefaultOrderTimeout  = 30 * time.Minute
	DefaultSweepInterval = 30 * time.Second
)

// Config carries all runtime settings for the marketplace service.
// When DBHost is empty the service runs on in-memory storage.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	MatchingPolicy string
	OrderTimeout   time.Duration
	SweepInterval  time.Duration
}
