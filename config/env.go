package config

import "os"

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from ENV. Anything
// unrecognized falls back to development.
func GetEnvironment() Environment {
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	}
	return Development
}
