package config

import "fmt"

// ValidateConfig checks the loaded configuration for combinations that can
// only fail later, at first use.
func ValidateConfig(cfg *Config) error {
	switch cfg.DocstoreBackend {
	case BackendFirestore:
		if cfg.FirestoreProjectID == "" {
			return fmt.Errorf("FIRESTORE_PROJECT_ID is required with the firestore backend")
		}
	case BackendPostgres:
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			return fmt.Errorf("DB_HOST, DB_NAME and DB_USER are required with the postgres backend")
		}
	case BackendRedis:
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			return fmt.Errorf("REDIS_URL or REDIS_HOST/REDIS_PORT are required with the redis backend")
		}
	default:
		return fmt.Errorf("unknown docstore backend: %s", cfg.DocstoreBackend)
	}

	switch cfg.AuthScheme {
	case AuthPlaintext, AuthBcrypt:
	default:
		return fmt.Errorf("unknown auth scheme: %s", cfg.AuthScheme)
	}

	if cfg.FoodBucket == "" || cfg.UserBucket == "" {
		return fmt.Errorf("FOOD_BUCKET and USER_BUCKET must not be empty")
	}
	if cfg.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}

	return nil
}
