package neograph

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the connection settings for a Neo4j instance. It is a plain
// value retained by the owning caller; reconnecting means constructing a new
// executor from the same Config rather than mutating shared driver state.
type Config struct {
	// URI is the bolt/neo4j connection URI, e.g. "neo4j://localhost:7687".
	URI string

	// Username and Password authenticate against the instance.
	Username string
	Password string

	// Database is the target database name. Neo4j's default is "neo4j".
	Database string
}

// ConfigFromEnv builds a Config from environment variables, loading a .env
// file first when one is present.
//
// Recognized variables: NEO4J_URI, NEO4J_USERNAME, NEO4J_PASSWORD,
// NEO4J_DATABASE.
func ConfigFromEnv() Config {
	// Ignore the error: in production the variables come from the real
	// environment and no .env file exists.
	_ = godotenv.Load()

	return Config{
		URI:      getEnv("NEO4J_URI", "neo4j://localhost:7687"),
		Username: getEnv("NEO4J_USERNAME", "neo4j"),
		Password: getEnv("NEO4J_PASSWORD", ""),
		Database: getEnv("NEO4J_DATABASE", "neo4j"),
	}
}

func getEnv(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}
