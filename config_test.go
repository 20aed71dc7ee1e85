package neograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_PASSWORD", "")
	t.Setenv("NEO4J_DATABASE", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, "neo4j://localhost:7687", cfg.URI)
	assert.Equal(t, "neo4j", cfg.Username)
	assert.Equal(t, "neo4j", cfg.Database)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://db.internal:7687")
	t.Setenv("NEO4J_USERNAME", "svc")
	t.Setenv("NEO4J_PASSWORD", "secret")
	t.Setenv("NEO4J_DATABASE", "graph")

	cfg := ConfigFromEnv()
	assert.Equal(t, "neo4j://db.internal:7687", cfg.URI)
	assert.Equal(t, "svc", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "graph", cfg.Database)
}
