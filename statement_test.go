package neograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeUpsertStatement(t *testing.T) {
	stmt := nodeUpsert("Person", "Alice", `city: "LA"`)

	want := "MERGE (n:Person {name: \"Alice\"})\n" +
		"ON CREATE\n" +
		"    SET n.created = timestamp()\n" +
		"SET n += {city: \"LA\"}\n" +
		"RETURN n, n.created"
	assert.Equal(t, want, stmt.Text)
	assert.Equal(t, []string{"n", "n.created"}, stmt.ReturnKeys)
}

func TestNodeUpsertOmitsEmptyPropertyMerge(t *testing.T) {
	stmt := nodeUpsert("Person", "Alice", "")

	// `SET n += {}` is invalid Cypher, so the clause must be absent, not
	// empty.
	want := "MERGE (n:Person {name: \"Alice\"})\n" +
		"ON CREATE\n" +
		"    SET n.created = timestamp()\n" +
		"RETURN n, n.created"
	assert.Equal(t, want, stmt.Text)
	assert.NotContains(t, stmt.Text, "+= {}")
}

func TestNodeUpsertQuotesName(t *testing.T) {
	stmt := nodeUpsert("Person", `Mary-Jane "MJ" Watson`, "")
	assert.Contains(t, stmt.Text, `{name: "Mary-Jane \"MJ\" Watson"}`)
}

func TestEdgeUpsertStatement(t *testing.T) {
	stmt := edgeUpsert("Person", "Alice", "Person", "Bob", "KNOWS", "since: 2015")

	want := "MERGE (a:Person {name: \"Alice\"})\n" +
		"MERGE (b:Person {name: \"Bob\"})\n" +
		"MERGE (a)-[e:KNOWS]->(b)\n" +
		"ON CREATE\n" +
		"    SET e.created = timestamp()\n" +
		"SET e += {since: 2015}\n" +
		"RETURN e, e.created"
	assert.Equal(t, want, stmt.Text)
	assert.Equal(t, []string{"e", "e.created"}, stmt.ReturnKeys)
}

func TestEdgeUpsertMergesEndpointsBeforeRelationship(t *testing.T) {
	// Each endpoint is merged on its own key before the relationship pattern,
	// so an existing endpoint is bound rather than re-created, and a second
	// parallel edge of the same label and direction matches the existing
	// relationship.
	stmt := edgeUpsert("Person", "Alice", "Company", "Acme", "WORKS_AT", "")

	assert.Contains(t, stmt.Text, "MERGE (a:Person {name: \"Alice\"})")
	assert.Contains(t, stmt.Text, "MERGE (b:Company {name: \"Acme\"})")
	assert.Contains(t, stmt.Text, "MERGE (a)-[e:WORKS_AT]->(b)")
	assert.NotContains(t, stmt.Text, "+= {}")
}
