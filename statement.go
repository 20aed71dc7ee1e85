package neograph

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement is a single Cypher statement together with the keys its RETURN
// clause produces. Upsert statements always return the entity handle first
// and its creation timestamp second; the timestamp is non-null only when this
// execution created the entity.
type Statement struct {
	Text       string
	ReturnKeys []string
}

// nodeUpsert builds the match-or-create statement for one node. Inputs must
// already be sanitized; the property fragment comes from EncodeProperties and
// may be empty, in which case the merge clause is omitted entirely.
//
// Matching is by the compound (label, name) key: the label is embedded as a
// bare token and the name as a double-quoted literal. The creation timestamp
// is set only on create; the supplementary properties are merged on every
// execution, matched or created.
func nodeUpsert(label, name, propsFragment string) Statement {
	var b strings.Builder
	fmt.Fprintf(&b, "MERGE (n:%s {name: %s})\n", label, strconv.Quote(name))
	b.WriteString("ON CREATE\n")
	b.WriteString("    SET n.created = timestamp()\n")
	if propsFragment != "" {
		fmt.Fprintf(&b, "SET n += {%s}\n", propsFragment)
	}
	b.WriteString("RETURN n, n.created")

	return Statement{Text: b.String(), ReturnKeys: []string{"n", "n.created"}}
}

// edgeUpsert builds the match-or-create statement for one directed
// relationship. Each endpoint is merged on its own (label, name) key before
// the relationship pattern is merged between the two bound aliases, so an
// existing endpoint is never duplicated and an existing relationship of the
// same label and direction between the same endpoints is matched, not
// re-created.
func edgeUpsert(fromLabel, fromName, toLabel, toName, relLabel, propsFragment string) Statement {
	var b strings.Builder
	fmt.Fprintf(&b, "MERGE (a:%s {name: %s})\n", fromLabel, strconv.Quote(fromName))
	fmt.Fprintf(&b, "MERGE (b:%s {name: %s})\n", toLabel, strconv.Quote(toName))
	fmt.Fprintf(&b, "MERGE (a)-[e:%s]->(b)\n", relLabel)
	b.WriteString("ON CREATE\n")
	b.WriteString("    SET e.created = timestamp()\n")
	if propsFragment != "" {
		fmt.Fprintf(&b, "SET e += {%s}\n", propsFragment)
	}
	b.WriteString("RETURN e, e.created")

	return Statement{Text: b.String(), ReturnKeys: []string{"e", "e.created"}}
}
