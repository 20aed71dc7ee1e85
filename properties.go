package neograph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EncodeProperties converts a map of supplementary properties into a Cypher
// map-literal fragment suitable for a `SET x += {...}` clause, e.g.
// `age: 30, city: "LA"`. The reserved structural keys (name, label) must not
// be present; they are carried by the entity itself, not its property map.
//
// Keys are sanitized. String values are sanitized and double-quoted; booleans
// and numbers are embedded in their literal form, unquoted, so callers must
// not feed attacker-controlled values through non-string types. Any other
// value type falls back to its sanitized, quoted fmt representation.
//
// An empty map yields an empty fragment, and the caller must then omit the
// merge clause entirely: `SET x += {}` is not valid Cypher.
//
// Key order in the fragment is sorted for deterministic statement text, but
// only the resulting property set is contractual.
func EncodeProperties(props map[string]interface{}) string {
	if len(props) == 0 {
		return ""
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(props))
	for _, k := range keys {
		entries = append(entries, fmt.Sprintf("%s: %s", sanitizeOne(k), encodeValue(props[k])))
	}
	return strings.Join(entries, ", ")
}

// encodeValue renders a single property value as a Cypher literal.
func encodeValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(sanitizeOne(t))
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return strconv.Quote(sanitizeOne(fmt.Sprintf("%v", t)))
	}
}
