package neograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRemovesForbiddenCharacters(t *testing.T) {
	assert.Equal(t, []string{"Person"}, Sanitize("Per`son;/(){}"))
}

func TestSanitizePreservesEverythingElse(t *testing.T) {
	// Spaces and hyphens survive: identifiers are quoted later, not embedded
	// as bare tokens.
	assert.Equal(t, []string{"Mary-Jane Watson"}, Sanitize("Mary-Jane Watson"))
	assert.Equal(t, []string{"ümlaut & друг"}, Sanitize("ümlaut & друг"))
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{"", "plain", "Per`son;/(){}", "a;b;c", "((()))", "x/y/z"}
	for _, in := range inputs {
		once := sanitizeOne(in)
		assert.Equal(t, once, sanitizeOne(once), "input %q", in)
	}
}

func TestSanitizeEmptyString(t *testing.T) {
	assert.Equal(t, []string{""}, Sanitize(""))
}

func TestSanitizeVariadic(t *testing.T) {
	got := Sanitize("Per(son)", "Ali;ce", "KNO{W}S")
	assert.Equal(t, []string{"Person", "Alice", "KNOWS"}, got)
}
