package neograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePropertiesEmptyMap(t *testing.T) {
	assert.Equal(t, "", EncodeProperties(nil))
	assert.Equal(t, "", EncodeProperties(map[string]interface{}{}))
}

func TestEncodePropertiesStringValuesAreSanitizedAndQuoted(t *testing.T) {
	got := EncodeProperties(map[string]interface{}{"city": `LA"; DROP (x)`})
	assert.Equal(t, `city: "LA\" DROP x"`, got)
}

func TestEncodePropertiesKeysAreSanitized(t *testing.T) {
	got := EncodeProperties(map[string]interface{}{"ci{t}y": "LA"})
	assert.Equal(t, `city: "LA"`, got)
}

func TestEncodePropertiesLiteralValues(t *testing.T) {
	got := EncodeProperties(map[string]interface{}{
		"age":    30,
		"score":  1.5,
		"active": true,
	})
	assert.Equal(t, "active: true, age: 30, score: 1.5", got)
}

func TestEncodePropertiesMixed(t *testing.T) {
	got := EncodeProperties(map[string]interface{}{
		"city": "SF",
		"age":  int64(30),
	})
	assert.Equal(t, `age: 30, city: "SF"`, got)
}
