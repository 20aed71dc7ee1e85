package neograph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name    string `graph:"name"`
	City    string `graph:"property:city"`
	Age     int    `graph:"property:age"`
	Ignored string
}

func TestNodeFromStruct(t *testing.T) {
	node, err := NodeFromStruct(&person{Name: "Alice", City: "LA", Age: 30})
	require.NoError(t, err)

	assert.Equal(t, "Alice", node.Name)
	assert.Equal(t, "person", node.Label)
	assert.Equal(t, map[string]interface{}{"city": "LA", "age": 30}, node.Props)
}

func TestNodeFromStructValueAndPointerAgree(t *testing.T) {
	byValue, err := NodeFromStruct(person{Name: "Bob"})
	require.NoError(t, err)
	byPointer, err := NodeFromStruct(&person{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, byValue, byPointer)
}

func TestNodeFromStructRequiresNameTag(t *testing.T) {
	type unnamed struct {
		City string `graph:"property:city"`
	}
	_, err := NodeFromStruct(&unnamed{City: "LA"})
	assert.ErrorContains(t, err, "name")
}

func TestNodeFromStructRejectsNilPointer(t *testing.T) {
	var p *person
	_, err := NodeFromStruct(p)
	assert.Error(t, err)
}

func TestNodeFromStructRejectsNonStruct(t *testing.T) {
	_, err := NodeFromStruct("not a struct")
	assert.ErrorContains(t, err, "not a struct")
}

func TestNodeFromStructRejectsUnknownTag(t *testing.T) {
	type tagged struct {
		Name string `graph:"name"`
		City string `graph:"column:city"`
	}
	_, err := NodeFromStruct(&tagged{Name: "x"})
	assert.ErrorContains(t, err, "unrecognized graph tag")
}
