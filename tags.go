package neograph

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// entityMetadata holds the parsed `graph` tag information for a struct type.
// Parsed once per type and cached, so reflection cost is paid only on the
// first conversion.
type entityMetadata struct {
	// Label is the node label, defaulting to the struct's name.
	Label string
	// NameField is the struct field carrying the node's natural key.
	NameField string
	// Mappings maps the remaining tagged field names to their property names.
	Mappings map[string]string
}

// metaCache stores parsed entityMetadata keyed by reflect.Type.
var metaCache sync.Map

// NodeFromStruct converts a tagged struct into a Node ready for
// synchronization. The struct's name becomes the label; the field tagged
// `graph:"name"` becomes the node's natural key; every field tagged
// `graph:"property:<prop>"` lands in the node's property map.
//
// Example:
//
//	type Person struct {
//		Name string `graph:"name"`
//		City string `graph:"property:city"`
//	}
func NodeFromStruct(entity any) (Node, error) {
	val := reflect.ValueOf(entity)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return Node{}, fmt.Errorf("entity must not be a nil pointer")
		}
		val = val.Elem()
	}

	meta, err := metadataFor(val.Type())
	if err != nil {
		return Node{}, err
	}

	name, ok := val.FieldByName(meta.NameField).Interface().(string)
	if !ok {
		return Node{}, fmt.Errorf("name field %s of %s must be a string", meta.NameField, meta.Label)
	}

	props := make(map[string]interface{}, len(meta.Mappings))
	for fieldName, propName := range meta.Mappings {
		props[propName] = val.FieldByName(fieldName).Interface()
	}

	return Node{Name: name, Label: meta.Label, Props: props}, nil
}

// metadataFor returns the cached metadata for a type, parsing the tags on
// first use.
func metadataFor(typ reflect.Type) (*entityMetadata, error) {
	if cached, ok := metaCache.Load(typ); ok {
		return cached.(*entityMetadata), nil
	}
	meta, err := parseTagsFromType(typ)
	if err != nil {
		return nil, err
	}
	metaCache.Store(typ, meta)
	return meta, nil
}

// parseTagsFromType inspects a struct type and extracts mapping metadata from
// its `graph` tags.
func parseTagsFromType(typ reflect.Type) (*entityMetadata, error) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %s is not a struct", typ.Name())
	}

	meta := &entityMetadata{
		Label:    typ.Name(),
		Mappings: make(map[string]string),
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("graph")

		// Untagged fields are not part of the mapping.
		if tag == "" {
			continue
		}

		if tag == "name" {
			meta.NameField = field.Name
			continue
		}
		if strings.HasPrefix(tag, "property:") {
			meta.Mappings[field.Name] = strings.TrimPrefix(tag, "property:")
			continue
		}
		return nil, fmt.Errorf("field %s has unrecognized graph tag %q", field.Name, tag)
	}

	if meta.NameField == "" {
		return nil, fmt.Errorf("no 'name' tag defined for struct %s", typ.Name())
	}

	return meta, nil
}
