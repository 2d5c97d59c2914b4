package postman

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// shapeSchema only checks what the renderer walks: an object root whose
// collection (bare or under "collection") has an info object and an item
// array. It is not the Postman collection schema.
const shapeSchema = `{
  "type": "object",
  "definitions": {
    "collection": {
      "type": "object",
      "properties": {
        "info": {"type": "object"},
        "item": {"type": "array", "items": {"type": "object"}}
      },
      "required": ["info"]
    }
  },
  "anyOf": [
    {"properties": {"collection": {"$ref": "#/definitions/collection"}}, "required": ["collection"]},
    {"$ref": "#/definitions/collection"}
  ]
}`

var shapeLoader = gojsonschema.NewStringLoader(shapeSchema)

// checkShape validates data against shapeSchema.
func checkShape(data []byte) error {
	result, err := gojsonschema.Validate(shapeLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	var msgs []string
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Decode parses a collection from data. Both a bare collection export and
// the Postman API envelope {"collection": {...}} are accepted.
func Decode(data []byte) (*Collection, error) {
	if !json.Valid(data) {
		return nil, &ParseError{Message: "body is not valid JSON"}
	}
	if err := checkShape(data); err != nil {
		return nil, &ParseError{Message: "body is not a Postman collection", Cause: err}
	}

	var envelope struct {
		Collection *Collection `json:"collection"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ParseError{Message: "failed to decode collection", Cause: err}
	}
	if envelope.Collection != nil {
		return envelope.Collection, nil
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &ParseError{Message: "failed to decode collection", Cause: err}
	}
	return &c, nil
}
