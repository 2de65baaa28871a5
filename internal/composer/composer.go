// Package composer builds the per-call validation schema: a fixed
// envelope with the caller's skeleton merged in and the type dictionary
// attached under its reserved namespace.
package composer

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/frnkwang/pscheduler/pkg/dictionary"
)

const (
	schemaDraft = "http://json-schema.org/draft-04/schema#"
	schemaID    = "http://perfsonar.net/pScheduler/json_generic.json"
	schemaTitle = "pScheduler Generic Validation Schema"
)

// recognizedKeys are the only top-level keys a skeleton may carry, in the
// order they are merged over the envelope.
var recognizedKeys = []string{
	"type",
	"items",
	"properties",
	"additionalProperties",
	"required",
	dictionary.LocalNamespace,
}

// skeletonShape mirrors the recognized keys for strict decoding. Decoding
// with ErrorUnused rejects anything a skeleton is not allowed to say, and
// the typed fields catch grossly malformed values (a non-list "required",
// a non-object "properties") before the meta-schema check runs.
type skeletonShape struct {
	Type                 any            `mapstructure:"type"`
	Items                any            `mapstructure:"items"`
	Properties           map[string]any `mapstructure:"properties"`
	AdditionalProperties any            `mapstructure:"additionalProperties"`
	Required             []string       `mapstructure:"required"`
	Local                map[string]any `mapstructure:"local"`
}

// Build composes the validation schema for one call. The skeleton's
// recognized keys overwrite the envelope's slots; nothing is merged any
// deeper; a skeleton fragment that references dictionary or local types
// is passed through untouched and resolved during validation.
//
// An unrecognized or malformed skeleton key is a caller programming
// error and returns an error; it is never reported as a data-validity
// outcome.
func Build(skeleton map[string]any) (map[string]any, error) {
	var shape skeletonShape
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &shape,
		ErrorUnused: true,
		// Schema keys are case-sensitive; mapstructure folds case unless
		// told otherwise.
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(skeleton); err != nil {
		return nil, fmt.Errorf("malformed skeleton: %w", err)
	}

	schema := map[string]any{
		"$schema":              schemaDraft,
		"id":                   schemaID,
		"title":                schemaTitle,
		"type":                 "object",
		"additionalProperties": false,
		dictionary.Namespace:   dictionary.Fragments(),
	}

	for _, key := range recognizedKeys {
		if value, ok := skeleton[key]; ok {
			schema[key] = value
		}
	}

	return schema, nil
}
