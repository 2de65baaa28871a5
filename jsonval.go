package pscheduler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/xeipuuv/gojsonschema"

	"github.com/frnkwang/pscheduler/internal/composer"
	"github.com/frnkwang/pscheduler/internal/translate"
	"github.com/frnkwang/pscheduler/pkg/formats"
)

// Skeleton is a caller-supplied partial schema for a single validation
// call. It may contain only the following draft-4 keys:
//
//	type                  (array, boolean, integer, null, number, object, string)
//	items                 (only when type is array)
//	properties            (only when type is object)
//	additionalProperties  (only when type is object)
//	required              required property names
//	local                 optional call-local definitions
//
// The optional "local" element holds definitions referenceable from the
// items or properties sections as "#/local/<Name>". The standard
// pScheduler types are available as "#/pScheduler/<Name>"; see the
// dictionary package for the catalog. Any other top-level key is a
// defect, not a validation failure.
type Skeleton map[string]any

// Outcome is the result of one validation call: either valid, or invalid
// with a single human-readable, location-qualified message. There is no
// multi-error variant; only the first failure is reported.
type Outcome struct {
	Valid   bool
	Message string
}

// Validate checks one JSON instance against a skeleton merged with the
// type dictionary.
//
// The instance must be a JSON object (a map[string]any). A non-object
// instance, a nil or malformed skeleton, or a composed schema that fails
// its meta-schema self-check returns a *DefectError; those are bugs in
// the calling code, not properties of the data. Data-validity results
// always come back through the Outcome: {true, "OK"} on success, or
// {false, message} describing the first failure encountered.
//
// Validation is a pure function of its inputs; the dictionary is frozen,
// so concurrent calls are safe and identical calls yield identical
// outcomes.
func Validate(instance any, skeleton Skeleton) (Outcome, error) {
	doc, ok := instance.(map[string]any)
	if !ok {
		return Outcome{}, &DefectError{Reason: "instance must be a JSON object"}
	}
	if skeleton == nil {
		return Outcome{}, &DefectError{Reason: "skeleton must be a JSON object"}
	}

	composed, err := composer.Build(skeleton)
	if err != nil {
		return Outcome{}, &DefectError{Reason: "invalid skeleton", Err: err}
	}

	formats.Register()

	// Compiling with Validate set runs the draft-4 meta-schema self-check:
	// a malformed skeleton fragment (or a corrupted dictionary) surfaces
	// here, before any instance data is looked at.
	loader := gojsonschema.NewSchemaLoader()
	loader.Draft = gojsonschema.Draft4
	loader.Validate = true
	schema, err := loader.Compile(gojsonschema.NewGoLoader(composed))
	if err != nil {
		return Outcome{}, &DefectError{Reason: "schema failed self-check", Err: err}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Outcome{}, &DefectError{Reason: "instance could not be loaded", Err: err}
	}

	if result.Valid() {
		return Outcome{Valid: true, Message: "OK"}, nil
	}

	first := translate.First(result.Errors())
	return Outcome{Message: translate.Message(first, composed)}, nil
}

// ValidateJSON is Validate for raw JSON bytes. Both documents must be
// JSON objects. Numbers are decoded with full precision (json.Number) so
// large integer bounds survive the round trip.
func ValidateJSON(instance, skeleton []byte) (Outcome, error) {
	doc, err := decodeObject(instance)
	if err != nil {
		return Outcome{}, &DefectError{Reason: "instance must be a JSON object", Err: err}
	}
	skel, err := decodeObject(skeleton)
	if err != nil {
		return Outcome{}, &DefectError{Reason: "skeleton must be a JSON object", Err: err}
	}
	return Validate(doc, Skeleton(skel))
}

func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("document is null")
	}
	return out, nil
}
