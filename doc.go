/*
Package pscheduler validates JSON-like values against the pScheduler type
dictionary: a fixed, versioned catalog of named, composable draft-4 type
constraints (durations, timestamps, IP addresses, UUIDs, ranges,
enumerations and the compound task/test/schedule records built from them).

It is meant to be embedded by many independent producers of partial
schemas. Each caller describes just the shape of its own message with a
Skeleton and references the shared catalog by name instead of redefining
primitives.

# Concept

A call to Validate layers the Skeleton over a fixed envelope schema, with
the dictionary attached under the reserved "pScheduler" namespace and any
call-local definitions under "local". The composed schema is self-checked
against the draft-4 meta-schema, the instance is validated with standard
draft-4 semantics, and only the first failure comes back, as a single
path-qualified message.

# Key properties

  - Pure and call-scoped: no state is retained across calls; the
    dictionary is frozen at startup, so concurrent callers never
    interact.
  - Two error classes: data-validity failures are Outcome values;
    programming errors (bad skeleton, non-object instance, corrupted
    schema) are *DefectError and abort the call.
  - Custom wording: a dictionary or local fragment carrying an
    "x-invalid-message" template overrides the engine default, with "%s"
    replaced by the offending value.

# Usage

	skeleton := pscheduler.Skeleton{
		"type": "object",
		"properties": map[string]any{
			"sendto":  map[string]any{"$ref": "#/pScheduler/Email"},
			"howlong": map[string]any{"$ref": "#/pScheduler/Duration"},
		},
		"required": []string{"sendto"},
	}

	outcome, err := pscheduler.Validate(map[string]any{
		"sendto":  "bob@example.com",
		"howlong": "PT10M",
	}, skeleton)
	if err != nil {
		log.Fatal(err) // defect in the calling code, not in the data
	}
	fmt.Println(outcome.Valid, outcome.Message)

Format-tagged strings (email, host-name, ipv4, ipv6, uri) are checked
through gojsonschema's format-checker chain, which the formats
subpackage seeds; callers may extend it. The dictionary
subpackage exposes the catalog read-only for callers that want to
introspect it while building Skeletons.
*/
package pscheduler
