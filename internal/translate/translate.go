// Package translate turns the engine's first validation failure into the
// single path-qualified message callers receive.
package translate

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// rootField is gojsonschema's marker for failures on the top-level value.
const rootField = "(root)"

// messageKey is the optional per-fragment override for the engine's
// default wording. A "%s" in the template is replaced with the offending
// value.
const messageKey = "x-invalid-message"

// contextDelim joins reporting-context segments for splitting. A NUL
// never occurs in a property name, unlike the ".".
const contextDelim = "\x00"

// First selects the failure to report from the engine's collected
// errors: the one closest to the instance root, with depth ties broken
// by path order. The engine walks object properties in map order, so
// without the tie-break two same-depth failures would alternate between
// runs. A full path tie keeps the earliest report, which puts a union's
// aggregate oneOf/anyOf failure ahead of its branch errors.
func First(errs []gojsonschema.ResultError) gojsonschema.ResultError {
	var best gojsonschema.ResultError
	var bestPath []string
	for _, e := range errs {
		path := segments(e.Context())
		if best == nil || pathLess(path, bestPath) {
			best = e
			bestPath = path
		}
	}
	return best
}

// pathLess orders instance paths by depth, then segment by segment.
// Numeric segments compare as array indexes.
func pathLess(a, b []string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return segmentLess(a[i], b[i])
		}
	}
	return false
}

func segmentLess(a, b string) bool {
	if isIndex(a) && isIndex(b) && len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Message renders one failure against the composed schema it was
// validated with. When the rejecting subschema declares a custom message
// template it wins over the engine default; a non-empty failure path is
// joined with "/" and prefixed "At /<path>: ".
func Message(rerr gojsonschema.ResultError, schema map[string]any) string {
	segs := segments(rerr.Context())

	msg := rerr.Description()
	if sub := locate(schema, segs); sub != nil {
		if tmpl, ok := sub[messageKey].(string); ok {
			msg = strings.ReplaceAll(tmpl, "%s", valueText(rerr.Value()))
		}
	}

	if len(segs) == 0 {
		return msg
	}
	return "At /" + strings.Join(segs, "/") + ": " + msg
}

// segments flattens a failure's reporting context into instance path
// segments. The context is the source of truth; the dotted Field()
// rendering is ambiguous for a property name containing a ".".
func segments(ctx *gojsonschema.JsonContext) []string {
	if ctx == nil {
		return nil
	}
	segs := strings.Split(ctx.String(contextDelim), contextDelim)
	if len(segs) > 0 && segs[0] == rootField {
		segs = segs[1:]
	}
	if len(segs) == 0 {
		return nil
	}
	return segs
}

func valueText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// locate walks the composed schema along an instance path, dereferencing
// "$ref" through the dictionary and local namespaces, and returns the
// subschema that constrained the failing value. A path the schema cannot
// express (e.g. inside an untaken union branch) yields nil and the caller
// falls back to the engine default message.
func locate(root map[string]any, segs []string) map[string]any {
	cur := deref(root, root)
	for _, seg := range segs {
		if cur == nil {
			return nil
		}
		if props, ok := cur["properties"].(map[string]any); ok {
			if sub, ok := props[seg].(map[string]any); ok {
				cur = deref(root, sub)
				continue
			}
		}
		if isIndex(seg) {
			if items, ok := cur["items"].(map[string]any); ok {
				cur = deref(root, items)
				continue
			}
		}
		return nil
	}
	return cur
}

// deref follows $ref chains. The chain length is bounded so a cyclic
// reference cannot hang the reporting path.
func deref(root, node map[string]any) map[string]any {
	for i := 0; i < 16; i++ {
		ref, ok := node["$ref"].(string)
		if !ok {
			return node
		}
		next := resolveRef(root, ref)
		if next == nil {
			return node
		}
		node = next
	}
	return node
}

// resolveRef looks up an intra-document reference such as
// "#/pScheduler/Duration", "#/pScheduler/Limit/Cardinal" or
// "#/local/protocol" against the composed schema.
func resolveRef(root map[string]any, ref string) map[string]any {
	if !strings.HasPrefix(ref, "#/") {
		return nil
	}
	cur := any(root)
	for _, seg := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		if cur, ok = m[seg]; !ok {
			return nil
		}
	}
	m, _ := cur.(map[string]any)
	return m
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
