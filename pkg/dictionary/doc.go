// Package dictionary holds the canonical catalog of reusable pScheduler
// type constraints.
//
// Each entry is a JSON-Schema draft-4 fragment, referenceable from caller
// schemas as "#/pScheduler/<Name>" (limit variants as
// "#/pScheduler/Limit/<Name>"). The catalog is frozen at process start:
// there is no mutation entry point, so it is safe to share across any
// number of concurrent validation calls without locking.
//
// Integrity is checked once, at package initialization: every internal
// "$ref" must resolve to another dictionary entry and every "pattern"
// must compile. A violation is a configuration defect and panics rather
// than surfacing later as a per-call validation failure.
//
// Callers that build partial schemas can introspect the catalog:
//
//	frag, ok := dictionary.Lookup("Duration")
//	if ok {
//	    fmt.Println(frag["pattern"])
//	}
//
// Lookup returns a deep copy; the catalog itself is never handed out in
// mutable form through the public query surface.
package dictionary
