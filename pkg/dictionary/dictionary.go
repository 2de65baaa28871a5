package dictionary

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// Namespace is the reserved key under which the dictionary is attached
	// to every composed schema. References take the form
	// "#/pScheduler/<Name>".
	Namespace = "pScheduler"

	// LocalNamespace is the reserved key for caller-supplied definitions,
	// referenced as "#/local/<Name>". It is kept separate from Namespace so
	// local names can never clobber dictionary entries.
	LocalNamespace = "local"
)

func init() {
	if err := verify(types); err != nil {
		panic(fmt.Sprintf("dictionary: %v", err))
	}
}

// Lookup returns a deep copy of the named fragment. Nested limit types are
// addressed with a slash, e.g. "Limit/Cardinal". The second return is false
// when no such identifier exists.
func Lookup(name string) (map[string]any, bool) {
	frag, ok := resolveName(name)
	if !ok {
		return nil, false
	}
	return deepCopy(frag).(obj), true
}

// Has reports whether the dictionary defines the given identifier.
func Has(name string) bool {
	_, ok := resolveName(name)
	return ok
}

// Names returns every identifier in the dictionary, sorted. Limit variants
// appear as "Limit/<Name>"; the bare "Limit" group is not itself a type.
func Names() []string {
	names := make([]string, 0, len(types))
	for name, frag := range types {
		if name == "Limit" {
			for sub := range frag.(obj) {
				names = append(names, name+"/"+sub)
			}
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fragments returns the full fragment map for embedding under Namespace in
// a composed schema. The map is shared by all callers and must be treated
// as read-only.
func Fragments() map[string]any {
	return types
}

// Collisions returns the names in a skeleton's local definition set that
// shadow dictionary identifiers, sorted. Because dictionary and local
// references live in separate namespaces a collision is harmless to the
// engine, but producers of partial schemas usually want to know about the
// shadowing.
func Collisions(local map[string]any) []string {
	var out []string
	for name := range local {
		if Has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func resolveName(name string) (obj, bool) {
	cur := types
	for _, seg := range strings.Split(name, "/") {
		next, ok := cur[seg].(obj)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// verify walks every fragment checking that internal references resolve
// within the dictionary namespace and that every declared pattern compiles.
func verify(root obj) error {
	var walk func(path string, node any) error
	walk = func(path string, node any) error {
		switch v := node.(type) {
		case obj:
			for key, val := range v {
				at := path + "/" + key
				switch key {
				case "$ref":
					ref, ok := val.(string)
					if !ok {
						return fmt.Errorf("non-string $ref at %s", path)
					}
					if err := checkRef(root, ref); err != nil {
						return fmt.Errorf("%s: %w", at, err)
					}
				case "pattern":
					pat, ok := val.(string)
					if !ok {
						return fmt.Errorf("non-string pattern at %s", path)
					}
					if _, err := regexp.Compile(pat); err != nil {
						return fmt.Errorf("%s: %w", at, err)
					}
				default:
					if err := walk(at, val); err != nil {
						return err
					}
				}
			}
		case list:
			for i, item := range v {
				if err := walk(fmt.Sprintf("%s/%d", path, i), item); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk("", root)
}

func checkRef(root obj, ref string) error {
	prefix := "#/" + Namespace + "/"
	if !strings.HasPrefix(ref, prefix) {
		return fmt.Errorf("reference %q escapes the dictionary namespace", ref)
	}
	if _, ok := resolveName(strings.TrimPrefix(ref, prefix)); !ok {
		return fmt.Errorf("dangling reference %q", ref)
	}
	return nil
}

func deepCopy(node any) any {
	switch v := node.(type) {
	case obj:
		out := make(obj, len(v))
		for key, val := range v {
			out[key] = deepCopy(val)
		}
		return out
	case list:
		out := make(list, len(v))
		for i, item := range v {
			out[i] = deepCopy(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []int:
		out := make([]int, len(v))
		copy(out, v)
		return out
	default:
		return node
	}
}
