// Package formats wires the string-format checkers the dictionary relies
// on into gojsonschema's global format chain.
//
// The engine itself never implements a format check: email, hostname,
// ipv4, ipv6 and uri come from gojsonschema's bundled checkers, and this
// package only fills the gaps: the dictionary's draft-3 style
// "host-name" spelling and a stricter "uuid" built on google/uuid.
// Callers may extend the chain further through
// gojsonschema.FormatCheckers before validating.
package formats

import (
	"sync"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

var registerOnce sync.Once

// Register installs the extra format checkers. It is safe to call from
// any number of goroutines; registration happens once.
func Register() {
	registerOnce.Do(func() {
		gojsonschema.FormatCheckers.Add("host-name", gojsonschema.HostnameFormatChecker{})
		gojsonschema.FormatCheckers.Add("uuid", uuidFormatChecker{})
	})
}

// uuidFormatChecker validates RFC 4122 UUID strings.
type uuidFormatChecker struct{}

func (uuidFormatChecker) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	_, err := uuid.Parse(s)
	return err == nil
}
