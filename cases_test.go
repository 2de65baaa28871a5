package pscheduler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/frnkwang/pscheduler"
)

// validationCase is one fixture entry from testdata/cases.yaml.
type validationCase struct {
	Name     string         `yaml:"name"`
	Skeleton map[string]any `yaml:"skeleton"`
	Instance map[string]any `yaml:"instance"`
	Valid    bool           `yaml:"valid"`
	Message  string         `yaml:"message"`  // exact, when set
	Contains string         `yaml:"contains"` // substring, when set
}

// TestValidate_Cases runs the fixture-driven suite covering the
// dictionary's type families: patterns, ranges, unions, enumerations,
// limits and network primitives.
func TestValidate_Cases(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	require.NoError(t, err)

	var cases []validationCase
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			outcome, err := pscheduler.Validate(tc.Instance, pscheduler.Skeleton(tc.Skeleton))
			require.NoError(t, err)

			require.Equal(t, tc.Valid, outcome.Valid, "message: %s", outcome.Message)
			if tc.Message != "" {
				require.Equal(t, tc.Message, outcome.Message)
			}
			if tc.Contains != "" {
				require.Contains(t, outcome.Message, tc.Contains)
			}
		})
	}
}
