package pscheduler_test

import (
	"fmt"
	"log"

	"github.com/frnkwang/pscheduler"
)

// ExampleValidate shows a producer of a partial schema referencing the
// shared type dictionary and a call-local definition.
func ExampleValidate() {
	skeleton := pscheduler.Skeleton{
		"type": "object",
		"local": map[string]any{
			"protocol": map[string]any{
				"type": "string",
				"enum": []string{"icmp", "udp", "tcp"},
			},
		},
		"properties": map[string]any{
			"sendto":   map[string]any{"$ref": "#/pScheduler/Email"},
			"howlong":  map[string]any{"$ref": "#/pScheduler/Duration"},
			"protocol": map[string]any{"$ref": "#/local/protocol"},
			"x-factor": map[string]any{"type": "number"},
		},
		"required": []string{"sendto", "x-factor"},
	}

	instance := map[string]any{
		"sendto":   "bob@example.com",
		"x-factor": 3.14,
		"protocol": "udp",
		"howlong":  "PT10Mxx",
	}

	outcome, err := pscheduler.Validate(instance, skeleton)
	if err != nil {
		log.Fatal(err) // a defect in this code, not in the instance
	}
	fmt.Println(outcome.Valid)
	fmt.Println(outcome.Message)
	// Output:
	// false
	// At /howlong: 'PT10Mxx' is not a valid ISO 8601 duration.
}
