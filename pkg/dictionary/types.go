package dictionary

// Shorthand aliases to keep the fragment literals below readable.
type (
	obj  = map[string]any
	list = []any
)

// types holds every fragment in the dictionary, keyed by identifier.
// Fragments reference each other as "#/pScheduler/<Name>". The limit
// variants live under the nested "Limit" group and are referenced as
// "#/pScheduler/Limit/<Name>".
//
// Adding an "x-invalid-message" string to any fragment replaces the
// engine's default error message for values it rejects. The sequence
// "%s" in that string is replaced with the invalid value. See
// "Duration" for an example.
var types = obj{

	//
	// JSON types
	//

	"AnyJSON": obj{
		"oneOf": list{
			obj{"type": "array"},
			obj{"type": "boolean"},
			obj{"type": "integer"},
			obj{"type": "null"},
			obj{"type": "number"},
			obj{"type": "object"},
			obj{"type": "string"},
		},
	},

	"Array": obj{"type": "array"},

	"AS": obj{
		"type": "object",
		"properties": obj{
			"number": obj{"$ref": "#/pScheduler/Cardinal"},
			"owner":  obj{"type": "string"},
		},
		"additionalProperties": false,
		"required":             []string{"number"},
	},

	"Boolean": obj{"type": "boolean"},

	"Cardinal": obj{
		"type":    "integer",
		"minimum": 1,
	},

	"CardinalList": obj{
		"type":  "array",
		"items": obj{"$ref": "#/pScheduler/Cardinal"},
	},

	"CardinalRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/Cardinal"},
			"upper": obj{"$ref": "#/pScheduler/Cardinal"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"CardinalZero": obj{
		"type":    "integer",
		"minimum": 0,
	},

	"CardinalZeroList": obj{
		"type":  "array",
		"items": obj{"$ref": "#/pScheduler/CardinalZero"},
	},

	"CardinalZeroRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/CardinalZero"},
			"upper": obj{"$ref": "#/pScheduler/CardinalZero"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"ClockState": obj{
		"type": "object",
		"properties": obj{
			"time":         obj{"$ref": "#/pScheduler/Timestamp"},
			"synchronized": obj{"$ref": "#/pScheduler/Boolean"},
			"source":       obj{"$ref": "#/pScheduler/String"},
			"reference":    obj{"$ref": "#/pScheduler/String"},
			"offset":       obj{"$ref": "#/pScheduler/Number"},
		},
		"additionalProperties": false,
		"required":             []string{"time", "synchronized"},
	},

	"Duration": obj{
		"type": "string",
		// ISO 8601.  Source: https://gist.github.com/philipashlock/8830168
		// Modified not to accept repeats (e.g., R5PT1M), which we don't support.
		// Modified not to accept months or years, which are inexact.
		"pattern":           `^P(?:\d+(?:\.\d+)?W)?(?:\d+(?:\.\d+)?D)?(?:T(?:\d+(?:\.\d+)?H)?(?:\d+(?:\.\d+)?M)?(?:\d+(?:\.\d+)?S)?)?$`,
		"x-invalid-message": "'%s' is not a valid ISO 8601 duration.",
	},

	"DurationRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/Duration"},
			"upper": obj{"$ref": "#/pScheduler/Duration"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"Email": obj{"type": "string", "format": "email"},

	"Float": obj{"type": "number"},

	"GeographicPosition": obj{
		"type": "string",
		// ISO 6709
		"pattern": `^(([+-]\d{2})(\d{2})?(\d{2})?(\.\d+)?)(([+-]\d{3})(\d{2})?(\d{2})?(\.\d+)?)([+-]\d+(\.\d+)?)?$`,
	},

	"Host": obj{
		"anyOf": list{
			obj{"$ref": "#/pScheduler/HostName"},
			obj{"$ref": "#/pScheduler/IPAddress"},
		},
	},

	"HostName": obj{
		"type":   "string",
		"format": "host-name",
	},

	"Integer": obj{"type": "integer"},

	"IPAddress": obj{
		"oneOf": list{
			obj{"type": "string", "format": "ipv4"},
			obj{"type": "string", "format": "ipv6"},
		},
	},

	"IPv4": obj{"type": "string", "format": "ipv4"},

	"IPv6": obj{"type": "string", "format": "ipv6"},

	"IPv4CIDR": obj{
		"type": "string",
		// Source: http://blog.markhatton.co.uk/2011/03/15/regular-expressions-for-ip-addresses-cidr-ranges-and-hostnames
		"pattern": `^(([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])\.){3}([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])(\/([0-9]|[1-2][0-9]|3[0-2]))$`,
	},

	"IPv6CIDR": obj{
		"type": "string",
		// Source: http://www.regexpal.com/93988
		"pattern": `^s*((([0-9A-Fa-f]{1,4}:){7}([0-9A-Fa-f]{1,4}|:))|(([0-9A-Fa-f]{1,4}:){6}(:[0-9A-Fa-f]{1,4}|((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3})|:))|(([0-9A-Fa-f]{1,4}:){5}(((:[0-9A-Fa-f]{1,4}){1,2})|:((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3})|:))|(([0-9A-Fa-f]{1,4}:){4}(((:[0-9A-Fa-f]{1,4}){1,3})|((:[0-9A-Fa-f]{1,4})?:((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3}))|:))|(([0-9A-Fa-f]{1,4}:){3}(((:[0-9A-Fa-f]{1,4}){1,4})|((:[0-9A-Fa-f]{1,4}){0,2}:((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3}))|:))|(([0-9A-Fa-f]{1,4}:){2}(((:[0-9A-Fa-f]{1,4}){1,5})|((:[0-9A-Fa-f]{1,4}){0,3}:((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3}))|:))|(([0-9A-Fa-f]{1,4}:){1}(((:[0-9A-Fa-f]{1,4}){1,6})|((:[0-9A-Fa-f]{1,4}){0,4}:((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3}))|:))|(:(((:[0-9A-Fa-f]{1,4}){1,7})|((:[0-9A-Fa-f]{1,4}){0,5}:((25[0-5]|2[0-4]d|1dd|[1-9]?d)(.(25[0-5]|2[0-4]d|1dd|[1-9]?d)){3}))|:)))(%.+)?s*(\/([0-9]|[1-9][0-9]|1[0-1][0-9]|12[0-8]))?$`,
	},

	"IPCIDR": obj{
		"oneOf": list{
			obj{"$ref": "#/pScheduler/IPv4CIDR"},
			obj{"$ref": "#/pScheduler/IPv6CIDR"},
		},
	},

	"Int8": obj{
		"type":    "integer",
		"minimum": -128,
		"maximum": 127,
	},

	"UInt8": obj{
		"type":    "integer",
		"minimum": 0,
		"maximum": 255,
	},

	"Int16": obj{
		"type":    "integer",
		"minimum": -32768,
		"maximum": 32767,
	},

	"UInt16": obj{
		"type":    "integer",
		"minimum": 0,
		"maximum": 65535,
	},

	"Int32": obj{
		"type":    "integer",
		"minimum": -2147483648,
		"maximum": 2147483647,
	},

	"UInt32": obj{
		"type":    "integer",
		"minimum": 0,
		"maximum": 4294967295,
	},

	"Int64": obj{
		"type":    "integer",
		"minimum": int64(-9223372036854775808),
		"maximum": int64(9223372036854775807),
	},

	"UInt64": obj{
		"type":    "integer",
		"minimum": 0,
		"maximum": uint64(18446744073709551615),
	},

	"IPPort": obj{
		"type":    "integer",
		"minimum": 0,
		"maximum": 65535,
	},

	"IPPortRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/IPPort"},
			"upper": obj{"$ref": "#/pScheduler/IPPort"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"IPTOS": obj{
		"type":    "integer",
		"minimum": 0,
		"maximum": 255,
	},

	"JQTransformSpecification": obj{
		"type": "object",
		"properties": obj{
			"script":     obj{"$ref": "#/pScheduler/String"},
			"output-raw": obj{"$ref": "#/pScheduler/Boolean"},
		},
		"additionalProperties": false,
		"required":             []string{"script"},
	},

	"Number": obj{"type": "number"},

	"Numeric": obj{
		"anyOf": list{
			obj{"$ref": "#/pScheduler/Number"},
			obj{"$ref": "#/pScheduler/SINumber"},
		},
	},

	"NumericRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/Numeric"},
			"upper": obj{"$ref": "#/pScheduler/Numeric"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"Probability": obj{
		"type":    "number",
		"minimum": 0.0,
		"maximum": 1.0,
	},

	"ProbabilityRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/Probability"},
			"upper": obj{"$ref": "#/pScheduler/Probability"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"RetryPolicy": obj{
		"type":  "array",
		"items": obj{"$ref": "#/pScheduler/RetryPolicyEntry"},
	},

	"RetryPolicyEntry": obj{
		"type": "object",
		"properties": obj{
			"attempts": obj{"$ref": "#/pScheduler/Cardinal"},
			"wait":     obj{"$ref": "#/pScheduler/Duration"},
		},
		"additionalProperties": false,
		"required":             []string{"attempts", "wait"},
	},

	"SINumber": obj{
		"oneOf": list{
			obj{
				"type":    "string",
				"pattern": `^[0-9]+(\.[0-9]+)?(\s*[KkMmGgTtPpEeZzYy][Ii]?)?$`,
			},
			obj{
				"type": "integer",
			},
		},
	},

	"SINumberRange": obj{
		"type": "object",
		"properties": obj{
			"lower": obj{"$ref": "#/pScheduler/SINumber"},
			"upper": obj{"$ref": "#/pScheduler/SINumber"},
		},
		"additionalProperties": false,
		"required":             []string{"lower", "upper"},
	},

	"String": obj{"type": "string"},

	"StringList": obj{
		"type":  "array",
		"items": obj{"$ref": "#/pScheduler/String"},
	},

	"StringMatch": obj{
		"type": "object",
		"properties": obj{
			"style": obj{
				"type": "string",
				"enum": []string{"exact", "contains", "regex"},
			},
			"match":            obj{"$ref": "#/pScheduler/String"},
			"case-insensitive": obj{"$ref": "#/pScheduler/Boolean"},
			"invert":           obj{"$ref": "#/pScheduler/Boolean"},
		},
		"additionalProperties": false,
		"required":             []string{"style", "match"},
	},

	"EnumMatch": obj{
		"type": "object",
		"properties": obj{
			"enumeration": obj{
				"type": "array",
				"items": obj{
					"anyOf": list{
						obj{"type": "string"},
						obj{"$ref": "#/pScheduler/Number"},
					},
				},
			},
			"invert": obj{"$ref": "#/pScheduler/Boolean"},
		},
		"additionalProperties": false,
		"required":             []string{"enumeration"},
	},

	"Timestamp": obj{
		"type": "string",
		// ISO 8601, re-expressed without backreferences or lookahead so it
		// compiles under RE2. Accepts calendar, week and ordinal dates with
		// optional time and zone designators.
		"pattern": `^[+-]?\d{4}(-?(0[1-9]|1[0-2])(-?([12]\d|0[1-9]|3[01]))?|-?W([0-4]\d|5[0-2])(-?[1-7])?|-?(00[1-9]|0[1-9]\d|[12]\d{2}|3([0-5]\d|6[1-6])))?([T\s](([01]\d|2[0-3])(:?[0-5]\d)?|24:?00)([.,]\d+)?(:?[0-5]\d([.,]\d+)?)?([zZ]|[+-]([01]\d|2[0-3]):?([0-5]\d)?)?)?$`,
	},

	"TimestampAbsoluteRelative": obj{
		"oneOf": list{
			obj{"$ref": "#/pScheduler/Timestamp"},
			obj{"$ref": "#/pScheduler/Duration"},
			obj{
				// Same pattern as the ISO 8601 duration, with '@' prepended.
				"type":    "string",
				"pattern": `^@(R\d*/)?P(?:\d+(?:\.\d+)?Y)?(?:\d+(?:\.\d+)?M)?(?:\d+(?:\.\d+)?W)?(?:\d+(?:\.\d+)?D)?(?:T(?:\d+(?:\.\d+)?H)?(?:\d+(?:\.\d+)?M)?(?:\d+(?:\.\d+)?S)?)?$`,
			},
		},
	},

	"URL": obj{"type": "string", "format": "uri"},

	"UUID": obj{
		"type":    "string",
		"pattern": `^[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}$`,
	},

	"Version": obj{
		"type":    "string",
		"pattern": `^[0-9]+(\.[0-9]+(\.[0-9]+)?)$`,
	},

	//
	// Compound types
	//

	"ArchiveSpecification": obj{
		"type": "object",
		"properties": obj{
			"archiver":  obj{"type": "string"},
			"data":      obj{"$ref": "#/pScheduler/AnyJSON"},
			"transform": obj{"$ref": "#/pScheduler/JQTransformSpecification"},
			"ttl":       obj{"$ref": "#/pScheduler/Duration"},
		},
		"additionalProperties": false,
		"required":             []string{"archiver", "data"},
	},

	"Maintainer": obj{
		"type": "object",
		"properties": obj{
			"name":  obj{"type": "string"},
			"email": obj{"$ref": "#/pScheduler/Email"},
			"href":  obj{"$ref": "#/pScheduler/URL"},
		},
		"additionalProperties": false,
		"required":             []string{"name"},
	},

	"NameVersion": obj{
		"type": "object",
		"properties": obj{
			"name":    obj{"type": "string"},
			"version": obj{"$ref": "#/pScheduler/Version"},
		},
		"additionalProperties": false,
		"required":             []string{"name", "version"},
	},

	"ParticipantResult": obj{
		"type": "object",
		"properties": obj{
			"participant": obj{"$ref": "#/pScheduler/Host"},
			"result":      obj{"$ref": "#/pScheduler/AnyJSON"},
		},
		"additionalProperties": false,
		"required":             []string{"participant", "result"},
	},

	"RunResult": obj{
		"type": "object",
		"properties": obj{
			"id":       obj{"$ref": "#/pScheduler/UUID"},
			"schedule": obj{"$ref": "#/pScheduler/TimeRange"},
			"test":     obj{"$ref": "#/pScheduler/TestSpecification"},
			"tool":     obj{"$ref": "#/pScheduler/NameVersion"},
			"participants": obj{
				"type":  "array",
				"items": obj{"$ref": "#/pScheduler/ParticipantResult"},
			},
			"result": obj{"$ref": "#/pScheduler/AnyJSON"},
		},
		"additionalProperties": false,
		"required":             []string{"id", "schedule", "test", "tool", "participants", "result"},
	},

	"ScheduleSpecification": obj{
		"type": "object",
		"properties": obj{
			"start":    obj{"$ref": "#/pScheduler/TimestampAbsoluteRelative"},
			"slip":     obj{"$ref": "#/pScheduler/Duration"},
			"sliprand": obj{"$ref": "#/pScheduler/Boolean"},
			"repeat":   obj{"$ref": "#/pScheduler/Duration"},
			"until":    obj{"$ref": "#/pScheduler/TimestampAbsoluteRelative"},
			"max-runs": obj{"$ref": "#/pScheduler/Cardinal"},
		},
		"additionalProperties": false,
	},

	"TaskSpecification": obj{
		"type": "object",
		"properties": obj{
			"schema":    obj{"$ref": "#/pScheduler/Cardinal"},
			"lead-bind": obj{"$ref": "#/pScheduler/Host"},
			"test":      obj{"$ref": "#/pScheduler/TestSpecification"},
			"tool":      obj{"$ref": "#/pScheduler/String"},
			"tools":     obj{"$ref": "#/pScheduler/StringList"},
			"schedule":  obj{"$ref": "#/pScheduler/ScheduleSpecification"},
			"archives": obj{
				"type":  "array",
				"items": obj{"$ref": "#/pScheduler/ArchiveSpecification"},
			},
			"reference": obj{"$ref": "#/pScheduler/AnyJSON"},
			"_key":      obj{"$ref": "#/pScheduler/String"},
		},
		"additionalProperties": false,
		"required":             []string{"test"},
	},

	"TestSpecification": obj{
		"type": "object",
		"properties": obj{
			"type": obj{"$ref": "#/pScheduler/String"},
			"spec": obj{"$ref": "#/pScheduler/AnyJSON"},
		},
		"additionalProperties": false,
		"required":             []string{"type", "spec"},
	},

	"TimeRange": obj{
		"type": "object",
		"properties": obj{
			"start": obj{"$ref": "#/pScheduler/Timestamp"},
			"end":   obj{"$ref": "#/pScheduler/Timestamp"},
		},
		"additionalProperties": false,
	},

	//
	// Standard values
	//
	// These are lowercase with hyphens, matching the style of the names
	// used.
	//

	"icmp-error": obj{
		"type": "string",
		"enum": []string{
			"net-unreachable",
			"host-unreachable",
			"protocol-unreachable",
			"port-unreachable",
			"fragmentation-needed-and-df-set",
			"source-route-failed",
			"destination-network-unknown",
			"destination-host-unknown",
			"source-host-isolated",
			"destination-network-administratively-prohibited",
			"destination-host-administratively-prohibited",
			"network-unreachable-for-type-of-service",
			"icmp-destination-host-unreachable-tos",
			"communication-administratively-prohibited",
			"host-precedence-violation",
			"precedence-cutoff-in-effect",
		},
	},

	"ip-version": obj{
		"type": "integer",
		"enum": []int{4, 6},
	},

	"ip-version-list": obj{
		"type":  "array",
		"items": obj{"$ref": "#/pScheduler/ip-version"},
	},

	//
	// Standard limit types
	//

	"Limit": obj{

		"Boolean": obj{
			"type": "object",
			"properties": obj{
				"description":  obj{"$ref": "#/pScheduler/String"},
				"match":        obj{"$ref": "#/pScheduler/Boolean"},
				"fail-message": obj{"$ref": "#/pScheduler/String"},
			},
			"additionalProperties": false,
			"required":             []string{"match"},
		},

		"Cardinal": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"range":       obj{"$ref": "#/pScheduler/CardinalRange"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"range"},
		},

		"CardinalList": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"match":       obj{"$ref": "#/pScheduler/CardinalList"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"match"},
		},

		"CardinalZero": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"range":       obj{"$ref": "#/pScheduler/CardinalZeroRange"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"range"},
		},

		"CardinalZeroList": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"match":       obj{"$ref": "#/pScheduler/CardinalZeroList"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"match"},
		},

		"Duration": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"range":       obj{"$ref": "#/pScheduler/DurationRange"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"range"},
		},

		"SINumber": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"range":       obj{"$ref": "#/pScheduler/SINumberRange"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"range"},
		},

		"IPVersion": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"match":       obj{"$ref": "#/pScheduler/ip-version"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"match"},
		},

		"IPVersionList": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"enumeration": obj{"$ref": "#/pScheduler/ip-version-list"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"enumeration"},
		},

		"Probability": obj{
			"type": "object",
			"properties": obj{
				"description": obj{"$ref": "#/pScheduler/String"},
				"range":       obj{"$ref": "#/pScheduler/ProbabilityRange"},
				"invert":      obj{"$ref": "#/pScheduler/Boolean"},
			},
			"additionalProperties": false,
			"required":             []string{"range"},
		},

		"String": obj{
			"type": "object",
			"properties": obj{
				"description":  obj{"$ref": "#/pScheduler/String"},
				"match":        obj{"$ref": "#/pScheduler/StringMatch"},
				"fail-message": obj{"$ref": "#/pScheduler/String"},
			},
			"additionalProperties": false,
			"required":             []string{"match"},
		},
	},
}
