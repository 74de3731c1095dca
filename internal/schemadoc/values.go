package schemadoc

// ValueCompletion is one suggested literal for a recognized property value.
type ValueCompletion struct {
	Label  string
	Insert string // text inserted into the value position
	Detail string
}

// Types are the seven JSON Schema type literals.
var Types = []ValueCompletion{
	{"string", "string", "Text value"},
	{"number", "number", "Numeric value, integer or fractional"},
	{"integer", "integer", "Whole-number value"},
	{"boolean", "boolean", "true or false"},
	{"object", "object", "Key/value map"},
	{"array", "array", "Ordered list of values"},
	{"null", "null", "The null value"},
}

// TypeDescriptions back the `"type": "<word>"` hover branch.
var TypeDescriptions = map[string]string{
	"string":  "A sequence of Unicode characters. Constrain with `minLength`, `maxLength`, `pattern`, and `format`.",
	"number":  "Any numeric value, including fractions. Constrain with `minimum`, `maximum`, and `multipleOf`.",
	"integer": "A whole number. Validates like `number` but rejects fractional values.",
	"boolean": "Either `true` or `false`.",
	"object":  "An unordered set of name/value pairs. Shape it with `properties`, `required`, and `additionalProperties`.",
	"array":   "An ordered list of values. Shape it with `items`, `minItems`, `maxItems`, and `uniqueItems`.",
	"null":    "The single value `null`, typically combined with another type in a union.",
}

// Formats are the well-known format identifiers offered for `"format"`.
var Formats = []ValueCompletion{
	{"date-time", "date-time", "RFC 3339 timestamp, e.g. 2026-08-27T10:30:00Z"},
	{"date", "date", "RFC 3339 full-date, e.g. 2026-08-27"},
	{"time", "time", "RFC 3339 full-time, e.g. 10:30:00Z"},
	{"duration", "duration", "ISO 8601 duration, e.g. P3DT4H"},
	{"email", "email", "Internet email address"},
	{"hostname", "hostname", "Internet host name"},
	{"ipv4", "ipv4", "Dotted-quad IPv4 address"},
	{"ipv6", "ipv6", "IPv6 address"},
	{"uri", "uri", "Absolute URI"},
	{"uri-reference", "uri-reference", "URI or relative reference"},
	{"uuid", "uuid", "RFC 4122 UUID"},
	{"regex", "regex", "ECMA-262 regular expression"},
	{"json-pointer", "json-pointer", "RFC 6901 JSON Pointer"},
}

// FormatDescriptions back the `"format": "<word>"` hover branch.
var FormatDescriptions = map[string]string{
	"date-time":     "An RFC 3339 timestamp with date, time, and offset, e.g. `2026-08-27T10:30:00Z`.",
	"date":          "An RFC 3339 full-date, e.g. `2026-08-27`.",
	"time":          "An RFC 3339 full-time with offset, e.g. `10:30:00Z`.",
	"duration":      "An ISO 8601 duration, e.g. `P3DT4H`.",
	"email":         "An Internet email address per RFC 5321.",
	"hostname":      "An Internet host name per RFC 1123.",
	"ipv4":          "An IPv4 address in dotted-quad form.",
	"ipv6":          "An IPv6 address per RFC 4291.",
	"uri":           "An absolute URI per RFC 3986.",
	"uri-reference": "A URI or a relative reference per RFC 3986.",
	"uuid":          "An RFC 4122 UUID, e.g. `3e4666bf-d5e5-4aa7-b8ce-cefe41c7568a`.",
	"regex":         "An ECMA-262 regular expression.",
	"json-pointer":  "An RFC 6901 JSON Pointer, e.g. `/properties/name`.",
}

// Patterns are common regex snippets offered for `"pattern"`.
var Patterns = []ValueCompletion{
	{"alphanumeric", "^[a-zA-Z0-9]+$", "Letters and digits only"},
	{"identifier", "^[a-zA-Z_][a-zA-Z0-9_]*$", "Programming-language identifier"},
	{"slug", "^[a-z0-9]+(?:-[a-z0-9]+)*$", "Lowercase words joined by hyphens"},
	{"email", "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$", "Loose email shape"},
	{"url", "^https?://", "HTTP or HTTPS URL prefix"},
	{"uuid", "^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$", "Lowercase RFC 4122 UUID"},
	{"date (YYYY-MM-DD)", "^\\d{4}-\\d{2}-\\d{2}$", "ISO calendar date"},
	{"time (HH:MM)", "^([01]\\d|2[0-3]):[0-5]\\d$", "24-hour clock time"},
	{"hex color", "^#(?:[0-9a-fA-F]{3}){1,2}$", "CSS hex color, #abc or #aabbcc"},
	{"semver", "^\\d+\\.\\d+\\.\\d+(?:-[0-9A-Za-z.-]+)?$", "Semantic version"},
	{"phone (E.164)", "^\\+[1-9]\\d{1,14}$", "International phone number"},
	{"no whitespace", "^\\S+$", "Rejects any whitespace character"},
}

// ValuesFor returns the value completions for a recognized property name,
// or nil when the property has no fixed value vocabulary.
func ValuesFor(property string) []ValueCompletion {
	switch property {
	case "type":
		return Types
	case "format":
		return Formats
	case "pattern":
		return Patterns
	default:
		return nil
	}
}
