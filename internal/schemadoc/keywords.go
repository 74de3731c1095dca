// Package schemadoc is the static knowledge base behind completion and
// hover: JSON Schema draft keywords, type and format vocabularies, common
// regex patterns, and structural snippets. Everything here is fixed data;
// nothing depends on the catalog or the document.
package schemadoc

// Keyword describes one JSON Schema keyword for completion and hover.
type Keyword struct {
	Name        string
	Detail      string // one-line summary shown next to the completion label
	Description string // longer markdown body for hover
	Example     string // optional example snippet rendered as a table row
}

// Keywords is the fixed keyword catalog, in completion order.
var Keywords = []Keyword{
	{"$schema", "Meta-schema URI", "Declares which JSON Schema draft the document conforms to.", `"$schema": "https://json-schema.org/draft/2020-12/schema"`},
	{"$id", "Schema identifier", "A URI identifying the schema, used as the base for resolving relative references.", `"$id": "https://example.com/user.schema.json"`},
	{"$ref", "Schema reference", "References another schema document or fragment by path or URI.", `"$ref": "./common/address.schema.json"`},
	{"$defs", "Reusable definitions", "Container for subschemas that can be referenced with `$ref`.", `"$defs": { "positiveInt": { "type": "integer", "minimum": 1 } }`},
	{"title", "Display title", "A short human-readable title for the schema.", `"title": "User"`},
	{"description", "Display description", "A longer human-readable explanation of the schema.", `"description": "A registered user account"`},
	{"type", "Instance type", "Constrains the instance to one of the seven JSON types.", `"type": "object"`},
	{"properties", "Object properties", "Maps property names to the subschemas their values must satisfy.", `"properties": { "name": { "type": "string" } }`},
	{"required", "Required properties", "Lists property names that must be present on the object.", `"required": ["id", "name"]`},
	{"additionalProperties", "Extra property rule", "Schema (or boolean) applied to properties not listed in `properties`.", `"additionalProperties": false`},
	{"patternProperties", "Pattern-keyed properties", "Maps regular expressions to subschemas for matching property names.", `"patternProperties": { "^x-": {} }`},
	{"propertyNames", "Property name schema", "Schema every property name of the object must satisfy.", `"propertyNames": { "pattern": "^[a-z]+$" }`},
	{"items", "Array item schema", "Schema applied to every element of the array.", `"items": { "type": "string" }`},
	{"prefixItems", "Tuple item schemas", "Positional schemas applied to the first elements of the array.", `"prefixItems": [{ "type": "number" }, { "type": "string" }]`},
	{"contains", "Array contains", "At least one array element must satisfy this schema.", `"contains": { "type": "number" }`},
	{"enum", "Enumerated values", "Restricts the instance to a fixed set of values.", `"enum": ["red", "green", "blue"]`},
	{"const", "Constant value", "Restricts the instance to a single fixed value.", `"const": "fixed"`},
	{"default", "Default value", "A default value consumers may use when the instance is absent.", `"default": 0`},
	{"examples", "Example values", "Sample instances that are valid against the schema.", `"examples": [{ "name": "Ada" }]`},
	{"format", "Semantic format", "Names a well-known semantic format for string values.", `"format": "email"`},
	{"pattern", "Regex constraint", "ECMA-262 regular expression a string value must match.", `"pattern": "^[A-Z][a-z]+$"`},
	{"minLength", "Minimum string length", "Minimum number of characters in a string value.", `"minLength": 1`},
	{"maxLength", "Maximum string length", "Maximum number of characters in a string value.", `"maxLength": 255`},
	{"minimum", "Inclusive lower bound", "Numeric values must be greater than or equal to this.", `"minimum": 0`},
	{"maximum", "Inclusive upper bound", "Numeric values must be less than or equal to this.", `"maximum": 100`},
	{"exclusiveMinimum", "Exclusive lower bound", "Numeric values must be strictly greater than this.", `"exclusiveMinimum": 0`},
	{"exclusiveMaximum", "Exclusive upper bound", "Numeric values must be strictly less than this.", `"exclusiveMaximum": 1`},
	{"multipleOf", "Numeric step", "Numeric values must be an integer multiple of this.", `"multipleOf": 0.01`},
	{"minItems", "Minimum array length", "Minimum number of elements in an array value.", `"minItems": 1`},
	{"maxItems", "Maximum array length", "Maximum number of elements in an array value.", `"maxItems": 10`},
	{"uniqueItems", "Unique array elements", "Requires all array elements to be distinct.", `"uniqueItems": true`},
	{"minProperties", "Minimum property count", "Minimum number of properties on an object value.", `"minProperties": 1`},
	{"maxProperties", "Maximum property count", "Maximum number of properties on an object value.", `"maxProperties": 16`},
	{"allOf", "Intersection", "The instance must be valid against every listed subschema.", `"allOf": [{ "$ref": "./base.schema.json" }]`},
	{"anyOf", "Union", "The instance must be valid against at least one listed subschema.", `"anyOf": [{ "type": "string" }, { "type": "number" }]`},
	{"oneOf", "Exclusive union", "The instance must be valid against exactly one listed subschema.", `"oneOf": [{ "required": ["a"] }, { "required": ["b"] }]`},
	{"not", "Negation", "The instance must not be valid against this subschema.", `"not": { "type": "null" }`},
	{"if", "Conditional test", "When the instance matches this schema, `then` applies; otherwise `else`.", `"if": { "properties": { "kind": { "const": "card" } } }`},
	{"then", "Conditional consequence", "Schema applied when the `if` schema matched.", `"then": { "required": ["number"] }`},
	{"else", "Conditional alternative", "Schema applied when the `if` schema did not match.", `"else": { "required": ["iban"] }`},
	{"dependentRequired", "Conditional requirements", "Properties that become required when another property is present.", `"dependentRequired": { "credit": ["billing"] }`},
}

var keywordIndex = func() map[string]*Keyword {
	m := make(map[string]*Keyword, len(Keywords))
	for i := range Keywords {
		m[Keywords[i].Name] = &Keywords[i]
	}
	return m
}()

// LookupKeyword returns the knowledge-base entry for a keyword, if any.
func LookupKeyword(name string) (*Keyword, bool) {
	kw, ok := keywordIndex[name]
	return kw, ok
}
