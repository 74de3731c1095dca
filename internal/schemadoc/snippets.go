package schemadoc

// Snippet is a structural schema skeleton inserted as an LSP snippet, with
// tab-stop placeholder tokens.
type Snippet struct {
	Label  string
	Detail string
	Body   string
}

// Snippets is the fixed snippet catalog appended to every completion list.
var Snippets = []Snippet{
	{
		Label:  "object schema",
		Detail: "Object skeleton with properties and required",
		Body: "{\n" +
			"\t\"type\": \"object\",\n" +
			"\t\"properties\": {\n" +
			"\t\t\"${1:name}\": {\n" +
			"\t\t\t\"type\": \"${2:string}\"\n" +
			"\t\t}\n" +
			"\t},\n" +
			"\t\"required\": [\"${1:name}\"]$0\n" +
			"}",
	},
	{
		Label:  "array schema",
		Detail: "Array skeleton with item schema",
		Body: "{\n" +
			"\t\"type\": \"array\",\n" +
			"\t\"items\": {\n" +
			"\t\t\"type\": \"${1:string}\"\n" +
			"\t}$0\n" +
			"}",
	},
	{
		Label:  "string property",
		Detail: "String with length bounds",
		Body: "{\n" +
			"\t\"type\": \"string\",\n" +
			"\t\"minLength\": ${1:1},\n" +
			"\t\"maxLength\": ${2:255}$0\n" +
			"}",
	},
	{
		Label:  "number property",
		Detail: "Number with range bounds",
		Body: "{\n" +
			"\t\"type\": \"number\",\n" +
			"\t\"minimum\": ${1:0},\n" +
			"\t\"maximum\": ${2:100}$0\n" +
			"}",
	},
	{
		Label:  "enum schema",
		Detail: "Fixed value set",
		Body: "{\n" +
			"\t\"type\": \"string\",\n" +
			"\t\"enum\": [\"${1:first}\", \"${2:second}\"]$0\n" +
			"}",
	},
	{
		Label:  "conditional schema",
		Detail: "if / then / else skeleton",
		Body: "{\n" +
			"\t\"if\": {\n" +
			"\t\t\"properties\": { \"${1:kind}\": { \"const\": \"${2:value}\" } }\n" +
			"\t},\n" +
			"\t\"then\": { $3 },\n" +
			"\t\"else\": { $0 }\n" +
			"}",
	},
}
