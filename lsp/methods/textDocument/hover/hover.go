package hover

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/position"
	"github.com/schemabench/swls/internal/refresolve"
	"github.com/schemabench/swls/internal/schemadoc"
	"github.com/schemabench/swls/lsp/types"
)

// refLineRe matches a $ref declaration and captures its value.
var refLineRe = regexp.MustCompile(`"\$ref"\s*:\s*"([^"]*)"`)

// nestedPropertyRe matches an object-property declaration like `"name": {`.
var nestedPropertyRe = regexp.MustCompile(`^\s*"([^"]+)"\s*:\s*\{`)

// typeValueRe and formatValueRe match the literal-value hover branches.
var typeValueRe = regexp.MustCompile(`"type"\s*:\s*"([^"]*)"`)
var formatValueRe = regexp.MustCompile(`"format"\s*:\s*"([^"]*)"`)

// keywordLineRe matches any `"keyword": <value>` line.
var keywordLineRe = regexp.MustCompile(`"([^"]+)"\s*:`)

// Template for a resolved schema reference card
var refHoverTemplate = template.Must(template.New("refHover").Parse(`# {{.Name}}
{{if .Title}}
**{{.Title}}**
{{end}}{{if .Description}}
{{.Description}}
{{end}}
**Path**: ` + "`{{.Path}}`" + `
**Status**: {{.Status}}
{{if .Required}}**Required**: {{.RequiredList}}
{{end}}**Properties**: {{.PropertyCount}}

` + "```json\n{{.Preview}}\n```" + `
`))

// Template for an unresolved reference card
var unresolvedRefTemplate = template.Must(template.New("unresolvedRef").Parse(`**Unresolved reference**

` + "`{{.}}`" + `

No schema in the workspace matches this path.`))

// Template for a keyword knowledge base entry
var keywordHoverTemplate = template.Must(template.New("keywordHover").Parse(`# {{.Name}}

{{.Description}}
{{if .Example}}
| Example |
| --- |
| ` + "`{{.Example}}`" + ` |
{{end}}`))

// refCard is the data behind refHoverTemplate.
type refCard struct {
	Name          string
	Title         string
	Description   string
	Path          string
	Status        catalog.ValidationStatus
	Required      []string
	PropertyCount int
	Preview       string
}

func (c refCard) RequiredList() string {
	quoted := make([]string, len(c.Required))
	for i, r := range c.Required {
		quoted[i] = "`" + r + "`"
	}
	return strings.Join(quoted, ", ")
}

// Hover handles the textDocument/hover request. Branches are evaluated in
// order, first match wins; no branch means no hover.
func Hover(req *types.RequestContext, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	pos := params.Position

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}

	line := req.Server.DocumentManager().LineText(uri, int(pos.Line))
	if line == "" {
		return nil, nil
	}

	cursor := position.UTF16ToByteOffset(line, int(pos.Character))
	word, wordStart, wordEnd := wordAt(line, cursor)

	// 1. Cursor inside a $ref value: resolve and render the reference card.
	if m := refLineRe.FindStringSubmatchIndex(line); m != nil {
		valueStart, valueEnd := m[2], m[3]
		if cursor >= valueStart && cursor <= valueEnd {
			ref := line[valueStart:valueEnd]
			return refHover(req, ref, rangeFor(line, pos.Line, valueStart, valueEnd))
		}
	}

	if word == "" {
		return nil, nil
	}
	wordRange := rangeFor(line, pos.Line, wordStart, wordEnd)

	// 2. Keyword knowledge base.
	if m := keywordLineRe.FindStringSubmatch(line); m != nil && m[1] == word {
		if kw, ok := schemadoc.LookupKeyword(word); ok {
			return markdownHover(render(keywordHoverTemplate, kw), wordRange)
		}
	}

	// 3. Nested schema property declaration.
	if m := nestedPropertyRe.FindStringSubmatch(line); m != nil && m[1] == word {
		content := "**" + word + "**\n\nNested schema property. The object on the right-hand side is itself a schema."
		return markdownHover(content, wordRange)
	}

	// 4. Type literal.
	if m := typeValueRe.FindStringSubmatch(line); m != nil && m[1] == word {
		if desc, ok := schemadoc.TypeDescriptions[word]; ok {
			return markdownHover("**"+word+"**\n\n"+desc, wordRange)
		}
	}

	// 5. Format literal.
	if m := formatValueRe.FindStringSubmatch(line); m != nil && m[1] == word {
		if desc, ok := schemadoc.FormatDescriptions[word]; ok {
			return markdownHover("**"+word+"**\n\n"+desc, wordRange)
		}
	}

	return nil, nil
}

// refHover renders the resolved or unresolved reference card.
func refHover(req *types.RequestContext, ref string, hoverRange *protocol.Range) (*protocol.Hover, error) {
	entry, ok := refresolve.Resolve(ref, req.Server.CatalogEntries())
	if !ok {
		log.Debug("hover: unresolved reference %q", ref)
		return markdownHover(render(unresolvedRefTemplate, ref), hoverRange)
	}

	budget := req.Server.GetConfig().HoverPreviewBudget
	card := refCard{
		Name:          entry.Name,
		Title:         entry.Metadata.Title,
		Description:   entry.Metadata.Description,
		Path:          entry.RelativePath,
		Status:        entry.Status,
		Required:      entry.RequiredProperties(),
		PropertyCount: entry.PropertyCount(),
		Preview:       entry.ContentPreview(budget),
	}
	return markdownHover(render(refHoverTemplate, card), hoverRange)
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Error("hover template: %v", err)
		return ""
	}
	return buf.String()
}

func markdownHover(content string, hoverRange *protocol.Range) (*protocol.Hover, error) {
	if content == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
		Range: hoverRange,
	}, nil
}

// rangeFor converts a byte-offset span on a line into a protocol range.
func rangeFor(line string, lineNumber protocol.UInteger, start, end int) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{
			Line:      lineNumber,
			Character: protocol.UInteger(position.ByteOffsetToUTF16(line, start)),
		},
		End: protocol.Position{
			Line:      lineNumber,
			Character: protocol.UInteger(position.ByteOffsetToUTF16(line, end)),
		},
	}
}

// wordAt extracts the identifier-like word around a byte offset.
func wordAt(line string, offset int) (word string, start, end int) {
	if offset > len(line) {
		offset = len(line)
	}
	if offset < 0 {
		offset = 0
	}
	start, end = offset, offset
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	return line[start:end], start, end
}

// isWordChar reports whether c can appear in a schema keyword or identifier
func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '$'
}
