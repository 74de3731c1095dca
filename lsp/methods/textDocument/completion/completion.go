package completion

import (
	"regexp"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/cursorctx"
	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/position"
	"github.com/schemabench/swls/internal/schemadoc"
	"github.com/schemabench/swls/lsp/types"
)

// schemasAnchor marks the catalog subtree boundary in a relative path.
// Paths containing it are normalized to the suffix after it.
const schemasAnchor = "schemas/"

// propertyNameRe captures the property name a line declares, if any.
var propertyNameRe = regexp.MustCompile(`^\s*"([^"]*)"\s*:`)

// Completion handles the textDocument/completion request.
//
// The result is a strict concatenation with no re-ranking: path references,
// then keywords, then value completions, then structural snippets.
func Completion(req *types.RequestContext, params *protocol.CompletionParams) (any, error) {
	uri := params.TextDocument.URI
	pos := params.Position

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}

	line := req.Server.DocumentManager().LineText(uri, int(pos.Line))
	ctx := cursorctx.AnalyzeUTF16(int(pos.Line)+1, line, int(pos.Character))

	// No suggestions of any kind before the value-open quote.
	if ctx.Mode == cursorctx.ModeBeforeOpeningQuote {
		return nil, nil
	}

	property := propertyName(line)

	var items []protocol.CompletionItem

	// 1. Catalog path references, only in a $ref value position.
	if property == "$ref" &&
		(ctx.Mode == cursorctx.ModeInsideQuotedValue || ctx.Mode == cursorctx.ModeAfterColonBare) {
		items = append(items, pathItems(req.Server.CatalogEntries(), ctx, line, pos.Line)...)
	}

	// 2. Draft keyword completions at a property position.
	if ctx.Mode == cursorctx.ModePropertyPosition {
		items = append(items, keywordItems()...)
	}

	// 3. Value completions for recognized properties.
	if property != "$ref" &&
		(ctx.Mode == cursorctx.ModeInsideQuotedValue || ctx.Mode == cursorctx.ModeAfterColonBare) {
		items = append(items, valueItems(property, ctx)...)
	}

	// 4. Structural snippets in structural positions. A quoted string value
	// can never hold an object skeleton, so snippets stay out of there.
	if ctx.Mode == cursorctx.ModeAfterColonBare || ctx.Mode == cursorctx.ModePropertyPosition {
		items = append(items, snippetItems()...)
	}

	log.Debug("completion: %d items (mode %s)", len(items), ctx.Mode)

	if len(items) == 0 {
		return nil, nil
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// pathItems builds reference completions from the catalog, filtered by the
// already-typed prefix. Each item carries a text edit over the analyzer's
// replacement range so clients replace the typed value instead of guessing
// word boundaries.
func pathItems(entries []*catalog.Entry, ctx cursorctx.Context, line string, lineNumber protocol.UInteger) []protocol.CompletionItem {
	prefix := ctx.ValueSoFar
	insideQuotes := ctx.Mode == cursorctx.ModeInsideQuotedValue

	var items []protocol.CompletionItem
	for _, entry := range entries {
		normalized := NormalizePath(entry.RelativePath)
		if !strings.HasPrefix(strings.ToLower(normalized), strings.ToLower(prefix)) {
			continue
		}

		insertText := insertSegment(normalized, prefix)
		newText := normalized
		if !insideQuotes {
			insertText = `"` + insertText + `"`
			newText = `"` + newText + `"`
		}

		kind := protocol.CompletionItemKindReference
		detail := entry.Title()
		item := protocol.CompletionItem{
			Label:      normalized,
			Kind:       &kind,
			InsertText: &insertText,
			TextEdit:   replacementEdit(ctx, line, lineNumber, newText),
		}
		if detail != "" {
			item.Detail = &detail
		}
		if entry.Metadata.Description != "" {
			item.Documentation = entry.Metadata.Description
		}
		items = append(items, item)
	}
	return items
}

// replacementEdit converts the analyzer's 1-based byte-column range into a
// protocol text edit holding the full replacement text.
func replacementEdit(ctx cursorctx.Context, line string, lineNumber protocol.UInteger, newText string) protocol.TextEdit {
	start := ctx.ReplacementRange.StartColumn - 1
	end := ctx.ReplacementRange.EndColumn - 1
	return protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      lineNumber,
				Character: protocol.UInteger(position.ByteOffsetToUTF16(line, start)),
			},
			End: protocol.Position{
				Line:      lineNumber,
				Character: protocol.UInteger(position.ByteOffsetToUTF16(line, end)),
			},
		},
		NewText: newText,
	}
}

func keywordItems() []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(schemadoc.Keywords))
	for i := range schemadoc.Keywords {
		kw := &schemadoc.Keywords[i]
		kind := protocol.CompletionItemKindProperty
		detail := kw.Detail
		insertText := kw.Name
		items = append(items, protocol.CompletionItem{
			Label:         kw.Name,
			Kind:          &kind,
			Detail:        &detail,
			Documentation: kw.Description,
			InsertText:    &insertText,
		})
	}
	return items
}

func valueItems(property string, ctx cursorctx.Context) []protocol.CompletionItem {
	values := schemadoc.ValuesFor(property)
	if len(values) == 0 {
		return nil
	}

	insideQuotes := ctx.Mode == cursorctx.ModeInsideQuotedValue
	items := make([]protocol.CompletionItem, 0, len(values))
	for _, v := range values {
		insertText := v.Insert
		if !insideQuotes {
			insertText = `"` + insertText + `"`
		}
		kind := protocol.CompletionItemKindValue
		detail := v.Detail
		items = append(items, protocol.CompletionItem{
			Label:      v.Label,
			Kind:       &kind,
			Detail:     &detail,
			InsertText: &insertText,
		})
	}
	return items
}

func snippetItems() []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(schemadoc.Snippets))
	for i := range schemadoc.Snippets {
		sn := &schemadoc.Snippets[i]
		kind := protocol.CompletionItemKindSnippet
		format := protocol.InsertTextFormatSnippet
		detail := sn.Detail
		body := sn.Body
		items = append(items, protocol.CompletionItem{
			Label:            sn.Label,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &body,
			InsertTextFormat: &format,
		})
	}
	return items
}

// NormalizePath canonicalizes a catalog relative path for completion:
// forward slashes only, anchored below schemas/ when that segment exists,
// and always prefixed with "./".
func NormalizePath(relativePath string) string {
	p := strings.ReplaceAll(relativePath, `\`, "/")
	if idx := strings.Index(p, schemasAnchor); idx >= 0 {
		p = p[idx+len(schemasAnchor):]
	} else {
		p = strings.TrimPrefix(p, "./")
	}
	return "./" + p
}

// insertSegment returns the text to insert at the cursor: the candidate's
// suffix after the last slash the user has already typed.
func insertSegment(normalized, typedPrefix string) string {
	lastSlash := strings.LastIndex(typedPrefix, "/")
	if lastSlash < 0 {
		return normalized
	}
	if lastSlash+1 > len(normalized) {
		return normalized
	}
	return normalized[lastSlash+1:]
}

// propertyName returns the property a line declares, or "".
func propertyName(line string) string {
	m := propertyNameRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}
