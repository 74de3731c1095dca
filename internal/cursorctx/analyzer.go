// Package cursorctx classifies a (line, cursor) pair into an editing context.
//
// Classification is deliberately line-local and heuristic: it looks at the
// first colon and the quote pair after it rather than parsing the document.
// A value containing a literal colon therefore mis-locates the boundary;
// that limitation is part of the contract, not something to correct here.
package cursorctx

import (
	"regexp"
	"strings"

	"github.com/schemabench/swls/internal/position"
)

// Mode is the editing context the cursor sits in.
type Mode int

const (
	// ModeNone means no suggestions apply at this position
	ModeNone Mode = iota
	// ModeInsideQuotedValue means the cursor is inside the value's quote pair
	ModeInsideQuotedValue
	// ModeAfterColonBare means the cursor is past the colon with no quote typed yet
	ModeAfterColonBare
	// ModeBeforeOpeningQuote means the cursor sits at or before the value-open quote
	ModeBeforeOpeningQuote
	// ModePropertyPosition means the line holds only a property name ending in a colon
	ModePropertyPosition
)

func (m Mode) String() string {
	switch m {
	case ModeInsideQuotedValue:
		return "insideQuotedValue"
	case ModeAfterColonBare:
		return "afterColonBare"
	case ModeBeforeOpeningQuote:
		return "beforeOpeningQuote"
	case ModePropertyPosition:
		return "propertyPosition"
	default:
		return "none"
	}
}

// Range is the document span a completion will overwrite. Columns are
// 1-based and never exceed the line bounds.
type Range struct {
	Line        int
	StartColumn int
	EndColumn   int
}

// Context is the result of classifying one cursor position. It is ephemeral
// and recomputed per request.
type Context struct {
	Mode             Mode
	ValueSoFar       string
	ReplacementRange Range
}

// propertyOnlyRe matches a line that declares a property name and nothing
// else: optional whitespace, a quoted name, a colon, optional whitespace.
var propertyOnlyRe = regexp.MustCompile(`^\s*"[^"]*"\s*:\s*$`)

// Analyze classifies the cursor at the given 1-based column of line. It is
// total: every input yields exactly one mode and never panics. lineNumber is
// carried through into the replacement range unchanged.
func Analyze(lineNumber int, line string, column int) Context {
	// Clamp the cursor to the line: cur is the 0-based byte offset of the
	// cursor, i.e. the number of bytes to its left.
	cur := column - 1
	if cur < 0 {
		cur = 0
	}
	if cur > len(line) {
		cur = len(line)
	}

	cursorRange := Range{Line: lineNumber, StartColumn: cur + 1, EndColumn: cur + 1}

	// Only the first colon on the line is considered (known limitation).
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Context{Mode: ModeNone, ReplacementRange: cursorRange}
	}

	openQuote := quoteAfter(line, colon+1)
	if openQuote < 0 {
		// No value quote typed yet
		if propertyOnlyRe.MatchString(line) {
			return Context{Mode: ModePropertyPosition, ReplacementRange: cursorRange}
		}
		if cur > colon {
			return Context{Mode: ModeAfterColonBare, ReplacementRange: cursorRange}
		}
		return Context{Mode: ModeNone, ReplacementRange: cursorRange}
	}

	// Cursor at or before the value-open quote: downstream must not suggest
	if cur <= openQuote {
		return Context{Mode: ModeBeforeOpeningQuote, ReplacementRange: cursorRange}
	}

	closeQuote := quoteAfter(line, openQuote+1)

	// Inside the quoted value: strictly after the open quote and at most one
	// past the close quote (or anywhere, while the value is still unclosed).
	if closeQuote < 0 || cur <= closeQuote+1 {
		valueEnd := cur
		if closeQuote >= 0 && valueEnd > closeQuote {
			valueEnd = closeQuote
		}
		replEnd := closeQuote
		if replEnd < 0 {
			replEnd = cur
		}
		return Context{
			Mode:       ModeInsideQuotedValue,
			ValueSoFar: line[openQuote+1 : valueEnd],
			ReplacementRange: Range{
				Line:        lineNumber,
				StartColumn: openQuote + 2,
				EndColumn:   replEnd + 1,
			},
		}
	}

	return Context{Mode: ModeNone, ReplacementRange: cursorRange}
}

// AnalyzeUTF16 is Analyze for LSP callers: the column is a 0-based UTF-16
// code unit offset as carried by protocol positions.
func AnalyzeUTF16(lineNumber int, line string, utf16Col int) Context {
	byteOffset := position.UTF16ToByteOffset(line, utf16Col)
	return Analyze(lineNumber, line, byteOffset+1)
}

// quoteAfter returns the index of the first '"' at or after from, or -1.
func quoteAfter(s string, from int) int {
	if i := strings.IndexByte(s[from:], '"'); i >= 0 {
		return from + i
	}
	return -1
}
