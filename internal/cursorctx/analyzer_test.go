package cursorctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeModes(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int // 1-based
		mode   Mode
		value  string
	}{
		{
			name:   "no colon on line",
			line:   `  "type"`,
			column: 8,
			mode:   ModeNone,
		},
		{
			name:   "cursor before the colon counts as before the open quote",
			line:   `  "$ref": "./a"`,
			column: 3,
			mode:   ModeBeforeOpeningQuote,
		},
		{
			name:   "bare position after colon",
			line:   `  "minimum": 1`,
			column: 14,
			mode:   ModeAfterColonBare,
		},
		{
			name:   "property name only ending in colon",
			line:   `  "type":`,
			column: 10,
			mode:   ModePropertyPosition,
		},
		{
			name:   "property name with trailing space",
			line:   `  "type": `,
			column: 11,
			mode:   ModePropertyPosition,
		},
		{
			name:   "cursor at opening quote",
			line:   `  "$ref": "./a"`,
			column: 11,
			mode:   ModeBeforeOpeningQuote,
		},
		{
			name:   "cursor just inside opening quote",
			line:   `  "$ref": "./a"`,
			column: 12,
			mode:   ModeInsideQuotedValue,
			value:  "",
		},
		{
			name:   "cursor mid-value",
			line:   `  "$ref": "./common/a"`,
			column: 21,
			mode:   ModeInsideQuotedValue,
			value:  "./common/",
		},
		{
			name:   "cursor one past close quote still counts as inside",
			line:   `  "$ref": "./a"`,
			column: 16,
			mode:   ModeInsideQuotedValue,
			value:  "./a",
		},
		{
			name:   "cursor beyond the closed value",
			line:   `  "$ref": "./a",`,
			column: 17,
			mode:   ModeNone,
		},
		{
			name:   "unclosed value",
			line:   `  "$ref": "./common/a`,
			column: 22,
			mode:   ModeInsideQuotedValue,
			value:  "./common/a",
		},
		{
			name:   "literal colon in value mis-locates the boundary",
			line:   `  "$ref": "http://x"`,
			column: 19,
			// The first colon heuristic picks the colon after "$ref", the
			// open quote is the value quote, so this still classifies as
			// inside the value. A colon inside the property name would
			// shift the boundary instead; both behaviors are preserved.
			mode:  ModeInsideQuotedValue,
			value: "http://",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Analyze(0, tt.line, tt.column)
			assert.Equal(t, tt.mode, ctx.Mode, "mode")
			if tt.mode == ModeInsideQuotedValue {
				assert.Equal(t, tt.value, ctx.ValueSoFar, "valueSoFar")
			}
		})
	}
}

func TestAnalyzeReplacementRange(t *testing.T) {
	line := `  "$ref": "./common/a"`
	ctx := Analyze(3, line, 20)
	assert.Equal(t, 3, ctx.ReplacementRange.Line)
	assert.Equal(t, 12, ctx.ReplacementRange.StartColumn) // first char of the value
	assert.Equal(t, 22, ctx.ReplacementRange.EndColumn)   // the close quote
}

// Analyze must be total: any (line, column) combination yields exactly one
// mode and never panics.
func TestAnalyzeTotality(t *testing.T) {
	lines := []string{
		"",
		":",
		`"`,
		`"":`,
		`  "$ref": "./a"`,
		`  "$ref": `,
		`no quotes: here`,
		`::""::""`,
		"\xff\xfe:\"broken utf8",
	}

	for _, line := range lines {
		for column := -2; column <= len(line)+3; column++ {
			ctx := Analyze(0, line, column)
			assert.GreaterOrEqual(t, ctx.ReplacementRange.StartColumn, 1)
			assert.LessOrEqual(t, ctx.ReplacementRange.StartColumn, len(line)+1)
			assert.LessOrEqual(t, ctx.ReplacementRange.EndColumn, len(line)+1)
			assert.NotEmpty(t, ctx.Mode.String())
		}
	}
}

func TestAnalyzeUTF16(t *testing.T) {
	// é is one UTF-16 unit but two bytes
	line := `"é": "x"`
	ctx := AnalyzeUTF16(0, line, 8) // one past the close quote
	assert.Equal(t, ModeInsideQuotedValue, ctx.Mode)
	assert.Equal(t, "x", ctx.ValueSoFar)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "insideQuotedValue", ModeInsideQuotedValue.String())
	assert.Equal(t, "afterColonBare", ModeAfterColonBare.String())
	assert.Equal(t, "beforeOpeningQuote", ModeBeforeOpeningQuote.String())
	assert.Equal(t, "propertyPosition", ModePropertyPosition.String())
}
