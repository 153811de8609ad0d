// FILE: lixenwraith/envload/value_test.go
package envload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecodeValue tests quote and inline comment handling
func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Plain", "value", "value"},
		{"PlainTrimmed", "  value  ", "value"},
		{"ByteOrderMarkTrimmed", "value\uFEFF # c", "value"},
		{"Empty", "", ""},
		{"InnerSpaces", "hello world", "hello world"},

		{"DoubleQuoted", `"value"`, "value"},
		{"SingleQuoted", `'value'`, "value"},
		{"QuotedHash", `"a#b"`, "a#b"},
		{"QuotedKeepsInnerSpaces", `"  padded  "`, "  padded  "},
		{"EmptyQuotes", `""`, ""},
		{"TrailingAfterQuote", `"value" # comment`, "value"},
		{"GarbageAfterQuote", `"value"xyz`, "value"},
		{"OtherQuoteInside", `"it's"`, "it's"},
		{"SingleWithDoubleInside", `'say "hi"'`, `say "hi"`},
		{"StopsAtFirstClosing", `"a"b"c"`, "a"},

		{"UnterminatedDouble", `"abc`, `"abc`},
		{"UnterminatedSingle", `'abc`, `'abc`},
		{"LoneQuote", `"`, `"`},
		{"UnterminatedWithHash", `"abc # c`, `"abc # c`},

		{"InlineComment", "val # comment", "val"},
		{"InlineCommentNoSpace", "val#comment", "val"},
		{"OnlyComment", "# comment", ""},
		{"QuoteNotAtStart", `a"b"`, `a"b"`},
		{"HashAfterInnerQuote", `a "b # c"`, `a "b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeValue(tt.raw))
		})
	}
}

// TestDecodeTokenizedLine tests the tokenizer and decoder together
func TestDecodeTokenizedLine(t *testing.T) {
	t.Run("UnquotedTrimmed", func(t *testing.T) {
		_, raw, ok := Tokenize("KEY =   some value   ")
		assert.True(t, ok)
		assert.Equal(t, "some value", DecodeValue(raw))
	})

	t.Run("QuotedHashIsNotComment", func(t *testing.T) {
		_, raw, ok := Tokenize(`KEY="a#b"`)
		assert.True(t, ok)
		assert.Equal(t, "a#b", DecodeValue(raw))
	})

	t.Run("UnterminatedQuoteRetained", func(t *testing.T) {
		_, raw, ok := Tokenize(`KEY="abc`)
		assert.True(t, ok)
		assert.Equal(t, `"abc`, DecodeValue(raw))
	})
}
