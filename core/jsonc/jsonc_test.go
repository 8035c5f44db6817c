package jsonc

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"NoComments", `{"a": 1}`, `{"a": 1}`},
		{"LineComment", "{\n  \"a\": 1, // trailing\n  \"b\": 2\n}", "{\n  \"a\": 1,\n  \"b\": 2\n}"},
		{"LineCommentAtEOF", "{\"a\": 1}\n// end", "{\"a\": 1}\n"},
		{"BlockComment", "{ /* note */ \"a\": 1 }", "{\"a\": 1 }"},
		{"MultilineBlock", "{\n/*\n  several\n  lines\n*/\n\"a\": 1}", "{\n\n\"a\": 1}"},
		{"URLInString", `{"url": "http://example.com/a"}`, `{"url": "http://example.com/a"}`},
		{"BlockMarkerInString", `{"glob": "/*.png"}`, `{"glob": "/*.png"}`},
		{"EscapedQuote", `{"q": "say \"//hi\""} // c`, `{"q": "say \"//hi\""}`},
		{"Unterminated", `{"a": 1} /* open`, `{"a": 1} /* open`},
		{"LoneSlash", `{"a": 4 / 2}`, `{"a": 4 / 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.in))
		})
	}
}

func TestParse_MatchesCommentFreeSource(t *testing.T) {
	annotated := `// header
{
  "itemName" : "apple", // display name
  /* price block */
  "price" : 12,
  "groups" : [ "plain", /* inline */ "food" ],
  "nested" : { "flag" : true /* yes */ }
}`
	plain := `{
  "itemName" : "apple",
  "price" : 12,
  "groups" : [ "plain", "food" ],
  "nested" : { "flag" : true }
}`

	got, err := Parse([]byte(annotated))
	require.NoError(t, err)

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(plain), &want))

	assert.Equal(t, Document(want), got)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"Malformed", `{"a": }`},
		{"ListRoot", `[1, 2]`},
		{"TrailingData", `{"a": 1} {"b": 2}`},
		{"Empty", ``},
		{"UnterminatedComment", `{"a": 1} /* open`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.in))
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(dir, "apple.consumable")
		require.NoError(t, os.WriteFile(path, []byte(`{"itemName": "apple" /* c */}`), 0o644))

		doc, err := ParseFile(path)
		require.NoError(t, err)
		name, ok := doc.String("itemName")
		assert.True(t, ok)
		assert.Equal(t, "apple", name)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(dir, "broken.item")
		require.NoError(t, os.WriteFile(path, []byte(`{"itemName": `), 0o644))

		_, err := ParseFile(path)
		assert.ErrorIs(t, err, ErrParse)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, path, pe.Path)
		assert.Contains(t, err.Error(), "broken.item")
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "nope.item"))
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDocument(t *testing.T) {
	doc := Document{
		"name":       "fallback",
		"objectName": "object",
		"itemName":   42.0,
		"groups":     []any{"a", "b"},
		"empty":      nil,
	}

	name, ok := doc.FirstString("itemName", "name", "objectName")
	assert.True(t, ok)
	assert.Equal(t, "fallback", name)

	_, ok = doc.FirstString("missing", "other")
	assert.False(t, ok)

	groups, ok := doc.Slice("groups")
	assert.True(t, ok)
	assert.Len(t, groups, 2)

	_, ok = doc.Slice("name")
	assert.False(t, ok)

	assert.True(t, doc.Has("empty"))
	assert.False(t, doc.Has("absent"))
}
