// Package jsonc loads the comment-annotated JSON files used by game assets.
//
// Asset files are a superset of JSON: they may contain `//` line comments and
// `/* ... */` block comments anywhere whitespace is allowed. Loading is done in
// two passes:
//
//  1. StripComments removes every comment outside of string literals.
//  2. The remainder is decoded with encoding/json into a Document.
//
// # Errors
//
// Any failure to read or decode a file is reported as a *ParseError, which
// matches ErrParse with errors.Is. Indexers use this to skip broken assets
// without aborting a build.
//
// # Usage
//
//	doc, err := jsonc.ParseFile("/assets/items/generic/apple.consumable")
//	if errors.Is(err, jsonc.ErrParse) {
//	    // skip the file
//	}
//	name, ok := doc.FirstString("itemName", "name", "objectName")
package jsonc
