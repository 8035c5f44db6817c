package jsonc

// Document is the decoded value tree of one asset file.
// Values are string, float64, bool, nil, []any or map[string]any.
type Document map[string]any

// Has reports whether key is present, even with a null value.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// String returns the value of key when it is a string.
func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Slice returns the value of key when it is a list.
func (d Document) Slice(key string) ([]any, bool) {
	s, ok := d[key].([]any)
	return s, ok
}

// FirstString tries keys in order and returns the first string value found.
func (d Document) FirstString(keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := d.String(key); ok {
			return s, true
		}
	}
	return "", false
}
