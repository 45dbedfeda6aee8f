package form

// Source is anything that can look up a submitted form value by name.
// echo.Context and *http.Request both satisfy it.
type Source interface {
	FormValue(name string) string
}

// Fields maps form field names to their raw submitted values.
type Fields map[string]string

// Read returns the current values of the named fields. A field that was not
// submitted reads as the empty string; callers treat that as unfilled.
func Read(src Source, names ...string) Fields {
	fields := make(Fields, len(names))
	for _, name := range names {
		fields[name] = src.FormValue(name)
	}
	return fields
}
