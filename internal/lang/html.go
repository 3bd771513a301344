package lang

func init() {
	// HTML comments are <!-- ... --> blocks; no single-line prefix.
	Register(&Definition{
		Language:   HTML,
		Name:       "HTML",
		Extensions: []string{".html"},
	})
}
