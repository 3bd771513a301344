package lang

func init() {
	// CSS comments are /* ... */ blocks; no single-line prefix.
	Register(&Definition{
		Language:   CSS,
		Name:       "CSS",
		Extensions: []string{".css"},
	})
}
