package lang

func init() {
	Register(&Definition{
		Language:      Rust,
		Name:          "Rust",
		Extensions:    []string{".rs"},
		CommentPrefix: "//",
	})
}
