package lang

func init() {
	Register(&Definition{
		Language:      Go,
		Name:          "Go",
		Extensions:    []string{".go"},
		CommentPrefix: "//",
	})
}
