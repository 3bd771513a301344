package lang

func init() {
	Register(&Definition{
		Language:      C,
		Name:          "C",
		Extensions:    []string{".c"},
		CommentPrefix: "//",
	})
}
