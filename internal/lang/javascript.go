package lang

func init() {
	Register(&Definition{
		Language:      JavaScript,
		Name:          "JavaScript",
		Extensions:    []string{".js"},
		CommentPrefix: "//",
	})
}
