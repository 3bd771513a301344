package lang

func init() {
	Register(&Definition{
		Language:      Java,
		Name:          "Java",
		Extensions:    []string{".java"},
		CommentPrefix: "//",
	})
}
