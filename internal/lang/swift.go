package lang

func init() {
	Register(&Definition{
		Language:      Swift,
		Name:          "Swift",
		Extensions:    []string{".swift"},
		CommentPrefix: "//",
	})
}
