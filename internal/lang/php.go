package lang

func init() {
	Register(&Definition{
		Language:      PHP,
		Name:          "PHP",
		Extensions:    []string{".php"},
		CommentPrefix: "//",
	})
}
