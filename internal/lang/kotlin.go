package lang

func init() {
	Register(&Definition{
		Language:      Kotlin,
		Name:          "Kotlin",
		Extensions:    []string{".kt"},
		CommentPrefix: "//",
	})
}
