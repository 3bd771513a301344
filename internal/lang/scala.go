package lang

func init() {
	Register(&Definition{
		Language:      Scala,
		Name:          "Scala",
		Extensions:    []string{".scala"},
		CommentPrefix: "//",
	})
}
