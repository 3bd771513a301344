package lang

func init() {
	Register(&Definition{
		Language:      TypeScript,
		Name:          "TypeScript",
		Extensions:    []string{".ts"},
		CommentPrefix: "//",
	})
}
