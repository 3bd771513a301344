package lang

func init() {
	Register(&Definition{
		Language:      CSharp,
		Name:          "C#",
		Extensions:    []string{".cs"},
		CommentPrefix: "//",
	})
}
