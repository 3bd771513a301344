package lang

func init() {
	Register(&Definition{
		Language:      CPP,
		Name:          "C++",
		Extensions:    []string{".cpp"},
		CommentPrefix: "//",
	})
}
