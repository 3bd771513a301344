package lang

func init() {
	Register(&Definition{
		Language:      CHeader,
		Name:          "C/C++ Header",
		Extensions:    []string{".h"},
		CommentPrefix: "//",
	})
}
