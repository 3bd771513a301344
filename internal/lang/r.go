package lang

func init() {
	Register(&Definition{
		Language:      R,
		Name:          "R",
		Extensions:    []string{".r"},
		CommentPrefix: "#",
	})
}
