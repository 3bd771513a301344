package lang

func init() {
	Register(&Definition{
		Language:      Ruby,
		Name:          "Ruby",
		Extensions:    []string{".rb"},
		CommentPrefix: "#",
	})
}
