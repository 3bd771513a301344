package lang

func init() {
	Register(&Definition{
		Language:      Python,
		Name:          "Python",
		Extensions:    []string{".py"},
		CommentPrefix: "#",
	})
}
