package lang

func init() {
	Register(&Definition{
		Language:      Shell,
		Name:          "Shell Script",
		Extensions:    []string{".sh"},
		CommentPrefix: "#",
	})
}
