package lang

func init() {
	Register(&Definition{
		Language:      Perl,
		Name:          "Perl",
		Extensions:    []string{".pl"},
		CommentPrefix: "#",
	})
}
