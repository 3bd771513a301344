package lang

func init() {
	Register(&Definition{
		Language:      PowerShell,
		Name:          "PowerShell",
		Extensions:    []string{".ps1"},
		CommentPrefix: "#",
	})
}
