package lang

func init() {
	Register(&Definition{
		Language:      Lua,
		Name:          "Lua",
		Extensions:    []string{".lua"},
		CommentPrefix: "--",
	})
}
