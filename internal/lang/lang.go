package lang

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language identifies a supported programming language.
type Language string

const (
	Python     Language = "python"
	Java       Language = "java"
	JavaScript Language = "javascript"
	C          Language = "c"
	CPP        Language = "cpp"
	CHeader    Language = "c-header"
	CSharp     Language = "c-sharp"
	Ruby       Language = "ruby"
	Go         Language = "go"
	Rust       Language = "rust"
	HTML       Language = "html"
	CSS        Language = "css"
	PHP        Language = "php"
	Swift      Language = "swift"
	Kotlin     Language = "kotlin"
	TypeScript Language = "typescript"
	Scala      Language = "scala"
	Perl       Language = "perl"
	Lua        Language = "lua"
	R          Language = "r"
	Shell      Language = "shell"
	PowerShell Language = "powershell"
)

// Definition describes how files of a language are recognized and how
// its single-line comments start. CommentPrefix is empty for languages
// whose comments are block-only (HTML, CSS); those get no comment
// filtering, only the blank-line filter.
type Definition struct {
	Language      Language
	Name          string   // display name used in reports
	Extensions    []string // lowercase, including the leading dot
	CommentPrefix string
}

// registry maps lowercase file extensions to definitions.
var registry = map[string]*Definition{}

// Register adds a Definition to the global registry.
func Register(def *Definition) {
	for _, ext := range def.Extensions {
		registry[ext] = def
	}
}

// ForExtension returns the Definition for a file extension (e.g. ".go").
// Lookup is case-insensitive.
func ForExtension(ext string) (*Definition, bool) {
	def, ok := registry[strings.ToLower(ext)]
	return def, ok
}

// ForPath resolves a file path to its language by extension. Files with
// no extension, or an unrecognized one, resolve to nothing.
func ForPath(path string) (*Definition, bool) {
	return ForExtension(filepath.Ext(path))
}

// All returns every registered definition, one entry per extension,
// sorted by extension for deterministic listings.
func All() []*Definition {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	defs := make([]*Definition, 0, len(exts))
	for _, ext := range exts {
		defs = append(defs, registry[ext])
	}
	return defs
}
