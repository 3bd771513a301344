// Package ignore decides which directories and files are excluded from
// analysis. Rules merge built-in defaults with user-supplied additions.
package ignore

import (
	"sort"
	"strings"
)

// defaultDirs are directory names pruned during traversal, compared
// lowercase.
var defaultDirs = map[string]bool{
	".git": true, "venv": true, "node_modules": true, "__pycache__": true,
	".vscode": true, ".idea": true, "build": true, "dist": true,
	"target": true, ".venv": true, ".next": true,
}

// defaultFiles are exact file names to skip, compared case-sensitively.
var defaultFiles = map[string]bool{
	"LICENSE": true, "README.md": true,
}

// defaultExts are file suffixes to skip, compared lowercase. Compound
// entries like ".min.js" match as a suffix of the whole file name, not
// just its last extension.
var defaultExts = map[string]bool{
	".log": true, ".tmp": true, ".bak": true, ".swp": true,
	".map": true, ".min.js": true, ".min.css": true,
}

// Rules holds the merged ignore sets for one run.
type Rules struct {
	Dirs  map[string]bool
	Files map[string]bool
	Exts  map[string]bool
}

// Default returns a Rules populated with the built-in sets. The result
// is a fresh copy; callers extend it freely.
func Default() *Rules {
	r := &Rules{
		Dirs:  make(map[string]bool, len(defaultDirs)),
		Files: make(map[string]bool, len(defaultFiles)),
		Exts:  make(map[string]bool, len(defaultExts)),
	}
	for d := range defaultDirs {
		r.Dirs[d] = true
	}
	for f := range defaultFiles {
		r.Files[f] = true
	}
	for e := range defaultExts {
		r.Exts[e] = true
	}
	return r
}

// AddDirs unions extra directory names, lowercased on insertion.
func (r *Rules) AddDirs(names []string) {
	for _, n := range names {
		r.Dirs[strings.ToLower(n)] = true
	}
}

// AddFiles unions extra exact file names, inserted verbatim.
func (r *Rules) AddFiles(names []string) {
	for _, n := range names {
		r.Files[n] = true
	}
}

// AddExts unions extra extensions, lowercased on insertion.
func (r *Rules) AddExts(exts []string) {
	for _, e := range exts {
		r.Exts[strings.ToLower(e)] = true
	}
}

// MatchDir reports whether a directory with the given base name is
// ignored. Comparison is case-insensitive.
func (r *Rules) MatchDir(name string) bool {
	return r.Dirs[strings.ToLower(name)]
}

// MatchFile reports whether a file with the given base name is ignored,
// either by exact name or by extension suffix. Name matching is
// case-sensitive; suffix matching is not.
func (r *Rules) MatchFile(name string) bool {
	if r.Files[name] {
		return true
	}
	lower := strings.ToLower(name)
	for ext := range r.Exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// SortedDirs returns the directory set as a sorted slice.
func (r *Rules) SortedDirs() []string { return sortedKeys(r.Dirs) }

// SortedFiles returns the file-name set as a sorted slice.
func (r *Rules) SortedFiles() []string { return sortedKeys(r.Files) }

// SortedExts returns the extension set as a sorted slice.
func (r *Rules) SortedExts() []string { return sortedKeys(r.Exts) }

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
