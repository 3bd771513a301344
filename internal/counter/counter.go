// Package counter counts lines of code in a single file: physical
// lines that are neither blank nor single-line comments.
package counter

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// maxLineBytes bounds the scanner buffer. Source lines beyond this are
// treated as a read failure for the whole file.
const maxLineBytes = 1024 * 1024

// Count returns the number of non-blank, non-comment lines in the file
// at path. commentPrefix marks single-line comments; when empty, only
// the blank-line filter applies. Count never fails: any read error is
// logged as a warning and the file contributes 0.
func Count(path, commentPrefix string) int {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("count.read_failed", "file", path, "err", err)
		return 0
	}
	defer f.Close()

	loc := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if commentPrefix != "" && strings.HasPrefix(line, commentPrefix) {
			continue
		}
		loc++
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("count.read_failed", "file", path, "err", err)
		return 0
	}
	return loc
}
