// Package walker traverses a directory tree and aggregates per-language
// line counts.
package walker

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DeusData/loc-analyzer/internal/counter"
	"github.com/DeusData/loc-analyzer/internal/ignore"
	"github.com/DeusData/loc-analyzer/internal/lang"
)

// Summary is the result of one analysis run. TotalLOC always equals the
// sum of Stats values.
type Summary struct {
	Stats          map[string]int // language display name -> counted lines
	FilesProcessed int            // files that contributed at least one line
	TotalLOC       int
}

// Analyze walks targetDir, prunes ignored directories, skips ignored
// and unrecognized files, and accumulates line counts per language.
// One progress line is written to progress per directory visited; pass
// io.Discard to silence it. Individual file read failures are absorbed
// by the counter and never abort the walk.
func Analyze(ctx context.Context, targetDir string, rules *ignore.Rules, progress io.Writer) (*Summary, error) {
	if progress == nil {
		progress = io.Discard
	}
	summary := &Summary{Stats: make(map[string]int)}

	err := filepath.Walk(targetDir, func(path string, info os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Unreadable entries prune their subtree and the walk goes on.
		if walkErr != nil {
			return filepath.SkipDir
		}

		if info.IsDir() {
			if path != targetDir && rules.MatchDir(info.Name()) {
				return filepath.SkipDir
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			fmt.Fprintf(progress, "Analyzing: %s\n", abs)
			return nil
		}

		if rules.MatchFile(info.Name()) {
			return nil
		}
		def, ok := lang.ForPath(path)
		if !ok {
			return nil
		}
		if loc := counter.Count(path, def.CommentPrefix); loc > 0 {
			summary.Stats[def.Name] += loc
			summary.TotalLOC += loc
			summary.FilesProcessed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
