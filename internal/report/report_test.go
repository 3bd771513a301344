package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeusData/loc-analyzer/internal/walker"
)

func render(s *walker.Summary) string {
	var buf bytes.Buffer
	Render(&buf, s)
	return buf.String()
}

func TestRenderEmpty(t *testing.T) {
	out := render(&walker.Summary{Stats: map[string]int{}})
	require.Contains(t, out, "No source code files found or processed.")
	require.NotContains(t, out, "TOTAL")
}

func TestRenderSortedDescending(t *testing.T) {
	out := render(&walker.Summary{
		Stats:          map[string]int{"Python": 120, "Go": 4500, "CSS": 30},
		FilesProcessed: 7,
		TotalLOC:       4650,
	})

	goIdx := strings.Index(out, "Go")
	pyIdx := strings.Index(out, "Python")
	cssIdx := strings.Index(out, "CSS")
	require.True(t, goIdx < pyIdx && pyIdx < cssIdx, "languages out of order:\n%s", out)

	require.Contains(t, out, "4,500")
	require.Contains(t, out, "4,650")
	require.Contains(t, out, "Total source files processed: 7")
}

func TestRenderTieBrokenByName(t *testing.T) {
	out := render(&walker.Summary{
		Stats:          map[string]int{"Ruby": 10, "Lua": 10, "Perl": 10},
		FilesProcessed: 3,
		TotalLOC:       30,
	})
	luaIdx := strings.Index(out, "Lua")
	perlIdx := strings.Index(out, "Perl")
	rubyIdx := strings.Index(out, "Ruby")
	require.True(t, luaIdx < perlIdx && perlIdx < rubyIdx, "ties not name-ordered:\n%s", out)
}

func TestRenderThousandsSeparators(t *testing.T) {
	out := render(&walker.Summary{
		Stats:          map[string]int{"Java": 1234567},
		FilesProcessed: 1,
		TotalLOC:       1234567,
	})
	require.Contains(t, out, "1,234,567")
}
