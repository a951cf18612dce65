package complexity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tristendillon/codemap/core/models"
)

type memSource map[string]string

func (m memSource) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m memSource) Read(path string) (string, bool) {
	text, ok := m[path]
	return text, ok
}

func TestEmptyProject(t *testing.T) {
	m := NewScorer().Score(memSource{})

	assert.Equal(t, 0, m.LinesOfCode)
	assert.Equal(t, 0.0, m.CommentRatio)
	assert.Equal(t, 100.0, m.MaintainabilityIndex)
}

func TestAllCommentLines(t *testing.T) {
	m := NewScorer().Score(memSource{
		"tool.py": "# one\n  # two\n#three",
	})

	assert.Equal(t, 3, m.LinesOfCode)
	assert.Equal(t, 1.0, m.CommentRatio)
	assert.InDelta(t, 100.0, m.MaintainabilityIndex, 1e-9)
}

func TestOnlySourceFilesCount(t *testing.T) {
	m := NewScorer().Score(memSource{
		"README.md":     "# title\n\nbody\n",
		"index.js":      "// entry\nrun()\n",
		"lib/util.TS":   "/* header */\nexport {}\n",
		"styles/a.css":  "/* not source */\n",
		"src/empty.tsx": "",
	})

	assert.Equal(t, 4, m.LinesOfCode)
	assert.Equal(t, 0.5, m.CommentRatio)
	assert.Zero(t, m.CyclomaticComplexity)
	assert.Zero(t, m.FunctionCount)
	assert.Zero(t, m.ClassCount)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single newline", "\n", 1},
		{"trailing fragment", "a\nb", 2},
		{"terminated", "a\nb\n", 2},
		{"crlf", "a\r\nb\r\n", 2},
		{"bare cr", "a\rb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, splitLines(tt.text), tt.want)
		})
	}
}

func TestMaintainabilityIndex(t *testing.T) {
	tests := []struct {
		name string
		m    models.ComplexityMetrics
		want float64
	}{
		{"empty", models.ComplexityMetrics{}, 100},
		{"small uncommented", models.ComplexityMetrics{LinesOfCode: 500}, 99.5},
		{"fully commented large project", models.ComplexityMetrics{LinesOfCode: 40000, CommentRatio: 1}, 90},
		{"size penalty caps at thirty", models.ComplexityMetrics{LinesOfCode: 90000}, 70},
		{"complexity penalty", models.ComplexityMetrics{LinesOfCode: 1000, CyclomaticComplexity: 1000}, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MaintainabilityIndex(tt.m), 1e-9)
		})
	}
}
