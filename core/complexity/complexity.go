// Package complexity computes line-based size and maintainability metrics.
package complexity

import (
	"strings"

	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/matcher"
	"github.com/tristendillon/codemap/core/models"
)

var sourceFiles = matcher.Rule{Extensions: []string{".py", ".js", ".ts", ".jsx", ".tsx"}}

var commentPrefixes = []string{"#", "//", "/*"}

type Scorer interface {
	Score(src matcher.Source) models.ComplexityMetrics
}

type ScorerImpl struct{}

func NewScorer() *ScorerImpl {
	return &ScorerImpl{}
}

// Score counts physical and comment lines over the source files of src.
// Unreadable files are skipped.
func (s *ScorerImpl) Score(src matcher.Source) models.ComplexityMetrics {
	lines, comments := 0, 0
	for _, rel := range sourceFiles.Find(src) {
		text, ok := src.Read(rel)
		if !ok {
			continue
		}
		for _, line := range splitLines(text) {
			lines++
			if isComment(line) {
				comments++
			}
		}
	}

	m := models.ComplexityMetrics{
		LinesOfCode:  lines,
		CommentRatio: float64(comments) / float64(max(lines, 1)),
	}
	m.MaintainabilityIndex = MaintainabilityIndex(m)
	logger.Debug("Complexity: %d lines, %d comments", lines, comments)
	return m
}

// MaintainabilityIndex is 100 for an empty project and otherwise trades
// complexity and size against comment density, clamped to [0, 100].
func MaintainabilityIndex(m models.ComplexityMetrics) float64 {
	if m.LinesOfCode == 0 {
		return 100
	}
	mi := 100.0
	mi -= min(float64(m.CyclomaticComplexity)/10, 50)
	mi += min(m.CommentRatio*20, 20)
	mi -= min(float64(m.LinesOfCode)/1000, 30)
	return max(0, min(mi, 100))
}

// splitLines breaks text the way a line-oriented reader does: \r\n and \r
// count as newlines, and a trailing fragment without one is still a line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

var _ Scorer = (*ScorerImpl)(nil)
