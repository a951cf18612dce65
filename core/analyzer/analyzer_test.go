package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/codemap/core/detector"
	"github.com/tristendillon/codemap/core/insights"
	"github.com/tristendillon/codemap/core/models"
	"github.com/tristendillon/codemap/core/testutil"
	"github.com/tristendillon/codemap/core/walker"
)

var nodeProject = map[string]string{
	"package.json":        `{"name": "shop", "dependencies": {"react": "18"}}`,
	"src/index.js":        "// entry\nrender(App)\n",
	"src/App.jsx":         "export default function App() {}\n",
	"README.md":           "# Shop\n",
	"node_modules/x/a.js": "ignored",
	".cache/tmp.js":       "ignored",
}

func TestAnalyzeNodeProject(t *testing.T) {
	root := testutil.WriteTree(t, nodeProject)

	result, err := New().Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, models.NodeApplication, result.ProjectType)
	assert.Equal(t, 4, result.ProjectOverview.TotalFiles)
	assert.Equal(t, map[string]int{".json": 1, ".js": 1, ".jsx": 1, ".md": 1}, result.ProjectOverview.FileTypes)
	assert.Equal(t, []string{"package.json", "src/index.js"}, result.ProjectOverview.EntryPoints)
	require.NotNil(t, result.ProjectOverview.ProjectStructure)

	require.Len(t, result.ExistingFeatures, 1)
	assert.Equal(t, "react_frontend", result.ExistingFeatures[0].Name)
	assert.Equal(t, 0.9, result.ExistingFeatures[0].Confidence)
	assert.Equal(t, []string{"package.json"}, result.ExistingFeatures[0].Files)

	missing := []string{}
	for _, m := range result.MissingFeatures {
		missing = append(missing, m.Name)
	}
	assert.Equal(t, []string{"testing_framework", "error_handling", "authentication", "testing", "documentation"}, missing)

	assert.Equal(t, "nodejs_development", result.WorkflowSuggestions[0].ID)
	assert.Equal(t, "basic_flow", result.WorkflowSuggestions[len(result.WorkflowSuggestions)-1].ID)
	assert.Len(t, result.Recommendations, 4)

	assert.Equal(t, []string{"JavaScript"}, result.TechnologyStack.Languages)
	assert.Equal(t, []string{"React"}, result.TechnologyStack.Frameworks)

	assert.Equal(t, 3, result.ComplexityAnalysis.LinesOfCode)
	assert.InDelta(t, 1.0/3.0, result.ComplexityAnalysis.CommentRatio, 1e-9)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	root := testutil.WriteTree(t, nodeProject)
	a := New()

	first, err := a.Analyze(root)
	require.NoError(t, err)
	second, err := a.Analyze(root)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestAnalyzeInvalidPackageJSON(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"package.json": "{not json",
		"index.js":     "",
	})

	result, err := New().Analyze(root)
	require.NoError(t, err)
	assert.Equal(t, models.NodeApplication, result.ProjectType)
	assert.Empty(t, result.ExistingFeatures)
}

func TestAnalyzeEmptyProject(t *testing.T) {
	result, err := New().Analyze(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, models.UnknownProject, result.ProjectType)
	assert.Equal(t, 0, result.ProjectOverview.TotalFiles)
	assert.Equal(t, 100.0, result.ComplexityAnalysis.MaintainabilityIndex)
	assert.NotNil(t, result.ExistingFeatures)
	assert.NotNil(t, result.TechnologyStack.Languages)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestAnalyzeMissingPath(t *testing.T) {
	_, err := New().Analyze("/definitely/not/here")
	require.Error(t, err)
	assert.True(t, errors.Is(err, walker.ErrProjectNotFound))
}

func TestAnalyzeCancelled(t *testing.T) {
	root := testutil.WriteTree(t, nodeProject)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().AnalyzeContext(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCoverageMode(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"auth/login.py": "def login(password): pass",
		"main.py":       "",
	})

	a := New(WithMode(detector.ModeCoverage))
	assert.Equal(t, detector.ModeCoverage, a.Mode())

	result, err := a.Analyze(root)
	require.NoError(t, err)
	require.NotEmpty(t, result.ExistingFeatures)
	assert.Equal(t, "authentication", result.ExistingFeatures[0].Name)

	for _, m := range result.MissingFeatures {
		assert.NotEqual(t, "authentication", m.Name)
	}
}

func TestUnknownModeFallsBackToFixed(t *testing.T) {
	assert.Equal(t, detector.ModeFixed, New(WithMode("fuzzy")).Mode())
}

func TestExcludeAndSizeLimit(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"index.html":         "<html></html>",
		"app.js":             "document.addEventListener('load', go)",
		"vendor/lib/big.js":  "x",
		"generated/gen.html": "",
	})

	result, err := New(WithExclude("vendor/**", "generated"), WithMaxFileBytes(5)).Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ProjectOverview.TotalFiles)
	assert.Equal(t, models.StaticWebsite, result.ProjectType)
	for _, f := range result.ExistingFeatures {
		assert.NotEqual(t, "interactive_elements", f.Name, "app.js is over the size limit")
	}
}

type stubRecommender struct{}

func (stubRecommender) Recommend(models.ProjectType, []models.DetectedFeature) insights.Insights {
	return insights.Insights{
		MissingFeatures:     []models.MissingFeature{{Name: "stub", Priority: models.PriorityLow}},
		WorkflowSuggestions: []models.WorkflowSuggestion{},
		Recommendations:     []string{"stub"},
	}
}

func TestCustomRecommender(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"notes.txt": "hi"})

	result, err := New(WithRecommender(stubRecommender{})).Analyze(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"stub"}, result.Recommendations)
	require.Len(t, result.MissingFeatures, 1)
	assert.Equal(t, "stub", result.MissingFeatures[0].Name)
}
