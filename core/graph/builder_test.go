package graph

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/codemap/core/models"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testBuilder() *Builder {
	return NewBuilder(
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "gen-1" }),
	)
}

func sampleAnalysis() *models.AnalysisResult {
	return &models.AnalysisResult{
		ProjectType: models.UnknownProject,
		ExistingFeatures: []models.DetectedFeature{
			{Name: "frontend", Confidence: 0.8, Files: []string{"src/App.jsx"}, Description: "UI"},
			{Name: "authentication", Confidence: 0.5, Files: []string{"auth.js"}, Description: "Auth"},
		},
		MissingFeatures: []models.MissingFeature{
			{Name: "database", Priority: models.PriorityHigh, Description: "DB", Implementation: "Add one"},
			{Name: "backend", Priority: models.PriorityMedium, Description: "Server", Implementation: "Add one"},
		},
		WorkflowSuggestions: []models.WorkflowSuggestion{
			{
				ID:          "basic_flow",
				Name:        "Basic Development Flow",
				Description: "Standard development process",
				Steps: []models.WorkflowStep{
					{Name: "Project Setup", Type: "setup"},
					{Name: "Feature Development", Type: "development"},
					{Name: "Testing", Type: "testing"},
					{Name: "Deployment", Type: "deployment"},
				},
			},
		},
	}
}

func edgesOfType(g *models.GraphResult, t models.EdgeType) []models.GraphEdge {
	var out []models.GraphEdge
	for _, e := range g.Edges {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestBuildNodes(t *testing.T) {
	g := testBuilder().Build("proj", sampleAnalysis())

	ids := []string{}
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{
		"feature_0", "feature_1", "missing_0", "missing_1", "workflow_basic_flow",
		"step_basic_flow_0", "step_basic_flow_1", "step_basic_flow_2", "step_basic_flow_3",
	}, ids)

	auth, ok := g.Node("feature_1")
	require.True(t, ok)
	assert.Equal(t, "Authentication", auth.Label)
	assert.Equal(t, "auth", auth.Type)
	assert.Equal(t, "🔐", auth.Icon)
	require.NotNil(t, auth.Data.Confidence)
	assert.Equal(t, 0.5, *auth.Data.Confidence)
	assert.Equal(t, "#EF4444", auth.Style.BackgroundColor)

	db, ok := g.Node("missing_0")
	require.True(t, ok)
	assert.Equal(t, "Add Database", db.Label)
	assert.Equal(t, models.CategoryMissingFeature, db.Category)
	assert.Equal(t, "dashed", db.Style.BorderStyle)
	assert.Equal(t, "#6B7280", db.Style.BorderColor)
	assert.Equal(t, 0.8, db.Style.Opacity)

	wf, ok := g.Node("workflow_basic_flow")
	require.True(t, ok)
	assert.Equal(t, "workflow", wf.Type)
	assert.Equal(t, "🔄", wf.Icon)
	assert.Equal(t, 200, wf.Style.Width)
	assert.Equal(t, 60, wf.Style.Height)
	assert.Len(t, wf.Data.Steps, 4)

	step, ok := g.Node("step_basic_flow_2")
	require.True(t, ok)
	assert.Equal(t, "testing", step.Type)
	assert.Equal(t, "testing", step.Data.StepType)
	require.NotNil(t, step.Data.StepIndex)
	assert.Equal(t, 2, *step.Data.StepIndex)
}

func TestBuildEdges(t *testing.T) {
	g := testBuilder().Build("proj", sampleAnalysis())

	assert.Empty(t, g.DanglingEdges())
	require.Len(t, g.Edges, 10)
	for i, e := range g.Edges {
		assert.Equal(t, fmt.Sprintf("edge_%d", i), e.ID)
	}

	deps := edgesOfType(g, models.EdgeFeatureDependency)
	require.Len(t, deps, 2)
	assert.Equal(t, "feature_0", deps[0].Source)
	assert.Equal(t, "missing_1", deps[0].Target)
	assert.Equal(t, "Suggests", deps[0].Label)
	assert.Equal(t, "5,5", deps[0].Style.StrokeDasharray)

	authToDB := 0
	for _, e := range deps {
		if e.Source == "feature_1" && e.Target == "missing_0" {
			authToDB++
		}
	}
	assert.Equal(t, 1, authToDB)

	assert.Len(t, edgesOfType(g, models.EdgeWorkflowStep), 4)

	next := edgesOfType(g, models.EdgeStepSequence)
	require.Len(t, next, 3)
	assert.Equal(t, "step_basic_flow_0", next[0].Source)
	assert.Equal(t, "step_basic_flow_1", next[0].Target)
	assert.Equal(t, 3, next[0].Style.StrokeWidth)

	enables := edgesOfType(g, models.EdgeFeatureWorkflow)
	require.Len(t, enables, 1)
	assert.Equal(t, "feature_0", enables[0].Source)
	assert.Equal(t, "step_basic_flow_1", enables[0].Target)
}

func TestBuildLayout(t *testing.T) {
	g := testBuilder().Build("proj", sampleAnalysis())

	pos := func(id string) models.Position {
		n, ok := g.Node(id)
		require.True(t, ok, id)
		return n.Position
	}

	assert.Equal(t, models.Position{X: 600, Y: 300}, pos("feature_0"))
	assert.InDelta(t, 200, pos("feature_1").X, 1e-9)
	assert.InDelta(t, 300, pos("feature_1").Y, 1e-9)
	assert.Equal(t, models.Position{X: 750, Y: 300}, pos("missing_0"))
	assert.InDelta(t, 50, pos("missing_1").X, 1e-9)
	assert.Equal(t, models.Position{X: 200, Y: 600}, pos("workflow_basic_flow"))
	assert.Equal(t, models.Position{X: 200, Y: 700}, pos("step_basic_flow_0"))
	assert.Equal(t, models.Position{X: 200, Y: 940}, pos("step_basic_flow_3"))
}

func TestLayoutSecondWorkflowColumn(t *testing.T) {
	analysis := &models.AnalysisResult{
		WorkflowSuggestions: []models.WorkflowSuggestion{
			{ID: "a", Steps: []models.WorkflowStep{{Name: "one", Type: "setup"}}},
			{ID: "b", Steps: []models.WorkflowStep{{Name: "one", Type: "setup"}, {Name: "two", Type: "design"}}},
		},
	}
	g := testBuilder().Build("proj", analysis)

	b, _ := g.Node("workflow_b")
	assert.Equal(t, models.Position{X: 350, Y: 600}, b.Position)
	step, _ := g.Node("step_b_1")
	assert.Equal(t, models.Position{X: 350, Y: 780}, step.Position)
}

func TestBuildMetadata(t *testing.T) {
	g := testBuilder().Build("proj", sampleAnalysis())

	md := g.Metadata
	assert.Equal(t, "proj", md.ProjectID)
	assert.Equal(t, fixedTime, md.GeneratedAt)
	assert.Equal(t, "gen-1", md.GenerationID)
	assert.Equal(t, len(g.Nodes), md.TotalNodes)
	assert.Equal(t, len(g.Edges), md.TotalEdges)
	assert.Equal(t, []string{
		"auth", "backend", "database", "deployment", "development", "frontend", "setup", "testing", "workflow",
	}, md.NodeTypes)
	require.NotNil(t, md.AnalysisSummary)
	assert.Equal(t, models.AnalysisSummary{
		ProjectType:         models.UnknownProject,
		ExistingFeatures:    2,
		MissingFeatures:     2,
		WorkflowSuggestions: 1,
	}, *md.AnalysisSummary)
	assert.Empty(t, md.Type)
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := json.Marshal(testBuilder().Build("proj", sampleAnalysis()))
	require.NoError(t, err)
	b, err := json.Marshal(testBuilder().Build("proj", sampleAnalysis()))
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestBuildEmptyAnalysis(t *testing.T) {
	for _, analysis := range []*models.AnalysisResult{nil, {}} {
		g := testBuilder().Build("proj", analysis)
		assert.Empty(t, g.Nodes)
		assert.NotNil(t, g.Edges)
		assert.Empty(t, g.Edges)
	}
}

func TestUnknownFeatureFallsBackToDevelopment(t *testing.T) {
	g := testBuilder().Build("proj", &models.AnalysisResult{
		ExistingFeatures: []models.DetectedFeature{{Name: "react_frontend", Confidence: 0.9}},
		WorkflowSuggestions: []models.WorkflowSuggestion{
			{ID: "w", Steps: []models.WorkflowStep{{Name: "untyped"}}},
		},
	})

	f, _ := g.Node("feature_0")
	assert.Equal(t, "development", f.Type)
	assert.Equal(t, "React_Frontend", f.Label)
	assert.Equal(t, "#10B981", f.Style.BackgroundColor)

	s, _ := g.Node("step_w_0")
	assert.Equal(t, "development", s.Type)
	assert.Empty(t, edgesOfType(g, models.EdgeFeatureWorkflow))
	assert.Empty(t, g.DanglingEdges())
}

func TestFeatureWithoutEvidenceKeepsFilesArray(t *testing.T) {
	g := testBuilder().Build("proj", &models.AnalysisResult{
		ExistingFeatures: []models.DetectedFeature{{Name: "documentation", Confidence: 0.7, Files: []string{}}},
		MissingFeatures:  []models.MissingFeature{{Name: "testing", Priority: models.PriorityMedium}},
	})

	feature, ok := g.Node("feature_0")
	require.True(t, ok)
	require.NotNil(t, feature.Data.Files)
	assert.Empty(t, *feature.Data.Files)

	data, err := json.Marshal(feature.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"files":[]`)

	missing, ok := g.Node("missing_0")
	require.True(t, ok)
	data, err = json.Marshal(missing.Data)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"files"`)
}

func TestSimpleGraph(t *testing.T) {
	g := testBuilder().Simple("proj")

	require.Len(t, g.Nodes, 4)
	want := []struct {
		id, label, kind string
		x               float64
	}{
		{"start", "Project Start", "setup", 200},
		{"develop", "Development", "development", 400},
		{"test", "Testing", "testing", 600},
		{"deploy", "Deployment", "deployment", 800},
	}
	for i, w := range want {
		n := g.Nodes[i]
		assert.Equal(t, w.id, n.ID)
		assert.Equal(t, w.label, n.Label)
		assert.Equal(t, w.kind, n.Type)
		assert.Equal(t, models.CategoryWorkflowStep, n.Category)
		assert.Equal(t, models.Position{X: w.x, Y: 100}, n.Position)
	}

	require.Len(t, g.Edges, 3)
	assert.Equal(t, "edge_1", g.Edges[0].ID)
	assert.Equal(t, "edge_3", g.Edges[2].ID)
	for _, e := range g.Edges {
		assert.Equal(t, models.EdgeSequence, e.Type)
		assert.Equal(t, "#6B7280", e.Style.Stroke)
		assert.Equal(t, 3, e.Style.StrokeWidth)
	}
	assert.Empty(t, g.DanglingEdges())

	assert.Equal(t, "simple_workflow", g.Metadata.Type)
	assert.Equal(t, 4, g.Metadata.TotalNodes)
	assert.Equal(t, 3, g.Metadata.TotalEdges)
	assert.Nil(t, g.Metadata.AnalysisSummary)
}

func TestDefaultBuilderUsesRandomGenerationID(t *testing.T) {
	b := NewBuilder()
	first := b.Simple("p").Metadata.GenerationID
	second := b.Simple("p").Metadata.GenerationID
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
