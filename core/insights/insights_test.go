package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/codemap/core/models"
)

func features(names ...string) []models.DetectedFeature {
	out := make([]models.DetectedFeature, 0, len(names))
	for _, n := range names {
		out = append(out, models.DetectedFeature{Name: n, Confidence: 0.5})
	}
	return out
}

func workflowIDs(in Insights) []string {
	ids := []string{}
	for _, w := range in.WorkflowSuggestions {
		ids = append(ids, w.ID)
	}
	return ids
}

func TestWorkflowsByProjectType(t *testing.T) {
	tests := []struct {
		name     string
		pt       models.ProjectType
		features []models.DetectedFeature
		want     []string
	}{
		{"static", models.StaticWebsite, nil, []string{"website_enhancement", "basic_flow"}},
		{"static with forms", models.StaticWebsite, features("contact_forms"), []string{"website_enhancement", "content_management", "basic_flow"}},
		{"html template", models.HTMLTemplate, features("contact_forms"), []string{"website_enhancement", "content_management", "basic_flow"}},
		{"node", models.NodeApplication, features("react_frontend"), []string{"nodejs_development", "basic_flow"}},
		{"node with api", models.NodeApplication, features("api"), []string{"nodejs_development", "api_development", "api_flow", "basic_flow"}},
		{"python", models.PythonApplication, nil, []string{"python_development", "basic_flow"}},
		{"containerized", models.ContainerizedApplication, nil, []string{"basic_development", "basic_flow"}},
		{"unknown with auth", models.UnknownProject, features("authentication"), []string{"basic_development", "auth_flow", "basic_flow"}},
	}

	r := NewRuleRecommender()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workflowIDs(r.Recommend(tt.pt, tt.features)))
		})
	}
}

func TestBasicFlowIsAlwaysLast(t *testing.T) {
	in := NewRuleRecommender().Recommend(models.PythonApplication, nil)

	last := in.WorkflowSuggestions[len(in.WorkflowSuggestions)-1]
	assert.Equal(t, "basic_flow", last.ID)
	assert.Equal(t, "Basic Development Flow", last.Name)
	require.Len(t, last.Steps, 4)
	assert.Equal(t, []string{"setup", "development", "testing", "deployment"}, []string{
		last.Steps[0].Type, last.Steps[1].Type, last.Steps[2].Type, last.Steps[3].Type,
	})
}

func TestCommonGaps(t *testing.T) {
	r := NewRuleRecommender()

	in := r.Recommend(models.UnknownProject, nil)
	require.Len(t, in.MissingFeatures, 3)
	assert.Equal(t, "authentication", in.MissingFeatures[0].Name)
	assert.Equal(t, models.PriorityHigh, in.MissingFeatures[0].Priority)
	assert.Equal(t, "testing", in.MissingFeatures[1].Name)
	assert.Equal(t, models.PriorityMedium, in.MissingFeatures[1].Priority)
	assert.Equal(t, "documentation", in.MissingFeatures[2].Name)
	assert.Equal(t, models.PriorityLow, in.MissingFeatures[2].Priority)

	in = r.Recommend(models.UnknownProject, features("documentation", "testing"))
	require.Len(t, in.MissingFeatures, 1)
	assert.Equal(t, "authentication", in.MissingFeatures[0].Name)
}

func TestRecommendationsAreFixed(t *testing.T) {
	in := NewRuleRecommender().Recommend(models.NodeApplication, features("express_server"))

	assert.Equal(t, []string{
		"Consider adding automated testing for better code quality",
		"Implement proper error handling and logging",
		"Add API documentation for better developer experience",
		"Consider implementing CI/CD pipeline for automated deployment",
	}, in.Recommendations)
}

func TestResultsDoNotAliasTables(t *testing.T) {
	r := NewRuleRecommender()

	first := r.Recommend(models.UnknownProject, nil)
	first.WorkflowSuggestions[0].Steps[0].Name = "changed"
	first.Recommendations[0] = "changed"

	second := r.Recommend(models.UnknownProject, nil)
	assert.Equal(t, "Project Setup", second.WorkflowSuggestions[0].Steps[0].Name)
	assert.NotEqual(t, "changed", second.Recommendations[0])
}
