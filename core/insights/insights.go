// Package insights turns detected features into project-level suggestions:
// common gaps, workflows to follow and general recommendations.
package insights

import (
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
)

type Insights struct {
	MissingFeatures     []models.MissingFeature
	WorkflowSuggestions []models.WorkflowSuggestion
	Recommendations     []string
}

// Recommender produces insights for a classified project. The rule-based
// implementation is the default; others may consult external services.
type Recommender interface {
	Recommend(pt models.ProjectType, features []models.DetectedFeature) Insights
}

var commonGaps = []models.MissingFeature{
	{
		Name:           "authentication",
		Priority:       models.PriorityHigh,
		Description:    "User authentication system",
		Implementation: "Add login/signup functionality with JWT tokens",
	},
	{
		Name:           "testing",
		Priority:       models.PriorityMedium,
		Description:    "Automated testing framework",
		Implementation: "Implement unit and integration tests",
	},
	{
		Name:           "documentation",
		Priority:       models.PriorityLow,
		Description:    "Project documentation",
		Implementation: "Add README and API documentation",
	},
}

var recommendations = []string{
	"Consider adding automated testing for better code quality",
	"Implement proper error handling and logging",
	"Add API documentation for better developer experience",
	"Consider implementing CI/CD pipeline for automated deployment",
}

type RuleRecommender struct{}

func NewRuleRecommender() *RuleRecommender {
	return &RuleRecommender{}
}

func (r *RuleRecommender) Recommend(pt models.ProjectType, features []models.DetectedFeature) Insights {
	has := make(map[string]bool, len(features))
	for _, f := range features {
		has[f.Name] = true
	}

	missing := []models.MissingFeature{}
	for _, gap := range commonGaps {
		if !has[gap.Name] {
			missing = append(missing, gap)
		}
	}

	workflows := typeWorkflows(pt, has)
	workflows = append(workflows, featureWorkflows(has)...)
	workflows = append(workflows, basicFlow)

	logger.Debug("Insights: %d gaps, %d workflows for %s", len(missing), len(workflows), pt)
	return Insights{
		MissingFeatures:     missing,
		WorkflowSuggestions: cloneWorkflows(workflows),
		Recommendations:     append([]string{}, recommendations...),
	}
}

// cloneWorkflows copies the step slices so callers cannot modify the tables.
func cloneWorkflows(flows []models.WorkflowSuggestion) []models.WorkflowSuggestion {
	out := make([]models.WorkflowSuggestion, len(flows))
	for i, f := range flows {
		f.Steps = append([]models.WorkflowStep{}, f.Steps...)
		out[i] = f
	}
	return out
}

var _ Recommender = (*RuleRecommender)(nil)
