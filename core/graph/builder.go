// Package graph turns an analysis into a workflow graph of feature, gap,
// workflow and step nodes with a deterministic 2-D layout.
package graph

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tristendillon/codemap/core/logger"
	"github.com/tristendillon/codemap/core/models"
	"github.com/tristendillon/codemap/core/shared"
)

type Generator interface {
	Build(projectID string, analysis *models.AnalysisResult) *models.GraphResult
	Simple(projectID string) *models.GraphResult
}

type Option func(*Builder)

// WithClock fixes the time stamped into graph metadata.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIDGenerator replaces the random generation id.
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) { b.newID = newID }
}

type Builder struct {
	now   func() time.Time
	newID func() string
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build derives the workflow graph of an analysis. Every edge it emits
// connects two nodes of the same result.
func (b *Builder) Build(projectID string, analysis *models.AnalysisResult) *models.GraphResult {
	if analysis == nil {
		analysis = &models.AnalysisResult{}
	}

	nodes := []models.GraphNode{}
	nodes = append(nodes, featureNodes(analysis.ExistingFeatures)...)
	nodes = append(nodes, missingNodes(analysis.MissingFeatures)...)
	nodes = append(nodes, workflowNodes(analysis.WorkflowSuggestions)...)

	edges := buildEdges(nodes)
	Layout(nodes)

	result := &models.GraphResult{
		Nodes:    nodes,
		Edges:    edges,
		Metadata: b.metadata(projectID, nodes, edges),
	}
	result.Metadata.NodeTypes = nodeTypes(nodes)
	result.Metadata.AnalysisSummary = &models.AnalysisSummary{
		ProjectType:         analysis.ProjectType,
		ExistingFeatures:    len(analysis.ExistingFeatures),
		MissingFeatures:     len(analysis.MissingFeatures),
		WorkflowSuggestions: len(analysis.WorkflowSuggestions),
	}

	logger.Debug("GraphBuilder: %s has %d nodes and %d edges", projectID, len(nodes), len(edges))
	return result
}

func (b *Builder) metadata(projectID string, nodes []models.GraphNode, edges []models.GraphEdge) models.GraphMetadata {
	return models.GraphMetadata{
		ProjectID:    projectID,
		GeneratedAt:  b.now(),
		GenerationID: b.newID(),
		TotalNodes:   len(nodes),
		TotalEdges:   len(edges),
	}
}

func featureNodes(features []models.DetectedFeature) []models.GraphNode {
	nodes := make([]models.GraphNode, 0, len(features))
	for i, f := range features {
		nodeType := NodeType(f.Name)
		theme := themeFor(nodeType)
		confidence := f.Confidence
		files := append([]string{}, f.Files...)
		nodes = append(nodes, models.GraphNode{
			ID:       fmt.Sprintf("feature_%d", i),
			Label:    shared.ToTitle(f.Name),
			Type:     nodeType,
			Category: models.CategoryExistingFeature,
			Data: models.NodeData{
				Description: f.Description,
				Confidence:  &confidence,
				Files:       &files,
				FeatureName: f.Name,
			},
			Style: featureStyle(theme),
			Icon:  theme.Icon,
		})
	}
	return nodes
}

func missingNodes(features []models.MissingFeature) []models.GraphNode {
	nodes := make([]models.GraphNode, 0, len(features))
	for i, f := range features {
		nodeType := NodeType(f.Name)
		theme := themeFor(nodeType)
		nodes = append(nodes, models.GraphNode{
			ID:       fmt.Sprintf("missing_%d", i),
			Label:    "Add " + shared.ToTitle(f.Name),
			Type:     nodeType,
			Category: models.CategoryMissingFeature,
			Data: models.NodeData{
				Description:    f.Description,
				Priority:       f.Priority,
				Implementation: f.Implementation,
				FeatureName:    f.Name,
			},
			Style: missingStyle(theme),
			Icon:  theme.Icon,
		})
	}
	return nodes
}

func workflowNodes(workflows []models.WorkflowSuggestion) []models.GraphNode {
	var nodes []models.GraphNode
	for _, w := range workflows {
		nodes = append(nodes, models.GraphNode{
			ID:       "workflow_" + w.ID,
			Label:    w.Name,
			Type:     "workflow",
			Category: models.CategoryWorkflow,
			Data: models.NodeData{
				Description: w.Description,
				WorkflowID:  w.ID,
				Steps:       w.Steps,
			},
			Style: workflowStyle(),
			Icon:  workflowIcon,
		})

		for j, s := range w.Steps {
			stepType := s.Type
			if stepType == "" {
				stepType = fallbackType
			}
			theme := themeFor(stepType)
			index := j
			nodes = append(nodes, models.GraphNode{
				ID:       fmt.Sprintf("step_%s_%d", w.ID, j),
				Label:    s.Name,
				Type:     stepType,
				Category: models.CategoryWorkflowStep,
				Data: models.NodeData{
					WorkflowID:  w.ID,
					StepIndex:   &index,
					StepType:    stepType,
					Description: s.Description,
				},
				Style: stepStyle(theme),
				Icon:  theme.Icon,
			})
		}
	}
	return nodes
}

type edgeList struct {
	edges []models.GraphEdge
}

func (l *edgeList) add(kind edgeKind, source, target string) {
	l.edges = append(l.edges, models.GraphEdge{
		ID:     fmt.Sprintf("edge_%d", len(l.edges)),
		Source: source,
		Target: target,
		Type:   kind.Type,
		Style:  kind.Style,
		Label:  kind.Label,
	})
}

func buildEdges(nodes []models.GraphNode) []models.GraphEdge {
	var existing, missing, workflows, steps []models.GraphNode
	for _, n := range nodes {
		switch n.Category {
		case models.CategoryExistingFeature:
			existing = append(existing, n)
		case models.CategoryMissingFeature:
			missing = append(missing, n)
		case models.CategoryWorkflow:
			workflows = append(workflows, n)
		case models.CategoryWorkflowStep:
			steps = append(steps, n)
		}
	}

	list := &edgeList{edges: []models.GraphEdge{}}

	for _, e := range existing {
		for _, m := range missing {
			if contains(relationships[e.Data.FeatureName], m.Data.FeatureName) {
				list.add(suggestsEdge, e.ID, m.ID)
			}
		}
	}

	for _, w := range workflows {
		var own []models.GraphNode
		for _, s := range steps {
			if s.Data.WorkflowID == w.Data.WorkflowID {
				own = append(own, s)
			}
		}
		for _, s := range own {
			list.add(containsEdge, w.ID, s.ID)
		}
		for i := 0; i+1 < len(own); i++ {
			list.add(nextEdge, own[i].ID, own[i+1].ID)
		}
	}

	for _, f := range existing {
		for _, s := range steps {
			if contains(enabledSteps[f.Data.FeatureName], s.Data.StepType) {
				list.add(enablesEdge, f.ID, s.ID)
			}
		}
	}

	return list.edges
}

func nodeTypes(nodes []models.GraphNode) []string {
	seen := map[string]bool{}
	types := []string{}
	for _, n := range nodes {
		if !seen[n.Type] {
			seen[n.Type] = true
			types = append(types, n.Type)
		}
	}
	sort.Strings(types)
	return types
}

var _ Generator = (*Builder)(nil)
